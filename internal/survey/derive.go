package survey

import (
	"strings"

	"github.com/SchoolPulse/SP-Backend/internal/sheet"
)

// Department display names. Derived from the school-name prefix only; the
// sheet itself carries no department column.
const (
	DeptKGBV   = "KGBV (Girls)"
	DeptTGMS   = "TGMS (Co-ed)"
	DeptPMSHRI = "PMSHRI (Co-ed)"
	DeptOther  = "Other"
)

// ClassifyDepartment maps a school name to its department by case-insensitive
// prefix. First match wins; the prefixes are mutually exclusive, and every
// name lands somewhere (Other is the catch-all).
func ClassifyDepartment(schoolName string) string {
	name := strings.ToUpper(strings.TrimSpace(schoolName))
	switch {
	case strings.HasPrefix(name, "KGBV"):
		return DeptKGBV
	case strings.HasPrefix(name, "TGMS"):
		return DeptTGMS
	case strings.HasPrefix(name, "PMSHRI"):
		return DeptPMSHRI
	default:
		return DeptOther
	}
}

// perStudentRatio returns available/enrolled scaled by scale, or nil when
// enrolled is 0. Nil is the "undefined" sentinel: zero-enrollment schools
// stay out of ratio rankings but still count toward totals.
func perStudentRatio(available, enrolled int, scale float64) *float64 {
	if enrolled == 0 {
		return nil
	}
	v := float64(available) / float64(enrolled) * scale
	return &v
}

// BuildRecord cleans one raw sheet row into a School, deriving the
// department tag and the six per-student ratios.
func BuildRecord(row map[string]string) School {
	name := strings.TrimSpace(row["school_name"])

	s := School{
		SlNo:       row["sl_no"],
		SchoolName: name,
		Department: ClassifyDepartment(name),
		Remarks:    row["remarks"],

		EnrolledStudents: sheet.CleanNumeric(row["enrolled_students"]),
		VacantSeats:      sheet.CleanNumeric(row["vacant_seats"]),

		DrinkingWater:    sheet.CleanYesNo(row["drinking_water"]),
		ROPlant:          sheet.CleanYesNo(row["ro_plant"]),
		InternetFacility: sheet.CleanYesNo(row["internet_facility"]),
		SWHAvailable:     sheet.CleanYesNo(row["swh_available"]),
		SWHRequired:      sheet.CleanYesNo(row["swh_required"]),

		ClassRoomsAvailable:        sheet.CleanNumeric(row["class_rooms_available"]),
		ClassRoomsRequired:         sheet.CleanNumeric(row["class_rooms_required"]),
		DormitoriesAvailable:       sheet.CleanNumeric(row["dormitories_available"]),
		DormitoriesRequired:        sheet.CleanNumeric(row["dormitories_required"]),
		ToiletsFunctionalAvailable: sheet.CleanNumeric(row["toilets_functional_available"]),
		ToiletsRequired:            sheet.CleanNumeric(row["toilets_required"]),
		BathroomsAvailable:         sheet.CleanNumeric(row["bathrooms_available"]),
		BathroomsRequired:          sheet.CleanNumeric(row["bathrooms_required"]),
		DualDeskAvailable:          sheet.CleanNumeric(row["dual_desk_available"]),
		DualDeskRequired:           sheet.CleanNumeric(row["dual_desk_required"]),
		ComputersAvailable:         sheet.CleanNumeric(row["computers_available"]),
		DiningTablesAvailable:      sheet.CleanNumeric(row["dining_tables_available"]),
		DiningTablesRequired:       sheet.CleanNumeric(row["dining_tables_required"]),
		CotsAvailable:              sheet.CleanNumeric(row["cots_available"]),
		CotsRequired:               sheet.CleanNumeric(row["cots_required"]),
		MatressesAvailable:         sheet.CleanNumeric(row["matresses_available"]),
		MatressesRequired:          sheet.CleanNumeric(row["matresses_required"]),
		BlanketsAvailable:          sheet.CleanNumeric(row["blankets_available"]),
		BlanketsRequired:           sheet.CleanNumeric(row["blankets_required"]),
		IFPPanelsAvailable:         sheet.CleanNumeric(row["ifp_panels_available"]),
		VacancyCount:               sheet.CleanNumeric(row["vacancy_count"]),
	}

	// Classrooms, toilets and bathrooms are reported per 100 students; the
	// furniture/equipment ratios stay per student.
	s.RatioClassrooms = perStudentRatio(s.ClassRoomsAvailable, s.EnrolledStudents, 100)
	s.RatioToilets = perStudentRatio(s.ToiletsFunctionalAvailable, s.EnrolledStudents, 100)
	s.RatioBathrooms = perStudentRatio(s.BathroomsAvailable, s.EnrolledStudents, 100)
	s.RatioDesks = perStudentRatio(s.DualDeskAvailable, s.EnrolledStudents, 1)
	s.RatioCots = perStudentRatio(s.CotsAvailable, s.EnrolledStudents, 1)
	s.RatioComputers = perStudentRatio(s.ComputersAvailable, s.EnrolledStudents, 1)

	return s
}

// BuildRecords cleans a whole parsed sheet, preserving input order. Order
// matters: ranking ties are broken by position in the source sheet.
func BuildRecords(sh *sheet.Sheet) []School {
	out := make([]School, 0, len(sh.Rows))
	for _, row := range sh.Rows {
		out = append(out, BuildRecord(row))
	}
	return out
}

// FilterByDepartment returns the records for one department, or all records
// for the "All" pseudo-department (and the empty string, which the API
// treats the same way).
func FilterByDepartment(records []School, department string) []School {
	if department == "" || department == "All" {
		return records
	}
	out := make([]School, 0, len(records))
	for _, r := range records {
		if r.Department == department {
			out = append(out, r)
		}
	}
	return out
}
