package survey

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Snapshot records one successful sheet load: where it came from, when, and
// the raw header list as seen upstream (useful when diagnosing schema drift).
type Snapshot struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	SourceURL string         `gorm:"not null" json:"source_url"`
	FetchedAt time.Time      `gorm:"not null" json:"fetched_at"`
	RowCount  int            `gorm:"not null" json:"row_count"`
	Columns   pq.StringArray `gorm:"type:text[]" json:"columns"`
	CreatedAt time.Time      `json:"created_at"`

	Schools []School `gorm:"foreignKey:SnapshotID" json:"schools,omitempty"`
}

func (Snapshot) TableName() string {
	return "survey.snapshots"
}

// School is one cleaned survey row. Counts are already coerced to ints, the
// facility fields to the yes/no domain, and the ratio columns carry nil when
// the school reported zero enrollment.
type School struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	SnapshotID uuid.UUID `gorm:"type:uuid;index" json:"snapshot_id"`

	SlNo       string `json:"sl_no"`
	SchoolName string `gorm:"not null" json:"school_name"`
	Department string `gorm:"index" json:"department"`

	EnrolledStudents int `json:"enrolled_students"`
	VacantSeats      int `json:"vacant_seats"`

	DrinkingWater    string `json:"drinking_water"`
	ROPlant          string `json:"ro_plant"`
	InternetFacility string `json:"internet_facility"`
	SWHAvailable     string `json:"swh_available"`
	SWHRequired      string `json:"swh_required"`

	ClassRoomsAvailable        int `json:"class_rooms_available"`
	ClassRoomsRequired         int `json:"class_rooms_required"`
	DormitoriesAvailable       int `json:"dormitories_available"`
	DormitoriesRequired        int `json:"dormitories_required"`
	ToiletsFunctionalAvailable int `json:"toilets_functional_available"`
	ToiletsRequired            int `json:"toilets_required"`
	BathroomsAvailable         int `json:"bathrooms_available"`
	BathroomsRequired          int `json:"bathrooms_required"`
	DualDeskAvailable          int `json:"dual_desk_available"`
	DualDeskRequired           int `json:"dual_desk_required"`
	ComputersAvailable         int `json:"computers_available"`
	DiningTablesAvailable      int `json:"dining_tables_available"`
	DiningTablesRequired       int `json:"dining_tables_required"`
	CotsAvailable              int `json:"cots_available"`
	CotsRequired               int `json:"cots_required"`
	MatressesAvailable         int `json:"matresses_available"`
	MatressesRequired          int `json:"matresses_required"`
	BlanketsAvailable          int `json:"blankets_available"`
	BlanketsRequired           int `json:"blankets_required"`
	IFPPanelsAvailable         int `json:"ifp_panels_available"`
	VacancyCount               int `json:"vacancy_count"`

	Remarks string `json:"remarks"`

	RatioClassrooms *float64 `json:"ratio_classrooms"`
	RatioToilets    *float64 `json:"ratio_toilets"`
	RatioBathrooms  *float64 `json:"ratio_bathrooms"`
	RatioDesks      *float64 `json:"ratio_desks"`
	RatioCots       *float64 `json:"ratio_cots"`
	RatioComputers  *float64 `json:"ratio_computers"`
}

func (School) TableName() string {
	return "survey.schools"
}

// countFields resolves a canonical numeric column name to its struct field.
// The fulfillment catalog refers to columns by these names.
var countFields = map[string]func(*School) int{
	"enrolled_students":            func(s *School) int { return s.EnrolledStudents },
	"vacant_seats":                 func(s *School) int { return s.VacantSeats },
	"class_rooms_available":        func(s *School) int { return s.ClassRoomsAvailable },
	"class_rooms_required":         func(s *School) int { return s.ClassRoomsRequired },
	"dormitories_available":        func(s *School) int { return s.DormitoriesAvailable },
	"dormitories_required":         func(s *School) int { return s.DormitoriesRequired },
	"toilets_functional_available": func(s *School) int { return s.ToiletsFunctionalAvailable },
	"toilets_required":             func(s *School) int { return s.ToiletsRequired },
	"bathrooms_available":          func(s *School) int { return s.BathroomsAvailable },
	"bathrooms_required":           func(s *School) int { return s.BathroomsRequired },
	"dual_desk_available":          func(s *School) int { return s.DualDeskAvailable },
	"dual_desk_required":           func(s *School) int { return s.DualDeskRequired },
	"computers_available":          func(s *School) int { return s.ComputersAvailable },
	"dining_tables_available":      func(s *School) int { return s.DiningTablesAvailable },
	"dining_tables_required":       func(s *School) int { return s.DiningTablesRequired },
	"cots_available":               func(s *School) int { return s.CotsAvailable },
	"cots_required":                func(s *School) int { return s.CotsRequired },
	"matresses_available":          func(s *School) int { return s.MatressesAvailable },
	"matresses_required":           func(s *School) int { return s.MatressesRequired },
	"blankets_available":           func(s *School) int { return s.BlanketsAvailable },
	"blankets_required":            func(s *School) int { return s.BlanketsRequired },
	"ifp_panels_available":         func(s *School) int { return s.IFPPanelsAvailable },
	"vacancy_count":                func(s *School) int { return s.VacancyCount },
}

// facilityFields resolves a canonical yes/no column name to its struct field.
var facilityFields = map[string]func(*School) string{
	"drinking_water":    func(s *School) string { return s.DrinkingWater },
	"ro_plant":          func(s *School) string { return s.ROPlant },
	"internet_facility": func(s *School) string { return s.InternetFacility },
	"swh_available":     func(s *School) string { return s.SWHAvailable },
	"swh_required":      func(s *School) string { return s.SWHRequired },
}

// ratioFields resolves a ratio metric key to its struct field.
var ratioFields = map[string]func(*School) *float64{
	"ratio_classrooms": func(s *School) *float64 { return s.RatioClassrooms },
	"ratio_toilets":    func(s *School) *float64 { return s.RatioToilets },
	"ratio_bathrooms":  func(s *School) *float64 { return s.RatioBathrooms },
	"ratio_desks":      func(s *School) *float64 { return s.RatioDesks },
	"ratio_cots":       func(s *School) *float64 { return s.RatioCots },
	"ratio_computers":  func(s *School) *float64 { return s.RatioComputers },
}
