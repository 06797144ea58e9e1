package sheet

import "strings"

// columnMapping standardizes the raw spreadsheet headers (typos included, as
// they appear in the source sheet) to canonical snake_case field names.
// Matching is exact: a header that drifts upstream simply passes through
// unmapped and the load fails the required-column check below.
var columnMapping = map[string]string{
	"Sl_no":                                  "sl_no",
	"School_Name":                            "school_name",
	"Totel_enrolled_students":                "enrolled_students",
	"Vacant_seats":                           "vacant_seats",
	"Driniking water Facility (Yes/No)":      "drinking_water",
	"RO Plant available or not":              "ro_plant",
	"No of class rooms available":            "class_rooms_available",
	"No of class rooms required":             "class_rooms_required",
	"No of Darmitories Available":            "dormitories_available",
	"No of Darmitories Required":             "dormitories_required",
	"No of Functional Toilets Availabale":    "toilets_functional_available",
	"No of Toilets Required":                 "toilets_required",
	"No of Bathrooms Available":              "bathrooms_available",
	"No of Bathrooms Required":               "bathrooms_required",
	"No of Dual Desk Tables Available":       "dual_desk_available",
	"No of Dual Desk Tables Required":        "dual_desk_required",
	"No of Computers Available":              "computers_available",
	"Internet Facility available(yes /No)":   "internet_facility",
	"No of Dining Tables Availabale":         "dining_tables_available",
	"No of Dining Tables Required":           "dining_tables_required",
	"No of cots Available":                   "cots_available",
	"No of cots Required":                    "cots_required",
	"No of Matresses available":              "matresses_available",
	"No of Matresses required":               "matresses_required",
	"No of Blankets Available":               "blankets_available",
	"No of Blankets Required":                "blankets_required",
	"Solar Water Heater/ Geyser Available":   "swh_available",
	"Solar Water Heater/ Geyser Requirement": "swh_required",
	"No of IFP panels availble":              "ifp_panels_available",
	"Vacancy":                                "vacancy_count",
	"Remarks":                                "remarks",
}

// YesNoColumns are free-text facility fields cleaned with the yes/no policy.
var YesNoColumns = []string{
	"drinking_water",
	"ro_plant",
	"internet_facility",
	"swh_available",
	"swh_required",
}

// NumericColumns are count fields cleaned with the numeric policy.
var NumericColumns = []string{
	"enrolled_students",
	"vacant_seats",
	"class_rooms_available",
	"class_rooms_required",
	"dormitories_available",
	"dormitories_required",
	"toilets_functional_available",
	"toilets_required",
	"bathrooms_available",
	"bathrooms_required",
	"dual_desk_available",
	"dual_desk_required",
	"computers_available",
	"dining_tables_available",
	"dining_tables_required",
	"cots_available",
	"cots_required",
	"matresses_available",
	"matresses_required",
	"blankets_available",
	"blankets_required",
	"ifp_panels_available",
	"vacancy_count",
}

// NormalizeHeader maps a raw header to its canonical name. Unknown headers
// pass through with surrounding whitespace trimmed.
func NormalizeHeader(raw string) string {
	h := strings.TrimSpace(raw)
	if canonical, ok := columnMapping[h]; ok {
		return canonical
	}
	return h
}

// requiredColumns returns every canonical column the cleaning and metric
// layers read. sl_no and remarks are informational and may be absent.
func requiredColumns() []string {
	req := []string{"school_name"}
	req = append(req, YesNoColumns...)
	req = append(req, NumericColumns...)
	return req
}
