package survey

import (
	"encoding/json"
	"net/http"

	"github.com/SchoolPulse/SP-Backend/internal/db"
)

// store is the shared dataset cache, built in Init.
var store *Store

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// departmentParam reads the department filter, defaulting to All.
func departmentParam(r *http.Request) string {
	d := r.URL.Query().Get("department")
	if d == "" {
		return "All"
	}
	return d
}

// loadFiltered fetches the cached dataset and applies the department filter.
// A fetch or schema failure is a 502: the upstream sheet is the sole source
// of truth and there is nothing to fall back to.
func loadFiltered(w http.ResponseWriter, r *http.Request) ([]School, string, bool) {
	records, err := store.Records(r.Context())
	if err != nil {
		http.Error(w, "Failed to load survey data: "+err.Error(), http.StatusBadGateway)
		return nil, "", false
	}
	dept := departmentParam(r)
	return FilterByDepartment(records, dept), dept, true
}

// GetSummary returns the KPI block for the selected department.
func GetSummary(w http.ResponseWriter, r *http.Request) {
	records, dept, ok := loadFiltered(w, r)
	if !ok {
		return
	}

	writeJSON(w, map[string]any{
		"department": dept,
		"summary":    Summarize(records),
	})
}

// GetFacilities returns the yes/no breakdowns for every catalog facility.
func GetFacilities(w http.ResponseWriter, r *http.Request) {
	records, dept, ok := loadFiltered(w, r)
	if !ok {
		return
	}

	out := make([]FacilityBreakdown, 0, len(catalog.Facilities))
	for _, f := range catalog.Facilities {
		out = append(out, YesNoBreakdown(records, f))
	}

	writeJSON(w, map[string]any{
		"department": dept,
		"facilities": out,
	})
}

// GetFulfillment returns the stock/need summary for every catalog pair.
func GetFulfillment(w http.ResponseWriter, r *http.Request) {
	records, dept, ok := loadFiltered(w, r)
	if !ok {
		return
	}

	out := make([]FulfillmentSummary, 0, len(catalog.Fulfillment))
	for _, pair := range catalog.Fulfillment {
		out = append(out, Fulfillment(records, pair))
	}

	writeJSON(w, map[string]any{
		"department":  dept,
		"fulfillment": out,
	})
}

// rankingTable is one worst-5 table for the deficiency tab.
type rankingTable struct {
	Metric  RankingMetric  `json:"metric"`
	Schools []RankedSchool `json:"schools"`
}

// GetRankings returns the worst-5 table per ratio metric. Departments whose
// schools all report zero enrollment get an informational empty state, not
// an error.
func GetRankings(w http.ResponseWriter, r *http.Request) {
	records, dept, ok := loadFiltered(w, r)
	if !ok {
		return
	}

	rankable := 0
	for i := range records {
		if records[i].EnrolledStudents > 0 {
			rankable++
		}
	}
	if rankable == 0 {
		writeJSON(w, map[string]any{
			"department": dept,
			"tables":     []rankingTable{},
			"message":    "No schools with sufficient enrollment data to calculate per-student ratios.",
		})
		return
	}

	tables := make([]rankingTable, 0, len(catalog.Rankings))
	for _, metric := range catalog.Rankings {
		tables = append(tables, rankingTable{
			Metric:  metric,
			Schools: RankWorst(records, metric, 5),
		})
	}

	writeJSON(w, map[string]any{
		"department": dept,
		"tables":     tables,
	})
}

// schoolDetail is one row of the per-school ratio table.
type schoolDetail struct {
	SchoolName       string   `json:"school_name"`
	Department       string   `json:"department"`
	EnrolledStudents int      `json:"enrolled_students"`
	RatioClassrooms  *float64 `json:"ratio_classrooms"`
	RatioToilets     *float64 `json:"ratio_toilets"`
	RatioBathrooms   *float64 `json:"ratio_bathrooms"`
	RatioDesks       *float64 `json:"ratio_desks"`
	RatioCots        *float64 `json:"ratio_cots"`
	RatioComputers   *float64 `json:"ratio_computers"`
}

// GetSchools returns the ratio detail table: every school with non-zero
// enrollment and its six derived ratios.
func GetSchools(w http.ResponseWriter, r *http.Request) {
	records, dept, ok := loadFiltered(w, r)
	if !ok {
		return
	}

	out := make([]schoolDetail, 0, len(records))
	for i := range records {
		s := &records[i]
		if s.EnrolledStudents == 0 {
			continue
		}
		out = append(out, schoolDetail{
			SchoolName:       s.SchoolName,
			Department:       s.Department,
			EnrolledStudents: s.EnrolledStudents,
			RatioClassrooms:  s.RatioClassrooms,
			RatioToilets:     s.RatioToilets,
			RatioBathrooms:   s.RatioBathrooms,
			RatioDesks:       s.RatioDesks,
			RatioCots:        s.RatioCots,
			RatioComputers:   s.RatioComputers,
		})
	}

	writeJSON(w, map[string]any{
		"department": dept,
		"schools":    out,
	})
}

// GetDepartments returns the filter options, All first.
func GetDepartments(w http.ResponseWriter, r *http.Request) {
	records, err := store.Records(r.Context())
	if err != nil {
		http.Error(w, "Failed to load survey data: "+err.Error(), http.StatusBadGateway)
		return
	}

	seen := map[string]bool{}
	options := []string{"All"}
	for _, d := range []string{DeptKGBV, DeptTGMS, DeptPMSHRI, DeptOther} {
		for i := range records {
			if records[i].Department == d && !seen[d] {
				seen[d] = true
				options = append(options, d)
			}
		}
	}

	writeJSON(w, map[string]any{"departments": options})
}

// GetSnapshots returns the persisted load history, newest first.
func GetSnapshots(w http.ResponseWriter, r *http.Request) {
	var snapshots []Snapshot
	if err := db.DB.Order("fetched_at DESC").Limit(50).Find(&snapshots).Error; err != nil {
		http.Error(w, "Failed to fetch snapshots: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"snapshots": snapshots})
}

// RefreshData drops the cached dataset and reloads it from the sheet.
// Admin-guarded; the normal path just waits out the TTL.
func RefreshData(w http.ResponseWriter, r *http.Request) {
	records, err := store.Refresh(r.Context())
	if err != nil {
		http.Error(w, "Failed to refresh survey data: "+err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, map[string]any{
		"status":       "refreshed",
		"school_count": len(records),
	})
}
