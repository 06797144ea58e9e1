package survey

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// kpiPrinter formats KPI display strings with English digit grouping
// ("12,345") the way the dashboard shows them.
var kpiPrinter = message.NewPrinter(language.English)

// StatusCount is one segment of a stacked-bar or pie breakdown.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// FulfillmentSummary is the stock/need summary for one resource category.
// DeficiencyTotal is the sum of the "required" column, which reports
// additional units still needed — not a total target. That makes
// Ratio = available / (available + deficiency).
type FulfillmentSummary struct {
	Title           string        `json:"title"`
	Unit            string        `json:"unit"`
	AvailableTotal  int           `json:"available_total"`
	DeficiencyTotal int           `json:"deficiency_total"`
	TotalNeed       int           `json:"total_need"`
	Ratio           float64       `json:"fulfillment_ratio"`
	Breakdown       []StatusCount `json:"breakdown"`
}

// Fulfillment computes the summary for one available/required column pair
// over the given (already filtered) records. A category nobody has and
// nobody wants counts as fully fulfilled.
func Fulfillment(records []School, pair FulfillmentPair) FulfillmentSummary {
	availableOf := countFields[pair.Available]
	requiredOf := countFields[pair.Required]

	var available, deficiency int
	for i := range records {
		available += availableOf(&records[i])
		deficiency += requiredOf(&records[i])
	}

	totalNeed := available + deficiency
	ratio := 1.0
	if totalNeed > 0 {
		ratio = float64(available) / float64(totalNeed)
	}

	// Zero-count segments are omitted from the breakdown; they don't change
	// the ratio.
	var breakdown []StatusCount
	if available > 0 {
		breakdown = append(breakdown, StatusCount{Status: "Available", Count: available})
	}
	if deficiency > 0 {
		breakdown = append(breakdown, StatusCount{Status: "Deficient", Count: deficiency})
	}

	return FulfillmentSummary{
		Title:           pair.Title,
		Unit:            pair.Unit,
		AvailableTotal:  available,
		DeficiencyTotal: deficiency,
		TotalNeed:       totalNeed,
		Ratio:           ratio,
		Breakdown:       breakdown,
	}
}

// FacilityBreakdown is the yes/no distribution for one facility column.
type FacilityBreakdown struct {
	Title      string        `json:"title"`
	Field      string        `json:"field"`
	YesCount   int           `json:"yes_count"`
	NoCount    int           `json:"no_count"`
	Total      int           `json:"total"`
	YesPercent float64       `json:"yes_percent"`
	Breakdown  []StatusCount `json:"breakdown"`
}

// YesNoBreakdown counts cleaned facility answers containing "yes"; everything
// else (including passthrough text) lands on the No side, matching how the
// dashboard has always read these columns.
func YesNoBreakdown(records []School, facility FacilityField) FacilityBreakdown {
	valueOf := facilityFields[facility.Field]

	yes := 0
	for i := range records {
		if strings.Contains(valueOf(&records[i]), "yes") {
			yes++
		}
	}
	total := len(records)
	no := total - yes

	percent := 0.0
	if total > 0 {
		percent = float64(yes) / float64(total)
	}

	return FacilityBreakdown{
		Title:      facility.Title,
		Field:      facility.Field,
		YesCount:   yes,
		NoCount:    no,
		Total:      total,
		YesPercent: percent,
		Breakdown: []StatusCount{
			{Status: "Yes", Count: yes},
			{Status: "No", Count: no},
		},
	}
}

// Summary is the KPI block at the top of the dashboard. Zero-enrollment
// schools count here; they are only excluded from ratio views.
type Summary struct {
	TotalSchools         int     `json:"total_schools"`
	TotalEnrolled        int     `json:"total_enrolled"`
	TotalVacant          int     `json:"total_vacant"`
	TotalCapacity        int     `json:"total_capacity"`
	VacancyPercent       float64 `json:"overall_vacancy_percent"`
	TotalEnrolledDisplay string  `json:"total_enrolled_display"`
	TotalVacantDisplay   string  `json:"total_vacant_display"`
}

// Summarize computes the KPI block over the given records.
func Summarize(records []School) Summary {
	var enrolled, vacant int
	for i := range records {
		enrolled += records[i].EnrolledStudents
		vacant += records[i].VacantSeats
	}
	capacity := enrolled + vacant

	percent := 0.0
	if capacity > 0 {
		percent = float64(vacant) / float64(capacity) * 100
	}

	return Summary{
		TotalSchools:         len(records),
		TotalEnrolled:        enrolled,
		TotalVacant:          vacant,
		TotalCapacity:        capacity,
		VacancyPercent:       percent,
		TotalEnrolledDisplay: kpiPrinter.Sprintf("%d", enrolled),
		TotalVacantDisplay:   kpiPrinter.Sprintf("%d", vacant),
	}
}

// RankedSchool is one row of a worst-N table.
type RankedSchool struct {
	SchoolName       string  `json:"school_name"`
	EnrolledStudents int     `json:"enrolled_students"`
	Value            float64 `json:"value"`
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// RankWorst returns the n schools with the lowest value for the given ratio
// metric, ascending. Schools with an undefined ratio (zero enrollment) are
// excluded. Ties keep source-sheet order. Per-100 metrics round to 2
// decimals, per-student metrics to 3.
func RankWorst(records []School, metric RankingMetric, n int) []RankedSchool {
	valueOf := ratioFields[metric.Key]

	type entry struct {
		school *School
		value  float64
	}
	var entries []entry
	for i := range records {
		if v := valueOf(&records[i]); v != nil {
			entries = append(entries, entry{school: &records[i], value: *v})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].value < entries[j].value
	})

	if len(entries) > n {
		entries = entries[:n]
	}

	places := 3
	if metric.PerHundred {
		places = 2
	}

	out := make([]RankedSchool, 0, len(entries))
	for _, e := range entries {
		out = append(out, RankedSchool{
			SchoolName:       e.school.SchoolName,
			EnrolledStudents: e.school.EnrolledStudents,
			Value:            roundTo(e.value, places),
		})
	}
	return out
}
