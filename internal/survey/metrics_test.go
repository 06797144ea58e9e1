package survey

import (
	"testing"
)

func fptr(v float64) *float64 { return &v }

var classroomsPair = FulfillmentPair{
	Title:     "Classrooms",
	Available: "class_rooms_available",
	Required:  "class_rooms_required",
	Unit:      "rooms",
}

// TestFulfillment verifies the deficiency semantics: required is additional
// units still needed, so ratio = available / (available + required).
func TestFulfillment(t *testing.T) {
	records := []School{
		{ClassRoomsAvailable: 50, ClassRoomsRequired: 15},
		{ClassRoomsAvailable: 30, ClassRoomsRequired: 5},
	}

	f := Fulfillment(records, classroomsPair)

	if f.AvailableTotal != 80 || f.DeficiencyTotal != 20 {
		t.Fatalf("totals wrong: available=%d deficiency=%d", f.AvailableTotal, f.DeficiencyTotal)
	}
	if f.TotalNeed != 100 {
		t.Errorf("expected total need 100, got %d", f.TotalNeed)
	}
	if f.Ratio != 0.8 {
		t.Errorf("expected fulfillment 0.8, got %v", f.Ratio)
	}
	if len(f.Breakdown) != 2 || f.Breakdown[0].Status != "Available" || f.Breakdown[1].Status != "Deficient" {
		t.Errorf("unexpected breakdown: %+v", f.Breakdown)
	}
}

// TestFulfillment_EmptyNeed verifies that a category with nothing available
// and nothing needed reports full fulfillment, not a division error.
func TestFulfillment_EmptyNeed(t *testing.T) {
	f := Fulfillment([]School{{}, {}}, classroomsPair)

	if f.Ratio != 1.0 {
		t.Errorf("expected fulfillment 1.0 at zero need, got %v", f.Ratio)
	}
	if len(f.Breakdown) != 0 {
		t.Errorf("expected zero-count segments omitted, got %+v", f.Breakdown)
	}
}

// TestFulfillment_ZeroSegmentOmitted verifies a zero segment drops out of the
// breakdown without changing the ratio.
func TestFulfillment_ZeroSegmentOmitted(t *testing.T) {
	records := []School{{ClassRoomsAvailable: 40}}

	f := Fulfillment(records, classroomsPair)

	if f.Ratio != 1.0 {
		t.Errorf("expected fulfillment 1.0, got %v", f.Ratio)
	}
	if len(f.Breakdown) != 1 || f.Breakdown[0].Status != "Available" {
		t.Errorf("expected only the Available segment, got %+v", f.Breakdown)
	}
}

// TestYesNoBreakdown verifies substring counting on cleaned values and the
// empty-set percent guard.
func TestYesNoBreakdown(t *testing.T) {
	drinkingWater := FacilityField{Title: "Drinking Water", Field: "drinking_water"}

	records := []School{
		{DrinkingWater: "yes"},
		{DrinkingWater: "no"},
		{DrinkingWater: "n/a"}, // passthrough counts as not-yes
		{DrinkingWater: "yes"},
	}

	b := YesNoBreakdown(records, drinkingWater)
	if b.YesCount != 2 || b.NoCount != 2 {
		t.Errorf("expected 2/2, got %d/%d", b.YesCount, b.NoCount)
	}
	if b.YesPercent != 0.5 {
		t.Errorf("expected 50%% yes, got %v", b.YesPercent)
	}

	empty := YesNoBreakdown(nil, drinkingWater)
	if empty.YesPercent != 0 {
		t.Errorf("expected 0 percent on empty set, got %v", empty.YesPercent)
	}
}

// TestSummarize verifies the KPI block, including the vacancy percentage and
// grouped display strings.
func TestSummarize(t *testing.T) {
	records := []School{
		{EnrolledStudents: 400, VacantSeats: 50},
		{EnrolledStudents: 600, VacantSeats: 150},
		{EnrolledStudents: 0, VacantSeats: 0}, // zero-enrollment school still counts
	}

	s := Summarize(records)

	if s.TotalSchools != 3 {
		t.Errorf("expected 3 schools, got %d", s.TotalSchools)
	}
	if s.TotalEnrolled != 1000 || s.TotalVacant != 200 {
		t.Errorf("totals wrong: %d enrolled, %d vacant", s.TotalEnrolled, s.TotalVacant)
	}
	if s.VacancyPercent != float64(200)/float64(1200)*100 {
		t.Errorf("unexpected vacancy percent %v", s.VacancyPercent)
	}
	if s.TotalEnrolledDisplay != "1,000" {
		t.Errorf("expected grouped display \"1,000\", got %q", s.TotalEnrolledDisplay)
	}
}

// TestSummarize_Empty verifies the zero-capacity guard.
func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.VacancyPercent != 0 {
		t.Errorf("expected 0 vacancy percent on empty set, got %v", s.VacancyPercent)
	}
}

// TestRankWorst verifies ascending order, the nil exclusion and the top-5 cut.
func TestRankWorst(t *testing.T) {
	metric := RankingMetric{Key: "ratio_desks", Label: "Dual Desks / Student"}

	records := []School{
		{SchoolName: "E", RatioDesks: fptr(5)},
		{SchoolName: "A", RatioDesks: fptr(1)},
		{SchoolName: "C", RatioDesks: fptr(3)},
		{SchoolName: "Z", RatioDesks: nil}, // zero enrollment, excluded
		{SchoolName: "B", RatioDesks: fptr(2)},
		{SchoolName: "D", RatioDesks: fptr(4)},
	}

	got := RankWorst(records, metric, 5)

	if len(got) != 5 {
		t.Fatalf("expected 5 ranked schools, got %d", len(got))
	}
	wantOrder := []string{"A", "B", "C", "D", "E"}
	wantValue := []float64{1, 2, 3, 4, 5}
	for i := range got {
		if got[i].SchoolName != wantOrder[i] || got[i].Value != wantValue[i] {
			t.Errorf("rank %d: got (%s, %v), want (%s, %v)",
				i, got[i].SchoolName, got[i].Value, wantOrder[i], wantValue[i])
		}
	}
}

// TestRankWorst_StableTies verifies tied ratios keep source-sheet order.
func TestRankWorst_StableTies(t *testing.T) {
	metric := RankingMetric{Key: "ratio_cots", Label: "Cots / Student"}

	records := []School{
		{SchoolName: "First", RatioCots: fptr(0.5)},
		{SchoolName: "Second", RatioCots: fptr(0.5)},
		{SchoolName: "Third", RatioCots: fptr(0.5)},
	}

	got := RankWorst(records, metric, 5)
	want := []string{"First", "Second", "Third"}
	for i := range want {
		if got[i].SchoolName != want[i] {
			t.Errorf("tie order broken at %d: got %s, want %s", i, got[i].SchoolName, want[i])
		}
	}
}

// TestRankWorst_Rounding verifies 2-decimal rounding for per-100 metrics and
// 3-decimal rounding for per-student metrics.
func TestRankWorst_Rounding(t *testing.T) {
	perHundred := RankingMetric{Key: "ratio_toilets", PerHundred: true}
	records := []School{{SchoolName: "S", RatioToilets: fptr(1.23456)}}
	if got := RankWorst(records, perHundred, 1)[0].Value; got != 1.23 {
		t.Errorf("expected 1.23, got %v", got)
	}

	perStudent := RankingMetric{Key: "ratio_computers", PerHundred: false}
	records = []School{{SchoolName: "S", RatioComputers: fptr(0.123456)}}
	if got := RankWorst(records, perStudent, 1)[0].Value; got != 0.123 {
		t.Errorf("expected 0.123, got %v", got)
	}
}
