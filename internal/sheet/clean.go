package sheet

import (
	"strconv"
	"strings"
)

// CleanYesNo reduces a free-text facility answer to "yes" or "no" by substring
// match. Anything that matches neither keeps its trimmed, lowercased form —
// a passthrough state the dashboard surfaces as-is, not an error.
func CleanYesNo(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	if strings.Contains(v, "yes") {
		return "yes"
	}
	if strings.Contains(v, "no") {
		return "no"
	}
	return v
}

// CleanNumeric coerces messy count cells ("12-15 rooms", "$5", "N/A") to a
// non-negative integer. Every rune outside [0-9.-] is dropped, ranges keep
// their first bound, and anything still unparseable becomes 0. Lossy on
// purpose: survey cells mix units, ranges and prose, and a silent 0 matches
// the published report numbers.
func CleanNumeric(s string) int {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	v := strings.SplitN(b.String(), "-", 2)[0]
	v = strings.SplitN(v, "$", 2)[0]
	v = strings.TrimSpace(v)

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return int(f)
}
