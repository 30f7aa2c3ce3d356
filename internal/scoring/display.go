package scoring

import (
	"fmt"
	"strings"
)

// Display text assembly is kept strictly out of the numeric path: both
// formatters are pure functions over a finished breakdown, producing the
// same terms in the same order, just in different languages.

type displayTerm struct {
	value float64
	en    string
	he    string
}

func displayTerms(b *PointsBreakdown) []displayTerm {
	applied := make(map[string]bool, len(b.AppliedBonuses))
	for _, name := range b.AppliedBonuses {
		applied[name] = true
	}

	terms := []displayTerm{
		{b.Components.BasePoints, "base", "בסיס"},
	}
	if b.Bonuses.SetCompletion > 0 {
		terms = append(terms, displayTerm{b.Bonuses.SetCompletion, "set completion", "השלמת סטים"})
	}
	if b.Bonuses.Weight > 0 {
		terms = append(terms, displayTerm{b.Bonuses.Weight, "weight", "משקל"})
	}
	if b.Bonuses.ProgressiveOverload > 0 {
		terms = append(terms, displayTerm{b.Bonuses.ProgressiveOverload, "progressive overload", "עומס מתקדם"})
	}
	if b.Bonuses.Variety > 0 {
		terms = append(terms, displayTerm{b.Bonuses.Variety, "variety", "גיוון"})
	}
	if b.Bonuses.PR > 0 {
		terms = append(terms, displayTerm{b.Bonuses.PR, "personal record", "שיא אישי"})
	}
	if b.Bonuses.RPE > 0 {
		terms = append(terms, displayTerm{b.Bonuses.RPE, "effort", "מאמץ"})
	}
	if b.Bonuses.Zone > 0 {
		terms = append(terms, displayTerm{b.Bonuses.Zone, "heart rate zone", "דופק"})
	}
	if b.Bonuses.Milestone > 0 {
		terms = append(terms, displayTerm{b.Bonuses.Milestone, "milestone", "אבן דרך"})
	}
	if b.Bonuses.Synergy > 0 {
		terms = append(terms, displayTerm{b.Bonuses.Synergy, "synergy", "סינרגיה"})
	}
	if b.Components.ElevationComponent > 0 {
		terms = append(terms, displayTerm{b.Components.ElevationComponent, "elevation", "טיפוס"})
	}
	if applied["early_bird"] {
		terms = append(terms, displayTerm{timeOfDayPoints, "early bird", "משכימי קום"})
	}
	if applied["night_owl"] {
		terms = append(terms, displayTerm{timeOfDayPoints, "night owl", "ינשוף לילה"})
	}
	return terms
}

func formatPoints(v float64) string {
	if v == float64(int(v)) {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.1f", v)
}

func displayTextEn(b *PointsBreakdown) string {
	parts := make([]string, 0, 4)
	for _, term := range displayTerms(b) {
		parts = append(parts, fmt.Sprintf("%s %s", formatPoints(term.value), term.en))
	}
	return strings.Join(parts, " + ")
}

func displayTextHe(b *PointsBreakdown) string {
	parts := make([]string, 0, 4)
	for _, term := range displayTerms(b) {
		parts = append(parts, fmt.Sprintf("%s %s", formatPoints(term.value), term.he))
	}
	return strings.Join(parts, " + ")
}
