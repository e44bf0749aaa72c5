package analyzer

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Confidence bands used only for summary wording.
const (
	highConfidence     = 0.8
	moderateConfidence = 0.6
	maxSummarySkills   = 5
)

// buildSummary produces the one-line human-readable summary for a result.
func buildSummary(category string, confidence float64, skills []string) string {
	if category == types.UnclassifiedLabel {
		return "This resume could not be confidently matched to a known role."
	}

	desc := "low confidence"
	switch {
	case confidence >= highConfidence:
		desc = "high confidence"
	case confidence >= moderateConfidence:
		desc = "moderate confidence"
	}

	summary := fmt.Sprintf("This resume aligns with the %s role with %s.", category, desc)
	if len(skills) == 0 {
		return summary
	}

	shown := skills
	extra := 0
	if len(shown) > maxSummarySkills {
		extra = len(shown) - maxSummarySkills
		shown = shown[:maxSummarySkills]
	}
	skillStr := strings.Join(shown, ", ")
	if extra > 0 {
		skillStr += fmt.Sprintf(", and %d more", extra)
	}
	return summary + " Key skills identified: " + skillStr + "."
}
