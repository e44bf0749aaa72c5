// Package experience infers a seniority band from resume text using an
// ordered list of heuristic rules.
package experience

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Estimator evaluates its rules in priority order; the first match wins.
type Estimator struct {
	rules []rule
}

// NewEstimator constructs an Estimator with the default rule order.
func NewEstimator() *Estimator {
	return &Estimator{rules: defaultRules}
}

// Estimate returns the seniority band for the given raw text and canonical
// tokens. Absent any signal it returns Unknown, which is a valid
// low-information result rather than an error.
func (e *Estimator) Estimate(rawText string, tokens []string) types.ExperienceLevel {
	sig := signal{
		lowerText: strings.ToLower(rawText),
		tokens:    tokens,
	}
	for _, r := range e.rules {
		if level, ok := r.tryMatch(sig); ok {
			return level
		}
	}
	return types.ExperienceUnknown
}
