package experience

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// signal is what a rule inspects: the raw text lowered plus the canonical
// token sequence from normalization.
type signal struct {
	lowerText string
	tokens    []string
}

// rule is one heuristic in the estimator's ordered list. Rules are evaluated
// in priority order and the first match wins; numeric evidence therefore
// always outranks title-keyword inference.
type rule interface {
	tryMatch(sig signal) (types.ExperienceLevel, bool)
}

// Year thresholds for explicit years-of-experience mentions.
const (
	entryMaxYears  = 2
	midMaxYears    = 5
	seniorMaxYears = 10
)

var yearsPattern = regexp.MustCompile(`(\d+)\s*\+?\s*(?:years?|yrs?)`)

// yearsRule maps explicit "N years"/"N+ yrs" mentions to bands. When several
// numbers appear the largest wins.
type yearsRule struct{}

func (yearsRule) tryMatch(sig signal) (types.ExperienceLevel, bool) {
	matches := yearsPattern.FindAllStringSubmatch(sig.lowerText, -1)
	if len(matches) == 0 {
		return types.ExperienceUnknown, false
	}

	maxYears := 0
	for _, m := range matches {
		if y, err := strconv.Atoi(m[1]); err == nil && y > maxYears {
			maxYears = y
		}
	}

	switch {
	case maxYears < entryMaxYears:
		return types.ExperienceEntry, true
	case maxYears < midMaxYears:
		return types.ExperienceMidLevel, true
	case maxYears < seniorMaxYears:
		return types.ExperienceSenior, true
	default:
		return types.ExperienceExecutive, true
	}
}

// titleRule maps job-title keywords to a band. Single words match against
// canonical tokens; multi-word phrases match on the lowered text with word
// boundaries, so "ahead of schedule" never triggers "head of".
type titleRule struct {
	words   []string
	phrases []*regexp.Regexp
	level   types.ExperienceLevel
}

func newTitleRule(level types.ExperienceLevel, keywords ...string) titleRule {
	r := titleRule{level: level}
	for _, kw := range keywords {
		if strings.Contains(kw, " ") {
			r.phrases = append(r.phrases, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
			continue
		}
		r.words = append(r.words, kw)
	}
	return r
}

func (r titleRule) tryMatch(sig signal) (types.ExperienceLevel, bool) {
	for _, p := range r.phrases {
		if p.MatchString(sig.lowerText) {
			return r.level, true
		}
	}
	for _, kw := range r.words {
		for _, tok := range sig.tokens {
			if tok == kw {
				return r.level, true
			}
		}
	}
	return types.ExperienceUnknown, false
}

// defaultRules is the estimator's contract: numeric evidence first, then
// executive titles, then senior titles, then junior markers.
var defaultRules = []rule{
	yearsRule{},
	newTitleRule(types.ExperienceExecutive,
		"principal", "director", "vp", "chief", "cto", "ceo", "head of"),
	newTitleRule(types.ExperienceSenior,
		"senior", "lead", "staff", "architect", "manager", "expert"),
	newTitleRule(types.ExperienceEntry,
		"intern", "graduate", "junior", "entry level", "fresh", "student", "beginner"),
}
