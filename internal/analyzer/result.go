package analyzer

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// excerptLimit bounds the audit copy of the input kept on the result.
const excerptLimit = 500

// resultBuilder assembles an AnalysisResult exactly once. The built value is
// never mutated afterwards; the history store persists its own copy, so there
// is no aliasing between the returned result and the durable record.
type resultBuilder struct {
	r types.AnalysisResult
}

// newResultBuilder seeds every list field with an empty slice so the JSON
// shape is stable: absent data serializes as [] rather than null.
func newResultBuilder(now time.Time) *resultBuilder {
	b := &resultBuilder{}
	b.r.Timestamp = now
	b.r.ResumeID = newResumeID(now)
	b.r.ExperienceLevel = types.ExperienceUnknown
	b.r.Skills = []string{}
	b.r.Sections = []string{}
	b.r.Keywords = []string{}
	return b
}

func (b *resultBuilder) withPrediction(p types.Prediction) *resultBuilder {
	b.r.JobCategory = p.Label
	b.r.Confidence = p.Confidence
	return b
}

func (b *resultBuilder) withSkills(skills []string) *resultBuilder {
	if skills != nil {
		b.r.Skills = skills
	}
	return b
}

func (b *resultBuilder) withExperience(level types.ExperienceLevel) *resultBuilder {
	b.r.ExperienceLevel = level
	return b
}

func (b *resultBuilder) withMetrics(m types.Metrics) *resultBuilder {
	b.r.WordCount = m.WordCount
	b.r.CharacterCount = m.CharacterCount
	b.r.SentenceCount = m.SentenceCount
	b.r.AvgSentenceLength = m.AvgSentenceLength
	b.r.ReadabilityScore = m.ReadabilityScore
	return b
}

func (b *resultBuilder) withSections(sections []string) *resultBuilder {
	if sections != nil {
		b.r.Sections = sections
	}
	return b
}

func (b *resultBuilder) withKeywords(keywords []string) *resultBuilder {
	if keywords != nil {
		b.r.Keywords = keywords
	}
	return b
}

func (b *resultBuilder) withSource(text string) *resultBuilder {
	b.r.SourceExcerpt = excerpt(text)
	sum := sha256.Sum256([]byte(text))
	b.r.TextHash = hex.EncodeToString(sum[:])
	return b
}

func (b *resultBuilder) withSummary(summary string) *resultBuilder {
	b.r.Summary = summary
	return b
}

func (b *resultBuilder) build() *types.AnalysisResult {
	out := b.r
	return &out
}

// newResumeID returns "resume_YYYYMMDD_HHMM_<8 hex>". Collisions are treated
// as practically impossible and not checked.
func newResumeID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return "resume_" + now.UTC().Format("20060102_1504") + "_" + suffix
}

func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= excerptLimit {
		return text
	}
	return string(runes[:excerptLimit]) + "..."
}
