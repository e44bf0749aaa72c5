package experience

import (
	"testing"

	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func estimate(t *testing.T, text string) types.ExperienceLevel {
	t.Helper()
	tokens, err := parsing.Normalize(text)
	require.NoError(t, err)
	return NewEstimator().Estimate(text, tokens)
}

func TestEstimate_ExplicitYears(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.ExperienceLevel
	}{
		{"one year", "1 year of professional work", types.ExperienceEntry},
		{"three years", "3 years building web applications", types.ExperienceMidLevel},
		{"five years", "5 years of backend development", types.ExperienceSenior},
		{"plus notation", "7+ yrs shipping software", types.ExperienceSenior},
		{"ten years", "10 years of engineering leadership", types.ExperienceExecutive},
		{"well past ten", "15 years in the industry", types.ExperienceExecutive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, estimate(t, tt.text))
		})
	}
}

func TestEstimate_NumericEvidenceOutranksKeywords(t *testing.T) {
	// Both signals present: the explicit years mention must win.
	assert.Equal(t, types.ExperienceExecutive,
		estimate(t, "10 years of experience, currently looking for entry level roles"))
	assert.Equal(t, types.ExperienceEntry,
		estimate(t, "senior in college with 1 year of internships"))
}

func TestEstimate_LargestYearsMentionWins(t *testing.T) {
	assert.Equal(t, types.ExperienceExecutive,
		estimate(t, "2 years at Acme then 11 years at Globex"))
}

func TestEstimate_TitleKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.ExperienceLevel
	}{
		{"senior title", "Senior Software Engineer at Acme", types.ExperienceSenior},
		{"lead title", "Tech Lead for the platform team", types.ExperienceSenior},
		{"principal title", "Principal Engineer, infrastructure", types.ExperienceExecutive},
		{"director title", "Director of Engineering", types.ExperienceExecutive},
		{"intern", "Software Engineering Intern at a startup", types.ExperienceEntry},
		{"entry level phrase", "Seeking an entry level position", types.ExperienceEntry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, estimate(t, tt.text))
		})
	}
}

func TestEstimate_ExecutiveTitleOutranksSeniorTitle(t *testing.T) {
	assert.Equal(t, types.ExperienceExecutive,
		estimate(t, "Principal Engineer and former Senior Developer"))
}

func TestEstimate_NoSignalReturnsUnknown(t *testing.T) {
	assert.Equal(t, types.ExperienceUnknown,
		estimate(t, "Worked on various software projects across industries"))
}

func TestEstimate_PhraseKeywordsRequireWordBoundary(t *testing.T) {
	// "ahead of schedule" must not trigger the "head of" executive keyword.
	assert.Equal(t, types.ExperienceUnknown,
		estimate(t, "Delivered every project ahead of schedule using python"))
	assert.Equal(t, types.ExperienceExecutive,
		estimate(t, "Head of Platform Engineering"))
}
