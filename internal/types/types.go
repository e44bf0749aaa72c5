// Package types provides type definitions for structured data used throughout the resume-analyzer system.
package types

import "time"

// ExperienceLevel is a seniority band inferred from resume text.
type ExperienceLevel string

// Known experience bands, ordered from junior to executive.
const (
	ExperienceEntry     ExperienceLevel = "Entry"
	ExperienceMidLevel  ExperienceLevel = "Mid-Level"
	ExperienceSenior    ExperienceLevel = "Senior"
	ExperienceExecutive ExperienceLevel = "Lead/Executive"
	ExperienceUnknown   ExperienceLevel = "Unknown"
)

// Prediction is the classifier output for a single resume.
type Prediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// UnclassifiedLabel is reported when no category clears the confidence floor.
// A low-confidence answer is still a valid result, never an error.
const UnclassifiedLabel = "Unclassified"

// Metrics holds basic text statistics for a resume.
type Metrics struct {
	WordCount         int     `json:"word_count"`
	CharacterCount    int     `json:"character_count"`
	SentenceCount     int     `json:"sentence_count"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	ReadabilityScore  float64 `json:"readability_score"`
}

// AnalysisResult is the immutable outcome of one analysis run. It is
// constructed exactly once by the analyzer and never mutated afterwards;
// the history store persists its own copy.
type AnalysisResult struct {
	ResumeID          string          `json:"resume_id"`
	JobCategory       string          `json:"job_category"`
	Confidence        float64         `json:"confidence"`
	Skills            []string        `json:"skills"`
	ExperienceLevel   ExperienceLevel `json:"experience_level"`
	Summary           string          `json:"summary"`
	WordCount         int             `json:"word_count"`
	CharacterCount    int             `json:"character_count"`
	SentenceCount     int             `json:"sentence_count"`
	AvgSentenceLength float64         `json:"avg_sentence_length"`
	ReadabilityScore  float64         `json:"readability_score"`
	Sections          []string        `json:"sections"`
	Keywords          []string        `json:"keywords"`
	Timestamp         time.Time       `json:"timestamp"`

	// Audit fields carried to the persisted record but not exposed on the API.
	SourceExcerpt string `json:"-"`
	TextHash      string `json:"-"`
}

// HistoryPage is one page of persisted analysis results, most recent first.
// It is recomputed on every query and never persisted itself.
type HistoryPage struct {
	Items      []AnalysisResult `json:"items"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalCount int              `json:"total_count"`
}
