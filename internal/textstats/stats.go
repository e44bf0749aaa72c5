// Package textstats computes word, character and sentence statistics plus a
// readability score for resume text.
package textstats

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// sentenceBoundary treats a run of terminal punctuation as one boundary.
var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// Readability scale constants. The score is derived from the Automated
// Readability Index and clamped to [0, 10]; shorter sentences and shorter
// words never decrease it.
const (
	ariCharWeight     = 4.71
	ariSentenceWeight = 0.5
	ariOffset         = 21.43
	maxReadability    = 10.0
)

// Compute returns text metrics for the given raw text. All counts are zero
// for empty input; it never fails.
func Compute(text string) types.Metrics {
	words := strings.Fields(text)
	sentences := splitSentences(text)

	m := types.Metrics{
		WordCount:      len(words),
		CharacterCount: len([]rune(text)),
		SentenceCount:  len(sentences),
	}
	if len(words) == 0 || len(sentences) == 0 {
		return m
	}

	m.AvgSentenceLength = round2(float64(len(words)) / float64(len(sentences)))
	m.ReadabilityScore = round2(readability(text, len(words), len(sentences)))
	return m
}

func splitSentences(text string) []string {
	parts := sentenceBoundary.Split(text, -1)
	sentences := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// readability maps the Automated Readability Index onto a 0-10 scale where
// higher means easier to read.
func readability(text string, words, sentences int) float64 {
	letters := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			letters++
		}
	}

	ari := ariCharWeight*(float64(letters)/float64(words)) +
		ariSentenceWeight*(float64(words)/float64(sentences)) -
		ariOffset

	score := maxReadability - ari/2
	return math.Max(0, math.Min(maxReadability, score))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
