// Package parsing provides deterministic text preprocessing for resume analysis:
// normalization into canonical tokens, input sanitization, and section detection.
package parsing

import (
	"regexp"
	"strings"
)

var (
	urlPattern    = regexp.MustCompile(`(?i)\bhttps?://\S+|\bwww\.\S+`)
	emailPattern  = regexp.MustCompile(`\S+@\S+`)
	spacesPattern = regexp.MustCompile(`\s+`)

	// Matches lowercase tokens while keeping technology names intact:
	// internal dots and hyphens ("node.js", "ci-cd") and trailing "++"/"#".
	tokenPattern = regexp.MustCompile(`[a-z0-9]+(?:[.\-][a-z0-9]+)*(?:\+\+|#)?`)
)

// stopWords is the fixed stop-word set removed during normalization.
// Changing it changes every downstream token sequence, so additions should
// be rare and deliberate.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "an", "and", "are", "as", "at", "be", "been", "but", "by",
		"for", "from", "had", "has", "have", "he", "her", "his", "i", "in",
		"is", "it", "its", "my", "of", "on", "or", "our", "she", "that",
		"the", "their", "then", "there", "these", "they", "this", "to",
		"was", "we", "were", "which", "will", "with", "you", "your",
	} {
		stopWords[w] = struct{}{}
	}
}

// Normalize cleans raw resume text into an ordered canonical token sequence.
// It lowercases, strips URLs, email addresses and control characters,
// tokenizes on whitespace/punctuation boundaries while preserving
// technology names, and drops stop words and single-character tokens.
// The result is a pure function of the input.
func Normalize(text string) ([]string, error) {
	cleaned, err := NormalizeText(text)
	if err != nil {
		return nil, err
	}
	return Tokenize(cleaned), nil
}

// Tokenize splits already-cleaned text (the NormalizeText form) into
// canonical tokens, dropping stop words and single-character tokens.
func Tokenize(cleaned string) []string {
	matches := tokenPattern.FindAllString(cleaned, -1)
	tokens := make([]string, 0, len(matches))
	for _, tok := range matches {
		if len(tok) < 2 {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// NormalizeText returns the cleaned, lowercased text prior to tokenization.
// Multi-word matching (skill bigrams) runs against this form rather than
// individual tokens.
func NormalizeText(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &InvalidInputError{Reason: "resume text cannot be empty"}
	}

	cleaned := strings.ToLower(text)
	cleaned = urlPattern.ReplaceAllString(cleaned, " ")
	cleaned = emailPattern.ReplaceAllString(cleaned, " ")
	cleaned = stripControl(cleaned)
	cleaned = spacesPattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned), nil
}

func stripControl(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
