// Package skills matches a curated skill vocabulary against normalized resume
// text. Presence is binary; the vocabulary can grow without retraining the
// classifier, so this package is deliberately decoupled from classify.
package skills

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

//go:embed vocabulary.json
var defaultVocabulary []byte

// entry is one curated skill: the lowercase phrase to match and the canonical
// display name reported to callers. Several phrases may share a display name
// ("nodejs" and "node.js" are both Node.js).
type entry struct {
	Match   string `json:"match"`
	Display string `json:"display"`
}

// Extractor finds curated skills in normalized text.
type Extractor struct {
	entries  []entry
	patterns []*regexp.Regexp
}

// NewExtractor builds an Extractor from the embedded vocabulary.
func NewExtractor() (*Extractor, error) {
	return newFromJSON(defaultVocabulary)
}

// NewExtractorFromJSON builds an Extractor from external vocabulary JSON,
// allowing the skill list to be maintained outside the binary.
func NewExtractorFromJSON(data []byte) (*Extractor, error) {
	return newFromJSON(data)
}

func newFromJSON(data []byte) (*Extractor, error) {
	var doc struct {
		Skills []entry `json:"skills"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse skill vocabulary: %w", err)
	}
	if len(doc.Skills) == 0 {
		return nil, fmt.Errorf("skill vocabulary is empty")
	}

	e := &Extractor{entries: doc.Skills}
	e.patterns = make([]*regexp.Regexp, len(doc.Skills))
	for i, s := range doc.Skills {
		// Word-boundary match that tolerates non-word characters inside
		// skill names ("c++", "node.js", "ui/ux"), which \b cannot.
		e.patterns[i] = regexp.MustCompile(`(^|[^a-z0-9+#])` + regexp.QuoteMeta(strings.ToLower(s.Match)) + `($|[^a-z0-9+#])`)
	}
	return e, nil
}

// Extract returns the deduplicated canonical names of every vocabulary skill
// present in the normalized text, in vocabulary order. Multi-word skills are
// matched against the text as a whole, not per-token. Finding nothing is a
// valid result, not an error.
func (e *Extractor) Extract(normalizedText string) []string {
	padded := " " + normalizedText + " "

	found := make([]string, 0, 8)
	seen := make(map[string]struct{})
	for i, ent := range e.entries {
		if !e.patterns[i].MatchString(padded) {
			continue
		}
		key := strings.ToLower(ent.Display)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		found = append(found, ent.Display)
	}
	return found
}
