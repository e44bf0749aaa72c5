package parsing

import "strings"

// sectionHeading pairs a lowercase search phrase with its display name.
type sectionHeading struct {
	phrase  string
	display string
}

// sectionHeadings lists common resume headings in scan order. Longer,
// more specific phrases come before their substrings so "work experience"
// is reported once, not twice.
var sectionHeadings = []sectionHeading{
	{"professional experience", "Professional Experience"},
	{"work experience", "Work Experience"},
	{"experience", "Experience"},
	{"education", "Education"},
	{"skills", "Skills"},
	{"projects", "Projects"},
	{"certifications", "Certifications"},
	{"awards", "Awards"},
	{"summary", "Summary"},
	{"objective", "Objective"},
	{"contact", "Contact"},
}

// DetectSections returns the display names of resume section headings found
// in the text, in a fixed scan order. A heading whose phrase is contained in
// an already-matched longer phrase is suppressed.
func DetectSections(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	var matched []string
	for _, h := range sectionHeadings {
		if !strings.Contains(lower, h.phrase) {
			continue
		}
		covered := false
		for _, m := range matched {
			if strings.Contains(m, h.phrase) {
				covered = true
				break
			}
		}
		if covered {
			continue
		}
		found = append(found, h.display)
		matched = append(matched, h.phrase)
	}
	return found
}
