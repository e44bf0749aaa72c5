package parsing

import "regexp"

var (
	scriptTagPattern = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	iframeTagPattern = regexp.MustCompile(`(?is)<iframe\b.*?</iframe>`)
	jsURLPattern     = regexp.MustCompile(`(?i)javascript:`)
)

// Sanitize strips potentially harmful markup from user-supplied resume text
// before it enters the pipeline. Plain text passes through unchanged.
func Sanitize(text string) string {
	sanitized := scriptTagPattern.ReplaceAllString(text, "")
	sanitized = iframeTagPattern.ReplaceAllString(sanitized, "")
	sanitized = jsURLPattern.ReplaceAllString(sanitized, "")
	return sanitized
}
