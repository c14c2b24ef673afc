package journal

import (
	"regexp"
	"strings"
)

var (
	tagPattern    = regexp.MustCompile(`<[^>]*>`)
	entityPattern = regexp.MustCompile(`&(?:nbsp|#160);`)
)

// Strip removes markup tags, decodes whitespace entities, and collapses runs
// of whitespace. The content payload is opaque; this is the only inspection
// the engine performs.
func Strip(content string) string {
	s := tagPattern.ReplaceAllString(content, " ")
	s = entityPattern.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// IsBlank reports whether content is empty after stripping, so `<p>   </p>`
// counts as blank.
func IsBlank(content string) bool {
	return Strip(content) == ""
}
