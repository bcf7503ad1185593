package modeldocs

import "strings"

// ValidContent reports whether extracted page content is meaningful.
// It passes iff the trimmed content exceeds MinContentLength
// characters; exactly MinContentLength is a failure. This is the sole
// gate against empty pages and wrong-selector misses.
func ValidContent(content string) bool {
	return len(strings.TrimSpace(content)) > MinContentLength
}
