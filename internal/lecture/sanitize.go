package lecture

import (
	"regexp"
	"strings"
)

// Order matters: long heading runs go before short ones and ** before *,
// otherwise fragments of the longer markers survive.
var markdownRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`###+\s*`), ""},
	{regexp.MustCompile(`####+\s*`), ""},
	{regexp.MustCompile(`\*\*`), ""},
	{regexp.MustCompile(`\*`), ""},
	{regexp.MustCompile("`"), ""},
	{regexp.MustCompile(`#{1,6}\s+`), ""},
	{regexp.MustCompile(`\n{3,}`), "\n\n"},
}

// Sanitize removes markdown headings, emphasis and code markers and
// collapses runs of blank lines. Passes repeat until nothing changes, since
// dropping an emphasis marker can join two heading fragments ("#*##").
func Sanitize(text string) string {
	for {
		next := sanitizePass(text)
		if next == text {
			return next
		}
		text = next
	}
}

func sanitizePass(text string) string {
	for _, r := range markdownRules {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	return strings.TrimSpace(text)
}
