package markdown

import (
	"regexp"
	"strings"
)

// Precompiled inline patterns. Application order matters: bold runs first so
// the italic pass never sees ** pairs, then code, then links, each pass
// operating on the previous pass's output.
var (
	boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)
	codePattern = regexp.MustCompile("`(.*?)`")
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// Inline converts inline markup in a single line of text to HTML spans:
// **bold**, *italic*, `code`, and [label](target) links.
//
// It is best-effort, not strict: unbalanced markers are left as literal
// text, and code spans are not protected from the later passes, so a code
// span containing an asterisk can still be re-matched by the italic rule.
func Inline(text string) string {
	text = boldPattern.ReplaceAllString(text, "<strong>${1}</strong>")
	text = emphasize(text)
	text = codePattern.ReplaceAllString(text, "<code>${1}</code>")
	text = linkPattern.ReplaceAllString(text, `<a href="${2}">${1}</a>`)
	return text
}

// emphasize wraps *text* spans in <em> tags. An opening asterisk must not be
// adjacent to another asterisk (those are bold remnants); the span ends at
// the next asterisk, whatever it is. RE2 has no lookaround, so this is a
// hand scan with those exact semantics.
func emphasize(s string) string {
	if !strings.ContainsRune(s, '*') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] == '*' && (i == 0 || s[i-1] != '*') && (i+1 >= len(s) || s[i+1] != '*') {
			if j := strings.IndexByte(s[i+1:], '*'); j >= 0 {
				end := i + 1 + j
				b.WriteString("<em>")
				b.WriteString(s[i+1 : end])
				b.WriteString("</em>")
				i = end + 1
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}

	return b.String()
}
