// Package markdown implements the line-oriented markdown dialect used for
// guide documents: ATX headings, paragraphs, dash lists, pipe tables, fenced
// code blocks, and horizontal rules, with bold/italic/code/link inline
// markup.
//
// The dialect is deliberately permissive. Every input line is classified
// into exactly one block category and produces deterministic output;
// malformed markup is rendered literally rather than rejected.
package markdown

import (
	"html"
	"strconv"
	"strings"
)

// DefaultLanguage tags fenced code blocks that do not name a language.
const DefaultLanguage = "java"

// blockKind identifies which block construct is currently open during the
// scan. At most one block is open at any point; opening a new kind
// force-closes the previous one.
type blockKind int

const (
	blockNone blockKind = iota
	blockCode
	blockTable
	blockList
)

// Renderer turns an ordered sequence of markdown lines into HTML fragments.
// The zero value is ready to use.
type Renderer struct {
	// Language tags fenced code blocks that do not name one.
	// Empty means DefaultLanguage.
	Language string
}

// Render scans lines in order and returns one HTML fragment per rendered
// block element. Blank lines and table delimiter rows contribute nothing.
// Any block still open at end of input is force-closed.
func (r *Renderer) Render(lines []string) []string {
	out := make([]string, 0, len(lines))
	open := blockNone
	var tableRows []string

	flushTable := func() {
		out = append(out, renderTable(tableRows))
		tableRows = tableRows[:0]
	}
	closeOpen := func() {
		switch open {
		case blockList:
			out = append(out, "</ul>")
		case blockTable:
			flushTable()
		}
		open = blockNone
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Code fences toggle verbatim mode and win over every other
		// classification, including for the closing fence.
		if strings.HasPrefix(trimmed, "```") {
			if open == blockCode {
				out = append(out, "</code></pre>")
				open = blockNone
			} else {
				closeOpen()
				lang := strings.TrimSpace(trimmed[3:])
				if lang == "" {
					lang = r.language()
				}
				out = append(out, `<pre><code class="language-`+lang+`">`)
				open = blockCode
			}
			continue
		}
		if open == blockCode {
			out = append(out, html.EscapeString(line))
			continue
		}

		// Table rows accumulate; rendering is deferred until the
		// contiguous run of rows ends.
		if strings.HasPrefix(trimmed, "|") {
			if open != blockTable {
				closeOpen()
				open = blockTable
			}
			tableRows = append(tableRows, trimmed)
			continue
		} else if open == blockTable {
			flushTable()
			open = blockNone
		}

		if strings.HasPrefix(trimmed, "- ") {
			if open != blockList {
				closeOpen()
				out = append(out, "<ul>")
				open = blockList
			}
			out = append(out, "<li>"+Inline(trimmed[2:])+"</li>")
			continue
		} else if open == blockList {
			out = append(out, "</ul>")
			open = blockNone
		}

		if strings.HasPrefix(trimmed, "#") {
			level := 0
			for level < len(trimmed) && trimmed[level] == '#' {
				level++
			}
			// Level is whatever the marker run says, even past h6.
			tag := "h" + strconv.Itoa(level)
			content := strings.TrimSpace(trimmed[level:])
			out = append(out, "<"+tag+">"+Inline(content)+"</"+tag+">")
			continue
		}

		if isRule(trimmed) {
			out = append(out, "<hr>")
			continue
		}

		if trimmed == "" {
			continue
		}

		out = append(out, "<p>"+Inline(trimmed)+"</p>")
	}

	// End-of-input flush: whatever is still open closes with the same
	// rendering as a normal close.
	switch open {
	case blockCode:
		out = append(out, "</code></pre>")
	case blockList:
		out = append(out, "</ul>")
	case blockTable:
		flushTable()
	}

	return out
}

func (r *Renderer) language() string {
	if r.Language != "" {
		return r.Language
	}
	return DefaultLanguage
}

// isRule reports whether trimmed is a horizontal rule: at least three
// characters, every one of them a dash, asterisk, or space. The whole-line
// condition keeps "-- not quite" a paragraph, and list-item detection runs
// earlier so "- item" never reaches this check.
func isRule(trimmed string) bool {
	if len(trimmed) < 3 {
		return false
	}
	for i := 0; i < len(trimmed); i++ {
		switch trimmed[i] {
		case '-', '*', ' ':
		default:
			return false
		}
	}
	return true
}
