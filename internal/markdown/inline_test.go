package markdown

import "testing"

func TestInline(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "just some plain text",
			expected: "just some plain text",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "bold",
			input:    "a **bold** word",
			expected: "a <strong>bold</strong> word",
		},
		{
			name:     "italic",
			input:    "an *italic* word",
			expected: "an <em>italic</em> word",
		},
		{
			name:     "inline code",
			input:    "call `foo()` here",
			expected: "call <code>foo()</code> here",
		},
		{
			name:     "link",
			input:    "see [docs](https://example.com) now",
			expected: `see <a href="https://example.com">docs</a> now`,
		},
		{
			name:     "all four kinds in one line",
			input:    "**bold** and *italic* and `code` and [text](url)",
			expected: `<strong>bold</strong> and <em>italic</em> and <code>code</code> and <a href="url">text</a>`,
		},
		{
			name:     "two bold spans non-greedy",
			input:    "**a** mid **b**",
			expected: "<strong>a</strong> mid <strong>b</strong>",
		},
		{
			name:     "unbalanced trailing asterisk left literal",
			input:    "dangling *marker",
			expected: "dangling *marker",
		},
		{
			name:     "lone double asterisk left literal",
			input:    "a ** b",
			expected: "a ** b",
		},
		{
			name:     "unbalanced bold falls through to italic",
			input:    "**half *closed*",
			expected: "**half <em>closed</em>",
		},
		{
			name:     "unbalanced backtick left literal",
			input:    "tick ` mark",
			expected: "tick ` mark",
		},
		{
			name:     "bare brackets without target left literal",
			input:    "[not a link]",
			expected: "[not a link]",
		},
		{
			// Code spans are not protected from the italic pass; the
			// substitution chain runs over the whole string in fixed
			// order. Reference behavior, locked in on purpose.
			name:     "asterisk inside code span is re-matched",
			input:    "`a*b` and *x*",
			expected: "<code>a<em>b</code> and </em>x*",
		},
		{
			name:     "bold inside list-like text",
			input:    "item with **emphasis** inside",
			expected: "item with <strong>emphasis</strong> inside",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Inline(tt.input)
			if got != tt.expected {
				t.Errorf("Inline(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEmphasizeAdjacency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple span",
			input:    "*x*",
			expected: "<em>x</em>",
		},
		{
			name:     "opener adjacent to second asterisk does not match",
			input:    "**x*",
			expected: "**x*",
		},
		{
			name:     "closing is the very next asterisk",
			input:    "*a b* c* d",
			expected: "<em>a b</em> c* d",
		},
		{
			name:     "no asterisks",
			input:    "abc",
			expected: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := emphasize(tt.input)
			if got != tt.expected {
				t.Errorf("emphasize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
