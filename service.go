package md2html

import (
	"context"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/alnah/go-md2html/internal/markdown"
)

// crlfOrCR normalizes Windows and old-Mac line endings to plain newlines.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// firstHeadingPattern extracts the text of the first level-1 heading.
var firstHeadingPattern = regexp.MustCompile(`(?m)^#[ \t]+(.+)$`)

// Service converts markdown documents to styled HTML pages.
// Create with New and reuse across conversions; a Service is safe for
// concurrent use once constructed.
type Service struct {
	cfg    serviceConfig
	loader AssetLoader
}

// New creates a Service with the given options. Without options the
// embedded default style and template set are used.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		cfg: serviceConfig{
			style:    DefaultStyle,
			template: DefaultTemplateSet,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.loader == nil {
		loader, err := NewAssetLoader("")
		if err != nil {
			return nil, err
		}
		s.loader = loader
	}

	return s, nil
}

// Convert renders input.Markdown into a complete HTML document string.
// The scan itself has no suspension points, so the context is checked once
// up front; pass context.Background() when cancellation is not needed.
func (s *Service) Convert(ctx context.Context, input Input) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lines := strings.Split(normalizeLineEndings(input.Markdown), "\n")
	renderer := &markdown.Renderer{Language: resolveLanguage(input)}
	fragments := renderer.Render(lines)

	ts, err := s.loader.LoadTemplateSet(s.cfg.template)
	if err != nil {
		return "", err
	}

	header, err := renderTemplate("header", ts.Header, struct{ Title string }{resolveTitle(input)})
	if err != nil {
		return "", err
	}
	footer, err := renderTemplate("footer", ts.Footer, struct{ Language string }{resolveLanguage(input)})
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(fragments)+2)
	parts = append(parts, header)
	parts = append(parts, fragments...)
	parts = append(parts, footer)
	page := strings.Join(parts, "\n")

	css, err := s.resolveCSS(input)
	if err != nil {
		return "", err
	}

	return injectCSS(page, css), nil
}

// resolveCSS assembles the stylesheet for the page: the configured style
// (unless disabled) followed by any per-document CSS.
func (s *Service) resolveCSS(input Input) (string, error) {
	var sheets []string

	if !s.cfg.noStyle {
		style, err := s.loader.LoadStyle(s.cfg.style)
		if err != nil {
			return "", err
		}
		sheets = append(sheets, style)
	}

	if input.CSS != "" {
		sheets = append(sheets, input.CSS)
	}

	return strings.Join(sheets, "\n"), nil
}

// resolveTitle picks the page title: explicit input, then the first
// level-1 heading in the document, then the default.
func resolveTitle(input Input) string {
	if input.Title != "" {
		return input.Title
	}
	if m := firstHeadingPattern.FindStringSubmatch(normalizeLineEndings(input.Markdown)); m != nil {
		if title := strings.TrimSpace(m[1]); title != "" {
			return title
		}
	}
	return DefaultTitle
}

// resolveLanguage picks the default fenced-code language.
func resolveLanguage(input Input) string {
	if input.Language != "" {
		return input.Language
	}
	return DefaultLanguage
}

// normalizeLineEndings converts CRLF and bare CR to LF.
func normalizeLineEndings(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	return crlfOrCR.ReplaceAllString(s, "\n")
}

// renderTemplate executes a page-shell template with the given data.
// Trailing newlines are trimmed so the shell joins with fragments on
// single newlines.
func renderTemplate(name, text string, data any) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("%w: parsing %s: %v", ErrTemplateRender, name, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: executing %s: %v", ErrTemplateRender, name, err)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}

// injectCSS inserts a <style> element immediately before </head>. If the
// page has no head (custom template sets may omit it) the CSS is dropped,
// matching a shell that opted out of styling.
func injectCSS(page, css string) string {
	if css == "" {
		return page
	}

	idx := strings.Index(page, "</head>")
	if idx == -1 {
		return page
	}

	styleTag := "<style>\n" + sanitizeCSS(css) + "\n</style>\n"
	return page[:idx] + styleTag + page[idx:]
}

// sanitizeCSS prevents a stylesheet from closing the style element early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", "<\\/")
}
