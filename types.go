package md2html

import "github.com/alnah/go-md2html/internal/markdown"

// Defaults applied when Input fields or options are left empty.
const (
	// DefaultTitle is the page title when none is given and the document
	// has no top-level heading to derive one from.
	DefaultTitle = "Document"

	// DefaultLanguage tags fenced code blocks that do not name a language,
	// and selects the Prism language component the page shell loads.
	DefaultLanguage = markdown.DefaultLanguage

	// DefaultStyle is the name of the built-in CSS style.
	DefaultStyle = "default"

	// DefaultTemplateSet is the name of the built-in page template set.
	DefaultTemplateSet = "default"
)

// Input contains conversion parameters for a single document.
type Input struct {
	Markdown string // Markdown content; empty renders an empty page body
	Title    string // Page title (optional; auto from first heading)
	Language string // Default fenced-code language (optional)
	CSS      string // Extra CSS appended after the style sheet (optional)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	style    string
	template string
	noStyle  bool
}

// WithStyle selects the CSS style injected into the page shell.
func WithStyle(name string) Option {
	return func(s *Service) {
		s.cfg.style = name
	}
}

// WithTemplateSet selects the header/footer template set for the page shell.
func WithTemplateSet(name string) Option {
	return func(s *Service) {
		s.cfg.template = name
	}
}

// WithoutStyle disables stylesheet loading; only Input.CSS is injected.
func WithoutStyle() Option {
	return func(s *Service) {
		s.cfg.noStyle = true
	}
}

// WithAssetLoader replaces the loader used for styles and templates.
func WithAssetLoader(loader AssetLoader) Option {
	return func(s *Service) {
		s.loader = loader
	}
}
