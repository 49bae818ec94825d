package assets

// TemplateSet holds the page-shell templates for document generation.
// The header opens the document (doctype through the content container) and
// the footer closes it (scripts and closing tags); rendered markdown
// fragments go between them.
type TemplateSet struct {
	Name   string // Identifier (name or directory path)
	Header string // Header template HTML content
	Footer string // Footer template HTML content
}

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// DefaultStyleName is the name of the built-in CSS style.
const DefaultStyleName = "default"
