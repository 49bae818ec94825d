package assets

import (
	"embed"
	"fmt"
)

//go:embed styles/*
var styles embed.FS

//go:embed templates/*
var templates embed.FS

// EmbeddedLoader loads assets from the embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a CSS style from embedded assets by name.
// The name should not include the .css extension.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// LoadTemplateSet loads the page-shell templates from embedded assets by name.
// The name identifies a directory containing header.html and footer.html.
func (e *EmbeddedLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	dir := "templates/" + name
	header, headerErr := templates.ReadFile(dir + "/header.html")
	footer, footerErr := templates.ReadFile(dir + "/footer.html")

	if headerErr != nil && footerErr != nil {
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	}
	if headerErr != nil {
		return nil, fmt.Errorf("%w: %q missing header.html", ErrIncompleteTemplateSet, name)
	}
	if footerErr != nil {
		return nil, fmt.Errorf("%w: %q missing footer.html", ErrIncompleteTemplateSet, name)
	}

	return &TemplateSet{
		Name:   name,
		Header: string(header),
		Footer: string(footer),
	}, nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
