package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/assets"
)

// AssetLoader loads CSS styles and page-shell templates.
// Implementations may load from embedded assets, the filesystem, or elsewhere.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplateSet loads the page-shell templates by name.
	// Returns ErrTemplateSetNotFound if the template set doesn't exist.
	// Returns ErrIncompleteTemplateSet if header.html or footer.html is missing.
	LoadTemplateSet(name string) (*TemplateSet, error)
}

// TemplateSet holds the page-shell templates. The header opens the document
// (doctype through the content container) and the footer closes it (scripts
// and closing tags); rendered markdown fragments go between them.
type TemplateSet struct {
	Name   string
	Header string
	Footer string
}

// NewAssetLoader creates an AssetLoader that reads from basePath, falling
// back to the embedded defaults for assets not present there. An empty
// basePath yields the embedded assets only.
//
// The basePath directory is expected to contain styles/ and templates/
// subdirectories mirroring the embedded layout.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// assetLoaderAdapter bridges the internal resolver to the public interface,
// translating internal sentinel errors to their public counterparts.
type assetLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *assetLoaderAdapter) LoadStyle(name string) (string, error) {
	content, err := a.resolver.LoadStyle(name)
	if err != nil {
		return "", convertAssetError(err)
	}
	return content, nil
}

func (a *assetLoaderAdapter) LoadTemplateSet(name string) (*TemplateSet, error) {
	ts, err := a.resolver.LoadTemplateSet(name)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &TemplateSet{Name: ts.Name, Header: ts.Header, Footer: ts.Footer}, nil
}

// convertAssetError maps internal asset errors to public sentinels while
// preserving the original message.
func convertAssetError(err error) error {
	switch {
	case errors.Is(err, assets.ErrStyleNotFound):
		return &wrappedAssetError{sentinel: ErrStyleNotFound, cause: err}
	case errors.Is(err, assets.ErrTemplateSetNotFound):
		return &wrappedAssetError{sentinel: ErrTemplateSetNotFound, cause: err}
	case errors.Is(err, assets.ErrIncompleteTemplateSet):
		return &wrappedAssetError{sentinel: ErrIncompleteTemplateSet, cause: err}
	case errors.Is(err, assets.ErrInvalidAssetName),
		errors.Is(err, assets.ErrInvalidBasePath),
		errors.Is(err, assets.ErrPathTraversal):
		return &wrappedAssetError{sentinel: ErrInvalidAssetPath, cause: err}
	default:
		return err
	}
}

// wrappedAssetError carries an internal error message while matching a
// public sentinel via errors.Is.
type wrappedAssetError struct {
	sentinel error
	cause    error
}

func (e *wrappedAssetError) Error() string {
	return e.cause.Error()
}

func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}
