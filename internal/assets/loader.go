package assets

// AssetLoader defines the contract for loading CSS styles and page templates.
// Implementations may load from embedded assets, the filesystem, or elsewhere.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadTemplateSet loads the page-shell templates by name.
	// Returns ErrTemplateSetNotFound if the template set doesn't exist.
	// Returns ErrIncompleteTemplateSet if header.html or footer.html is missing.
	LoadTemplateSet(name string) (*TemplateSet, error)
}
