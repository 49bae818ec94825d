package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader loads assets from a directory on the filesystem.
// Implements AssetLoader interface.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader for the given base path.
// Returns ErrInvalidBasePath if the path is not a valid, readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Resolve symlinks so containment checks compare real paths.
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// LoadStyle loads a CSS style from the filesystem.
// Looks for {basePath}/styles/{name}.css
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	filePath := filepath.Join(f.basePath, "styles", name+".css")
	if err := f.verifyPathContainment(filePath); err != nil {
		return "", err
	}

	content, err := os.ReadFile(filePath) // #nosec G304 -- path validated above
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	return string(content), nil
}

// LoadTemplateSet loads the page-shell templates from the filesystem.
// Looks for {basePath}/templates/{name}/header.html and footer.html
func (f *FilesystemLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	dirPath := filepath.Join(f.basePath, "templates", name)
	if err := f.verifyPathContainment(dirPath + string(filepath.Separator)); err != nil {
		return nil, err
	}

	headerPath := filepath.Join(dirPath, "header.html")
	footerPath := filepath.Join(dirPath, "footer.html")

	header, headerErr := os.ReadFile(headerPath) // #nosec G304 -- path validated above
	footer, footerErr := os.ReadFile(footerPath) // #nosec G304 -- path validated above

	// Both missing means the set doesn't exist; one missing means incomplete.
	if os.IsNotExist(headerErr) && os.IsNotExist(footerErr) {
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	}
	if headerErr != nil && !os.IsNotExist(headerErr) {
		return nil, fmt.Errorf("%w: reading header.html: %v", ErrAssetRead, headerErr)
	}
	if footerErr != nil && !os.IsNotExist(footerErr) {
		return nil, fmt.Errorf("%w: reading footer.html: %v", ErrAssetRead, footerErr)
	}
	if os.IsNotExist(headerErr) {
		return nil, fmt.Errorf("%w: %q missing header.html", ErrIncompleteTemplateSet, name)
	}
	if os.IsNotExist(footerErr) {
		return nil, fmt.Errorf("%w: %q missing footer.html", ErrIncompleteTemplateSet, name)
	}

	return &TemplateSet{
		Name:   name,
		Header: string(header),
		Footer: string(footer),
	}, nil
}

// verifyPathContainment ensures the resolved file path is within basePath,
// even if name validation is bypassed. Symlinks are resolved so a link
// pointing outside basePath cannot escape; if resolution fails (file does
// not exist yet) the prefix check still runs on the cleaned path.
func (f *FilesystemLoader) verifyPathContainment(filePath string) error {
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	if realPath, err := filepath.EvalSymlinks(absFilePath); err == nil {
		absFilePath = realPath
	}

	// Separator suffix prevents prefix collisions like /base/pathevil.
	if !strings.HasPrefix(absFilePath, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes base directory", ErrPathTraversal)
	}

	return nil
}

// Compile-time interface check.
var _ AssetLoader = (*FilesystemLoader)(nil)
