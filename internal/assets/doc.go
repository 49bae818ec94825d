// Package assets provides the CSS styles and page-shell templates wrapped
// around rendered markdown.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-ins)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in style and the default header/footer
// template set embedded at compile time. FilesystemLoader lets users supply
// custom assets from a directory, with path traversal protection and symlink
// resolution. AssetResolver is the loader the converter uses: it tries the
// custom FilesystemLoader first and falls back to EmbeddedLoader when an
// asset is not found, so users can override individual assets while keeping
// the defaults.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css           # page stylesheet
//	└── templates/
//	    └── {name}/
//	        ├── header.html      # doctype through the content container
//	        └── footer.html      # scripts and closing tags
//
// # Security
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
