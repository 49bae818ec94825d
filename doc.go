// Package md2html converts guide-style Markdown documents to standalone
// styled HTML pages.
//
// # Quick Start
//
// Create a service and convert markdown:
//
//	svc, err := md2html.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	page, err := svc.Convert(ctx, md2html.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.html", []byte(page), 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Line-ending normalization
//  2. Line-oriented block parsing and rendering (headings, paragraphs,
//     lists, tables, fenced code blocks, rules) with inline formatting
//     (bold, italic, code, links)
//  3. Page-shell wrapping (header template, fragments, footer template)
//  4. CSS injection into the page head
//
// The markdown dialect is a constrained, permissive subset: every input
// line maps to deterministic output and malformed markup is rendered
// literally, never rejected. Code blocks are emitted verbatim (escaped
// only) and tagged with a language class; syntax highlighting itself is
// done in the browser by the Prism scripts the page shell references.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc, err := md2html.New(
//	    md2html.WithStyle("default"),
//	    md2html.WithAssetLoader(loader),
//	)
//
// Per-conversion options are passed via Input:
//
//	page, err := svc.Convert(ctx, md2html.Input{
//	    Markdown: content,
//	    Title:    "Design Guide",      // page <title>, auto from H1 if empty
//	    Language: "python",            // default fenced-code language
//	    CSS:      "p { margin: 0; }",  // extra CSS after the style sheet
//	})
//
// # Custom Assets
//
// Override the built-in style and page templates using an AssetLoader:
//
//	loader, err := md2html.NewAssetLoader("/path/to/assets")
//	svc, err := md2html.New(md2html.WithAssetLoader(loader))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── custom/
//	        ├── header.html
//	        └── footer.html
package md2html
