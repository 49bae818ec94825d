package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html <input.md> <output.html> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a markdown file to a styled HTML page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input.md       Markdown file to convert")
	fmt.Fprintln(w, "  output.html    HTML file to write")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>        Page title (\"\" = auto from first heading)")
	fmt.Fprintln(w, "      --lang <s>         Default fenced-code language")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name>     CSS style name")
	fmt.Fprintln(w, "      --template <name>  Page template set name")
	fmt.Fprintln(w, "      --css <path>       Extra CSS file appended after the style")
	fmt.Fprintln(w, "      --asset-path <dir> Custom asset directory")
	fmt.Fprintln(w, "      --no-style         Disable CSS styling")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose          Show runtime details")
	fmt.Fprintln(w, "      --version          Show version information")
}
