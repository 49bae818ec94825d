package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// convertFlags holds all CLI flags.
type convertFlags struct {
	config    string
	title     string
	language  string
	style     string
	template  string
	css       string
	assetPath string
	noStyle   bool
	quiet     bool
	verbose   bool
	version   bool
}

// parseFlags parses CLI flags and returns positional arguments.
// args must not include the program name.
func parseFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.title, "title", "", "page title (\"\" = auto from first heading)")
	fs.StringVar(&f.language, "lang", "", "default fenced-code language")
	fs.StringVar(&f.style, "style", "", "CSS style name")
	fs.StringVar(&f.template, "template", "", "page template set name")
	fs.StringVar(&f.css, "css", "", "extra CSS file appended after the style")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable CSS styling")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show runtime details")
	fs.BoolVar(&f.version, "version", false, "show version information")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
