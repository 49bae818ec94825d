package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrMissingArguments = errors.New("input and output paths are required")
	ErrBadFlags         = errors.New("invalid flags")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrReadCSS          = errors.New("failed to read CSS file")
	ErrWriteHTML        = errors.New("failed to write HTML file")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// run orchestrates a single file conversion. args is os.Args.
func run(ctx context.Context, args []string, deps *Dependencies) error {
	flags, positional, err := parseFlags(args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(deps.Stdout)
			return nil
		}
		return fmt.Errorf("%w: %v", ErrBadFlags, err)
	}

	if flags.version {
		fmt.Fprintf(deps.Stdout, "md2html %s\n", Version)
		return nil
	}

	if len(positional) != 2 {
		printUsage(deps.Stdout)
		return ErrMissingArguments
	}
	inputPath, outputPath := positional[0], positional[1]

	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)

	// A missing input is reported as a skip, not a failure.
	if !fileutil.FileExists(inputPath) {
		fmt.Fprintf(deps.Stdout, "Error: %s not found.\n", inputPath)
		return nil
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	extraCSS, err := readExtraCSS(flags.css)
	if err != nil {
		return err
	}

	svc, err := buildService(flags, cfg)
	if err != nil {
		return err
	}

	page, err := svc.Convert(ctx, md2html.Input{
		Markdown: string(content),
		Title:    cfg.Document.Title,
		Language: cfg.Document.Language,
		CSS:      extraCSS,
	})
	if err != nil {
		if errors.Is(err, md2html.ErrStyleNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForStyleNotFound([]string{md2html.DefaultStyle}))
		}
		return err
	}

	if dir := filepath.Dir(outputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory())
		}
	}

	// #nosec G306 -- generated pages are meant to be readable
	if err := os.WriteFile(outputPath, []byte(page), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}

	if !flags.quiet {
		fmt.Fprintf(deps.Stdout, "Successfully converted %s to %s\n", inputPath, outputPath)
	}
	return nil
}

// loadConfig loads configuration by name or path; empty means defaults.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !strings.ContainsAny(nameOrPath, "/\\") {
			return nil, fmt.Errorf("loading config: %w%s", err,
				hints.ForConfigNotFound(config.SearchPaths(nameOrPath)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.title != "" {
		cfg.Document.Title = flags.title
	}
	if flags.language != "" {
		cfg.Document.Language = flags.language
	}
	if flags.style != "" {
		cfg.Style.Name = flags.style
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
}

// readExtraCSS reads the optional --css file.
func readExtraCSS(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(content), nil
}

// buildService constructs the conversion service from merged configuration.
func buildService(flags *convertFlags, cfg *config.Config) (*md2html.Service, error) {
	var opts []md2html.Option

	if cfg.Assets.BasePath != "" {
		loader, err := md2html.NewAssetLoader(cfg.Assets.BasePath)
		if err != nil {
			return nil, fmt.Errorf("loading assets: %w%s", err, hints.ForAssetPath())
		}
		opts = append(opts, md2html.WithAssetLoader(loader))
	}
	if cfg.Style.Name != "" {
		opts = append(opts, md2html.WithStyle(cfg.Style.Name))
	}
	if flags.template != "" {
		opts = append(opts, md2html.WithTemplateSet(flags.template))
	}
	if flags.noStyle {
		opts = append(opts, md2html.WithoutStyle())
	}

	return md2html.New(opts...)
}
