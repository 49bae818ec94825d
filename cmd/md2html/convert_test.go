package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-md2html/internal/config"
)

// testDeps returns Dependencies with captured output buffers.
func testDeps() (*Dependencies, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Dependencies{Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	deps, outBuf, errBuf := testDeps()
	err = run(context.Background(), append([]string{"md2html"}, args...), deps)
	return outBuf.String(), errBuf.String(), err
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunMissingArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"only input", []string{"input.md"}},
		{"too many args", []string{"a.md", "b.html", "c.html"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCLI(t, tt.args...)
			if !errors.Is(err, ErrMissingArguments) {
				t.Errorf("want ErrMissingArguments, got %v", err)
			}
			if !strings.Contains(stdout, "Usage: md2html") {
				t.Errorf("usage message should go to stdout, got %q", stdout)
			}
			if exitCodeFor(err) != ExitUsage {
				t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitUsage)
			}
		})
	}
}

func TestRunInputNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.md")
	out := filepath.Join(t.TempDir(), "out.html")

	stdout, _, err := runCLI(t, missing, out)
	if err != nil {
		t.Errorf("missing input should terminate normally, got %v", err)
	}
	want := "Error: " + missing + " not found.\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("no output file should be written for missing input")
	}
}

func TestRunSuccess(t *testing.T) {
	in := writeTempFile(t, "doc.md", "# Title\n\nSome **bold** text.\n")
	out := filepath.Join(t.TempDir(), "doc.html")

	stdout, _, err := runCLI(t, in, out)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	want := "Successfully converted " + in + " to " + out + "\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}

	content, readErr := os.ReadFile(out)
	if readErr != nil {
		t.Fatalf("reading output: %v", readErr)
	}
	page := string(content)
	for _, fragment := range []string{
		"<!DOCTYPE html>",
		"<h1>Title</h1>",
		"<strong>bold</strong>",
		"</html>",
	} {
		if !strings.Contains(page, fragment) {
			t.Errorf("output missing %q", fragment)
		}
	}
}

func TestRunCreatesOutputDirectory(t *testing.T) {
	in := writeTempFile(t, "doc.md", "# T\n")
	out := filepath.Join(t.TempDir(), "nested", "dir", "doc.html")

	_, _, err := runCLI(t, in, out)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if _, statErr := os.Stat(out); statErr != nil {
		t.Errorf("output not written: %v", statErr)
	}
}

func TestRunQuiet(t *testing.T) {
	in := writeTempFile(t, "doc.md", "# T\n")
	out := filepath.Join(t.TempDir(), "doc.html")

	stdout, _, err := runCLI(t, "--quiet", in, out)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if stdout != "" {
		t.Errorf("quiet mode should suppress output, got %q", stdout)
	}
}

func TestRunFlagOverrides(t *testing.T) {
	in := writeTempFile(t, "doc.md", "# Heading\n\n```\ncode\n```\n")
	out := filepath.Join(t.TempDir(), "doc.html")

	_, _, err := runCLI(t, "--title", "Override", "--lang", "python", in, out)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	content, _ := os.ReadFile(out)
	page := string(content)
	if !strings.Contains(page, "<title>Override</title>") {
		t.Error("--title should override the document heading")
	}
	if !strings.Contains(page, `class="language-python"`) {
		t.Error("--lang should set the fenced-code language")
	}
}

func TestRunNoStyle(t *testing.T) {
	in := writeTempFile(t, "doc.md", "text\n")
	out := filepath.Join(t.TempDir(), "doc.html")

	_, _, err := runCLI(t, "--no-style", in, out)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	content, _ := os.ReadFile(out)
	if strings.Contains(string(content), "<style>") {
		t.Error("--no-style should suppress CSS injection")
	}
}

func TestRunWithConfig(t *testing.T) {
	cfgPath := writeTempFile(t, "conf.yaml", "document:\n  title: FromConfig\n  language: go\n")
	in := writeTempFile(t, "doc.md", "# Heading\n\n```\ncode\n```\n")
	out := filepath.Join(t.TempDir(), "doc.html")

	_, _, err := runCLI(t, "--config", cfgPath, in, out)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	content, _ := os.ReadFile(out)
	page := string(content)
	if !strings.Contains(page, "<title>FromConfig</title>") {
		t.Error("config title should apply")
	}
	if !strings.Contains(page, `class="language-go"`) {
		t.Error("config language should apply")
	}
}

func TestRunConfigNotFound(t *testing.T) {
	in := writeTempFile(t, "doc.md", "text\n")
	out := filepath.Join(t.TempDir(), "doc.html")

	_, _, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), in, out)
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("want ErrConfigNotFound, got %v", err)
	}
	if exitCodeFor(err) != ExitUsage {
		t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitUsage)
	}
}

func TestRunUnknownStyle(t *testing.T) {
	in := writeTempFile(t, "doc.md", "text\n")
	out := filepath.Join(t.TempDir(), "doc.html")

	_, _, err := runCLI(t, "--style", "nonexistent", in, out)
	if err == nil {
		t.Fatal("expected error for unknown style")
	}
	if exitCodeFor(err) != ExitUsage {
		t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitUsage)
	}
	if !strings.Contains(err.Error(), "hint:") {
		t.Errorf("error should carry a hint, got %q", err.Error())
	}
}

func TestRunExtraCSS(t *testing.T) {
	cssPath := writeTempFile(t, "extra.css", "p { margin: 0; }")
	in := writeTempFile(t, "doc.md", "text\n")
	out := filepath.Join(t.TempDir(), "doc.html")

	_, _, err := runCLI(t, "--css", cssPath, in, out)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	content, _ := os.ReadFile(out)
	if !strings.Contains(string(content), "p { margin: 0; }") {
		t.Error("extra CSS file content missing from output")
	}
}

func TestRunVersion(t *testing.T) {
	stdout, _, err := runCLI(t, "--version")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if !strings.Contains(stdout, "md2html") {
		t.Errorf("version output = %q", stdout)
	}
}

func TestMergeFlags(t *testing.T) {
	cfg := &config.Config{}
	cfg.Document.Title = "config"
	cfg.Document.Language = "go"

	flags := &convertFlags{title: "flag", assetPath: "/custom"}
	mergeFlags(flags, cfg)

	if cfg.Document.Title != "flag" {
		t.Errorf("Title = %q, CLI flag should win", cfg.Document.Title)
	}
	if cfg.Document.Language != "go" {
		t.Errorf("Language = %q, unset flag should not clobber config", cfg.Document.Language)
	}
	if cfg.Assets.BasePath != "/custom" {
		t.Errorf("BasePath = %q", cfg.Assets.BasePath)
	}
}
