package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runRoot executes a fresh root command with its own stdio buffers.
func runRoot(t *testing.T, stdin string, args ...string) (stdout, stderr string, helpShown bool, err error) {
	t.Helper()

	cmd, shown := NewRootCmd()
	var outBuf, errBuf bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), *shown, err
}

func setupEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SHELLSMITH_AUTHOR", "Test Author")
	return home
}

func TestGenerateScript(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()

	stdout, _, _, err := runRoot(t, "",
		"-n", "backup",
		"-d", "Back up the database",
		"-o", dir,
	)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	dest := filepath.Join(dir, "backup.sh")
	if !strings.Contains(stdout, "backup.sh") {
		t.Errorf("stdout does not mention the script: %q", stdout)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("generated script missing: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "# backup.sh - Back up the database") {
		t.Errorf("header not substituted:\n%s", content)
	}
	if !strings.Contains(content, "# Author: Test Author") {
		t.Errorf("author not resolved from environment:\n%s", content)
	}
	if strings.Contains(content, "{{") {
		t.Errorf("placeholder tokens remain:\n%s", content)
	}

	info, err := os.Stat(dest)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&0111 == 0 {
		t.Error("generated script is not executable")
	}
}

func TestSuffixNotDuplicated(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()

	if _, _, _, err := runRoot(t, "", "-n", "backup.sh", "-d", "desc", "-o", dir); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "backup.sh")); err != nil {
		t.Errorf("backup.sh not created: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "backup.sh.sh")); err == nil {
		t.Error("suffix was duplicated")
	}
}

func TestMissingRequiredFlags(t *testing.T) {
	setupEnv(t)

	tests := []struct {
		name    string
		args    []string
		missing string
	}{
		{"no flags", nil, "--name, --description"},
		{"name only", []string{"-n", "x"}, "--description"},
		{"description only", []string{"-d", "y"}, "--name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, _, err := runRoot(t, "", tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.missing) {
				t.Errorf("err = %v, want mention of %q", err, tt.missing)
			}
			if !strings.Contains(stderr, "Usage:") {
				t.Errorf("usage text not printed to stderr: %q", stderr)
			}
		})
	}
}

func TestUnknownFlag(t *testing.T) {
	setupEnv(t)

	_, stderr, _, err := runRoot(t, "", "--bogus")
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Errorf("usage text not printed: %q", stderr)
	}
}

func TestHelpFlagMarksHelpShown(t *testing.T) {
	setupEnv(t)

	stdout, _, helpShown, err := runRoot(t, "", "--help")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !helpShown {
		t.Error("helpShown not set for root help")
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Errorf("help output missing usage: %q", stdout)
	}
}

func TestSubcommandHelpIsNotRootHelp(t *testing.T) {
	setupEnv(t)

	_, _, helpShown, err := runRoot(t, "", "templates", "--help")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if helpShown {
		t.Error("helpShown set for subcommand help")
	}
}

func TestDependenciesFlag(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()

	_, _, _, err := runRoot(t, "",
		"-n", "sync", "-d", "desc", "-o", dir,
		"--dependencies", "jq, curl,,git",
	)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "sync.sh"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "DEPENDENCIES=(jq curl git)") {
		t.Errorf("dependencies not injected in order:\n%s", data)
	}
}

func TestOverwriteDeclined(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	dest := filepath.Join(dir, "keep.sh")
	original := []byte("#!/bin/bash\necho keep\n")
	if err := os.WriteFile(dest, original, 0755); err != nil {
		t.Fatal(err)
	}

	stdout, _, _, err := runRoot(t, "n\n", "-n", "keep", "-d", "desc", "-o", dir)
	if err != nil {
		t.Fatalf("declined overwrite must succeed, got: %v", err)
	}
	if !strings.Contains(stdout, "Overwrite? [y/N]") {
		t.Errorf("prompt not shown: %q", stdout)
	}
	if !strings.Contains(stdout, "Aborted") {
		t.Errorf("abort notice not shown: %q", stdout)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, original) {
		t.Error("declined overwrite modified the file")
	}
}

func TestOverwriteDeclinedOnEOF(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	dest := filepath.Join(dir, "keep.sh")
	if err := os.WriteFile(dest, []byte("original\n"), 0755); err != nil {
		t.Fatal(err)
	}

	if _, _, _, err := runRoot(t, "", "-n", "keep", "-d", "desc", "-o", dir); err != nil {
		t.Fatalf("EOF on prompt must decline, got: %v", err)
	}
	data, _ := os.ReadFile(dest)
	if string(data) != "original\n" {
		t.Error("EOF decline modified the file")
	}
}

func TestOverwriteAccepted(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	dest := filepath.Join(dir, "redo.sh")
	if err := os.WriteFile(dest, []byte("stale\n"), 0755); err != nil {
		t.Fatal(err)
	}

	if _, _, _, err := runRoot(t, "y\n", "-n", "redo", "-d", "desc", "-o", dir); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	data, _ := os.ReadFile(dest)
	if !strings.Contains(string(data), "# redo.sh - desc") {
		t.Error("accepted overwrite did not replace the file")
	}
}

func TestForceSkipsPrompt(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	dest := filepath.Join(dir, "redo.sh")
	if err := os.WriteFile(dest, []byte("stale\n"), 0755); err != nil {
		t.Fatal(err)
	}

	stdout, _, _, err := runRoot(t, "", "-n", "redo", "-d", "desc", "-o", dir, "--force")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if strings.Contains(stdout, "Overwrite?") {
		t.Error("--force still prompted")
	}
	data, _ := os.ReadFile(dest)
	if !strings.Contains(string(data), "# redo.sh - desc") {
		t.Error("--force did not replace the file")
	}
}

func TestVariantFlags(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()

	_, _, _, err := runRoot(t, "",
		"-n", "plain", "-d", "desc", "-o", dir,
		"--no-colors", "--minimal",
	)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "plain.sh"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if strings.Contains(content, `\033`) {
		t.Error("--no-colors left escape sequences")
	}
	if strings.Contains(content, "VERBOSE") || strings.Contains(content, "print_header") {
		t.Error("--minimal left verbose mode or decorative helpers")
	}
}

func TestUnknownTemplate(t *testing.T) {
	setupEnv(t)

	_, _, _, err := runRoot(t, "",
		"-n", "x", "-d", "y", "-o", t.TempDir(),
		"--template", "deluxe",
	)
	if err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestSplitDependencies(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"jq", "jq"},
		{"jq,curl,git", "jq curl git"},
		{" jq , curl ", "jq curl"},
		{"jq,,git", "jq git"},
	}
	for _, tt := range tests {
		got := strings.Join(splitDependencies(tt.in), " ")
		if got != tt.want {
			t.Errorf("splitDependencies(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
