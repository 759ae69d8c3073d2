//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestFullFlowGenerateAndRun covers the complete flow: generate a script with
// dependencies, verify its content and mode, then execute it under bash.
func TestFullFlowGenerateAndRun(t *testing.T) {
	env := setupTestEnv(t)

	stdout, _, err := runCLI(t, "",
		"-n", "deploy",
		"-d", "Deploy the application",
		"-o", env.OutputDir,
		"--dependencies", "bash",
	)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(stdout, "deploy.sh") {
		t.Errorf("output does not mention the script: %q", stdout)
	}

	dest := filepath.Join(env.OutputDir, "deploy.sh")
	assertFileExists(t, dest)

	content := readScript(t, env.OutputDir, "deploy.sh")
	if !strings.Contains(content, "# deploy.sh - Deploy the application") {
		t.Error("header not substituted")
	}
	if !strings.Contains(content, "# Author: Integration Tester") {
		t.Error("author not taken from environment")
	}
	if !strings.Contains(content, "DEPENDENCIES=(bash)") {
		t.Error("dependency not injected")
	}
	if strings.Contains(content, "{{") {
		t.Error("placeholder tokens survived generation")
	}

	info, err := os.Stat(dest)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&0111 == 0 {
		t.Fatal("script is not executable")
	}

	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not available, skipping execution")
	}
	out, err := exec.Command(dest, "--help").CombinedOutput()
	if err != nil {
		t.Fatalf("running generated script: %v\n%s", err, out)
	}
	if !strings.Contains(string(out), "Deploy the application") {
		t.Errorf("usage output missing description:\n%s", out)
	}
}

// TestVariantsStayRunnable generates every variant combination and checks each
// passes a bash syntax check.
func TestVariantsStayRunnable(t *testing.T) {
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not available, skipping")
	}
	env := setupTestEnv(t)

	variants := [][]string{
		nil,
		{"--no-colors"},
		{"--minimal"},
		{"--no-colors", "--minimal"},
		{"--template", "simple"},
	}
	for i, extra := range variants {
		name := "variant" + string(rune('a'+i))
		args := append([]string{
			"-n", name,
			"-d", "Variant check",
			"-o", env.OutputDir,
		}, extra...)
		if _, _, err := runCLI(t, "", args...); err != nil {
			t.Fatalf("generate %v: %v", extra, err)
		}
		dest := filepath.Join(env.OutputDir, name+".sh")
		if out, err := exec.Command("bash", "-n", dest).CombinedOutput(); err != nil {
			t.Errorf("bash -n %v: %v\n%s", extra, err, out)
		}
	}
}

// TestConfigRoundTrip sets defaults via the config subcommand and verifies
// generation picks them up.
func TestConfigRoundTrip(t *testing.T) {
	env := setupTestEnv(t)

	if _, _, err := runCLI(t, "", "config", "set", "output_dir", env.OutputDir); err != nil {
		t.Fatalf("config set: %v", err)
	}

	stdout, _, err := runCLI(t, "", "config", "get", "output_dir")
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	if strings.TrimSpace(stdout) != env.OutputDir {
		t.Errorf("config get = %q, want %q", strings.TrimSpace(stdout), env.OutputDir)
	}

	if _, _, err := runCLI(t, "", "-n", "fromconfig", "-d", "Uses configured output dir"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	assertFileExists(t, filepath.Join(env.OutputDir, "fromconfig.sh"))
}

// TestOverwritePromptFlow exercises the interactive decline and accept paths.
func TestOverwritePromptFlow(t *testing.T) {
	env := setupTestEnv(t)
	dest := filepath.Join(env.OutputDir, "existing.sh")
	if err := os.WriteFile(dest, []byte("#!/bin/bash\necho original\n"), 0755); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := runCLI(t, "n\n", "-n", "existing", "-d", "d", "-o", env.OutputDir)
	if err != nil {
		t.Fatalf("declined overwrite: %v", err)
	}
	if !strings.Contains(stdout, "Aborted") {
		t.Errorf("no abort notice: %q", stdout)
	}
	if content := readScript(t, env.OutputDir, "existing.sh"); !strings.Contains(content, "echo original") {
		t.Error("declined overwrite changed the file")
	}

	if _, _, err := runCLI(t, "yes\n", "-n", "existing", "-d", "Replaced", "-o", env.OutputDir); err != nil {
		t.Fatalf("accepted overwrite: %v", err)
	}
	if content := readScript(t, env.OutputDir, "existing.sh"); !strings.Contains(content, "# existing.sh - Replaced") {
		t.Error("accepted overwrite did not replace the file")
	}
}

// TestDoctorReportsHealthy runs the doctor subcommand against the embedded
// templates in a clean environment.
func TestDoctorReportsHealthy(t *testing.T) {
	setupTestEnv(t)

	stdout, _, err := runCLI(t, "", "doctor", "--check-config", "--check-templates")
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if strings.Contains(stdout, "[MISS]") {
		t.Errorf("doctor reported issues:\n%s", stdout)
	}
	for _, name := range []string{"full", "simple"} {
		if !strings.Contains(stdout, "[ OK ] "+name) {
			t.Errorf("template %s not reported healthy:\n%s", name, stdout)
		}
	}
}
