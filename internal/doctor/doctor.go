package doctor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/shellsmith-labs/shellsmith/internal/config"
	"github.com/shellsmith-labs/shellsmith/internal/manifest"
	"github.com/shellsmith-labs/shellsmith/internal/scaffold"
)

// CheckConfigDir verifies the config directory exists (creating it if needed)
// and is writable.
func CheckConfigDir(w io.Writer) error {
	fmt.Fprintln(w, "Config directory check:")

	dir := config.Dir()
	if err := config.EnsureDir(); err != nil {
		fmt.Fprintf(w, "  [MISS] %s cannot be created: %v\n", dir, err)
		return nil
	}

	probe := filepath.Join(dir, ".doctor-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0600); err != nil {
		fmt.Fprintf(w, "  [MISS] %s is not writable: %v\n", dir, err)
		return nil
	}
	os.Remove(probe)

	fmt.Fprintf(w, "  [ OK ] %s is writable\n", dir)
	return nil
}

// CheckTemplates parses and schema-validates every embedded template set and
// audits that each declared placeholder actually occurs in the skeleton text.
func CheckTemplates(w io.Writer) error {
	fmt.Fprintln(w, "Template check:")

	manifests, err := scaffold.ListTemplates()
	if err != nil {
		fmt.Fprintf(w, "  [MISS] embedded templates failed validation: %v\n", err)
		return nil
	}

	for _, m := range manifests {
		tmpl, err := scaffold.LoadTemplate(m.Name)
		if err != nil {
			fmt.Fprintf(w, "  [MISS] %s: %v\n", m.Name, err)
			continue
		}

		var missing []string
		for _, token := range m.Placeholders {
			if !containsToken(tmpl.Text, token) {
				missing = append(missing, token)
			}
		}
		if len(missing) > 0 {
			fmt.Fprintf(w, "  [MISS] %s: declared placeholders absent from skeleton: %v\n", m.Name, missing)
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s (%d placeholders)\n", m.Name, len(m.Placeholders))
	}
	return nil
}

// CheckTools verifies that every tool required by the embedded templates, plus
// git (used for author resolution), is on PATH and meets its declared minimum
// version.
func CheckTools(w io.Writer) error {
	fmt.Fprintln(w, "Tool check:")

	manifests, err := scaffold.ListTemplates()
	if err != nil {
		return fmt.Errorf("loading embedded templates: %w", err)
	}

	// git is optional: author resolution falls back to the account name.
	requirements := []manifest.ToolRequirement{{Name: "git"}}
	seen := map[string]bool{"git": true}
	for _, m := range manifests {
		for _, tool := range m.Tools {
			if seen[tool.Name] {
				continue
			}
			seen[tool.Name] = true
			requirements = append(requirements, tool)
		}
	}

	missingCount := 0
	for _, req := range requirements {
		path, lookErr := exec.LookPath(req.Name)
		if lookErr != nil {
			fmt.Fprintf(w, "  [MISS] %s not found on PATH\n", req.Name)
			missingCount++
			continue
		}
		if req.MinVersion == "" {
			fmt.Fprintf(w, "  [ OK ] %s found at %s\n", req.Name, path)
			continue
		}

		version, err := toolVersion(req.Name)
		if err != nil {
			fmt.Fprintf(w, "  [WARN] %s found at %s but version could not be determined: %v\n", req.Name, path, err)
			continue
		}
		ok, err := MeetsMinVersion(version, req.MinVersion)
		if err != nil {
			fmt.Fprintf(w, "  [WARN] %s version %s could not be compared with minimum %s: %v\n", req.Name, version, req.MinVersion, err)
			continue
		}
		if !ok {
			fmt.Fprintf(w, "  [MISS] %s version %s is below required minimum %s\n", req.Name, version, req.MinVersion)
			missingCount++
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s %s (>= %s)\n", req.Name, version, req.MinVersion)
	}

	if missingCount > 0 {
		fmt.Fprintf(w, "\n  %d tool issue(s) found\n", missingCount)
	}
	return nil
}

// CheckManifestFile validates an on-disk template manifest, for authors
// developing their own template sets.
func CheckManifestFile(w io.Writer, path string) error {
	fmt.Fprintf(w, "Manifest check: %s\n", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		return err
	}
	if result.Valid {
		fmt.Fprintln(w, "  [ OK ] manifest is valid")
		return nil
	}
	for _, issue := range result.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		fmt.Fprintf(w, "  [MISS] %s\n", msg)
	}
	return fmt.Errorf("manifest %s is invalid", path)
}

func containsToken(text, token string) bool {
	return strings.Contains(text, "{{"+token+"}}")
}
