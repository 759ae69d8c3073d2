package scaffold

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/shellsmith-labs/shellsmith/internal/manifest"
)

// Template pairs a bash skeleton with its parsed manifest.
type Template struct {
	Manifest *manifest.Manifest
	Text     string
}

// LoadTemplate loads and validates the named embedded template set.
func LoadTemplate(name string) (*Template, error) {
	manifestBytes, err := fs.ReadFile(templatesFS, "templates/"+name+".yaml")
	if err != nil {
		return nil, fmt.Errorf("template %q not found: %w", name, err)
	}

	valResult, err := manifest.Validate(manifestBytes)
	if err != nil {
		return nil, fmt.Errorf("validating manifest for template %q: %w", name, err)
	}
	if !valResult.Valid {
		var msgs []string
		for _, issue := range valResult.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			msgs = append(msgs, msg)
		}
		return nil, fmt.Errorf("manifest for template %q is invalid:\n  %s", name, strings.Join(msgs, "\n  "))
	}

	m, err := manifest.Parse(manifestBytes)
	if err != nil {
		return nil, err
	}

	text, err := fs.ReadFile(templatesFS, "templates/"+name+".sh.tmpl")
	if err != nil {
		return nil, fmt.Errorf("reading skeleton for template %q: %w", name, err)
	}

	return &Template{Manifest: m, Text: string(text)}, nil
}

// ListTemplates returns the manifests of all embedded template sets, sorted
// by name.
func ListTemplates() ([]*manifest.Manifest, error) {
	entries, err := fs.ReadDir(templatesFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("reading embedded templates: %w", err)
	}

	var manifests []*manifest.Manifest
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".yaml")
		tmpl, err := LoadTemplate(name)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, tmpl.Manifest)
	}
	sort.Slice(manifests, func(i, j int) bool { return manifests[i].Name < manifests[j].Name })
	return manifests, nil
}
