package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/shellsmith-labs/shellsmith/internal/platform"
	"github.com/shellsmith-labs/shellsmith/internal/skeleton"
)

// DefaultTemplate is used when a request does not name a template set.
const DefaultTemplate = "full"

// Request holds the validated inputs for one generation.
type Request struct {
	Name         string   // script base name; ".sh" appended if absent
	Description  string   // substituted into usage/header text
	Author       string   // already resolved (see ResolveAuthor)
	OutputDir    string   // created if absent
	Dependencies []string // injected into the dependency declaration, in order
	Template     string   // template set name; DefaultTemplate if empty
	NoColors     bool
	Minimal      bool
}

// Result holds the outcome of a generation.
type Result struct {
	Path     string
	Template string
	Warnings []string
}

// NormalizeName appends the ".sh" suffix unless the name already has it.
func NormalizeName(name string) string {
	if strings.HasSuffix(name, ".sh") {
		return name
	}
	return name + ".sh"
}

// DestPath returns the destination file path for the request.
func (r Request) DestPath() string {
	dir := r.OutputDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, NormalizeName(r.Name))
}

func (r Request) templateName() string {
	if r.Template == "" {
		return DefaultTemplate
	}
	return r.Template
}

// residualTokenRe matches any placeholder-shaped token left after substitution.
var residualTokenRe = regexp.MustCompile(`\{\{[A-Z][A-Z0-9_]*\}\}`)

// Render produces the script text for a request without touching the
// filesystem. The returned warnings flag template gaps (missing dependency
// declaration, residual placeholder tokens) that do not abort generation.
func Render(req Request, now time.Time) (string, []string, error) {
	tmpl, err := LoadTemplate(req.templateName())
	if err != nil {
		return "", nil, err
	}
	m := tmpl.Manifest

	values := map[string]string{
		"SCRIPT_NAME": NormalizeName(req.Name),
		"DESCRIPTION": req.Description,
		"AUTHOR":      req.Author,
		"DATE":        now.Format("2006-01-02"),
	}

	var warnings []string

	// Substitute every declared placeholder literally. A placeholder the
	// generator has no value for is blanked rather than left in the output.
	text := tmpl.Text
	for _, token := range m.Placeholders {
		value, known := values[token]
		if !known {
			warnings = append(warnings, fmt.Sprintf("template declares placeholder {{%s}} with no generator value; substituted empty", token))
		}
		text = strings.ReplaceAll(text, "{{"+token+"}}", value)
	}

	doc, err := skeleton.Parse(text)
	if err != nil {
		return "", nil, fmt.Errorf("parsing template %q: %w", m.Name, err)
	}

	if len(req.Dependencies) > 0 {
		if m.DependencyDeclaration == "" {
			warnings = append(warnings, fmt.Sprintf("template %q has no dependency declaration; --dependencies ignored", m.Name))
		} else {
			injected := rewriteDependencyDecl(m.DependencyDeclaration, req.Dependencies)
			if !doc.RewriteLine(m.DependencyDeclaration, injected) {
				warnings = append(warnings, fmt.Sprintf("dependency declaration %q not found in template %q", m.DependencyDeclaration, m.Name))
			}
		}
	}

	if req.NoColors && m.Colors != nil {
		doc.RemoveSection(m.Colors.Section)
		doc.StripVariableRefs(m.Colors.Variables)
		doc.StripANSI()
	}

	if req.Minimal {
		for _, fn := range m.DecorativeFunctions {
			doc.RemoveSection(fn)
		}
		if m.Verbose != nil {
			doc.RemoveCaseBranch(m.Verbose.OptionPattern)
			doc.RemoveAssignment(m.Verbose.Variable)
			doc.RemoveGuardedBlocks(m.Verbose.Variable)
			// The usage text mentions the option too; drop the help line
			// so the script does not document a flag it rejects.
			doc.RemoveLinesContaining(strings.Split(m.Verbose.OptionPattern, "|")...)
		}
	}

	rendered := doc.Render()
	for _, token := range residualTokenRe.FindAllString(rendered, -1) {
		warnings = append(warnings, fmt.Sprintf("unresolved placeholder %s left in output", token))
	}

	return rendered, warnings, nil
}

// Generate renders the request and writes the executable script to its
// destination. The caller owns the overwrite confirmation; an existing
// destination file is replaced.
func Generate(req Request, now time.Time) (*Result, error) {
	content, warnings, err := Render(req, now)
	if err != nil {
		return nil, err
	}

	dir := req.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	dest := req.DestPath()
	if err := os.WriteFile(dest, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", dest, err)
	}
	if err := platform.Chmod(dest, 0755); err != nil {
		return nil, fmt.Errorf("marking %s executable: %w", dest, err)
	}

	return &Result{
		Path:     dest,
		Template: req.templateName(),
		Warnings: warnings,
	}, nil
}

// rewriteDependencyDecl turns an empty declaration like "DEPENDENCIES=()"
// into one listing the requested tools space-separated, in input order.
func rewriteDependencyDecl(decl string, deps []string) string {
	open := strings.Index(decl, "(")
	if open < 0 || !strings.HasSuffix(decl, ")") {
		// Declaration form is free text in the manifest; fall back unchanged.
		return decl
	}
	return decl[:open+1] + strings.Join(deps, " ") + ")"
}
