package skeleton

import (
	"fmt"
	"regexp"
	"strings"
)

// SectionKind distinguishes how a section was declared in the template.
type SectionKind int

const (
	// KindMarker is a block delimited by explicit marker comments.
	KindMarker SectionKind = iota
	// KindFunction is a shell function definition.
	KindFunction
)

// Section is a named block of lines with explicit boundaries.
// Start and End are inclusive line indexes; for marker sections they include
// the marker lines themselves, for functions the opening line and the closing
// brace.
type Section struct {
	Name  string
	Kind  SectionKind
	Start int
	End   int
}

// Document is a parsed template. Mutating operations re-index sections, so a
// Section value is only valid until the next mutation.
type Document struct {
	lines    []string
	sections []Section
}

var (
	sectionStartRe = regexp.MustCompile(`^#\s*---\s*section:\s*([a-z0-9_-]+)\s*---\s*$`)
	sectionEndRe   = regexp.MustCompile(`^#\s*---\s*end section\s*---\s*$`)
	functionRe     = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*\(\)\s*\{\s*$`)
	closingBrace   = regexp.MustCompile(`^\}\s*$`)
)

// Parse builds a Document from template text. It fails on unbalanced section
// markers or an unterminated function body, since the strippers depend on
// every section having an unambiguous end.
func Parse(text string) (*Document, error) {
	d := &Document{lines: strings.Split(text, "\n")}
	if err := d.index(); err != nil {
		return nil, err
	}
	return d, nil
}

// index rebuilds the section table from the current lines.
func (d *Document) index() error {
	d.sections = d.sections[:0]

	openMarker := -1
	openName := ""
	for i := 0; i < len(d.lines); i++ {
		line := d.lines[i]

		if m := sectionStartRe.FindStringSubmatch(line); m != nil {
			if openMarker >= 0 {
				return fmt.Errorf("line %d: section %q opened inside section %q", i+1, m[1], openName)
			}
			openMarker = i
			openName = m[1]
			continue
		}
		if sectionEndRe.MatchString(line) {
			if openMarker < 0 {
				return fmt.Errorf("line %d: end marker without a matching section start", i+1)
			}
			d.sections = append(d.sections, Section{Name: openName, Kind: KindMarker, Start: openMarker, End: i})
			openMarker = -1
			openName = ""
			continue
		}

		// Function definitions are only recognized at column zero, outside
		// marker sections.
		if openMarker < 0 {
			if m := functionRe.FindStringSubmatch(line); m != nil {
				end, err := d.findFunctionEnd(i)
				if err != nil {
					return fmt.Errorf("function %q: %w", m[1], err)
				}
				d.sections = append(d.sections, Section{Name: m[1], Kind: KindFunction, Start: i, End: end})
				i = end
			}
		}
	}
	if openMarker >= 0 {
		return fmt.Errorf("section %q is never closed", openName)
	}
	return nil
}

// findFunctionEnd returns the index of the closing brace at column zero that
// terminates the function opened at start. Heredoc bodies are skipped so a
// literal "}" inside one cannot end the function early.
func (d *Document) findFunctionEnd(start int) (int, error) {
	heredoc := ""
	for i := start + 1; i < len(d.lines); i++ {
		line := d.lines[i]

		if heredoc != "" {
			if strings.TrimSuffix(line, "\r") == heredoc {
				heredoc = ""
			}
			continue
		}
		if delim := heredocDelimiter(line); delim != "" {
			heredoc = delim
			continue
		}
		if closingBrace.MatchString(line) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no closing brace found after line %d", start+1)
}

var heredocRe = regexp.MustCompile(`<<-?\s*["']?([A-Za-z_][A-Za-z0-9_]*)["']?`)

// heredocDelimiter returns the terminator word if the line opens a heredoc.
func heredocDelimiter(line string) string {
	if m := heredocRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

// Section returns the named section, if present.
func (d *Document) Section(name string) (Section, bool) {
	for _, s := range d.sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Functions returns all function sections in template order.
func (d *Document) Functions() []Section {
	var fns []Section
	for _, s := range d.sections {
		if s.Kind == KindFunction {
			fns = append(fns, s)
		}
	}
	return fns
}

// RemoveSection deletes the named section (marker block or function) from the
// document. Reports whether the section existed.
func (d *Document) RemoveSection(name string) bool {
	s, ok := d.Section(name)
	if !ok {
		return false
	}
	d.remove(s.Start, s.End)
	return true
}

// RemoveAssignment deletes the line declaring the given shell variable
// (plain, readonly, local, or export forms). Reports whether a line was removed.
func (d *Document) RemoveAssignment(variable string) bool {
	re := regexp.MustCompile(`^\s*((readonly|local|export|declare(\s+-\S+)?)\s+)?` + regexp.QuoteMeta(variable) + `=`)
	for i, line := range d.lines {
		if re.MatchString(line) {
			d.remove(i, i)
			return true
		}
	}
	return false
}

// RemoveCaseBranch deletes a case branch whose pattern line matches the given
// pattern literally (e.g. "-v|--verbose"), through its terminating ";;".
func (d *Document) RemoveCaseBranch(pattern string) bool {
	want := pattern + ")"
	for i, line := range d.lines {
		if strings.TrimSpace(line) != want {
			continue
		}
		for j := i + 1; j < len(d.lines); j++ {
			if strings.TrimSpace(d.lines[j]) == ";;" {
				d.remove(i, j)
				return true
			}
		}
		return false
	}
	return false
}

// RemoveLinesContaining deletes every line containing all of the given
// substrings. Returns the number of lines removed.
func (d *Document) RemoveLinesContaining(substrs ...string) int {
	if len(substrs) == 0 {
		return 0
	}
	removed := 0
	for i := 0; i < len(d.lines); i++ {
		match := true
		for _, s := range substrs {
			if !strings.Contains(d.lines[i], s) {
				match = false
				break
			}
		}
		if match {
			d.remove(i, i)
			removed++
			i--
		}
	}
	return removed
}

// RemoveGuardedBlocks deletes every "if" block whose condition references the
// given variable, through the matching "fi" (nested ifs are tracked). Returns
// the number of blocks removed.
func (d *Document) RemoveGuardedBlocks(variable string) int {
	condRe := regexp.MustCompile(`^if\b.*\$\{?` + regexp.QuoteMeta(variable) + `\b`)
	removed := 0
	for i := 0; i < len(d.lines); i++ {
		trimmed := strings.TrimSpace(d.lines[i])
		if !condRe.MatchString(trimmed) {
			continue
		}
		depth := 1
		for j := i + 1; j < len(d.lines); j++ {
			t := strings.TrimSpace(d.lines[j])
			if strings.HasPrefix(t, "if ") || strings.HasPrefix(t, "if[") {
				depth++
			}
			if t == "fi" || strings.HasPrefix(t, "fi ") || strings.HasPrefix(t, "fi;") {
				depth--
				if depth == 0 {
					d.remove(i, j)
					removed++
					i--
					break
				}
			}
		}
	}
	return removed
}

// RewriteLine replaces the first line whose trimmed content equals literal
// with replacement, preserving the line's indentation. Reports whether a line
// was rewritten.
func (d *Document) RewriteLine(literal, replacement string) bool {
	for i, line := range d.lines {
		if strings.TrimSpace(line) != literal {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		d.lines[i] = indent + replacement
		return true
	}
	return false
}

// StripVariableRefs removes every "${VAR}" reference for the given variables
// from the remaining text.
func (d *Document) StripVariableRefs(variables []string) {
	if len(variables) == 0 {
		return
	}
	pairs := make([]string, 0, len(variables)*2)
	for _, v := range variables {
		pairs = append(pairs, "${"+v+"}", "")
	}
	r := strings.NewReplacer(pairs...)
	for i, line := range d.lines {
		d.lines[i] = r.Replace(line)
	}
}

var ansiRe = regexp.MustCompile(`(\x1b|\\033|\\e)\[[0-9;]*m`)

// StripANSI removes ANSI escape sequences, both raw escape bytes and the
// literal "\033[...m" / "\e[...m" spellings used in bash string literals.
// Emptied $'' literals collapse to ''.
func (d *Document) StripANSI() {
	for i, line := range d.lines {
		line = ansiRe.ReplaceAllString(line, "")
		line = strings.ReplaceAll(line, `$''`, `''`)
		d.lines[i] = line
	}
}

// Render produces the final text. Marker lines are metadata and never appear
// in output; runs of blank lines left behind by removals are collapsed.
func (d *Document) Render() string {
	out := make([]string, 0, len(d.lines))
	blanks := 0
	for _, line := range d.lines {
		if sectionStartRe.MatchString(line) || sectionEndRe.MatchString(line) {
			continue
		}
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks > 1 {
				continue
			}
			// Normalize whitespace-only lines to truly empty.
			line = ""
		} else {
			blanks = 0
		}
		out = append(out, line)
	}
	text := strings.Join(out, "\n")
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text
}

// remove deletes lines [start, end] inclusive and drops one adjacent blank
// line so removals do not leave double gaps, then re-indexes sections.
func (d *Document) remove(start, end int) {
	next := end + 1
	if next < len(d.lines) && start > 0 &&
		strings.TrimSpace(d.lines[next]) == "" && strings.TrimSpace(d.lines[start-1]) == "" {
		end = next
	}
	d.lines = append(d.lines[:start], d.lines[end+1:]...)
	// Removals of whole blocks cannot unbalance markers or braces, so
	// re-indexing cannot fail here.
	_ = d.index()
}
