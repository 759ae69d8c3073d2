package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/shellsmith-labs/shellsmith/internal/scaffold"
)

// lipgloss downgrades styling automatically for non-TTY output and NO_COLOR.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// printResult reports the written script and suggested next steps.
func printResult(w io.Writer, result *scaffold.Result) {
	fmt.Fprintf(w, "%s %s %s\n",
		successStyle.Render("Created"),
		pathStyle.Render(result.Path),
		dimStyle.Render("(template: "+result.Template+")"))

	if len(result.Warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, warnStyle.Render("Warnings:"))
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintf(w, "  1. Edit %s to implement the main logic\n", result.Path)
	fmt.Fprintf(w, "  2. Run 'bash -n %s' to syntax-check\n", result.Path)
	fmt.Fprintf(w, "  3. Run '%s' to try it out\n", result.Path)
}
