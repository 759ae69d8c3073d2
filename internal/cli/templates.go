package cli

import (
	"fmt"
	"strings"

	"github.com/shellsmith-labs/shellsmith/internal/scaffold"
	"github.com/spf13/cobra"
)

func newTemplatesCmd() *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the embedded template sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			manifests, err := scaffold.ListTemplates()
			if err != nil {
				return err
			}

			for _, m := range manifests {
				fmt.Fprintf(out, "%s  %s\n", pathStyle.Render(m.Name), m.Description)
				if !long {
					continue
				}
				fmt.Fprintf(out, "    placeholders: %s\n", strings.Join(m.Placeholders, ", "))
				if len(m.DecorativeFunctions) > 0 {
					fmt.Fprintf(out, "    decorative:   %s\n", strings.Join(m.DecorativeFunctions, ", "))
				}
				if m.Colors != nil {
					fmt.Fprintf(out, "    colors:       %s\n", strings.Join(m.Colors.Variables, ", "))
				}
				if len(m.Tools) > 0 {
					var tools []string
					for _, tool := range m.Tools {
						if tool.MinVersion != "" {
							tools = append(tools, fmt.Sprintf("%s >= %s", tool.Name, tool.MinVersion))
						} else {
							tools = append(tools, tool.Name)
						}
					}
					fmt.Fprintf(out, "    tools:        %s\n", strings.Join(tools, ", "))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, "Show placeholders, sections, and tool requirements")
	return cmd
}
