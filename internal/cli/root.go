package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shellsmith-labs/shellsmith/internal/branding"
	"github.com/shellsmith-labs/shellsmith/internal/config"
	"github.com/shellsmith-labs/shellsmith/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// errHelp marks an exit-1 outcome whose text has already been printed.
var errHelp = errors.New("help requested")

// Silent reports whether the error's message has already been shown to the
// user and must not be printed again by main.
func Silent(err error) bool {
	return errors.Is(err, errHelp)
}

// Execute runs the root command with build info injected via ldflags.
// Help on the root command exits non-zero, matching the usage-error path.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	root, helpShown := NewRootCmd()
	if err := root.Execute(); err != nil {
		return err
	}
	if *helpShown {
		return errHelp
	}
	return nil
}

// NewRootCmd builds a fresh command tree. The returned bool is set when help
// was rendered for the root command itself.
func NewRootCmd() (*cobra.Command, *bool) {
	var (
		name         string
		description  string
		author       string
		outputDir    string
		depsCSV      string
		templateName string
		noColors     bool
		minimal      bool
		force        bool
	)

	helpShown := false

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " -n <name> -d <description> [flags]",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` generates runnable bash scripts from embedded templates:
placeholder tokens are substituted, requested tool dependencies are injected,
and the no-colors / minimal variants are produced by structural section
filtering. The result is written executable to the output directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.Load()

			var missing []string
			if name == "" {
				missing = append(missing, "--name")
			}
			if description == "" {
				missing = append(missing, "--description")
			}
			if len(missing) > 0 {
				fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
				return fmt.Errorf("required flag(s) %s not set", strings.Join(missing, ", "))
			}

			if outputDir == "" {
				outputDir = config.Get(config.KeyOutputDir)
			}
			if templateName == "" {
				templateName = config.Get(config.KeyTemplate)
			}

			req := scaffold.Request{
				Name:         name,
				Description:  description,
				Author:       scaffold.ResolveAuthor(author),
				OutputDir:    outputDir,
				Dependencies: splitDependencies(depsCSV),
				Template:     templateName,
				NoColors:     noColors,
				Minimal:      minimal,
			}

			dest := req.DestPath()
			if _, err := os.Stat(dest); err == nil && !force {
				prompter := NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
				overwrite, err := prompter.ConfirmOverwrite(dest)
				if err != nil {
					return fmt.Errorf("reading confirmation: %w", err)
				}
				if !overwrite {
					// Declined overwrite is a successful no-op.
					fmt.Fprintf(cmd.OutOrStdout(), "Aborted. %s left unchanged.\n", dest)
					return nil
				}
			}

			result, err := scaffold.Generate(req, time.Now())
			if err != nil {
				return err
			}

			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Output script name; \".sh\" appended if absent (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Script description for header and usage text (required)")
	cmd.Flags().StringVarP(&author, "author", "a", "", "Author name (default: config, git user.name, or account name)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory, created if absent (default: current directory)")
	cmd.Flags().StringVar(&depsCSV, "dependencies", "", "Comma-separated tool names injected into the dependency declaration")
	cmd.Flags().StringVar(&templateName, "template", "", "Template set: full or simple (default: full)")
	cmd.Flags().BoolVar(&noColors, "no-colors", false, "Strip ANSI color support from the generated script")
	cmd.Flags().BoolVar(&minimal, "minimal", false, "Strip decorative helpers and verbose mode from the generated script")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing destination file without prompting")

	// Unknown flags print the full usage text before the error surfaces.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprint(c.ErrOrStderr(), c.UsageString())
		return err
	})

	root := cmd
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		if c.Long != "" {
			fmt.Fprintln(c.OutOrStdout(), c.Long)
			fmt.Fprintln(c.OutOrStdout())
		}
		fmt.Fprint(c.OutOrStdout(), c.UsageString())
		if c == root {
			helpShown = true
		}
	})

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newTemplatesCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd, &helpShown
}

// splitDependencies parses the --dependencies CSV, preserving input order.
func splitDependencies(csv string) []string {
	if csv == "" {
		return nil
	}
	var deps []string
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			deps = append(deps, part)
		}
	}
	return deps
}
