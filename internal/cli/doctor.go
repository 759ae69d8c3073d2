package cli

import (
	"github.com/shellsmith-labs/shellsmith/internal/doctor"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	var (
		checkConfig    bool
		checkTemplates bool
		checkTools     bool
		checkManifest  string
	)

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Health check for the generation environment",
		Long:  `Run diagnostic checks on the config directory, the embedded templates, and the external tools they require.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			anyFlag := checkConfig || checkTemplates || checkTools || checkManifest != ""

			// If no specific flag, run all checks.
			if !anyFlag {
				if err := doctor.CheckConfigDir(out); err != nil {
					return err
				}
				if err := doctor.CheckTemplates(out); err != nil {
					return err
				}
				return doctor.CheckTools(out)
			}

			if checkConfig {
				if err := doctor.CheckConfigDir(out); err != nil {
					return err
				}
			}
			if checkTemplates {
				if err := doctor.CheckTemplates(out); err != nil {
					return err
				}
			}
			if checkTools {
				if err := doctor.CheckTools(out); err != nil {
					return err
				}
			}
			if checkManifest != "" {
				if err := doctor.CheckManifestFile(out, checkManifest); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkConfig, "check-config", false, "Verify the config directory is writable")
	cmd.Flags().BoolVar(&checkTemplates, "check-templates", false, "Validate the embedded template sets")
	cmd.Flags().BoolVar(&checkTools, "check-tools", false, "Verify required external tools and versions")
	cmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a template manifest file at the given path")
	return cmd
}
