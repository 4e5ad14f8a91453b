package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/localefixture"
)

// newExportCommand creates the 'export' command.
func newExportCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the snapshot as a YAML or JSON document",
		Long: "Write the snapshot as a YAML or JSON document that can be loaded with --snapshot.\n" +
			"The text output format produces YAML.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := root.snapshot(cmd.Context())
			if err != nil {
				return err
			}

			format := localefixture.FormatYAML
			if root.output == OutputJSON {
				format = localefixture.FormatJSON
			}
			return snap.Encode(cmd.OutOrStdout(), format)
		},
	}
}
