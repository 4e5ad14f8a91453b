package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// newAliasesCommand creates the 'aliases' command.
func newAliasesCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "aliases",
		Short: "Print alias to canonical locale pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := root.snapshot(cmd.Context())
			if err != nil {
				return err
			}

			aliases := snap.Aliases()
			return render(cmd.OutOrStdout(), root.output, aliases, func(w io.Writer) error {
				lines := make([]string, len(aliases))
				for i, a := range aliases {
					lines[i] = a.Alias + "\t" + a.Canonical
				}
				return printLines(w, lines)
			})
		},
	}
}
