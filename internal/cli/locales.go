package cli

import (
	"io"

	"github.com/spf13/cobra"
)

type localesOptions struct {
	roots bool
}

// newLocalesCommand creates the 'locales' command.
func newLocalesCommand(root *rootOptions) *cobra.Command {
	opts := &localesOptions{}

	cmd := &cobra.Command{
		Use:   "locales",
		Short: "Print the locale list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := root.snapshot(cmd.Context())
			if err != nil {
				return err
			}

			ids := snap.Locales()
			if opts.roots {
				ids = snap.RootLocales()
			}

			return render(cmd.OutOrStdout(), root.output, ids, func(w io.Writer) error {
				return printLines(w, ids)
			})
		},
	}

	cmd.Flags().BoolVarP(&opts.roots, RootsFlag, RootsShortFlag, RootsDefaultValue, RootsUsage)

	return cmd
}
