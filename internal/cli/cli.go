// Package cli implements the localefixture command.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/localefixture"
	"github.com/dmitrymomot/localefixture/internal/config"
	"github.com/dmitrymomot/localefixture/pkg/logger"
)

// rootOptions holds values shared by all commands.
type rootOptions struct {
	log          *slog.Logger
	snapshotPath string
	output       string
}

// snapshot returns the snapshot selected by --snapshot, or the embedded one.
func (o *rootOptions) snapshot(ctx context.Context) (*localefixture.Snapshot, error) {
	if o.snapshotPath == "" {
		return localefixture.Default(), nil
	}
	o.log.DebugContext(ctx, "loading snapshot", slog.String("path", o.snapshotPath))
	return localefixture.LoadFile(o.snapshotPath, localefixture.WithLogger(o.log))
}

// Execute runs the command with args, reading configuration from the environment.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logCfg := cfg.Logger()
	logCfg.Output = stderr
	log, err := logger.NewWithConfig(logCfg, logger.CommandExtractor)
	if err != nil {
		log = logger.New(stderr, logger.CommandExtractor)
		log.WarnContext(ctx, "invalid logger configuration, using defaults", slog.String("error", err.Error()))
	}

	cmd := NewRootCommand(cfg, log)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd.ExecuteContext(ctx)
}

// NewRootCommand creates the 'localefixture' command.
func NewRootCommand(cfg config.Config, log *slog.Logger) *cobra.Command {
	if log == nil {
		log = logger.NewNope()
	}
	opts := &rootOptions{log: log}

	cmd := &cobra.Command{
		Use:           "localefixture [COMMAND]",
		Short:         "Inspect and validate locale reference snapshots",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetContext(logger.WithCommand(cmd.Context(), cmd.Name()))
			return validateOutput(opts.output)
		},
	}

	if env, err := config.Description(); err == nil {
		cmd.Long = cmd.Short + "\n\n" + env
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.snapshotPath, SnapshotFlag, SnapshotShortFlag, cfg.Snapshot, SnapshotUsage)
	flags.StringVarP(&opts.output, OutputFlag, OutputShortFlag, defaultOutput(cfg.Output), OutputUsage)

	cmd.AddCommand(
		newLocalesCommand(opts),
		newAliasesCommand(opts),
		newCheckCommand(opts),
		newExportCommand(opts),
	)

	return cmd
}

func defaultOutput(v string) string {
	if v == "" {
		return OutputText
	}
	return v
}

func printLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
