package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/localefixture"
	"github.com/dmitrymomot/localefixture/pkg/locale"
)

const embeddedSource = "embedded"

// checkResult is the outcome of validating one snapshot.
type checkResult struct {
	Source        string          `json:"source" yaml:"source"`
	Version       string          `json:"version,omitempty" yaml:"version,omitempty"`
	Error         string          `json:"error,omitempty" yaml:"error,omitempty"`
	NotBCP47      []string        `json:"not_bcp47,omitempty" yaml:"not_bcp47,omitempty"`
	AliasMismatch []aliasMismatch `json:"alias_mismatch,omitempty" yaml:"alias_mismatch,omitempty"`
	Locales       int             `json:"locales" yaml:"locales"`
	Aliases       int             `json:"aliases" yaml:"aliases"`
	RootLocales   int             `json:"root_locales" yaml:"root_locales"`
}

// aliasMismatch is an alias whose target differs from the BCP 47 canonical form of the alias.
type aliasMismatch struct {
	Alias     string `json:"alias" yaml:"alias"`
	Canonical string `json:"canonical" yaml:"canonical"`
	BCP47     string `json:"bcp47" yaml:"bcp47"`
}

// newCheckCommand creates the 'check' command.
func newCheckCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [FILE...]",
		Short: "Validate snapshot files",
		Long: "Validate snapshot files. Without arguments the --snapshot file or the embedded data is checked.\n" +
			"Identifiers that are not well-formed BCP 47 tags once '_' is replaced by '-' are listed but do not fail the check.\n" +
			"Aliases whose target differs from the BCP 47 canonical form of the alias are reported as warnings.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sources := args
			if len(sources) == 0 {
				sources = []string{root.snapshotPath}
			}

			results := runChecks(cmd.Context(), root.log, sources)

			if err := render(cmd.OutOrStdout(), root.output, results, func(w io.Writer) error {
				return printCheckResults(w, results)
			}); err != nil {
				return err
			}

			for _, res := range results {
				if res.Error != "" {
					return ErrCheckFailed
				}
			}
			return nil
		},
	}
}

// runChecks validates sources concurrently. An empty source stands for the embedded snapshot.
// Results keep the order of sources.
func runChecks(ctx context.Context, log *slog.Logger, sources []string) []checkResult {
	results := make([]checkResult, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, src := range sources {
		g.Go(func() error {
			results[i] = checkSource(ctx, log, src)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func checkSource(ctx context.Context, log *slog.Logger, src string) checkResult {
	res := checkResult{Source: src}

	var (
		snap *localefixture.Snapshot
		err  error
	)
	if src == "" {
		res.Source = embeddedSource
		snap = localefixture.Default()
	} else {
		snap, err = localefixture.LoadFile(src, localefixture.WithLogger(log))
	}
	if err != nil {
		log.WarnContext(ctx, "invalid snapshot", slog.String("source", res.Source), slog.String("error", err.Error()))
		res.Error = err.Error()
		return res
	}

	res.Version = snap.Version()
	res.Locales = len(snap.Locales())
	res.Aliases = len(snap.Aliases())
	res.RootLocales = len(snap.RootLocales())

	for _, id := range snap.Locales() {
		if _, err := locale.Tag(id); err != nil {
			res.NotBCP47 = append(res.NotBCP47, id)
			log.DebugContext(ctx, "identifier is not a BCP 47 tag",
				slog.String("source", res.Source),
				slog.String("locale", id),
			)
		}
	}

	for _, a := range snap.Aliases() {
		want, errAlias := locale.Canonical(a.Alias)
		got, errTarget := locale.Canonical(a.Canonical)
		if errAlias != nil || errTarget != nil || want == got {
			continue
		}
		res.AliasMismatch = append(res.AliasMismatch, aliasMismatch{Alias: a.Alias, Canonical: a.Canonical, BCP47: want})
		log.DebugContext(ctx, "alias target differs from BCP 47 canonicalization",
			slog.String("source", res.Source),
			slog.String("alias", a.Alias),
			slog.String("canonical", a.Canonical),
			slog.String("bcp47", want),
		)
	}

	return res
}

func printCheckResults(w io.Writer, results []checkResult) error {
	for _, res := range results {
		if res.Error != "" {
			if _, err := fmt.Fprintf(w, "%s: FAIL\n  %s\n", res.Source, strings.ReplaceAll(res.Error, "\n", "\n  ")); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(w, "%s: ok (%d locales, %d aliases, %d root locales)\n",
			res.Source, res.Locales, res.Aliases, res.RootLocales); err != nil {
			return err
		}
		if len(res.NotBCP47) > 0 {
			if _, err := fmt.Fprintf(w, "  not BCP 47: %s\n", strings.Join(res.NotBCP47, ", ")); err != nil {
				return err
			}
		}
		for _, m := range res.AliasMismatch {
			if _, err := fmt.Fprintf(w, "  warning: alias %s -> %s, BCP 47 canonical form is %s\n", m.Alias, m.Canonical, m.BCP47); err != nil {
				return err
			}
		}
	}
	return nil
}
