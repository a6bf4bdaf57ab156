package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trisum/internal/batch"
	"github.com/katalvlaran/trisum/internal/render"
)

func newBatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE...",
		Short: "Solve several triangle files concurrently",
		Long: `Solve every FILE independently using up to --workers goroutines and
print one row per file. Failing files are reported in the output and make
the command exit non-zero; they never stop the other files.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig(cmd.Context())
			log := getLogger(cmd.Context())

			r := &batch.Runner{Workers: cfg.Workers, Options: cfg.PathSumOptions(), Log: log}
			results, err := r.Run(cmd.Context(), args)
			if err != nil {
				return err
			}

			entries := make([]render.Entry, len(results))
			for i, res := range results {
				entries[i] = render.Entry{File: res.File, Sum: res.Result.Sum, Path: res.Result.Path, Values: res.Result.Values}
				if res.Err != nil {
					entries[i] = render.Entry{File: res.File, Error: res.Err.Error()}
				}
			}
			if err := render.New(cmd.OutOrStdout(), cfg.Output).Render(entries); err != nil {
				return err
			}

			if n := batch.Failed(results); n > 0 {
				return fmt.Errorf("%d of %d files failed", n, len(results))
			}
			log.Info().Int("files", len(results)).Msg("batch complete")
			return nil
		},
	}
}
