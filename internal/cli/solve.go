package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/trisum"
	"github.com/katalvlaran/trisum/internal/render"
)

func newSolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve FILE",
		Short: "Print the maximum path sum of one triangle file",
		Long: `Parse FILE as a triangle (line k holds exactly k integers) and print
the maximum top-to-bottom path sum. With --show-path the chosen path is
printed too.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig(cmd.Context())
			log := getLogger(cmd.Context())

			log.Debug().Str("file", args[0]).Str("memory_mode", cfg.MemoryMode).Msg("solving")
			res, err := trisum.Solve(args[0], cfg.PathSumOptions()...)
			if err != nil {
				return err
			}
			log.Debug().Int64("sum", res.Sum).Msg("solved")

			entry := render.Entry{File: args[0], Sum: res.Sum, Path: res.Path, Values: res.Values}
			return render.New(cmd.OutOrStdout(), cfg.Output).Render([]render.Entry{entry})
		},
	}
}
