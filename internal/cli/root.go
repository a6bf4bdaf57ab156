// Package cli provides the command-line interface for trisum.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/trisum/internal/config"
	"github.com/katalvlaran/trisum/internal/logging"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

type configKey struct{}

type loggerKey struct{}

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "trisum",
		Short: "trisum - maximum path sum through a number triangle",
		Long: `trisum reads a triangle of integers (line k holds k values) and prints
the largest sum along any path from the apex to the base, stepping each
time to one of the two adjacent values in the row below.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			lcfg := logging.DefaultConfig(logging.ProfileRuntime)
			lcfg.Out = cmd.ErrOrStderr()
			logging.ApplyEnv(&lcfg, os.Getenv)
			if lvl, ok := logging.ParseLevel(cfg.LogLevel); ok {
				lcfg.Level = lvl
			}
			if cfg.Verbose {
				lcfg.Level = zerolog.DebugLevel
			}
			log := logging.New("trisum", lcfg).With().Str("run_id", uuid.NewString()).Logger()
			if cfg.File != "" {
				log.Debug().Str("config", cfg.File).Msg("using config file")
			}

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, log)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./trisum.yaml, ./trisum.yml or ./trisum.toml)")
	pf.String("memory-mode", "", "best-sum storage: in_place, table or rolling")
	pf.Bool("show-path", false, "also print one optimal path")
	pf.StringP("output", "o", "", "output format (text|json)")
	pf.Int("workers", 0, "concurrent files for batch (default: number of CPUs)")
	pf.String("log-level", "", "log level (trace|debug|info|warn|error|disabled)")
	pf.BoolP("verbose", "v", false, "verbose logging")

	_ = rootCmd.RegisterFlagCompletionFunc("memory-mode", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"in_place", "table", "rolling"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputText, config.OutputJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newSolveCommand())
	rootCmd.AddCommand(newBatchCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// getConfig retrieves the config stored by PersistentPreRunE.
func getConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{MemoryMode: "in_place", Output: config.OutputText, Workers: 1}
}

// getLogger retrieves the logger stored by PersistentPreRunE.
func getLogger(ctx context.Context) zerolog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(zerolog.Logger); ok {
		return l
	}
	return zerolog.Nop()
}
