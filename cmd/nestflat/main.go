// Package main implements the nestflat command-line tool: flatten nested
// JSON/YAML arrays from a file or stdin.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/nestflat/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli carries the state shared by all subcommands of one invocation.
type cli struct {
	configPath string
	verbose    bool
	output     string

	cfg    *config.Config
	logger *zap.Logger
}

// newRootCmd builds a fresh command tree. Tests build their own tree per case.
func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "nestflat",
		Short: "Flatten nested arrays",
		Long: `nestflat reads a nested JSON or YAML array and prints it flattened.

Irregular input is walked depth-first up to --depth levels. Rectangular
input can use --matrix, or a fixed --shape with the shape subcommand.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&c.output, "output", "o", "", "output format: json or yaml (overrides config)")

	root.AddCommand(c.flattenCmd(), c.shapeCmd(), c.inferCmd())

	return root
}

// setup loads the config and builds the logger.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = c.output
	}
	if c.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	logger, err := buildLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger = logger
	c.logger.Debug("configuration loaded",
		zap.String("path", c.configPath),
		zap.String("output", cfg.Output),
		zap.Any("flatten", cfg.Flatten))

	return nil
}

// buildLogger returns a production zap logger writing to stderr at level.
func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}

	return zc.Build()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
