// Command cpkit is a judge-style driver for the cpkit primitives: it reads a
// test count t from stdin, then solves t independent cases of the chosen
// problem and prints one answer block per case.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/cpkit/internal/config"
)

// app carries what every subcommand shares once flags are parsed.
type app struct {
	configPath string
	workers    int
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "cpkit",
		Short: "Run discrete-algorithm primitives over judge-style input",
		Long: `cpkit reads "t" followed by t test cases from stdin and writes one
answer per case to stdout. Cases are independent and may be solved in
parallel (--workers); answers are always printed in input order.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().IntVar(&a.workers, "workers", 0, "cases solved concurrently (0 = from config)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(
		newSSSPCmd(a),
		newAssignCmd(a),
		newDSUCmd(a),
		newFenwickCmd(a),
		newFractionCmd(a),
		newMSTCmd(a),
	)

	return root
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.workers > 0 {
		cfg.Workers = a.workers
	}
	a.cfg = cfg

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if a.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger.Named(cmd.Name())
	a.logger.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.String("modulus", cfg.Modulus),
		zap.Int("workers", cfg.Workers),
	)

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
