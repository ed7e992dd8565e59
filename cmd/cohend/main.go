package main

import (
	"fmt"
	"os"

	"cohend/internal/config"
	"cohend/internal/effect"
	"cohend/internal/matrix"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	delimiter  string
	configPath string

	// Effective configuration (file < env < flag)
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cohend <CASE_FILE> <CONTROL_FILE> <OUTPUT_PATH>",
	Short: "Calculate Cohen's d of expression values",
	Long: `cohend computes Cohen's d, the standardized mean-difference effect
size, row by row between two delimited expression matrices: a 'case' cohort
and a 'control' cohort.

Both files share the same layout: a header line (ignored), then one row per
feature with the row name in the first column and numeric sample values in
the rest. The two files must contain the same rows in the same order. The
result is written as a CSV file with a row_names,cohen_d header.

Rows whose pooled standard deviation is zero have no defined effect size and
are reported as 0.`,
	Args:          cobra.ExactArgs(3),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("delimiter") {
			cfg.Input.Delimiter = delimiter
		}

		// Initialize logger
		zcfg := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0], args[1], args[2])
	},
}

// run executes the full pipeline: load both matrices, compute the per-row
// effect sizes, write the result CSV.
func run(casePath, controlPath, outputPath string) error {
	delim, err := cfg.DelimiterRune()
	if err != nil {
		return err
	}

	log := logger.With(zap.String("run_id", uuid.NewString()))
	log.Debug("starting run",
		zap.String("case", casePath),
		zap.String("control", controlPath),
		zap.String("output", outputPath),
		zap.String("delimiter", string(delim)))

	log.Info("reading case matrix", zap.String("path", casePath))
	cases, err := matrix.Read(casePath, delim)
	if err != nil {
		return fmt.Errorf("case matrix: %w", err)
	}

	log.Info("reading control matrix", zap.String("path", controlPath))
	controls, err := matrix.Read(controlPath, delim)
	if err != nil {
		return fmt.Errorf("control matrix: %w", err)
	}

	log.Info("computing Cohen's d",
		zap.Int("case_rows", cases.NumRows()),
		zap.Int("control_rows", controls.NumRows()))
	results, err := effect.Compute(cases, controls)
	if err != nil {
		return err
	}

	log.Info("writing results",
		zap.String("path", outputPath),
		zap.Int("rows", len(results)))
	if err := effect.WriteCSV(outputPath, results); err != nil {
		return err
	}

	log.Info("done")
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&delimiter, "delimiter", "d", "\t", "Delimiter of the input files")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "cohend.yaml", "Path to an optional YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
