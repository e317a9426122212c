package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"turtlecurve/internal/interpreter"
	"turtlecurve/internal/motif"
	"turtlecurve/internal/turtle"
)

var (
	logger  *zap.Logger
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "turtlecurve",
	Short: "Compose and render turtle-graphics fractal curves",
	Long: "Turtlecurve executes turtle scripts that build move sequences,\n" +
		"reshape them (repeat, reverse, dilate, align, rescale, fractalize)\n" +
		"and renders the result as SVG.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, _ = config.Build()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadMotifFile compiles every motif from a TOML preset file into the
// given table, overriding builtins on name collision.
func loadMotifFile(path string, into map[string]*turtle.Sequence) error {
	defs, err := motif.LoadFile(path)
	if err != nil {
		return err
	}
	for _, d := range defs {
		seq, err := interpreter.CompileMotif(d.Script)
		if err != nil {
			return fmt.Errorf("motif %s: %w", d.Name, err)
		}
		into[d.Name] = seq
		logger.Debug("Loaded motif", zap.String("name", d.Name), zap.Int("moves", seq.Len()))
	}
	return nil
}
