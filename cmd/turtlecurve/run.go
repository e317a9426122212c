package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"turtlecurve/internal/interpreter"
	"turtlecurve/internal/render"
	"turtlecurve/internal/turtle"
)

var (
	runOut         string
	runMotifFile   string
	runStroke      string
	runStrokeWidth float64
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Execute a turtle script and emit the traced curve as SVG",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runOut, "out", "o", "", "output SVG file (default stdout)")
	runCmd.Flags().StringVar(&runMotifFile, "motifs", "", "TOML file with extra motif definitions")
	runCmd.Flags().StringVar(&runStroke, "stroke", "black", "stroke color")
	runCmd.Flags().Float64Var(&runStrokeWidth, "stroke-width", 1, "stroke width")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	prog, err := interpreter.Parse(string(data))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	ctx := interpreter.NewContext()
	if runMotifFile != "" {
		if err := loadMotifFile(runMotifFile, ctx.Motifs); err != nil {
			return err
		}
	}

	if err := prog.Exec(ctx); err != nil {
		return fmt.Errorf("executing %s: %w", args[0], err)
	}

	x, y := ctx.Seq.Net()
	logger.Debug("Script executed",
		zap.String("script", args[0]),
		zap.Int("moves", ctx.Seq.Len()),
		zap.Float64("netX", x),
		zap.Float64("netY", y),
		zap.Float64("heading", ctx.Seq.Heading()))

	return emitSVG(ctx.Seq, runOut, render.Options{
		Stroke:      runStroke,
		StrokeWidth: runStrokeWidth,
	})
}

// emitSVG writes the traced sequence to the given file, or to stdout
// when out is empty.
func emitSVG(seq *turtle.Sequence, out string, opts render.Options) error {
	if out == "" {
		return render.WriteSVG(os.Stdout, seq, opts)
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := render.WriteSVG(f, seq, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
