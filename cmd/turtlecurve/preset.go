package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"turtlecurve/internal/motif"
	"turtlecurve/internal/render"
	"turtlecurve/internal/turtle"
)

var (
	presetDepth     int
	presetOut       string
	presetMotifFile string
)

var presetCmd = &cobra.Command{
	Use:   "preset <motif>",
	Short: "Fractalize a unit segment with a named motif and emit SVG",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreset,
}

var motifsCmd = &cobra.Command{
	Use:   "motifs",
	Short: "List available motifs",
	Args:  cobra.NoArgs,
	RunE:  runMotifs,
}

func init() {
	presetCmd.Flags().IntVarP(&presetDepth, "depth", "d", 4, "substitution depth")
	presetCmd.Flags().StringVarP(&presetOut, "out", "o", "", "output SVG file (default stdout)")
	presetCmd.Flags().StringVar(&presetMotifFile, "motifs", "", "TOML file with extra motif definitions")
	motifsCmd.Flags().StringVar(&presetMotifFile, "motifs", "", "TOML file with extra motif definitions")
	rootCmd.AddCommand(presetCmd)
	rootCmd.AddCommand(motifsCmd)
}

func runPreset(cmd *cobra.Command, args []string) error {
	motifs := motif.Builtins()
	if presetMotifFile != "" {
		if err := loadMotifFile(presetMotifFile, motifs); err != nil {
			return err
		}
	}

	m, ok := motifs[args[0]]
	if !ok {
		return fmt.Errorf("unknown motif %s", args[0])
	}

	seq := turtle.NewSequence()
	seq.Forward(500)
	if err := seq.Fractalize(m, presetDepth); err != nil {
		return err
	}
	logger.Debug("Preset fractalized",
		zap.String("motif", args[0]),
		zap.Int("depth", presetDepth),
		zap.Int("moves", seq.Len()))

	return emitSVG(seq, presetOut, render.Options{})
}

func runMotifs(cmd *cobra.Command, args []string) error {
	motifs := motif.Builtins()
	if presetMotifFile != "" {
		if err := loadMotifFile(presetMotifFile, motifs); err != nil {
			return err
		}
	}
	names := make([]string, 0, len(motifs))
	for name := range motifs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-12s %d moves\n", name, motifs[name].Len())
	}
	return nil
}
