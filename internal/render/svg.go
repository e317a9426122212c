// Package render turns a move sequence into drawable output. It
// replays the moves from the origin at heading 90 and emits the
// resulting polyline as an SVG path.
package render

import (
	"fmt"
	"io"
	"math"

	"turtlecurve/internal/turtle"
)

// Point is a vertex of the traced path.
type Point struct {
	X, Y float64
}

// Trace replays seq from the origin and returns the polyline vertices,
// starting with the origin itself. The final vertex equals the
// sequence's cached net displacement.
func Trace(seq *turtle.Sequence) []Point {
	pts := []Point{{0, 0}}
	x, y := 0.0, 0.0
	heading := 90.0
	for _, m := range seq.Moves() {
		switch m.Kind {
		case turtle.Forward, turtle.Back:
			d := m.Amount
			if m.Kind == turtle.Back {
				d = -d
			}
			rad := heading * math.Pi / 180
			x += d * math.Cos(rad)
			y += d * math.Sin(rad)
			pts = append(pts, Point{x, y})
		case turtle.TurnLeft:
			heading += m.Amount
		case turtle.TurnRight:
			heading -= m.Amount
		}
	}
	return pts
}

// Options controls SVG output. Zero values fall back to defaults.
type Options struct {
	Stroke      string  // stroke color, default "black"
	StrokeWidth float64 // default 1
	Padding     float64 // whitespace around the drawing, default 10
}

// WriteSVG traces seq and writes it as a standalone SVG document. The
// Y axis is flipped so that heading 90 points up on screen.
func WriteSVG(w io.Writer, seq *turtle.Sequence, opts Options) error {
	if opts.Stroke == "" {
		opts.Stroke = "black"
	}
	if opts.StrokeWidth == 0 {
		opts.StrokeWidth = 1
	}
	if opts.Padding == 0 {
		opts.Padding = 10
	}

	pts := Trace(seq)
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := maxX - minX + 2*opts.Padding
	height := maxY - minY + 2*opts.Padding

	if _, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.3f %.3f">`+"\n",
		width, height); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<path fill="none" stroke=%q stroke-width="%g" d="`,
		opts.Stroke, opts.StrokeWidth); err != nil {
		return err
	}
	for i, p := range pts {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		// Flip Y so +Y in turtle space points up.
		if _, err := fmt.Fprintf(w, "%s%.3f %.3f ", cmd,
			p.X-minX+opts.Padding, maxY-p.Y+opts.Padding); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, `"/>`+"\n</svg>\n"); err != nil {
		return err
	}
	return nil
}
