package plotting

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/turbomachlab/rigscale/core"
)

// RenderOperatingMap draws the compressor operating map (mass-flow rate
// against stagnation pressure ratio) with three overlaid series: every
// tabulated point, the valid scored subset, and the optimal point whose
// legend entry carries its scale. The plot is written to path as a PNG.
//
// A result without a solution has nothing to highlight, so rendering one
// is an error; callers skip the plot in that case.
func RenderOperatingMap(points core.OperatingMap, result core.Result, path string) error {
	if !result.Found {
		return fmt.Errorf("RenderOperatingMap: result has no optimal point")
	}

	p := plot.New()
	p.Title.Text = "Compressor Operating Map"
	p.X.Label.Text = "Reference Mass Flow Rate (kg/s)"
	p.Y.Label.Text = "Stagnation Pressure Ratio (P02/P01)"
	p.Add(plotter.NewGrid())

	all := make(plotter.XYs, len(points))
	for i, pt := range points {
		all[i].X = pt.MdotRef
		all[i].Y = pt.P0Ratio
	}
	allScatter, err := plotter.NewScatter(all)
	if err != nil {
		return fmt.Errorf("RenderOperatingMap: all-points series: %w", err)
	}
	allScatter.GlyphStyle = draw.GlyphStyle{
		Color:  color.RGBA{R: 70, G: 130, B: 180, A: 128},
		Radius: vg.Points(2.5),
		Shape:  draw.CircleGlyph{},
	}
	p.Add(allScatter)
	p.Legend.Add("All Points", allScatter)

	valid := make(plotter.XYs, len(result.Valid))
	for i, sp := range result.Valid {
		valid[i].X = sp.MdotRef
		valid[i].Y = sp.P0Ratio
	}
	validScatter, err := plotter.NewScatter(valid)
	if err != nil {
		return fmt.Errorf("RenderOperatingMap: valid-points series: %w", err)
	}
	validScatter.GlyphStyle = draw.GlyphStyle{
		Color:  color.RGBA{R: 255, G: 140, B: 0, A: 255},
		Radius: vg.Points(3),
		Shape:  draw.BoxGlyph{},
	}
	p.Add(validScatter)
	p.Legend.Add("Valid Points", validScatter)

	optimal := plotter.XYs{{X: result.Optimal.MdotRef, Y: result.Optimal.P0Ratio}}
	optimalScatter, err := plotter.NewScatter(optimal)
	if err != nil {
		return fmt.Errorf("RenderOperatingMap: optimal-point series: %w", err)
	}
	optimalScatter.GlyphStyle = draw.GlyphStyle{
		Color:  color.RGBA{R: 178, G: 34, B: 34, A: 255},
		Radius: vg.Points(5),
		Shape:  draw.PyramidGlyph{},
	}
	p.Add(optimalScatter)
	p.Legend.Add(fmt.Sprintf("Optimal Point (scale = %.3f)", result.Optimal.Scale), optimalScatter)

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("RenderOperatingMap: save %q: %w", path, err)
	}
	return nil
}
