package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/jramirezbandera/ec2fiber/internal/ec2"
)

// ExportSectionDiagram exports the cross-section with its compression
// zone, neutral axis and reinforcement to an image file. Depths are
// drawn in the working frame: the compressed edge is at the top.
func ExportSectionDiagram(data SectionState, filename string) error {
	p := plot.New()
	p.Title.Text = "Section at Ultimate Bending State"
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	// Section outline; y plotted upward, compressed edge at y = Height.
	outline := plotter.XYs{
		{X: 0, Y: 0},
		{X: data.Width, Y: 0},
		{X: data.Width, Y: data.Height},
		{X: 0, Y: data.Height},
		{X: 0, Y: 0},
	}
	outlineLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	outlineLine.LineStyle.Width = vg.Points(2)
	outlineLine.LineStyle.Color = color.Black
	p.Add(outlineLine)

	// Compression zone down to the neutral axis.
	compZone, err := plotter.NewPolygon(plotter.XYs{
		{X: 0, Y: data.Height},
		{X: data.Width, Y: data.Height},
		{X: data.Width, Y: data.Height - data.NeutralAxisDepth},
		{X: 0, Y: data.Height - data.NeutralAxisDepth},
	})
	if err != nil {
		return err
	}
	compZone.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	compZone.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(compZone)

	// Neutral axis line.
	naY := data.Height - data.NeutralAxisDepth
	naLine, err := plotter.NewLine(plotter.XYs{
		{X: -20, Y: naY},
		{X: data.Width + 20, Y: naY},
	})
	if err != nil {
		return err
	}
	naLine.LineStyle.Width = vg.Points(1.5)
	naLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(naLine)

	// Reinforcement layers.
	for _, bar := range data.Bars {
		y := data.Height - bar.Y
		scatter, err := plotter.NewScatter(plotter.XYs{
			{X: data.Width * 0.3, Y: y},
			{X: data.Width * 0.5, Y: y},
			{X: data.Width * 0.7, Y: y},
		})
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
		scatter.GlyphStyle.Radius = vg.Points(5)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)

		label, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: data.Width + 30, Y: y}},
			Labels: []string{fmt.Sprintf("As=%.0fmm²", bar.Area)},
		})
		if err != nil {
			return err
		}
		p.Add(label)
	}

	naLabel, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: data.Width + 30, Y: naY}},
		Labels: []string{fmt.Sprintf("N.A. c=%.1fmm", data.NeutralAxisDepth)},
	})
	if err != nil {
		return err
	}
	p.Add(naLabel)

	return savePlot(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportStressDiagram exports the concrete stress profile over the
// section depth, sampled from the parabola-rectangle law at the
// converged curvature.
func ExportStressDiagram(data SectionState, filename string) error {
	p := plot.New()
	p.Title.Text = "Concrete Stress Distribution"
	p.X.Label.Text = "Stress (MPa)"
	p.Y.Label.Text = "Depth from compressed edge (mm)"

	// Depth increases downward.
	p.Y.Min = data.Height
	p.Y.Max = 0

	const samples = 200
	profile := make(plotter.XYs, samples+1)
	for i := 0; i <= samples; i++ {
		depth := float64(i) / samples * data.Height
		eps := data.Kappa * (data.NeutralAxisDepth - depth)
		profile[i] = plotter.XY{
			X: ec2.ConcreteStress(eps, data.Fcd, data.EpsC2, data.EpsCU2),
			Y: depth,
		}
	}
	profileLine, err := plotter.NewLine(profile)
	if err != nil {
		return err
	}
	profileLine.LineStyle.Width = vg.Points(2)
	profileLine.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	p.Add(profileLine)

	// Neutral axis reference.
	naLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: data.NeutralAxisDepth},
		{X: data.Fcd, Y: data.NeutralAxisDepth},
	})
	if err != nil {
		return err
	}
	naLine.LineStyle.Color = color.Gray{Y: 128}
	naLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(naLine)

	// Steel stresses as points on the same depth axis.
	if len(data.Bars) > 0 {
		pts := make(plotter.XYs, len(data.Bars))
		for i, bar := range data.Bars {
			pts[i] = plotter.XY{X: bar.Stress, Y: bar.Y}
		}
		steel, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		steel.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		steel.GlyphStyle.Radius = vg.Points(4)
		p.Add(steel)
	}

	return savePlot(p, 6*vg.Inch, 8*vg.Inch, filename)
}

// savePlot writes the plot in the format given by the file extension,
// defaulting to PNG.
func savePlot(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
