package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gosmd/internal/beam"
)

// ExportDiagram exports one series as a filled diagram image. The file
// format follows the extension (.png, .svg, .pdf); anything else gets
// .png appended.
func ExportDiagram(g beam.Grid, series []float64, b beam.AxisBounds, title, yLabel, filename string) error {
	if len(series) != len(g.X) {
		return fmt.Errorf("series length %d does not match grid length %d", len(series), len(g.X))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Beam station x"
	p.Y.Label.Text = yLabel
	p.Y.Min = b.Min
	p.Y.Max = b.Max
	p.Add(plotter.NewGrid())

	// Filled area between the curve and the zero baseline
	area := make(plotter.XYs, 0, len(g.X)+2)
	area = append(area, plotter.XY{X: g.X[0], Y: 0})
	for i := range g.X {
		area = append(area, plotter.XY{X: g.X[i], Y: series[i]})
	}
	area = append(area, plotter.XY{X: g.X[len(g.X)-1], Y: 0})

	fill, err := plotter.NewPolygon(area)
	if err != nil {
		return err
	}
	fill.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	fill.LineStyle.Color = color.RGBA{A: 0}
	p.Add(fill)

	pts := make(plotter.XYs, len(g.X))
	for i := range g.X {
		pts[i] = plotter.XY{X: g.X[i], Y: series[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	// Zero baseline
	zero, err := plotter.NewLine(plotter.XYs{
		{X: g.X[0], Y: 0},
		{X: g.X[len(g.X)-1], Y: 0},
	})
	if err != nil {
		return err
	}
	zero.LineStyle.Width = vg.Points(1)
	zero.LineStyle.Color = color.Gray{Y: 128}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zero)

	width := 8 * vg.Inch
	height := 4 * vg.Inch

	// Create directory if needed
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

// ExportShearMoment writes the shear and moment diagrams as two image
// files derived from one base path: base_shear.ext and base_moment.ext.
// It returns the file names actually written.
func ExportShearMoment(d *beam.Diagram, filename string) (shearFile, momentFile string, err error) {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	if ext == "" {
		ext = ".png"
	}
	shearFile = base + "_shear" + ext
	momentFile = base + "_moment" + ext

	vb, mb := d.Bounds()
	if err = ExportDiagram(d.Grid, d.V, vb, "Shear Force Diagram", "Shear V(x)", shearFile); err != nil {
		return "", "", err
	}
	if err = ExportDiagram(d.Grid, d.M, mb, "Bending Moment Diagram", "Moment M(x)", momentFile); err != nil {
		return "", "", err
	}
	return shearFile, momentFile, nil
}
