/*
 * plot.go, part of goterms.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * Goterms is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */

//Package termplot draws the (ML, MS) microstate count table of a subshell,
//the intermediate object of the method of microstates, as a bubble chart.
package termplot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/skelterjohn/go.matrix"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	terms "github.com/rmera/goterms"
)

//TablePlot draws a microstate count table as a bubble chart, MS on the x axis
//(physical, so the doubled values in mss are halved), ML on the y axis and the
//bubble area scaling with the count. counts must be indexed [row][column] with
//mls labeling rows and mss (doubled) labeling columns, the layout produced by
//terms.Table.CountsMatrix. The plot is saved as png; the extension is appended
//to plotname. Returns an error or nil.
func TablePlot(counts *matrix.DenseMatrix, mls, mss []int, title, plotname string) error {
	if counts == nil {
		panic("goTerms/termplot.TablePlot: given nil counts")
	}
	if counts.Rows() != len(mls) || counts.Cols() != len(mss) {
		return fmt.Errorf("goTerms/termplot.TablePlot: counts is %dx%d but %d MLs and %d MSs given", counts.Rows(), counts.Cols(), len(mls), len(mss))
	}
	pts := make(plotter.XYZs, 0, len(mls)*len(mss))
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for i, ml := range mls {
		for j, ms := range mss {
			c := counts.Get(i, j)
			if c == 0 {
				continue
			}
			if c < minZ {
				minZ = c
			}
			if c > maxZ {
				maxZ = c
			}
			pts = append(pts, plotter.XYZ{X: float64(ms) / 2, Y: float64(ml), Z: c})
		}
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "MS"
	p.Y.Label.Text = "ML"
	p.Add(plotter.NewGrid())
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	//the bubble area scales with the count
	minRadius, maxRadius := vg.Points(3), vg.Points(15)
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		d := 0.5 //all buckets the same size, as in an empty or full subshell
		if maxZ > minZ {
			_, _, z := pts.XYZ(i)
			d = (z - minZ) / (maxZ - minZ)
		}
		r := vg.Length(d)*(maxRadius-minRadius) + minRadius
		return draw.GlyphStyle{Color: color.RGBA{R: 255, A: 255}, Radius: r, Shape: draw.CircleGlyph{}}
	}
	p.Add(s)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(4*vg.Inch, 4*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}

//SubshellPlot enumerates the microstates of the subshell and plots its
//aggregation table, titled with the subshell notation.
func SubshellPlot(s *terms.Subshell, plotname string) error {
	micro := terms.Microstates(terms.States(s.Type()), s.Electrons())
	counts, mls, mss := terms.NewTable(micro).CountsMatrix()
	return TablePlot(counts, mls, mss, fmt.Sprintf("Microstates of %s", s), plotname)
}
