// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package render

import (
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/go-air/benchplot/config"
	"github.com/go-air/benchplot/record"
)

func dashes(style string) []vg.Length {
	switch style {
	case "--":
		return []vg.Length{vg.Points(6), vg.Points(3)}
	case ":":
		return []vg.Length{vg.Points(1), vg.Points(2)}
	case "-.":
		return []vg.Length{vg.Points(6), vg.Points(2), vg.Points(1), vg.Points(2)}
	}
	return nil
}

// glyph maps matplotlib marker letters to gonum glyphs; nil means no
// marker.
func glyph(marker string) draw.GlyphDrawer {
	switch marker {
	case "o", ".":
		return draw.CircleGlyph{}
	case "s":
		return draw.BoxGlyph{}
	case "^":
		return draw.TriangleGlyph{}
	case "v", "d", "D":
		return draw.PyramidGlyph{}
	case "x":
		return draw.CrossGlyph{}
	case "+":
		return draw.PlusGlyph{}
	case "*":
		return draw.RingGlyph{}
	case "S":
		return draw.SquareGlyph{}
	}
	return nil
}

// colour parses c falling back to black.  Styles are validated when
// loaded, so the fallback only applies to hand made Plots.
func colour(c string) color.Color {
	col, e := config.ParseColor(c)
	if e != nil {
		return color.Black
	}
	return col
}

func orDefault(v, d float64) float64 {
	if v <= 0 {
		return d
	}
	return v
}

func withAlpha(c color.Color, alpha float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(alpha*255 + 0.5)
	return n
}

// styleOrder gives for each record the index of its line style: input
// order, or alias order when byName is set.
func styleOrder(recs []*record.Record, byName bool) []int {
	res := make([]int, len(recs))
	for i := range res {
		res[i] = i
	}
	if !byName {
		return res
	}
	idx := make([]int, len(recs))
	copy(idx, res)
	sort.SliceStable(idx, func(a, b int) bool {
		return recs[idx[a]].Alias() < recs[idx[b]].Alias()
	})
	for pos, i := range idx {
		res[i] = pos
	}
	return res
}

// decorate applies the settings shared by both plot kinds.
func decorate(pl *plot.Plot, p config.Plot) {
	fs := vg.Points(p.FontSize)
	for _, ax := range []*plot.Axis{&pl.X, &pl.Y} {
		ax.Label.TextStyle.Font.Size = fs
		ax.Tick.Label.Font.Size = fs * 0.8
		ax.LineStyle.Width = vg.Points(1)
	}
	pl.Legend.TextStyle.Font.Size = fs
	pl.Legend.Top = p.Legend.Top
	pl.Legend.Left = p.Legend.Left
	if p.Transparent {
		pl.BackgroundColor = color.Transparent
	}
	if p.X.Log {
		pl.X.Scale = plot.LogScale{}
		pl.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if p.Y.Log {
		pl.Y.Scale = plot.LogScale{}
		pl.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if p.Grid.Show {
		g := plotter.NewGrid()
		for _, ls := range []*draw.LineStyle{&g.Vertical, &g.Horizontal} {
			ls.Color = p.Grid.Color
			ls.Width = vg.Points(p.Grid.Width)
			ls.Dashes = dashes(p.Grid.Style)
		}
		pl.Add(g)
	}
}

func save(pl *plot.Plot, p config.Plot) (string, error) {
	if e := makeDir(p.Output); e != nil {
		return "", e
	}
	if e := pl.Save(vg.Length(p.Width)*vg.Inch, vg.Length(p.Height)*vg.Inch, p.Output); e != nil {
		return "", e
	}
	return p.Output, nil
}
