// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/go-air/benchplot/config"
	"github.com/go-air/benchplot/fault"
	"github.com/go-air/benchplot/record"
)

// Scatter compares two records instance by instance: the first gives x,
// the second y.  Only instances present in both are drawn.
type Scatter struct {
	Out io.Writer // utf8 destination
}

// Pairs joins the two records of recs and returns their values per
// common instance in key order.
func Pairs(recs []*record.Record) (xs, ys []float64, e error) {
	if len(recs) != 2 {
		return nil, nil, &fault.CardinalityError{Want: 2, Got: len(recs)}
	}
	j := record.Join(recs)
	if j[0].Len() != j[1].Len() {
		return nil, nil, &fault.ConsistencyError{
			Msg: fmt.Sprintf("%s has %d instances, %s has %d", j[0].Alias(), j[0].Len(), j[1].Alias(), j[1].Len())}
	}
	xs = j[0].Values()
	ys = j[1].Values()
	return xs, ys, nil
}

// Render implements Renderer.
func (s *Scatter) Render(recs []*record.Record, p config.Plot) (string, error) {
	xs, ys, e := Pairs(recs)
	if e != nil {
		return "", e
	}
	switch {
	case p.Backend.Image():
		return s.image(recs, xs, ys, p)
	case p.Backend == config.HTML:
		return htmlScatter(recs, xs, ys, p)
	case p.Backend == config.UTF8:
		return "-", textScatter(s.Out, recs, xs, ys, TextSize)
	}
	return "", fault.Configf("backend %q cannot draw scatter plots", p.Backend)
}

func scatterLabels(recs []*record.Record, p config.Plot) (string, string) {
	x, y := p.X.Label, p.Y.Label
	if x == "" {
		x = recs[0].Alias()
	}
	if y == "" {
		y = recs[1].Alias()
	}
	return x, y
}

// guide returns points of y = f*x over the x range of p.
func guide(p config.Plot, f float64) plotter.XYs {
	lo, hi := p.X.Min, p.X.Max
	var res plotter.XYs
	if p.X.Log && lo > 0 {
		// geometric steps keep the line straight on log axes
		for x := lo; x < hi; x *= 1.5 {
			res = append(res, plotter.XY{X: x, Y: f * x})
		}
		return append(res, plotter.XY{X: hi, Y: f * hi})
	}
	step := math.Ceil((hi - lo) / 10)
	if step <= 0 {
		step = 1
	}
	for x := lo; x < hi+step; x += step {
		res = append(res, plotter.XY{X: x, Y: f * x})
	}
	return res
}

func guideLine(xys plotter.XYs, c color.Color) (*plotter.Line, error) {
	l, e := plotter.NewLine(xys)
	if e != nil {
		return nil, e
	}
	l.Color = c
	l.Width = vg.Points(1.5)
	l.Dashes = dashes(":")
	return l, nil
}

var (
	green = color.RGBA{G: 0x80, A: 0xff}
	fill  = color.NRGBA{G: 0x80, A: 38}
	red   = color.RGBA{R: 0xff, A: 0xff}
)

func (s *Scatter) image(recs []*record.Record, xs, ys []float64, p config.Plot) (string, error) {
	pl := plot.New()
	pl.X.Label.Text, pl.Y.Label.Text = scatterLabels(recs, p)
	decorate(pl, p)

	diag := guide(p, 1)
	lo, hi := guide(p, 0.1), guide(p, 10)
	band := make(plotter.XYs, 0, len(lo)+len(hi))
	band = append(band, hi...)
	for i := len(lo) - 1; i >= 0; i-- {
		band = append(band, lo[i])
	}
	poly, e := plotter.NewPolygon(band)
	if e != nil {
		return "", e
	}
	poly.Color = fill
	poly.LineStyle.Width = 0
	pl.Add(poly)
	for _, g := range []struct {
		xys plotter.XYs
		c   color.Color
	}{{diag, color.Black}, {lo, green}, {hi, green}} {
		l, e := guideLine(g.xys, g.c)
		if e != nil {
			return "", e
		}
		pl.Add(l)
	}

	if p.TimeoutLoc != config.TimeoutNone {
		if e := timeoutLines(pl, p); e != nil {
			return "", e
		}
	}

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	ms := p.Styles.Scatter
	if ms.Marker == "" {
		ms = config.DefaultStyles().Scatter
	}
	sc, e := plotter.NewScatter(pts)
	if e != nil {
		return "", e
	}
	sc.Shape = glyph(ms.Marker)
	if sc.Shape == nil {
		sc.Shape = draw.CircleGlyph{}
	}
	sc.Color = withAlpha(colour(ms.Color), p.Alpha)
	sc.Radius = vg.Points(orDefault(ms.Size, 4) / 2)
	if len(pts) > 0 {
		pl.Add(sc)
	}
	if ms.EdgeColor != "" && len(pts) > 0 {
		edge, e := plotter.NewScatter(pts)
		if e != nil {
			return "", e
		}
		edge.Shape = draw.RingGlyph{}
		edge.Color = withAlpha(colour(ms.EdgeColor), p.Alpha)
		edge.Radius = sc.Radius
		pl.Add(edge)
	}

	pl.X.Min, pl.X.Max = p.X.Min, p.X.Max
	pl.Y.Min, pl.Y.Max = p.Y.Min, p.Y.Max
	return save(pl, p)
}

func timeoutLines(pl *plot.Plot, p config.Plot) error {
	t := p.Timeout
	v, e := guideLine(plotter.XYs{{X: t, Y: p.Y.Min}, {X: t, Y: p.Y.Max}}, red)
	if e != nil {
		return e
	}
	h, e := guideLine(plotter.XYs{{X: p.X.Min, Y: t}, {X: p.X.Max, Y: t}}, red)
	if e != nil {
		return e
	}
	v.Width, h.Width = vg.Points(1), vg.Points(1)
	pl.Add(v, h)

	off := t + p.X.Max/40
	if p.TimeoutLoc == config.TimeoutBefore {
		off = t - p.X.Max/3.5
	}
	start := 2 * p.X.Min
	if p.X.Log || p.Y.Log {
		off = math.Max(off, p.X.Min)
		start = math.Max(start, p.X.Min)
	}
	labels, e := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: start, Y: off}, {X: off, Y: start}},
		Labels: []string{p.TimeoutLabel, p.TimeoutLabel},
	})
	if e != nil {
		return e
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(p.FontSize * 0.8)
	}
	labels.TextStyle[1].Rotation = math.Pi / 2
	pl.Add(labels)
	return nil
}
