// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package render

import (
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/go-air/benchplot/config"
	"github.com/go-air/benchplot/fault"
	"github.com/go-air/benchplot/record"
)

// Cactus draws, for each record, its values in ascending order against
// the number of instances solved.
type Cactus struct {
	Out io.Writer // utf8 destination
}

// Render implements Renderer.
func (c *Cactus) Render(recs []*record.Record, p config.Plot) (string, error) {
	if len(recs) == 0 {
		return "", fault.Configf("nothing to plot")
	}
	switch {
	case p.Backend.Image():
		return c.image(recs, p)
	case p.Backend == config.HTML:
		return htmlCactus(recs, p)
	case p.Backend == config.UTF8:
		return "-", textCactus(c.Out, recs, TextSize)
	}
	return "", fault.Configf("backend %q cannot draw cactus plots", p.Backend)
}

// cactusXMax leaves room after the longest line.
func cactusXMax(recs []*record.Record, p config.Plot) float64 {
	if p.X.Max != 0 {
		return p.X.Max
	}
	n := 0
	for _, r := range recs {
		if r.Len() > n {
			n = r.Len()
		}
	}
	m := math.Ceil(float64(n)/100) * 100
	if m == 0 {
		m = 100
	}
	return m
}

func cactusYMax(p config.Plot) float64 {
	if p.Y.Max != 0 {
		return p.Y.Max
	}
	return p.Timeout
}

func cactusLabels(p config.Plot) (string, string) {
	x, y := p.X.Label, p.Y.Label
	if x == "" {
		x = "instances"
	}
	if y == "" {
		y = "CPU time (s)"
	}
	return x, y
}

func (c *Cactus) image(recs []*record.Record, p config.Plot) (string, error) {
	pl := plot.New()
	pl.X.Label.Text, pl.Y.Label.Text = cactusLabels(p)
	decorate(pl, p)

	styles := p.Styles.Cactus
	if len(styles) == 0 {
		styles = config.DefaultStyles().Cactus
	}
	order := styleOrder(recs, p.ByName)
	for i, r := range recs {
		vs := r.Sorted()
		pts := make(plotter.XYs, len(vs))
		for j, v := range vs {
			pts[j].X = float64(j + 1)
			pts[j].Y = v
		}
		line, points, e := plotter.NewLinePoints(pts)
		if e != nil {
			return "", e
		}
		st := styles[order[i]%len(styles)]
		col := colour(st.Color)
		line.Color = col
		line.Width = vg.Points(orDefault(st.Width, 1.5))
		line.Dashes = dashes(st.Dash)
		if len(pts) > 0 {
			pl.Add(line)
		}
		if g := glyph(st.Marker); g != nil {
			points.Shape = g
			points.Color = col
			points.Radius = vg.Points(orDefault(st.MarkerSize, 4) / 2)
			if len(pts) > 0 {
				pl.Add(points)
			}
			if p.Legend.Show {
				pl.Legend.Add(r.Alias(), line, points)
			}
		} else if p.Legend.Show {
			pl.Legend.Add(r.Alias(), line)
		}
	}
	pl.X.Min, pl.X.Max = p.X.Min, cactusXMax(recs, p)
	pl.Y.Min, pl.Y.Max = p.Y.Min, cactusYMax(p)
	return save(pl, p)
}
