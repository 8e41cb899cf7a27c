// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package render

import (
	"fmt"
	"image/color"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/go-air/benchplot/config"
	"github.com/go-air/benchplot/record"
)

const pxPerInch = 96

func css(c color.Color, alpha float64) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", n.R, n.G, n.B, alpha*float64(n.A)/255)
}

func cssDash(d string) string {
	switch d {
	case "--", "-.":
		return "dashed"
	case ":":
		return "dotted"
	}
	return "solid"
}

func axisType(log bool) string {
	if log {
		return "log"
	}
	return "value"
}

func initOpts(p config.Plot) charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		PageTitle: "benchplot",
		Width:     fmt.Sprintf("%dpx", int(p.Width*pxPerInch)),
		Height:    fmt.Sprintf("%dpx", int(p.Height*pxPerInch)),
	})
}

func htmlCactus(recs []*record.Record, p config.Plot) (string, error) {
	xl, yl := cactusLabels(p)
	line := charts.NewLine()
	line.SetGlobalOptions(
		initOpts(p),
		charts.WithXAxisOpts(opts.XAxis{Name: xl, Type: axisType(p.X.Log), Min: p.X.Min, Max: cactusXMax(recs, p)}),
		charts.WithYAxisOpts(opts.YAxis{Name: yl, Type: axisType(p.Y.Log), Min: p.Y.Min, Max: cactusYMax(p)}),
	)
	styles := p.Styles.Cactus
	if len(styles) == 0 {
		styles = config.DefaultStyles().Cactus
	}
	order := styleOrder(recs, p.ByName)
	for i, r := range recs {
		vs := r.Sorted()
		data := make([]opts.LineData, len(vs))
		for j, v := range vs {
			data[j] = opts.LineData{Value: []interface{}{j + 1, v}}
		}
		st := styles[order[i]%len(styles)]
		line.AddSeries(r.Alias(), data,
			charts.WithLineStyleOpts(opts.LineStyle{Color: css(colour(st.Color), 1), Type: cssDash(st.Dash)}))
	}
	return writeChart(p.Output, line.Render)
}

func htmlScatter(recs []*record.Record, xs, ys []float64, p config.Plot) (string, error) {
	xl, yl := scatterLabels(recs, p)
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		initOpts(p),
		charts.WithXAxisOpts(opts.XAxis{Name: xl, Type: axisType(p.X.Log), Min: p.X.Min, Max: p.X.Max}),
		charts.WithYAxisOpts(opts.YAxis{Name: yl, Type: axisType(p.Y.Log), Min: p.Y.Min, Max: p.Y.Max}),
	)
	data := make([]opts.ScatterData, len(xs))
	for i := range xs {
		data[i] = opts.ScatterData{Value: []interface{}{xs[i], ys[i]}}
	}
	ms := p.Styles.Scatter
	sc.AddSeries(fmt.Sprintf("%s vs %s", recs[0].Alias(), recs[1].Alias()), data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: css(colour(ms.Color), p.Alpha)}))

	guides := charts.NewLine()
	for _, g := range []struct {
		name string
		f    float64
		c    color.Color
	}{{"x", 1, color.Black}, {"x/10", 0.1, green}, {"10x", 10, green}} {
		xys := guide(p, g.f)
		gd := make([]opts.LineData, len(xys))
		for i, xy := range xys {
			gd[i] = opts.LineData{Value: []interface{}{xy.X, xy.Y}}
		}
		guides.AddSeries(g.name, gd,
			charts.WithLineStyleOpts(opts.LineStyle{Color: css(g.c, 1), Type: "dotted"}))
	}
	if p.TimeoutLoc != config.TimeoutNone {
		t := p.Timeout
		guides.AddSeries(p.TimeoutLabel, []opts.LineData{
			{Value: []interface{}{t, p.Y.Min}}, {Value: []interface{}{t, p.Y.Max}}},
			charts.WithLineStyleOpts(opts.LineStyle{Color: css(red, 1), Type: "dotted"}))
		guides.AddSeries(p.TimeoutLabel, []opts.LineData{
			{Value: []interface{}{p.X.Min, t}}, {Value: []interface{}{p.X.Max, t}}},
			charts.WithLineStyleOpts(opts.LineStyle{Color: css(red, 1), Type: "dotted"}))
	}
	sc.Overlap(guides)
	return writeChart(p.Output, sc.Render)
}
