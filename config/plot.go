// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package config

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-air/benchplot/fault"
)

// Axis is one validated axis range.  Max 0 means derived from the data.
type Axis struct {
	Min   float64
	Max   float64
	Log   bool
	Label string
}

// Grid describes the background grid.
type Grid struct {
	Show  bool
	Color color.Color
	Style string // matplotlib line style: "-", "--", ":" or "-."
	Width float64
}

// Legend places the legend box.
type Legend struct {
	Show bool
	Top  bool
	Left bool
}

// TimeoutLoc places the scatter timeout label.
type TimeoutLoc string

const (
	TimeoutAfter  TimeoutLoc = "after"
	TimeoutBefore TimeoutLoc = "before"
	TimeoutNone   TimeoutLoc = "none"
)

// Plot is the normalized configuration consumed by the loader, the
// renderers and the report.
type Plot struct {
	Kind    PlotKind
	Source  SourceKind
	Backend Backend
	Stat    string
	Timeout float64

	// RangeMin and RangeMax bound accepted values, inclusive.
	RangeMin float64
	RangeMax float64

	X, Y Axis

	Grid         Grid
	Legend       Legend
	ByName       bool
	Alpha        float64
	TimeoutLabel string
	TimeoutLoc   TimeoutLoc
	Transparent  bool
	FontSize     float64

	// Output is the artifact path; Width and Height are in inches.
	Output string
	Width  float64
	Height float64

	DryRun bool
	Report ReportFormat

	Only    []string
	Replace map[string]string

	DBLTB       bool
	DBIncorrect bool
	DBProblems  []string

	Styles Styles
}

var shapes = map[string][2]float64{
	"standard": {8, 6},
	"long":     {12, 5},
	"squared":  {7, 7},
}

var gridStyles = map[string]string{
	"-": "-", "solid": "-",
	"--": "--", "dashed": "--",
	":": ":", "dotted": ":",
	"-.": "-.", "dashdot": "-.",
}

// Normalize validates o and derives a Plot from it.  It does not modify
// o.  Styles are set to DefaultStyles; callers replace them when a style
// file is given.
func Normalize(o Options) (Plot, error) {
	var p Plot
	var e error
	if p.Kind, e = ParsePlotKind(o.PlotType); e != nil {
		return Plot{}, e
	}
	if p.Source, e = ParseSourceKind(o.Source); e != nil {
		return Plot{}, e
	}
	if p.Backend, e = ParseBackend(o.Backend); e != nil {
		return Plot{}, e
	}
	if p.Report, e = ParseReportFormat(o.Report); e != nil {
		return Plot{}, e
	}
	p.Stat = strings.TrimSpace(o.Key)
	if p.Stat == "" {
		return Plot{}, fault.Configf("empty statistic key")
	}
	if !(o.Timeout > 0) {
		return Plot{}, fault.Configf("timeout must be positive, got %v", o.Timeout)
	}
	p.Timeout = o.Timeout
	p.DryRun = o.DryRun

	p.X = Axis{Min: o.XMin, Max: o.XMax, Log: o.XLog, Label: o.XLabel}
	p.Y = Axis{Min: o.YMin, Max: o.YMax, Log: o.YLog, Label: o.YLabel}
	p.RangeMax = o.Timeout
	p.RangeMin = RangeMin(p.Kind, o.XMin, o.YMin)
	if p.Kind == Scatter {
		if e := scatterAxes(&p.X, &p.Y, o.Timeout); e != nil {
			return Plot{}, e
		}
	} else if p.Y.Max == 0 {
		p.Y.Max = o.Timeout
	}
	for _, ax := range []struct {
		n string
		a Axis
	}{{"x", p.X}, {"y", p.Y}} {
		if ax.a.Log && !(ax.a.Min > 0) {
			return Plot{}, fault.Configf("log scale on the %s axis needs a positive minimum, got %v", ax.n, ax.a.Min)
		}
		if ax.a.Max != 0 && ax.a.Max <= ax.a.Min {
			return Plot{}, fault.Configf("%s axis maximum %v not above minimum %v", ax.n, ax.a.Max, ax.a.Min)
		}
	}

	p.Grid.Show = !o.NoGrid
	if p.Grid.Color, e = ParseColor(o.GridColor); e != nil {
		return Plot{}, e
	}
	st, ok := gridStyles[strings.TrimSpace(o.GridStyle)]
	if !ok {
		return Plot{}, fault.Configf("unknown grid style %q", o.GridStyle)
	}
	p.Grid.Style = st
	p.Grid.Width = o.GridWidth
	if p.Grid.Width <= 0 {
		p.Grid.Width = 1
	}

	if p.Legend, e = parseLegend(o.LegendLoc); e != nil {
		return Plot{}, e
	}
	p.ByName = o.ByName
	if o.Alpha < 0 || o.Alpha > 1 {
		return Plot{}, fault.Configf("alpha %v outside [0, 1]", o.Alpha)
	}
	p.Alpha = o.Alpha

	p.TimeoutLabel = o.TimeoutLabel
	if p.TimeoutLabel == "" {
		p.TimeoutLabel = fmt.Sprintf("%d sec. timeout", int(o.Timeout))
	}
	switch l := TimeoutLoc(strings.ToLower(o.TimeoutLoc)); l {
	case TimeoutAfter, TimeoutBefore, TimeoutNone:
		p.TimeoutLoc = l
	case "":
		p.TimeoutLoc = TimeoutAfter
	default:
		return Plot{}, fault.Configf("unknown timeout label location %q", o.TimeoutLoc)
	}
	p.Transparent = o.Transparent
	p.FontSize = o.FontSize
	if p.FontSize <= 0 {
		p.FontSize = 12
	}

	wh, ok := shapes[o.Shape]
	if !ok {
		return Plot{}, fault.Configf("unknown shape %q", o.Shape)
	}
	p.Width, p.Height = wh[0], wh[1]
	p.Output = OutputPath(o.SaveTo, p.Backend)

	p.Only = append([]string(nil), o.Only...)
	if p.Replace, e = parseReplace(o.Replace); e != nil {
		return Plot{}, e
	}
	p.DBLTB = o.DBLTB
	p.DBIncorrect = o.DBIncorrect
	p.DBProblems = append([]string(nil), o.DBProblems...)
	p.Styles = DefaultStyles()
	return p, nil
}

// RangeMin gives the lower bound of accepted values.  Scatter plots
// filter on both axes, so an explicit (non-zero) x minimum takes part;
// other plots filter on the y axis only.
func RangeMin(kind PlotKind, xMin, yMin float64) float64 {
	if kind == Scatter && xMin != 0 {
		return math.Max(xMin, yMin)
	}
	return yMin
}

// scatterAxes makes both axes of a scatter plot span the same range.
func scatterAxes(x, y *Axis, timeout float64) error {
	if x.Min == 0 {
		x.Min = y.Min
	} else {
		y.Min = x.Min
	}
	switch {
	case x.Max == 0 && y.Max == 0:
		m := 10.0
		for m < timeout {
			m *= 10
		}
		x.Max, y.Max = m, m
	case x.Max != 0 && y.Max != 0 && x.Max != y.Max:
		return fault.Configf("right-most positions must be the same for X and Y axes (%v != %v)", x.Max, y.Max)
	default:
		m := math.Max(x.Max, y.Max)
		x.Max, y.Max = m, m
	}
	return nil
}

// OutputPath adds the extension of b to saveTo unless present.
func OutputPath(saveTo string, b Backend) string {
	if b == UTF8 {
		return "-"
	}
	if saveTo == "" {
		saveTo = "plot"
	}
	if strings.EqualFold(filepath.Ext(saveTo), b.Ext()) {
		return saveTo
	}
	return saveTo + b.Ext()
}

func parseLegend(s string) (Legend, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "off", "none":
		return Legend{}, nil
	case "", "best":
		return Legend{Show: true, Top: true, Left: true}, nil
	case "center", "right":
		return Legend{Show: true, Top: true, Left: s == "center"}, nil
	}
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Legend{}, fault.Configf("unknown legend location %q", s)
	}
	l := Legend{Show: true}
	switch parts[0] {
	case "upper", "center":
		l.Top = true
	case "lower":
	default:
		return Legend{}, fault.Configf("unknown legend location %q", s)
	}
	switch parts[1] {
	case "left":
		l.Left = true
	case "right":
	default:
		return Legend{}, fault.Configf("unknown legend location %q", s)
	}
	return l, nil
}

// parseReplace reads a {"name": "alias"} mapping.  yaml accepts the json
// form as well.
func parseReplace(s string) (map[string]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	m := map[string]string{}
	if e := yaml.Unmarshal([]byte(s), &m); e != nil {
		return nil, fault.Configf("replacements %q are not a name -> alias mapping: %s", s, e)
	}
	return m, nil
}
