// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package render

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/benchplot/config"
	"github.com/go-air/benchplot/fault"
	"github.com/go-air/benchplot/record"
)

func plotOf(t *testing.T, kind, backend string, mod func(*config.Options)) config.Plot {
	t.Helper()
	o := config.Defaults()
	o.PlotType = kind
	o.Backend = backend
	o.SaveTo = filepath.Join(t.TempDir(), "out", "plot")
	if mod != nil {
		mod(&o)
	}
	p, e := config.Normalize(o)
	require.NoError(t, e)
	return p
}

func sample() []*record.Record {
	return []*record.Record{
		record.New("a", "Solver A", map[string]float64{"i1": 1, "i2": 2, "i3": 3, "i5": 250}),
		record.New("b", "Solver B", map[string]float64{"i2": 5, "i3": 6, "i4": 7, "i5": 0.5}),
	}
}

func TestPairs(t *testing.T) {
	a := record.New("A", "A", map[string]float64{"i1": 1, "i2": 2, "i3": 3})
	b := record.New("B", "B", map[string]float64{"i2": 5, "i3": 6, "i4": 7})
	xs, ys, e := Pairs([]*record.Record{a, b})
	require.NoError(t, e)
	assert.Equal(t, []float64{2, 3}, xs)
	assert.Equal(t, []float64{5, 6}, ys)
	assert.Equal(t, 3, a.Len(), "input record modified")
}

func TestScatterCardinality(t *testing.T) {
	recs := append(sample(), record.New("c", "c", nil))
	_, e := New(plotOf(t, "scatter", "png", nil)).Render(recs, plotOf(t, "scatter", "png", nil))
	var ce *fault.CardinalityError
	require.True(t, errors.As(e, &ce), "got %v", e)
	assert.Equal(t, 3, ce.Got)
	assert.Equal(t, 2, ce.Want)
	assert.Contains(t, e.Error(), "3")

	_, _, e = Pairs(recs[:1])
	require.True(t, errors.As(e, &ce))
	assert.Equal(t, 1, ce.Got)
}

func requireFile(t *testing.T, path string) []byte {
	t.Helper()
	data, e := os.ReadFile(path)
	require.NoError(t, e)
	require.NotEmpty(t, data)
	return data
}

func TestCactusImages(t *testing.T) {
	for _, b := range []string{"png", "svg", "pdf", "ps", "pgf"} {
		t.Run(b, func(t *testing.T) {
			p := plotOf(t, "cactus", b, nil)
			out, e := New(p).Render(sample(), p)
			require.NoError(t, e)
			assert.Equal(t, p.Output, out)
			requireFile(t, out)
		})
	}
}

func TestCactusOptions(t *testing.T) {
	p := plotOf(t, "cactus", "svg", func(o *config.Options) {
		o.YLog = true
		o.YMin = 0.1
		o.ByName = true
		o.NoGrid = true
		o.LegendLoc = "off"
		o.Transparent = true
		o.XLabel = "solved"
	})
	out, e := New(p).Render(sample(), p)
	require.NoError(t, e)
	assert.Contains(t, string(requireFile(t, out)), "solved")
}

func TestCactusEmpty(t *testing.T) {
	p := plotOf(t, "cactus", "svg", nil)
	_, e := New(p).Render(nil, p)
	var ce *fault.ConfigError
	assert.True(t, errors.As(e, &ce))

	out, e := New(p).Render([]*record.Record{record.New("z", "z", nil)}, p)
	require.NoError(t, e)
	requireFile(t, out)
}

func TestScatterImages(t *testing.T) {
	for name, mod := range map[string]func(*config.Options){
		"default": nil,
		"before":  func(o *config.Options) { o.TimeoutLoc = "before" },
		"none":    func(o *config.Options) { o.TimeoutLoc = "none"; o.NoGrid = true },
		"log": func(o *config.Options) {
			o.XLog, o.YLog = true, true
			o.XMin = 0.1
		},
	} {
		t.Run(name, func(t *testing.T) {
			p := plotOf(t, "scatter", "svg", mod)
			out, e := New(p).Render(sample(), p)
			require.NoError(t, e)
			requireFile(t, out)
		})
	}
	p := plotOf(t, "scatter", "png", nil)
	out, e := New(p).Render(sample(), p)
	require.NoError(t, e)
	requireFile(t, out)
}

func TestHTML(t *testing.T) {
	p := plotOf(t, "cactus", "html", nil)
	out, e := New(p).Render(sample(), p)
	require.NoError(t, e)
	assert.Equal(t, ".html", filepath.Ext(out))
	data := string(requireFile(t, out))
	assert.Contains(t, data, "echarts")
	assert.Contains(t, data, "Solver A")

	p = plotOf(t, "scatter", "html", nil)
	out, e = New(p).Render(sample(), p)
	require.NoError(t, e)
	assert.Contains(t, string(requireFile(t, out)), "305 sec. timeout")
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	p := plotOf(t, "cactus", "utf8", nil)
	out, e := NewTo(p, &buf).Render(sample(), p)
	require.NoError(t, e)
	assert.Equal(t, "-", out)
	s := buf.String()
	assert.Contains(t, s, "250.00s|")
	assert.Contains(t, s, "¤ - Solver A")
	assert.Contains(t, s, "♠ - Solver B")

	buf.Reset()
	p = plotOf(t, "scatter", "utf8", nil)
	_, e = NewTo(p, &buf).Render(sample(), p)
	require.NoError(t, e)
	s = buf.String()
	assert.Contains(t, s, "★ - Solver A wins")
	assert.Contains(t, s, "☆ - Solver B wins")
	assert.Contains(t, s, "☆")
}

func TestStyleOrder(t *testing.T) {
	recs := []*record.Record{
		record.New("1", "zeta", nil),
		record.New("2", "alpha", nil),
		record.New("3", "mu", nil),
	}
	assert.Equal(t, []int{0, 1, 2}, styleOrder(recs, false))
	assert.Equal(t, []int{2, 0, 1}, styleOrder(recs, true))
}
