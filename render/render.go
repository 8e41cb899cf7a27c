// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package render draws cactus and scatter plots of records.
//
// Image backends (png, svg, pdf, eps, tex) are drawn with gonum plot,
// html with go-echarts, and utf8 as text on a writer.  Renderers never
// print anything besides the utf8 drawing itself.
package render

import (
	"io"
	"os"
	"path/filepath"

	"github.com/go-air/benchplot/config"
	"github.com/go-air/benchplot/record"
)

// Renderer draws records according to a plot configuration and returns
// the location of the result.
type Renderer interface {
	Render(recs []*record.Record, p config.Plot) (string, error)
}

// New returns the renderer for the plot kind of p.  Text drawings go to
// standard output.
func New(p config.Plot) Renderer {
	return NewTo(p, os.Stdout)
}

// NewTo is like New with text drawings going to w.
func NewTo(p config.Plot, w io.Writer) Renderer {
	if p.Kind == config.Scatter {
		return &Scatter{Out: w}
	}
	return &Cactus{Out: w}
}

// TextSize is the number of rows of utf8 drawings.
const TextSize = 20

func makeDir(path string) error {
	d := filepath.Dir(path)
	if d == "." || d == "" {
		return nil
	}
	return os.MkdirAll(d, 0755)
}

func create(path string) (*os.File, error) {
	if e := makeDir(path); e != nil {
		return nil, e
	}
	return os.Create(path)
}

func writeChart(path string, render func(w io.Writer) error) (string, error) {
	f, e := create(path)
	if e != nil {
		return "", e
	}
	if e := render(f); e != nil {
		f.Close()
		return "", e
	}
	if e := f.Close(); e != nil {
		return "", e
	}
	return path, nil
}
