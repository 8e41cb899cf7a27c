// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-air/benchplot/record"
)

const ticks = "¤♠☆Ϟ★Ω▽◇✠♡☼·₁₂₃₄₅₆₇₈₉"

// canvas is a text image with 2n columns and n rows, making up for the
// width/height ratio of most monospaced fonts.
type canvas struct {
	n    int
	rows [][]rune
}

func newCanvas(n int) *canvas {
	c := &canvas{n: n, rows: make([][]rune, n)}
	for i := range c.rows {
		c.rows[i] = []rune(strings.Repeat(" ", 2*n))
	}
	return c
}

// scale maps v in [0, hi] to a cell index.
func (c *canvas) scale(v, hi float64) int {
	if hi <= 0 {
		return 0
	}
	i := int(v / hi * float64(c.n-1))
	if i < 0 {
		return 0
	}
	if i >= c.n {
		return c.n - 1
	}
	return i
}

func (c *canvas) set(x, y int, r rune) {
	c.rows[c.n-1-y][2*x] = r
}

func (c *canvas) at(x, y int) rune {
	return c.rows[c.n-1-y][2*x]
}

// textCactus draws recs as a utf8 cactus plot on w.
func textCactus(w io.Writer, recs []*record.Record, n int) error {
	maxV, maxLen := 0.0, 0
	for _, r := range recs {
		if r.Len() > maxLen {
			maxLen = r.Len()
		}
		for _, v := range r.Values() {
			if v > maxV {
				maxV = v
			}
		}
	}
	c := newCanvas(n)
	syms := []rune(ticks)
	for ri, r := range recs {
		tick := syms[ri%len(syms)]
		for j, v := range r.Sorted() {
			c.set(c.scale(float64(j), float64(maxLen)), c.scale(v, maxV), tick)
		}
	}
	mds := fmt.Sprintf("%.2fs", maxV)
	pad := strings.Repeat(" ", len(mds))
	var b strings.Builder
	for i, row := range c.rows {
		lbl := pad
		switch i {
		case 0:
			lbl = mds
		case n - 1:
			lbl = fmt.Sprintf("%*s", len(mds), "0s")
		}
		fmt.Fprintf(&b, "%s|%s\n", lbl, string(row))
	}
	fmt.Fprintf(&b, "%s+%s\n", pad, strings.Repeat("-", 2*n))
	fmt.Fprintf(&b, "%s 0%*d\n", pad, 2*n-1, maxLen)
	for ri, r := range recs {
		fmt.Fprintf(&b, "%s\t%c - %s\n", pad, syms[ri%len(syms)], r.Alias())
	}
	_, e := io.WriteString(w, b.String())
	return e
}

// textScatter draws the pairs xs, ys as a utf8 scatter plot on w.  Points
// above the diagonal are instances where the first record wins.
func textScatter(w io.Writer, recs []*record.Record, xs, ys []float64, n int) error {
	top := 0.0
	for i := range xs {
		if xs[i] > top {
			top = xs[i]
		}
		if ys[i] > top {
			top = ys[i]
		}
	}
	c := newCanvas(n)
	for i := 0; i < n; i++ {
		c.set(i, i, '/')
	}
	for i := range xs {
		xi, yi := c.scale(xs[i], top), c.scale(ys[i], top)
		switch {
		case xi < yi:
			c.set(xi, yi, '★')
		case xi > yi:
			c.set(xi, yi, '☆')
		case c.at(xi, yi) == '/':
			c.set(xi, yi, '◇')
		}
	}
	var b strings.Builder
	for _, row := range c.rows {
		fmt.Fprintf(&b, "%s\n", string(row))
	}
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 2*n))
	fmt.Fprintf(&b, "\t%s - %s wins\n\t%s - %s wins\n\t%s - tie\n",
		"★", recs[0].Alias(), "☆", recs[1].Alias(), "◇")
	_, e := io.WriteString(w, b.String())
	return e
}
