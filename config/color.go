// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package config

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/go-air/benchplot/fault"
)

// single letter colours as accepted by matplotlib.
var shortColors = map[string]color.RGBA{
	"k": colornames.Black,
	"w": colornames.White,
	"r": colornames.Red,
	"g": colornames.Green,
	"b": colornames.Blue,
	"c": colornames.Cyan,
	"m": colornames.Magenta,
	"y": colornames.Yellow,
}

// ParseColor reads an SVG colour name ("darkorange"), a single letter
// colour ("k") or a hex triplet ("#1f77b4", "#fff").
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := shortColors[s]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	return nil, fault.Configf("unknown colour %q", s)
}

func parseHex(h string) (color.Color, error) {
	var r, g, b uint8
	switch len(h) {
	case 6:
		if _, e := fmt.Sscanf(h, "%02x%02x%02x", &r, &g, &b); e != nil {
			return nil, fault.Configf("bad hex colour #%s", h)
		}
	case 3:
		if _, e := fmt.Sscanf(h, "%1x%1x%1x", &r, &g, &b); e != nil {
			return nil, fault.Configf("bad hex colour #%s", h)
		}
		r, g, b = r*17, g*17, b*17
	default:
		return nil, fault.Configf("bad hex colour #%s", h)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
