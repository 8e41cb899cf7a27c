// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/go-air/benchplot/fault"
)

// LineStyle is one cactus line.  Dash uses the matplotlib names
// ("-", "--", ":", "-.") and Marker the matplotlib marker letters.
type LineStyle struct {
	Color      string  `mapstructure:"color" json:"color" yaml:"color"`
	Dash       string  `mapstructure:"ls" json:"ls" yaml:"ls"`
	Width      float64 `mapstructure:"lw" json:"lw" yaml:"lw"`
	Marker     string  `mapstructure:"marker" json:"marker" yaml:"marker"`
	MarkerSize float64 `mapstructure:"ms" json:"ms" yaml:"ms"`
}

// MarkerStyle is the scatter point style.  Size is in points.
type MarkerStyle struct {
	Color     string  `mapstructure:"color" json:"color" yaml:"color"`
	Marker    string  `mapstructure:"marker" json:"marker" yaml:"marker"`
	EdgeColor string  `mapstructure:"edgecolor" json:"edgecolor" yaml:"edgecolor"`
	Size      float64 `mapstructure:"size" json:"size" yaml:"size"`
}

// Styles is the content of a style definition file.
type Styles struct {
	Cactus  []LineStyle `mapstructure:"cactus_linestyle" json:"cactus_linestyle" yaml:"cactus_linestyle"`
	Scatter MarkerStyle `mapstructure:"scatter_style" json:"scatter_style" yaml:"scatter_style"`
}

// DefaultStyles returns the built in style set.
func DefaultStyles() Styles {
	return Styles{
		Cactus: []LineStyle{
			{Color: "#1f77b4", Dash: "-", Width: 1.5, Marker: "o", MarkerSize: 3},
			{Color: "#d62728", Dash: "-", Width: 1.5, Marker: "s", MarkerSize: 3},
			{Color: "#2ca02c", Dash: "-", Width: 1.5, Marker: "^", MarkerSize: 3},
			{Color: "#ff7f0e", Dash: "--", Width: 1.5, Marker: "d", MarkerSize: 3},
			{Color: "#9467bd", Dash: "--", Width: 1.5, Marker: "x", MarkerSize: 3},
			{Color: "#8c564b", Dash: "-.", Width: 1.5, Marker: "+", MarkerSize: 3},
			{Color: "#e377c2", Dash: "-.", Width: 1.5, Marker: "*", MarkerSize: 3},
			{Color: "black", Dash: ":", Width: 1.5, Marker: "o", MarkerSize: 3},
		},
		Scatter: MarkerStyle{Color: "#1f77b4", Marker: "o", EdgeColor: "black", Size: 4},
	}
}

// LoadStyles reads a style file in any format viper understands.
// Missing parts keep their built in value.
func LoadStyles(path string) (Styles, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if e := v.ReadInConfig(); e != nil {
		return Styles{}, fmt.Errorf("style file %s: %w", path, e)
	}
	st := DefaultStyles()
	if v.IsSet("cactus_linestyle") {
		st.Cactus = nil
	}
	if e := v.Unmarshal(&st); e != nil {
		return Styles{}, fmt.Errorf("style file %s: %w", path, e)
	}
	if e := st.Validate(); e != nil {
		return Styles{}, e
	}
	return st, nil
}

// Validate checks the colours and dashes of st.
func (st Styles) Validate() error {
	if len(st.Cactus) == 0 {
		return fault.Configf("no cactus line styles")
	}
	for i, ls := range st.Cactus {
		if _, e := ParseColor(ls.Color); e != nil {
			return fault.Configf("cactus line style %d: %s", i, e)
		}
		if _, ok := gridStyles[ls.Dash]; ls.Dash != "" && !ok {
			return fault.Configf("cactus line style %d: unknown dash %q", i, ls.Dash)
		}
	}
	for _, c := range []string{st.Scatter.Color, st.Scatter.EdgeColor} {
		if c == "" {
			continue
		}
		if _, e := ParseColor(c); e != nil {
			return fault.Configf("scatter style: %s", e)
		}
	}
	return nil
}
