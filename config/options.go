// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package config turns command line, file and environment settings into
// a validated, read-only plot configuration.
//
// Options is the loose form, filled by viper from flags, a config file
// and BENCHPLOT_* environment variables.  Normalize checks it and derives
// everything the loader and the renderers need, returning a Plot.  Plot
// is passed by value and never modified after Normalize.
package config

// Options holds settings as given by the user.  Keys match the long
// command line flag names.
type Options struct {
	Source   string  `mapstructure:"source"`
	PlotType string  `mapstructure:"plot-type"`
	Key      string  `mapstructure:"key"`
	Timeout  float64 `mapstructure:"timeout"`
	DryRun   bool    `mapstructure:"dry-run"`
	Report   string  `mapstructure:"report"`
	Backend  string  `mapstructure:"backend"`
	SaveTo   string  `mapstructure:"save-to"`
	Shape    string  `mapstructure:"shape"`
	FontSize float64 `mapstructure:"font-sz"`

	XMin   float64 `mapstructure:"x-min"`
	XMax   float64 `mapstructure:"x-max"`
	YMin   float64 `mapstructure:"y-min"`
	YMax   float64 `mapstructure:"y-max"`
	XLog   bool    `mapstructure:"x-log"`
	YLog   bool    `mapstructure:"y-log"`
	XLabel string  `mapstructure:"x-label"`
	YLabel string  `mapstructure:"y-label"`

	NoGrid    bool    `mapstructure:"no-grid"`
	GridColor string  `mapstructure:"grid-color"`
	GridStyle string  `mapstructure:"grid-style"`
	GridWidth float64 `mapstructure:"grid-width"`

	LegendLoc    string  `mapstructure:"lgd-loc"`
	ByName       bool    `mapstructure:"by-name"`
	Alpha        float64 `mapstructure:"alpha"`
	TimeoutLabel string  `mapstructure:"t-label"`
	TimeoutLoc   string  `mapstructure:"tol-loc"`
	Transparent  bool    `mapstructure:"transparent"`
	DefPath      string  `mapstructure:"def-path"`

	Only    []string `mapstructure:"only"`
	Replace string   `mapstructure:"replace"`

	DBLTB       bool     `mapstructure:"db-ltb"`
	DBIncorrect bool     `mapstructure:"db-incorrect"`
	DBProblems  []string `mapstructure:"db-problems"`
}

// Defaults returns the documented default Options.
func Defaults() Options {
	return Options{
		Source:     "json",
		PlotType:   "cactus",
		Key:        "rtime",
		Timeout:    305,
		Report:     string(ReportTable),
		Backend:    string(PNG),
		SaveTo:     "plot",
		Shape:      "standard",
		FontSize:   12,
		GridColor:  "black",
		GridStyle:  ":",
		GridWidth:  1,
		LegendLoc:  "upper left",
		Alpha:      0.3,
		TimeoutLoc: "after",
	}
}
