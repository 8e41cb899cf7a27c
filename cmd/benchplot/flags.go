// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/go-air/benchplot/config"
	"github.com/go-air/benchplot/load"
	"github.com/go-air/benchplot/record"
)

// addDataFlags adds the flags deciding which records are loaded.
func addDataFlags(fs *pflag.FlagSet) {
	d := config.Defaults()
	fs.StringP("source", "s", d.Source, "source kind: json, db or suite")
	fs.StringP("key", "k", d.Key, "stat to extract per instance")
	fs.Float64P("timeout", "t", d.Timeout, "timeout in seconds, upper bound of kept values")
	fs.Float64("x-min", d.XMin, "x axis start")
	fs.Float64("x-max", d.XMax, "x axis end (0 is automatic)")
	fs.Float64("y-min", d.YMin, "y axis start")
	fs.Float64("y-max", d.YMax, "y axis end (0 is automatic)")
	fs.Bool("db-ltb", d.DBLTB, "datastore: count Theorem and Unsatisfiable statuses as solved")
	fs.Bool("db-incorrect", d.DBIncorrect, "datastore: keep results contradicting the expected status")
	fs.StringSlice("db-problems", d.DBProblems, "datastore: restrict to these problems")
	fs.StringSlice("only", d.Only, "keep only records with these names or aliases")
	fs.StringP("replace", "r", d.Replace, "mapping from record name to alias, eg '{gini: Gini}'")
}

// addPlotFlags adds the flags deciding how records are drawn or reported.
func addPlotFlags(fs *pflag.FlagSet) {
	d := config.Defaults()
	fs.StringP("plot-type", "p", d.PlotType, "plot kind: cactus or scatter")
	fs.BoolP("dry-run", "d", d.DryRun, "print statistics instead of plotting")
	fs.String("report", d.Report, "statistics format: table, yaml or json")
	fs.StringP("backend", "b", d.Backend, "pdf, pgf, png, ps, svg, eps, tex, html or utf8")
	fs.String("save-to", d.SaveTo, "output path, the backend extension is added when missing")
	fs.String("shape", d.Shape, "figure shape: standard, long or squared")
	fs.Float64("font-sz", d.FontSize, "font size in points")
	fs.Bool("x-log", d.XLog, "log scale x axis")
	fs.Bool("y-log", d.YLog, "log scale y axis")
	fs.String("x-label", d.XLabel, "x axis label")
	fs.String("y-label", d.YLabel, "y axis label")
	fs.Bool("no-grid", d.NoGrid, "hide the grid")
	fs.String("grid-color", d.GridColor, "grid colour")
	fs.String("grid-style", d.GridStyle, "grid line style: -, --, -. or :")
	fs.Float64("grid-width", d.GridWidth, "grid line width")
	fs.String("lgd-loc", d.LegendLoc, "legend location, eg 'lower right', best or off")
	fs.BoolP("by-name", "n", d.ByName, "assign line styles by alias order")
	fs.Float64P("alpha", "a", d.Alpha, "scatter marker transparency")
	fs.String("t-label", d.TimeoutLabel, "scatter timeout label")
	fs.String("tol-loc", d.TimeoutLoc, "timeout label location: after, before or none")
	fs.Bool("transparent", d.Transparent, "transparent background")
	fs.String("def-path", d.DefPath, "style definition file")
}

// options merges defaults, the config file, the environment and the
// flags of cmd.
func (a *app) options(cmd *cobra.Command) (config.Options, error) {
	o := config.Defaults()
	if e := a.v.BindPFlags(cmd.Flags()); e != nil {
		return o, e
	}
	if e := a.v.Unmarshal(&o); e != nil {
		return o, fmt.Errorf("options: %w", e)
	}
	return o, nil
}

// plot normalizes the options of cmd.
func (a *app) plot(cmd *cobra.Command) (config.Options, config.Plot, error) {
	o, e := a.options(cmd)
	if e != nil {
		return o, config.Plot{}, e
	}
	p, e := config.Normalize(o)
	return o, p, e
}

// records loads and selects the records named by sources.
func (a *app) records(ctx context.Context, sources []string, p config.Plot) ([]*record.Record, error) {
	l := a.loader
	if l == nil {
		l = &load.Loader{}
	}
	if l.Log == nil {
		l.Log = a.log.Named("load")
	}
	recs, e := l.Load(ctx, sources, p)
	if e != nil {
		return nil, e
	}
	return load.Select(recs, p), nil
}
