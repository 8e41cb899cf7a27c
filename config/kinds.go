// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package config

import (
	"strings"

	"github.com/go-air/benchplot/fault"
)

// SourceKind selects how source arguments are ingested.
type SourceKind int

const (
	SourceJSON  SourceKind = iota // result files in json
	SourceDB                      // experiment ids in the results datastore
	SourceSuite                   // gini bench run directories
)

var sourceNames = []string{"json", "db", "suite"}

func (k SourceKind) String() string {
	if k < 0 || int(k) >= len(sourceNames) {
		return "unknown"
	}
	return sourceNames[k]
}

// ParseSourceKind maps a name to a SourceKind.
func ParseSourceKind(s string) (SourceKind, error) {
	i, e := lookup(sourceNames, s, "source kind")
	return SourceKind(i), e
}

// PlotKind selects the chart.
type PlotKind int

const (
	Cactus PlotKind = iota
	Scatter
)

var plotNames = []string{"cactus", "scatter"}

func (k PlotKind) String() string {
	if k < 0 || int(k) >= len(plotNames) {
		return "unknown"
	}
	return plotNames[k]
}

// ParsePlotKind maps a name to a PlotKind.
func ParsePlotKind(s string) (PlotKind, error) {
	i, e := lookup(plotNames, s, "plot type")
	return PlotKind(i), e
}

// Backend is an output format.
type Backend string

const (
	PNG  Backend = "png"
	SVG  Backend = "svg"
	PDF  Backend = "pdf"
	EPS  Backend = "eps"
	TeX  Backend = "tex"
	HTML Backend = "html"
	UTF8 Backend = "utf8"
)

// backend aliases kept for the matplotlib names.
var backends = map[string]Backend{
	"png":  PNG,
	"svg":  SVG,
	"pdf":  PDF,
	"eps":  EPS,
	"ps":   EPS,
	"tex":  TeX,
	"pgf":  TeX,
	"html": HTML,
	"utf8": UTF8,
}

// ParseBackend maps a name to a Backend.
func ParseBackend(s string) (Backend, error) {
	b, ok := backends[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fault.Configf("unknown backend %q", s)
	}
	return b, nil
}

// Image reports whether b is drawn by the image renderer.
func (b Backend) Image() bool {
	switch b {
	case PNG, SVG, PDF, EPS, TeX:
		return true
	}
	return false
}

// Ext returns the file extension for b, empty for stream backends.
func (b Backend) Ext() string {
	if b == UTF8 {
		return ""
	}
	return "." + string(b)
}

// ReportFormat is the dry run output format.
type ReportFormat string

const (
	ReportTable ReportFormat = "table"
	ReportYAML  ReportFormat = "yaml"
	ReportJSON  ReportFormat = "json"
)

// ParseReportFormat maps a name to a ReportFormat.
func ParseReportFormat(s string) (ReportFormat, error) {
	switch f := ReportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case ReportTable, ReportYAML, ReportJSON:
		return f, nil
	case "":
		return ReportTable, nil
	}
	return "", fault.Configf("unknown report format %q", s)
}

func lookup(names []string, s, what string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return -1, fault.Configf("unknown %s %q, want one of %s", what, s, strings.Join(names, ", "))
}
