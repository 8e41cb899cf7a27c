// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package report prints record statistics and instance listings.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/go-air/benchplot/config"
	"github.com/go-air/benchplot/record"
)

// Stat summarizes one record.  Min, Max and Average are nil when the
// record is empty.
type Stat struct {
	Name    string   `json:"name" yaml:"name"`
	Alias   string   `json:"alias" yaml:"alias"`
	Count   int      `json:"count" yaml:"count"`
	Min     *float64 `json:"min" yaml:"min"`
	Max     *float64 `json:"max" yaml:"max"`
	Average *float64 `json:"average" yaml:"average"`
}

// Stats computes a Stat per record.
func Stats(recs []*record.Record) []Stat {
	res := make([]Stat, len(recs))
	for i, r := range recs {
		s := Stat{Name: r.Name(), Alias: r.Alias(), Count: record.Count(r)}
		if v, e := record.Min(r); e == nil {
			s.Min = &v
		}
		if v, e := record.Max(r); e == nil {
			s.Max = &v
		}
		if v, e := record.Average(r); e == nil {
			s.Average = &v
		}
		res[i] = s
	}
	return res
}

// Write prints the statistics of recs to w in format f.
func Write(w io.Writer, recs []*record.Record, f config.ReportFormat) error {
	st := Stats(recs)
	switch f {
	case config.ReportYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if e := enc.Encode(st); e != nil {
			return e
		}
		return enc.Close()
	case config.ReportJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}
	tw := tablewriter.NewWriter(w)
	tw.Header("Program", "Alias", "Solved", "Min", "Max", "Average")
	for _, s := range st {
		if e := tw.Append(s.Name, s.Alias, strconv.Itoa(s.Count), num(s.Min), num(s.Max), num(s.Average)); e != nil {
			return e
		}
	}
	return tw.Render()
}

func num(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}
