// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-air/benchplot/config"
	"github.com/go-air/benchplot/render"
	"github.com/go-air/benchplot/report"
)

func newPlotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot [flags] source [source ...]",
		Short: "draw a cactus or scatter plot, or print statistics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, p, e := a.plot(cmd)
			if e != nil {
				return e
			}
			if o.DefPath != "" {
				st, e := config.LoadStyles(o.DefPath)
				if e != nil {
					return e
				}
				p.Styles = st
			}
			recs, e := a.records(cmd.Context(), args, p)
			if e != nil {
				return e
			}
			if p.DryRun {
				return report.Write(a.out, recs, p.Report)
			}
			a.log.Debug("rendering",
				zap.Stringer("kind", p.Kind),
				zap.String("backend", string(p.Backend)),
				zap.Int("records", len(recs)))
			where, e := render.NewTo(p, a.out).Render(recs, p)
			if e != nil {
				return e
			}
			if where != "-" {
				color.New(color.FgGreen).Fprint(a.out, "Saved to: ")
				fmt.Fprintln(a.out, where)
			}
			return nil
		},
	}
	addDataFlags(cmd.Flags())
	addPlotFlags(cmd.Flags())
	return cmd
}
