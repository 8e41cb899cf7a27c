// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/go-air/benchplot/record"
	"github.com/go-air/benchplot/report"
)

func newListCmd(a *app) *cobra.Command {
	var join bool
	cmd := &cobra.Command{
		Use:   "list [flags] source [source ...]",
		Short: "list kept instances and their values per source",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, p, e := a.plot(cmd)
			if e != nil {
				return e
			}
			recs, e := a.records(cmd.Context(), args, p)
			if e != nil {
				return e
			}
			if join {
				recs = record.Join(recs)
			}
			return report.Listing(a.out, recs)
		},
	}
	addDataFlags(cmd.Flags())
	cmd.Flags().BoolVar(&join, "join", false, "list only instances common to all sources")
	return cmd
}
