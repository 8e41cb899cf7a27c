// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package report

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"

	"github.com/go-air/benchplot/record"
)

// NameWidth is the number of trailing characters of instance names kept
// in listings.
const NameWidth = 40

// Listing prints one row per instance of any record in recs, with the
// value of each record or "?" when it has none.
func Listing(w io.Writer, recs []*record.Record) error {
	tw := tablewriter.NewWriter(w)
	hdr := make([]string, 0, len(recs)+2)
	hdr = append(hdr, "id", "name")
	for _, r := range recs {
		hdr = append(hdr, rtrunc(r.Alias(), 16))
	}
	tw.Header(hdr)
	for i, inst := range record.Union(recs) {
		row := make([]string, 0, len(recs)+2)
		row = append(row, fmt.Sprintf("%d", i), rtrunc(inst, NameWidth))
		for _, r := range recs {
			v, ok := r.Value(inst)
			if !ok {
				row = append(row, "?")
				continue
			}
			row = append(row, fmt.Sprintf("%8.2f", v))
		}
		if e := tw.Append(row); e != nil {
			return e
		}
	}
	return tw.Render()
}

// rtrunc keeps the last n runes of s.
func rtrunc(s string, n int) string {
	ct := utf8.RuneCountInString(s)
	j := 0
	for i := range s {
		if j >= ct-n {
			return s[i:]
		}
		j++
	}
	return s
}
