// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package record

import "sort"

// Intersect returns the instances present in every record of recs,
// sorted.  It returns nil for no records.
func Intersect(recs []*Record) []string {
	if len(recs) == 0 {
		return nil
	}
	res := make([]string, 0, recs[0].Len())
	for k := range recs[0].m {
		in := true
		for _, r := range recs[1:] {
			if !r.Has(k) {
				in = false
				break
			}
		}
		if in {
			res = append(res, k)
		}
	}
	sort.Strings(res)
	return res
}

// Join restricts each record in recs to the instances common to all of
// them.  The result has one new Record per input, in input order, each
// keeping its own values.  With fewer than two records, Join returns
// recs as is.
func Join(recs []*Record) []*Record {
	if len(recs) < 2 {
		return recs
	}
	common := Intersect(recs)
	res := make([]*Record, len(recs))
	for i, r := range recs {
		res[i] = r.Restrict(common)
	}
	return res
}

// Union returns every instance present in some record of recs, sorted.
func Union(recs []*Record) []string {
	seen := make(map[string]bool)
	for _, r := range recs {
		for k := range r.m {
			seen[k] = true
		}
	}
	res := make([]string, 0, len(seen))
	for k := range seen {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
