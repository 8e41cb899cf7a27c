// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package record

// Only returns the records of recs whose name or alias is in names, in
// recs order.  An empty names keeps everything.
func Only(recs []*Record, names []string) []*Record {
	if len(names) == 0 {
		return recs
	}
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}
	res := make([]*Record, 0, len(recs))
	for _, r := range recs {
		if keep[r.name] || keep[r.alias] {
			res = append(res, r)
		}
	}
	return res
}

// Relabel replaces aliases according to repl, which maps a record name
// or alias to its new alias.  Records without an entry are unchanged.
func Relabel(recs []*Record, repl map[string]string) []*Record {
	if len(repl) == 0 {
		return recs
	}
	res := make([]*Record, len(recs))
	for i, r := range recs {
		res[i] = r
		if a, ok := repl[r.name]; ok {
			res[i] = r.WithAlias(a)
		} else if a, ok := repl[r.alias]; ok {
			res[i] = r.WithAlias(a)
		}
	}
	return res
}
