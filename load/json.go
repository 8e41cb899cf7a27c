// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package load

import (
	"fmt"
	"io"

	"github.com/tidwall/gjson"

	"github.com/go-air/benchplot/record"
)

// FromJSON reads a result document from r:
//
//	{"preamble": {"program": "gini", "prog_alias": "Gini"},
//	 "stats": {"inst.cnf": {"status": true, "rtime": 1.5}, ...}}
//
// Instances whose status is false are skipped.  Values of stat outside
// [lo, hi] are dropped.  src names the document in errors.
func FromJSON(r io.Reader, src, stat string, lo, hi float64) (*record.Record, error) {
	data, e := io.ReadAll(r)
	if e != nil {
		return nil, fmt.Errorf("reading %s: %w", src, e)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%s: invalid json", src)
	}
	doc := gjson.ParseBytes(data)
	name := doc.Get("preamble.program").String()
	alias := name
	if a := doc.Get("preamble.prog_alias"); a.Exists() {
		alias = a.String()
	}
	stats := doc.Get("stats")
	if !stats.IsObject() {
		return nil, fmt.Errorf("%s: no stats object", src)
	}
	m := make(map[string]float64)
	stats.ForEach(func(k, entry gjson.Result) bool {
		if !entry.Get("status").Bool() {
			return true
		}
		v, ok := entry.Map()[stat]
		if !ok || v.Type != gjson.Number {
			e = fmt.Errorf("%s: instance %q has no numeric %q", src, k.String(), stat)
			return false
		}
		if x := v.Float(); lo <= x && x <= hi {
			m[k.String()] = x
		}
		return true
	})
	if e != nil {
		return nil, e
	}
	return record.New(name, alias, m), nil
}
