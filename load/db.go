// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package load

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/go-air/benchplot/fault"
	"github.com/go-air/benchplot/record"
	"github.com/go-air/benchplot/store"
)

// DBStat is the only statistic the datastore provides.
const DBStat = "rtime"

// Experiment is one entry of a datastore source specification.
type Experiment struct {
	ID    int64
	Alias string
}

// ParseSpec reads a mapping from experiment id to alias, such as
// {117213: "E 2.6", 117214: "Vampire"}, keeping the order of the
// mapping.
func ParseSpec(s string) ([]Experiment, error) {
	var doc yaml.Node
	if e := yaml.Unmarshal([]byte(s), &doc); e != nil {
		return nil, fault.Configf("datastore specification %q: %s", s, e)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fault.Configf("datastore specification %q is not a mapping of experiment id to alias", s)
	}
	m := doc.Content[0]
	res := make([]Experiment, 0, len(m.Content)/2)
	seen := make(map[int64]bool, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return nil, fault.Configf("datastore specification %q: entry %d is not id: alias", s, i/2)
		}
		id, e := strconv.ParseInt(k.Value, 10, 64)
		if e != nil {
			return nil, fault.Configf("datastore specification %q: experiment id %q is not an integer", s, k.Value)
		}
		if seen[id] {
			return nil, fault.Configf("datastore specification %q: experiment %d given twice", s, id)
		}
		seen[id] = true
		res = append(res, Experiment{ID: id, Alias: v.Value})
	}
	if len(res) == 0 {
		return nil, fault.Configf("datastore specification %q names no experiment", s)
	}
	return res, nil
}

// FromDB queries the solved instances of x.  The datastore applies the
// upper bound hi; lo is applied here.
func FromDB(ctx context.Context, q store.Querier, x Experiment, base store.Solved, lo, hi float64) (*record.Record, error) {
	base.Experiment = x.ID
	base.Upper = hi
	rows, e := q.Solved(ctx, base)
	if e != nil {
		return nil, fmt.Errorf("experiment %d: %w", x.ID, e)
	}
	m := make(map[string]float64, len(rows))
	for _, row := range rows {
		if lo <= row.Runtime && row.Runtime <= hi {
			m[row.Name] = row.Runtime
		}
	}
	return record.New(strconv.FormatInt(x.ID, 10), x.Alias, m), nil
}

func (l *Loader) fromDB(ctx context.Context, sources []string, base store.Solved, stat string, lo, hi float64) ([]*record.Record, error) {
	if stat != DBStat {
		return nil, fault.Configf("the datastore only provides %q, not %q", DBStat, stat)
	}
	if len(sources) != 1 {
		return nil, fault.Configf("the datastore source takes one specification, %d given", len(sources))
	}
	xs, e := ParseSpec(sources[0])
	if e != nil {
		return nil, e
	}
	q, e := l.querier()
	if e != nil {
		return nil, e
	}
	res := make([]*record.Record, 0, len(xs))
	for _, x := range xs {
		l.log().Info("loading", zap.Int64("experiment", x.ID), zap.String("alias", x.Alias))
		r, e := FromDB(ctx, q, x, base, lo, hi)
		if e != nil {
			return nil, e
		}
		res = append(res, r)
	}
	return res, nil
}
