// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package record

import (
	"fmt"
	"sort"
)

// Type Record holds the accepted measurements of one program or
// experiment: a value per solved instance.
//
// A Record is read-only once made.  Derivations such as Restrict and
// WithAlias return new Records.
type Record struct {
	name  string
	alias string
	m     map[string]float64
}

// New creates a Record named name, shown as alias, holding a copy of m.
func New(name, alias string, m map[string]float64) *Record {
	c := make(map[string]float64, len(m))
	for k, v := range m {
		c[k] = v
	}
	return &Record{name: name, alias: alias, m: c}
}

// Name gives the identifier of the producing program or experiment.
func (r *Record) Name() string {
	return r.name
}

// Alias gives the label used in plots and reports.
func (r *Record) Alias() string {
	return r.alias
}

// Len returns the number of measurements.
func (r *Record) Len() int {
	return len(r.m)
}

// Value returns the measurement for instance inst.
func (r *Record) Value(inst string) (float64, bool) {
	v, ok := r.m[inst]
	return v, ok
}

// Has tests whether r holds a measurement for inst.
func (r *Record) Has(inst string) bool {
	_, ok := r.m[inst]
	return ok
}

// Keys returns the instance names in ascending order.
func (r *Record) Keys() []string {
	ks := make([]string, 0, len(r.m))
	for k := range r.m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

// Values returns the measurements in Keys order.
func (r *Record) Values() []float64 {
	ks := r.Keys()
	vs := make([]float64, len(ks))
	for i, k := range ks {
		vs[i] = r.m[k]
	}
	return vs
}

// Sorted returns the measurements in ascending order of value.
func (r *Record) Sorted() []float64 {
	vs := r.Values()
	sort.Float64s(vs)
	return vs
}

// Measurements returns a copy of the instance -> value map.
func (r *Record) Measurements() map[string]float64 {
	c := make(map[string]float64, len(r.m))
	for k, v := range r.m {
		c[k] = v
	}
	return c
}

// Restrict returns a new Record with the name and alias of r holding
// only the measurements of r whose instance is in keys.
func (r *Record) Restrict(keys []string) *Record {
	m := make(map[string]float64, len(keys))
	for _, k := range keys {
		if v, ok := r.m[k]; ok {
			m[k] = v
		}
	}
	return &Record{name: r.name, alias: r.alias, m: m}
}

// WithAlias returns a copy of r labelled alias.
func (r *Record) WithAlias(alias string) *Record {
	return &Record{name: r.name, alias: alias, m: r.m}
}

func (r *Record) String() string {
	return fmt.Sprintf("program_%s_solved_%d", r.name, len(r.m))
}
