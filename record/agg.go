// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package record

import (
	"github.com/montanaflynn/stats"

	"github.com/go-air/benchplot/fault"
)

// Count returns the number of measurements in r.
func Count(r *Record) int {
	return r.Len()
}

// Min returns the smallest measurement in r.
func Min(r *Record) (float64, error) {
	return agg(r, stats.Min)
}

// Max returns the largest measurement in r.
func Max(r *Record) (float64, error) {
	return agg(r, stats.Max)
}

// Average returns the arithmetic mean of the measurements in r.
func Average(r *Record) (float64, error) {
	return agg(r, stats.Mean)
}

// Sum returns the total of the measurements in r, 0 for an empty r.
func Sum(r *Record) float64 {
	s, _ := stats.Sum(r.Values())
	return s
}

func agg(r *Record, f func(stats.Float64Data) (float64, error)) (float64, error) {
	if r.Len() == 0 {
		return 0, &fault.EmptyDataError{Name: r.name}
	}
	return f(r.Values())
}
