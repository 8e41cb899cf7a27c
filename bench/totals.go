// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import "time"

// TotalResult counts the instance runs of r whose result satisfies filt.
func TotalResult(r *Run, filt func(r int) bool) int {
	ttl := 0
	for _, ir := range r.InstRuns {
		if filt(ir.Result) {
			ttl++
		}
	}
	return ttl
}

// SolveTotal gives the total number of solved instances
// for the run r.
func SolveTotal(r *Run) int {
	return TotalResult(r, func(r int) bool { return r != 0 })
}

func SatTotal(r *Run) int {
	return TotalResult(r, func(r int) bool { return r == 1 })
}

func UnsatTotal(r *Run) int {
	return TotalResult(r, func(r int) bool { return r == -1 })
}

func UnknownTotal(r *Run) int {
	return TotalResult(r, func(r int) bool { return r == 0 })
}

// Times sums the wall, user and system times of r in seconds.
func Times(r *Run) (real float64, user float64, sys float64) {
	sec := float64(time.Second)
	for _, ir := range r.InstRuns {
		real += float64(ir.Dur) / sec
		user += float64(ir.UDur) / sec
		sys += float64(ir.SDur) / sec
	}
	return
}

// SolvePortion gives the portion of instances in r solved.
func SolvePortion(r *Run) float64 {
	if len(r.InstRuns) == 0 {
		return 0
	}
	ttl := float64(SolveTotal(r))
	return ttl / float64(len(r.InstRuns))
}
