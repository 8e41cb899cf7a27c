// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package load

import (
	"go.uber.org/zap"

	"github.com/go-air/benchplot/bench"
	"github.com/go-air/benchplot/fault"
	"github.com/go-air/benchplot/record"
)

// FromRun makes a record of the solved instances of run.  Instances are
// named by their origin path in the suite.
func FromRun(run *bench.Run, stat string, lo, hi float64) (*record.Record, error) {
	if _, ok := (&bench.InstRun{}).Stat(stat); !ok {
		return nil, fault.Configf("bench runs provide rtime, utime and stime, not %q", stat)
	}
	m := make(map[string]float64, len(run.InstRuns))
	for _, ir := range run.InstRuns {
		if !ir.Solved() {
			continue
		}
		v, _ := ir.Stat(stat)
		if lo <= v && v <= hi {
			m[run.Suite.Origin(ir.Inst)] = v
		}
	}
	return record.New(run.Name, run.Label(), m), nil
}

func (l *Loader) fromSuite(src, stat string, lo, hi float64) (*record.Record, error) {
	run, e := bench.OpenRunDir(src)
	if e != nil {
		return nil, e
	}
	real, user, sys := bench.Times(run)
	l.log().Debug("run",
		zap.String("run", run.Name),
		zap.Int("solved", bench.SolveTotal(run)),
		zap.Int("sat", bench.SatTotal(run)),
		zap.Int("unsat", bench.UnsatTotal(run)),
		zap.Int("unknown", bench.UnknownTotal(run)),
		zap.Int("missing", len(run.Missing)),
		zap.Float64("rtime", real),
		zap.Float64("utime", user),
		zap.Float64("stime", sys))
	return FromRun(run, stat, lo, hi)
}
