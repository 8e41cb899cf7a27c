// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Type InstRun is the recorded outcome of one instance in a Run.
//
// Result is 1 for sat, -1 for unsat and 0 when the solver gave no answer
// (timeout, crash or unknown exit status).
type InstRun struct {
	Run    *Run
	Inst   int
	Result int
	Start  time.Time
	Dur    time.Duration
	UDur   time.Duration
	SDur   time.Duration
	Error  string
}

// OpenInstRun reads the outcome of instance inst in run.
func OpenInstRun(run *Run, inst int) (*InstRun, error) {
	p := iRunPath(run.Root, inst)
	ir := &InstRun{
		Run:  run,
		Inst: inst}
	var e error
	if ir.Dur, e = p2d(iRunDurPath(p)); e != nil {
		return nil, e
	}
	if ir.UDur, e = p2d(iRunUDurPath(p)); e != nil {
		return nil, e
	}
	if ir.SDur, e = p2d(iRunSDurPath(p)); e != nil {
		return nil, e
	}
	if ir.Start, e = p2t(iRunStartPath(p)); e != nil {
		return nil, e
	}
	rs, e := p2s(iRunResPath(p))
	if e != nil {
		return nil, e
	}
	if _, e := fmt.Sscanf(rs, "%d", &ir.Result); e != nil {
		return nil, fmt.Errorf("%s: %w", iRunResPath(p), e)
	}
	ie, e := optional(p2s(iRunErrPath(p)))
	if e != nil {
		return nil, e
	}
	ir.Error = strings.TrimSpace(ie)
	return ir, nil
}

// Solved tests whether the solver answered sat or unsat.
func (ir *InstRun) Solved() bool {
	return ir.Result != 0
}

// Stat gives the duration named key in seconds: "rtime" is wall clock
// time, "utime" user time and "stime" system time.
func (ir *InstRun) Stat(key string) (float64, bool) {
	switch key {
	case "rtime":
		return ir.Dur.Seconds(), true
	case "utime":
		return ir.UDur.Seconds(), true
	case "stime":
		return ir.SDur.Seconds(), true
	}
	return 0, false
}

func iRunPath(root string, i int) string {
	return filepath.Join(root, fmt.Sprintf("inst-%d.run", i))
}
func iRunResPath(root string) string {
	return filepath.Join(root, "result")
}
func iRunDurPath(root string) string {
	return filepath.Join(root, "dur")
}
func iRunUDurPath(root string) string {
	return filepath.Join(root, "udur")
}
func iRunSDurPath(root string) string {
	return filepath.Join(root, "sdur")
}
func iRunErrPath(root string) string {
	return filepath.Join(root, "error")
}
func iRunStartPath(root string) string {
	return filepath.Join(root, "start")
}
