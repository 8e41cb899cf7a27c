// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Type Suite describes the inputs to benchmark runs.
// The info in the struct is read-only.
type Suite struct {
	Root  string   // root directory
	Insts []string // instance pathnames.
	Map   []string // map from instance to origin path
	Runs  []*Run   // runs linked to this input
}

// IsSuiteDir returns true if d appears to contain
// a bench.Suite
func IsSuiteDir(d string) bool {
	for _, p := range []string{
		d, suiteMapPath(d), suiteRunDir(d)} {
		_, ste := os.Stat(p)
		if ste != nil {
			return false
		}
	}
	return true
}

// OpenSuite opens a benchmark suite together with all its runs.  Runs
// which cannot be opened are logged to log and skipped.
func OpenSuite(root string, log *zap.Logger) (*Suite, error) {
	s, e := openSuite(root)
	if e != nil {
		return nil, e
	}
	if e := s.readRuns(log); e != nil {
		return nil, e
	}
	return s, nil
}

func openSuite(root string) (*Suite, error) {
	if !IsSuiteDir(root) {
		return nil, fmt.Errorf("%s is not a benchmark suite", root)
	}
	res := &Suite{Root: root}
	if e := res.readInsts(); e != nil {
		return nil, e
	}
	if e := res.readMap(); e != nil {
		return nil, e
	}
	if len(res.Map) != len(res.Insts) {
		return nil, fmt.Errorf("suite %s: %d instances but %d map entries", root, len(res.Insts), len(res.Map))
	}
	return res, nil
}

// Len returns the number of instances in the suite.
func (s *Suite) Len() int {
	return len(s.Insts)
}

// Origin gives the origin path of instance i.
func (s *Suite) Origin(i int) string {
	return s.Map[i]
}

// Run returns the run named name, or nil.
func (s *Suite) Run(name string) *Run {
	for _, r := range s.Runs {
		if r.Name == name {
			return r
		}
	}
	return nil
}

func (s *Suite) readInsts() error {
	files, e := os.ReadDir(s.Root)
	if e != nil {
		return e
	}
	iMap := make(map[int]string, len(files))
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		nm := f.Name()
		if nm == "map" || nm == "hash" {
			continue
		}
		j := -1
		if _, e := fmt.Sscanf(nm, "bench-%d.", &j); e != nil {
			continue
		}
		iMap[j] = nm
	}
	s.Insts = make([]string, len(iMap))
	for k, nm := range iMap {
		if k < 0 || k >= len(s.Insts) {
			return fmt.Errorf("bad ordering for instance path: %s", nm)
		}
		s.Insts[k] = nm
	}
	return nil
}

func (s *Suite) readMap() error {
	mf, e := os.Open(suiteMapPath(s.Root))
	if e != nil {
		return e
	}
	defer mf.Close()
	r := bufio.NewReader(mf)
	for {
		line, e := r.ReadString(byte('\n'))
		if e != nil && e != io.EOF {
			return e
		}
		line = strings.TrimSpace(line)
		if line != "" {
			s.Map = append(s.Map, line)
		}
		if e == io.EOF {
			return nil
		}
	}
}

func (s *Suite) readRuns(log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	rDir := suiteRunDir(s.Root)
	files, e := os.ReadDir(rDir)
	if e != nil {
		return e
	}
	for _, f := range files {
		if !f.IsDir() {
			continue
		}
		r, re := OpenRun(s, filepath.Join(rDir, f.Name()))
		if re != nil {
			log.Warn("skipping run", zap.String("run", f.Name()), zap.Error(re))
			continue
		}
		s.Runs = append(s.Runs, r)
	}
	return nil
}

func suiteMapPath(root string) string {
	return filepath.Join(root, "map")
}

func suiteRunDir(root string) string {
	return filepath.Join(root, "runs")
}
