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
	"time"
)

// Type Run describes a run of a command/solver on a *Suite
type Run struct {
	Root        string
	Name        string
	Suite       *Suite
	Cmd         string
	Desc        string
	Commit      string
	Env         map[string]string
	Arch        string
	Os          string
	NumCPU      int
	Start       time.Time
	Timeout     time.Duration
	InstTimeout time.Duration
	InstRuns    []*InstRun
	Missing     []int // instances without a readable result
}

// IsRunDir tests whether or not root looks like a run directory.
func IsRunDir(root string) bool {
	for _, p := range []string{
		root, runCmdPath(root), runDescPath(root), runCommitPath(root),
		runTimeoutPath(root), runInstTimeoutPath(root), runStartPath(root)} {
		_, ste := os.Stat(p)
		if ste != nil {
			return false
		}
	}
	return true
}

// OpenRunDir opens the run rooted at root together with the suite
// containing it, which is two levels up.  Other runs of the suite are
// not read.
func OpenRunDir(root string) (*Run, error) {
	root = filepath.Clean(root)
	if !IsRunDir(root) {
		return nil, fmt.Errorf("%s is not a run directory", root)
	}
	suite, e := openSuite(runSuitePath(root))
	if e != nil {
		return nil, e
	}
	r, e := OpenRun(suite, root)
	if e != nil {
		return nil, e
	}
	suite.Runs = []*Run{r}
	return r, nil
}

// OpenRun opens a Run.
func OpenRun(suite *Suite, root string) (*Run, error) {
	_, fn := filepath.Split(root)
	r := &Run{Root: root, Suite: suite, Name: fn}
	for _, rd := range []func() error{
		r.readCmd, r.readArch, r.readOs, r.readNumCpu, r.readDesc,
		r.readCommit, r.readEnv, r.readTimeout, r.readInstTimeout,
		r.readStart, r.readInstRuns} {
		if e := rd(); e != nil {
			return nil, fmt.Errorf("run %s: %w", fn, e)
		}
	}
	return r, nil
}

// Len returns the number of instances of the suite.
func (r *Run) Len() int {
	return len(r.Suite.Insts)
}

// Label gives the description of r, or its name when there is none.
func (r *Run) Label() string {
	if r.Desc != "" {
		return r.Desc
	}
	return r.Name
}

func (r *Run) readCmd() error {
	s, e := p2s(runCmdPath(r.Root))
	if e != nil {
		return e
	}
	r.Cmd = strings.TrimSpace(s)
	return nil
}

func (r *Run) readDesc() error {
	s, e := p2s(runDescPath(r.Root))
	if e != nil {
		return e
	}
	r.Desc = strings.TrimSpace(s)
	return nil
}

func (r *Run) readCommit() error {
	s, e := p2s(runCommitPath(r.Root))
	if e != nil {
		return e
	}
	r.Commit = strings.TrimSpace(s)
	return nil
}

func (r *Run) readArch() error {
	s, e := optional(p2s(runArchPath(r.Root)))
	if e != nil {
		return e
	}
	r.Arch = strings.TrimSpace(s)
	return nil
}

func (r *Run) readOs() error {
	s, e := optional(p2s(runOsPath(r.Root)))
	if e != nil {
		return e
	}
	r.Os = strings.TrimSpace(s)
	return nil
}

func (r *Run) readNumCpu() error {
	s, e := optional(p2s(runNumCpuPath(r.Root)))
	if e != nil || strings.TrimSpace(s) == "" {
		return e
	}
	n := 0
	if _, e := fmt.Sscanf(s, "%d", &n); e != nil {
		return fmt.Errorf("ncpu: %w", e)
	}
	r.NumCPU = n
	return nil
}

func (r *Run) readEnv() error {
	r.Env = make(map[string]string)
	f, e := os.Open(runEnvPath(r.Root))
	if os.IsNotExist(e) {
		return nil
	}
	if e != nil {
		return e
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		kv := sc.Text()
		if kv == "" {
			continue
		}
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("env entry %q", kv)
		}
		r.Env[k] = v
	}
	return sc.Err()
}

func (r *Run) readTimeout() error {
	d, e := p2d(runTimeoutPath(r.Root))
	if e != nil {
		return e
	}
	r.Timeout = d
	return nil
}

func (r *Run) readInstTimeout() error {
	d, e := p2d(runInstTimeoutPath(r.Root))
	if e != nil {
		return e
	}
	r.InstTimeout = d
	return nil
}

func (r *Run) readStart() error {
	t, e := p2t(runStartPath(r.Root))
	if e != nil {
		return e
	}
	r.Start = t
	return nil
}

func (r *Run) readInstRuns() error {
	for i := range r.Suite.Insts {
		ir, e := OpenInstRun(r, i)
		if e != nil {
			r.Missing = append(r.Missing, i)
			continue
		}
		r.InstRuns = append(r.InstRuns, ir)
	}
	return nil
}

func optional(s string, e error) (string, error) {
	if os.IsNotExist(e) {
		return "", nil
	}
	return s, e
}

func p2s(p string) (string, error) {
	buf, e := os.ReadFile(p)
	if e != nil {
		return "", e
	}
	return string(buf), nil
}

func p2d(p string) (time.Duration, error) {
	f, e := os.Open(p)
	if e != nil {
		return 0, e
	}
	defer f.Close()
	i := int64(0)
	if _, e := fmt.Fscanf(f, "%d", &i); e != nil && e != io.EOF {
		return 0, fmt.Errorf("%s: %w", p, e)
	}
	return time.Duration(i), nil
}

func p2t(p string) (time.Time, error) {
	var t time.Time
	s, e := p2s(p)
	if e != nil {
		return t, e
	}
	if e := t.UnmarshalText([]byte(strings.TrimSpace(s))); e != nil {
		return t, e
	}
	return t, nil
}

func runSuitePath(root string) string {
	return filepath.Join(root, "../../")
}
func runEnvPath(root string) string {
	return filepath.Join(root, "env")
}
func runDescPath(root string) string {
	return filepath.Join(root, "desc")
}
func runCmdPath(root string) string {
	return filepath.Join(root, "cmd")
}
func runCommitPath(root string) string {
	return filepath.Join(root, "commit")
}
func runStartPath(root string) string {
	return filepath.Join(root, "start")
}
func runArchPath(root string) string {
	return filepath.Join(root, "arch")
}
func runOsPath(root string) string {
	return filepath.Join(root, "os")
}
func runNumCpuPath(root string) string {
	return filepath.Join(root, "ncpu")
}
func runTimeoutPath(root string) string {
	return filepath.Join(root, "timeout")
}
func runInstTimeoutPath(root string) string {
	return filepath.Join(root, "inst-timeout")
}
