// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/benchplot/fault"
)

func writeResult(t *testing.T, dir, prog string, rtimes map[string]float64) string {
	t.Helper()
	var parts []string
	for inst, v := range rtimes {
		parts = append(parts, fmt.Sprintf("%q: {\"status\": true, \"rtime\": %g, \"utime\": %g}", inst, v, v/2))
	}
	doc := fmt.Sprintf(`{"preamble": {"program": %q, "prog_alias": %q}, "stats": {%s}}`,
		prog, strings.ToUpper(prog), strings.Join(parts, ", "))
	p := filepath.Join(dir, prog+".json")
	require.NoError(t, os.WriteFile(p, []byte(doc), 0644))
	return p
}

func fixtures(t *testing.T) (string, string) {
	dir := t.TempDir()
	a := writeResult(t, dir, "gini", map[string]float64{"a.cnf": 1, "b.cnf": 2, "c.cnf": 400})
	b := writeResult(t, dir, "minisat", map[string]float64{"b.cnf": 4, "c.cnf": 8})
	return a, b
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(newApp(&out, &errOut))
	cmd.SetArgs(args)
	e := cmd.Execute()
	return out.String(), errOut.String(), e
}

type stat struct {
	Name    string   `json:"name"`
	Alias   string   `json:"alias"`
	Count   int      `json:"count"`
	Average *float64 `json:"average"`
}

func dryRun(t *testing.T, args ...string) []stat {
	t.Helper()
	out, _, e := run(t, append([]string{"plot", "--dry-run", "--report", "json"}, args...)...)
	require.NoError(t, e)
	var st []stat
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	return st
}

func TestPlotDryRun(t *testing.T) {
	a, b := fixtures(t)
	st := dryRun(t, a, b)
	require.Len(t, st, 2)
	assert.Equal(t, "GINI", st[0].Alias)
	assert.Equal(t, 2, st[0].Count)
	require.NotNil(t, st[0].Average)
	assert.Equal(t, 1.5, *st[0].Average)
	assert.Equal(t, 2, st[1].Count)

	st = dryRun(t, "--only", "minisat", "-r", "{minisat: MiniSat}", a, b)
	require.Len(t, st, 1)
	assert.Equal(t, "MiniSat", st[0].Alias)

	st = dryRun(t, "-k", "utime", "-t", "500", a)
	assert.Equal(t, 3, st[0].Count)
}

func TestPlotEnvAndConfigFile(t *testing.T) {
	a, _ := fixtures(t)
	t.Setenv("BENCHPLOT_TIMEOUT", "1.5")
	st := dryRun(t, a)
	assert.Equal(t, 1, st[0].Count)

	cfg := filepath.Join(t.TempDir(), "benchplot.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("key: utime\n"), 0644))
	st = dryRun(t, "--config", cfg, a)
	assert.Equal(t, 2, st[0].Count, "utime 0.5 and 1 within 1.5")

	st = dryRun(t, "--config", cfg, "--timeout", "1000", a)
	assert.Equal(t, 3, st[0].Count, "flags win over the environment")
}

func TestPlotSaves(t *testing.T) {
	a, b := fixtures(t)
	save := filepath.Join(t.TempDir(), "fig")
	out, _, e := run(t, "plot", "-p", "scatter", "-b", "svg", "--save-to", save, a, b)
	require.NoError(t, e)
	assert.Contains(t, out, "Saved to:")
	assert.Contains(t, out, save+".svg")
	_, e = os.Stat(save + ".svg")
	assert.NoError(t, e)
}

func TestPlotText(t *testing.T) {
	a, b := fixtures(t)
	out, _, e := run(t, "plot", "-b", "utf8", a, b)
	require.NoError(t, e)
	assert.Contains(t, out, "GINI")
	assert.NotContains(t, out, "Saved to")
}

func TestPlotErrors(t *testing.T) {
	a, b := fixtures(t)
	_, _, e := run(t, "plot", "-p", "scatter", "--save-to", filepath.Join(t.TempDir(), "x"), a, b, a)
	var ce *fault.CardinalityError
	require.True(t, errors.As(e, &ce), "got %v", e)
	assert.Equal(t, 3, ce.Got)

	_, _, e = run(t, "plot", "--backend", "bmp", a)
	var cfe *fault.ConfigError
	assert.True(t, errors.As(e, &cfe), "got %v", e)

	_, _, e = run(t, "plot")
	assert.Error(t, e)

	_, _, e = run(t, "plot", "--config", filepath.Join(t.TempDir(), "none.yaml"), a)
	assert.Error(t, e)
}

func TestList(t *testing.T) {
	a, b := fixtures(t)
	out, _, e := run(t, "list", a, b)
	require.NoError(t, e)
	assert.Contains(t, out, "a.cnf")
	assert.Contains(t, out, "?")

	out, _, e = run(t, "list", "--join", a, b)
	require.NoError(t, e)
	assert.NotContains(t, out, "a.cnf")
	assert.Contains(t, out, "b.cnf")
}

func TestDebugLogging(t *testing.T) {
	a, _ := fixtures(t)
	_, errOut, e := run(t, "--debug", "plot", "-d", a)
	require.NoError(t, e)
	assert.Contains(t, errOut, "loading")
}
