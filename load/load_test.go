// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package load

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/go-air/benchplot/config"
	"github.com/go-air/benchplot/fault"
	"github.com/go-air/benchplot/store"
)

const solverDoc = `{
  "preamble": {"program": "gini", "prog_alias": "Gini 1.0"},
  "stats": {
    "a.cnf": {"status": true, "rtime": 10, "mem": 3},
    "b.cnf": {"status": true, "rtime": 60},
    "c.cnf": {"status": true, "rtime": 50},
    "d.cnf": {"status": false, "rtime": 10},
    "e.cnf": {"status": false}
  }
}`

func plotFor(t *testing.T, kind config.SourceKind, lo, hi float64) config.Plot {
	t.Helper()
	p, e := config.Normalize(config.Defaults())
	require.NoError(t, e)
	p.Source = kind
	p.RangeMin, p.RangeMax = lo, hi
	return p
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0644))
	return p
}

func requireConfigError(t *testing.T, e error) {
	t.Helper()
	var ce *fault.ConfigError
	require.Error(t, e)
	require.True(t, errors.As(e, &ce), "want *fault.ConfigError, got %T: %v", e, e)
}

func TestLoadJSONRange(t *testing.T) {
	src := writeTemp(t, "solver.json", []byte(solverDoc))
	l := &Loader{Log: zaptest.NewLogger(t)}
	recs, e := l.Load(context.Background(), []string{src}, plotFor(t, config.SourceJSON, 0, 50))
	require.NoError(t, e)
	require.Len(t, recs, 1)
	r := recs[0]
	assert.Equal(t, "gini", r.Name())
	assert.Equal(t, "Gini 1.0", r.Alias())
	assert.Equal(t, map[string]float64{"a.cnf": 10, "c.cnf": 50}, r.Measurements())
	assert.False(t, r.Has("d.cnf"), "instance without definite outcome loaded")
}

func TestLoadJSONBounds(t *testing.T) {
	src := writeTemp(t, "solver.json", []byte(solverDoc))
	l := &Loader{}
	for _, b := range [][2]float64{{0, 100}, {10, 10}, {11, 59}, {50, 60}, {61, 1000}} {
		recs, e := l.Load(context.Background(), []string{src}, plotFor(t, config.SourceJSON, b[0], b[1]))
		require.NoError(t, e)
		for k, v := range recs[0].Measurements() {
			assert.True(t, b[0] <= v && v <= b[1], "%s=%v outside %v", k, v, b)
			assert.NotEqual(t, "d.cnf", k)
		}
	}
	recs, e := l.Load(context.Background(), []string{src}, plotFor(t, config.SourceJSON, 0, 100))
	require.NoError(t, e)
	assert.Equal(t, 3, recs[0].Len())
}

func TestLoadDeterministic(t *testing.T) {
	src := writeTemp(t, "solver.json", []byte(solverDoc))
	l := &Loader{}
	p := plotFor(t, config.SourceJSON, 0, 305)
	a, e := l.Load(context.Background(), []string{src, src}, p)
	require.NoError(t, e)
	b, e := l.Load(context.Background(), []string{src}, p)
	require.NoError(t, e)
	require.Len(t, a, 2)
	assert.Equal(t, a[0].Measurements(), a[1].Measurements())
	assert.Equal(t, a[0].Measurements(), b[0].Measurements())
}

func TestLoadJSONErrors(t *testing.T) {
	l := &Loader{}
	p := plotFor(t, config.SourceJSON, 0, 305)
	bad := writeTemp(t, "bad.json", []byte(`{"preamble": `))
	_, e := l.Load(context.Background(), []string{bad}, p)
	require.Error(t, e)
	assert.Contains(t, e.Error(), "bad.json")

	src := writeTemp(t, "solver.json", []byte(solverDoc))
	p.Stat = "mem"
	_, e = l.Load(context.Background(), []string{src}, p)
	require.Error(t, e)
	assert.Contains(t, e.Error(), "b.cnf")

	_, e = l.Load(context.Background(), []string{filepath.Join(t.TempDir(), "none.json")}, p)
	assert.Error(t, e)
}

func TestLoadNoSources(t *testing.T) {
	_, e := (&Loader{}).Load(context.Background(), nil, plotFor(t, config.SourceJSON, 0, 1))
	requireConfigError(t, e)
	_, e = (&Loader{}).Load(context.Background(), []string{"x"}, plotFor(t, config.SourceKind(9), 0, 1))
	requireConfigError(t, e)
}

func TestAliasDefaultsToName(t *testing.T) {
	r, e := FromJSON(strings.NewReader(`{"preamble": {"program": "p"}, "stats": {}}`), "doc", "rtime", 0, 1)
	require.NoError(t, e)
	assert.Equal(t, "p", r.Alias())
	assert.Equal(t, 0, r.Len())
}

func TestOpenCompressed(t *testing.T) {
	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, e := zw.Write([]byte(solverDoc))
	require.NoError(t, e)
	require.NoError(t, zw.Close())

	enc, e := zstd.NewWriter(nil)
	require.NoError(t, e)
	zst := enc.EncodeAll([]byte(solverDoc), nil)
	require.NoError(t, enc.Close())

	l := &Loader{}
	p := plotFor(t, config.SourceJSON, 0, 50)
	recs, e := l.Load(context.Background(), []string{
		writeTemp(t, "solver.json.gz", gz.Bytes()),
		writeTemp(t, "solver.json.zst", zst)}, p)
	require.NoError(t, e)
	require.Len(t, recs, 2)
	for _, r := range recs {
		assert.Equal(t, map[string]float64{"a.cnf": 10, "c.cnf": 50}, r.Measurements())
	}
}

type fakeS3 struct {
	objects map[string]string
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	doc, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, fmt.Errorf("NoSuchKey: %s", *in.Key)
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(doc))}, nil
}

func TestOpenS3(t *testing.T) {
	l := &Loader{Opener: &Opener{S3: &fakeS3{objects: map[string]string{"results/2024/gini.json": solverDoc}}}}
	p := plotFor(t, config.SourceJSON, 0, 50)
	recs, e := l.Load(context.Background(), []string{"s3://results/2024/gini.json"}, p)
	require.NoError(t, e)
	assert.Equal(t, 2, recs[0].Len())

	_, e = l.Load(context.Background(), []string{"s3://results/missing.json"}, p)
	assert.Error(t, e)
}

func TestParseSpec(t *testing.T) {
	xs, e := ParseSpec(`{117213: "E 2.6", 42: Vampire, 7: "iProver"}`)
	require.NoError(t, e)
	assert.Equal(t, []Experiment{{117213, "E 2.6"}, {42, "Vampire"}, {7, "iProver"}}, xs)

	xs, e = ParseSpec(`{"5": "json form"}`)
	require.NoError(t, e)
	assert.Equal(t, []Experiment{{5, "json form"}}, xs)

	for _, s := range []string{"117213", "[1, 2]", "{abc: x}", "{1: a, 1: b}", "{}", "{1: [a]}", "{1: "} {
		_, e := ParseSpec(s)
		requireConfigError(t, e)
	}
}

type fakeStore struct {
	rows  map[int64][]store.Row
	calls []store.Solved
	err   error
}

func (f *fakeStore) Solved(ctx context.Context, q store.Solved) ([]store.Row, error) {
	f.calls = append(f.calls, q)
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[q.Experiment], nil
}

func TestLoadDB(t *testing.T) {
	fs := &fakeStore{rows: map[int64][]store.Row{
		2: {{Name: "ALG001+1", Runtime: 0.5}, {Name: "ALG002+1", Runtime: 20}},
		1: {{Name: "ALG001+1", Runtime: 3}}}}
	l := &Loader{Log: zaptest.NewLogger(t), Store: fs}
	p := plotFor(t, config.SourceDB, 1, 305)
	p.DBLTB = true
	p.DBProblems = []string{"ALG001+1"}
	recs, e := l.Load(context.Background(), []string{`{2: "second", 1: "first"}`}, p)
	require.NoError(t, e)
	require.Len(t, recs, 2)
	assert.Equal(t, "2", recs[0].Name())
	assert.Equal(t, "second", recs[0].Alias())
	assert.Equal(t, map[string]float64{"ALG002+1": 20}, recs[0].Measurements())
	assert.Equal(t, "first", recs[1].Alias())
	require.Len(t, fs.calls, 2)
	assert.Equal(t, store.Solved{Experiment: 2, Upper: 305, Problems: []string{"ALG001+1"}, LTB: true}, fs.calls[0])
}

func TestLoadDBErrors(t *testing.T) {
	fs := &fakeStore{err: errors.New("connection refused")}
	l := &Loader{Store: fs}
	p := plotFor(t, config.SourceDB, 0, 305)
	_, e := l.Load(context.Background(), []string{`{1: a}`}, p)
	require.Error(t, e)
	assert.Contains(t, e.Error(), "connection refused")

	_, e = l.Load(context.Background(), []string{`[1]`}, p)
	requireConfigError(t, e)

	_, e = l.Load(context.Background(), []string{`{1: a}`, `{2: b}`}, p)
	requireConfigError(t, e)

	p.Stat = "utime"
	_, e = l.Load(context.Background(), []string{`{1: a}`}, p)
	requireConfigError(t, e)
	assert.Len(t, fs.calls, 1)
}

func writeFile(t *testing.T, p, s string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(s), 0644))
}

// writeRun makes a two instance suite with one run; instance 0 is
// solved in 1.5s, instance 1 timed out.
func writeRun(t *testing.T) string {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "map"), "/bench/x.cnf\n/bench/y.cnf\n")
	writeFile(t, filepath.Join(dir, "bench-0.cnf"), "")
	writeFile(t, filepath.Join(dir, "bench-1.cnf"), "")
	root := filepath.Join(dir, "runs", "gini")
	for f, s := range map[string]string{
		"cmd": "gini", "desc": "gini default", "commit": "abc\n",
		"timeout":      fmt.Sprint(int64(time.Hour)),
		"inst-timeout": fmt.Sprint(int64(10 * time.Second)),
		"start":        "2016-03-01T10:00:00Z"} {
		writeFile(t, filepath.Join(root, f), s)
	}
	for i, res := range []struct {
		r   int
		dur time.Duration
	}{{1, 1500 * time.Millisecond}, {0, 10 * time.Second}} {
		p := filepath.Join(root, fmt.Sprintf("inst-%d.run", i))
		writeFile(t, filepath.Join(p, "result"), fmt.Sprint(res.r))
		writeFile(t, filepath.Join(p, "dur"), fmt.Sprint(int64(res.dur)))
		writeFile(t, filepath.Join(p, "udur"), fmt.Sprint(int64(res.dur/2)))
		writeFile(t, filepath.Join(p, "sdur"), "0")
		writeFile(t, filepath.Join(p, "start"), "2016-03-01T10:00:01Z")
	}
	return root
}

func TestLoadSuite(t *testing.T) {
	root := writeRun(t)
	l := &Loader{Log: zaptest.NewLogger(t)}
	p := plotFor(t, config.SourceSuite, 0, 305)
	recs, e := l.Load(context.Background(), []string{root}, p)
	require.NoError(t, e)
	require.Len(t, recs, 1)
	assert.Equal(t, "gini", recs[0].Name())
	assert.Equal(t, "gini default", recs[0].Alias())
	assert.Equal(t, map[string]float64{"/bench/x.cnf": 1.5}, recs[0].Measurements())

	p.Stat = "utime"
	recs, e = l.Load(context.Background(), []string{root}, p)
	require.NoError(t, e)
	assert.Equal(t, map[string]float64{"/bench/x.cnf": 0.75}, recs[0].Measurements())

	p.Stat = "mem"
	_, e = l.Load(context.Background(), []string{root}, p)
	requireConfigError(t, e)
}

func TestSelect(t *testing.T) {
	src := writeTemp(t, "solver.json", []byte(solverDoc))
	l := &Loader{}
	p := plotFor(t, config.SourceJSON, 0, 305)
	recs, e := l.Load(context.Background(), []string{src}, p)
	require.NoError(t, e)
	p.Replace = map[string]string{"gini": "G"}
	sel := Select(recs, p)
	assert.Equal(t, "G", sel[0].Alias())
	assert.Equal(t, "Gini 1.0", recs[0].Alias())
	p.Only = []string{"minisat"}
	assert.Empty(t, Select(recs, p))
}
