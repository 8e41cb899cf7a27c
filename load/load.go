// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package load turns source arguments into records.
//
// A source is a json result file, a datastore experiment specification
// or a bench run directory, depending on the configured source kind.
// Only instances with a definite outcome whose value lies in the
// configured range are kept.
package load

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/go-air/benchplot/config"
	"github.com/go-air/benchplot/fault"
	"github.com/go-air/benchplot/record"
	"github.com/go-air/benchplot/store"
)

// Loader loads records.  The zero value is usable: it logs nowhere,
// opens local files, stdin and S3 objects, and connects to the datastore
// with settings from the environment.
type Loader struct {
	Log    *zap.Logger
	Store  store.Querier
	Opener *Opener
}

// Load reads one record per source, in order.  Any failure aborts the
// whole load.
func (l *Loader) Load(ctx context.Context, sources []string, p config.Plot) ([]*record.Record, error) {
	if len(sources) == 0 {
		return nil, fault.Configf("no sources given")
	}
	lo, hi := p.RangeMin, p.RangeMax
	switch p.Source {
	case config.SourceJSON:
		res := make([]*record.Record, 0, len(sources))
		for _, src := range sources {
			l.log().Info("loading", zap.String("source", src))
			r, e := l.fromFile(ctx, src, p.Stat, lo, hi)
			if e != nil {
				return nil, e
			}
			res = append(res, r)
		}
		return res, nil
	case config.SourceDB:
		base := store.Solved{
			Problems:         p.DBProblems,
			LTB:              p.DBLTB,
			IncludeIncorrect: p.DBIncorrect}
		return l.fromDB(ctx, sources, base, p.Stat, lo, hi)
	case config.SourceSuite:
		res := make([]*record.Record, 0, len(sources))
		for _, src := range sources {
			l.log().Info("loading", zap.String("source", src))
			r, e := l.fromSuite(src, p.Stat, lo, hi)
			if e != nil {
				return nil, fmt.Errorf("%s: %w", src, e)
			}
			res = append(res, r)
		}
		return res, nil
	}
	return nil, fault.Configf("unknown source kind %d", int(p.Source))
}

// Select applies the --only and --replace settings of p to recs.
func Select(recs []*record.Record, p config.Plot) []*record.Record {
	return record.Relabel(record.Only(recs, p.Only), p.Replace)
}

func (l *Loader) fromFile(ctx context.Context, src, stat string, lo, hi float64) (*record.Record, error) {
	o := l.Opener
	if o == nil {
		o = &Opener{}
		l.Opener = o
	}
	rc, e := o.Open(ctx, src)
	if e != nil {
		return nil, e
	}
	defer rc.Close()
	return FromJSON(rc, src, stat, lo, hi)
}

func (l *Loader) querier() (store.Querier, error) {
	if l.Store != nil {
		return l.Store, nil
	}
	cfg, e := store.LoadConfig(".env")
	if e != nil {
		return nil, e
	}
	l.Store = store.New(cfg, l.log())
	return l.Store, nil
}

func (l *Loader) log() *zap.Logger {
	if l.Log == nil {
		l.Log = zap.NewNop()
	}
	return l.Log
}
