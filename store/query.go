// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package store

import (
	"context"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// LibraryVersion is the problem library version problem sets refer to.
const LibraryVersion = 64

// Solved selects the solved problems of one experiment.
type Solved struct {
	Experiment int64
	// Upper bounds the runtime when positive.
	Upper float64
	// Problems restricts the result to these problem names when not empty.
	Problems []string
	// LTB counts only Theorem and Unsatisfiable answers as solved;
	// otherwise the solved flag of the status decides.
	LTB bool
	// IncludeIncorrect keeps answers contradicting the known status.
	IncludeIncorrect bool
}

// Row is one solved problem.
type Row struct {
	Name    string  `bun:"name"`
	Runtime float64 `bun:"runtime"`
}

// Querier runs Solved queries.
type Querier interface {
	Solved(ctx context.Context, q Solved) ([]Row, error)
}

// SolvedQuery builds the select for q on db.
func SolvedQuery(db bun.IDB, q Solved) *bun.SelectQuery {
	sel := db.NewSelect().
		ColumnExpr("p.problemname AS name").
		ColumnExpr("pr.runtime AS runtime").
		TableExpr("problemrun AS pr").
		Join("JOIN problemversion AS pv ON pv.problemversionid = pr.problem").
		Join("JOIN szsstatus AS sl ON pv.status = sl.szsstatusid").
		Join("JOIN szsstatus AS sr ON pr.status = sr.szsstatusid").
		Join("JOIN problem AS p ON p.problemid = pv.problem").
		Where("pr.experiment = ?", q.Experiment)
	if len(q.Problems) > 0 {
		versions := db.NewSelect().
			ColumnExpr("pv2.problemversionid").
			TableExpr("problem AS p2").
			Join("JOIN problemversion AS pv2 ON p2.problemid = pv2.problem").
			Where("p2.problemname IN (?)", bun.In(q.Problems)).
			Where("pv2.version = ?", LibraryVersion)
		sel = sel.Where("pr.problem IN (?)", versions)
	}
	if q.Upper > 0 {
		sel = sel.Where("pr.runtime <= ?", q.Upper)
	}
	if q.LTB {
		sel = sel.Where("pr.szs_status IN (?)", bun.In([]string{"Theorem", "Unsatisfiable"}))
	} else {
		sel = sel.Where("sr.solved = 1")
	}
	if !q.IncludeIncorrect {
		sel = sel.Where("NOT ((sl.unsat AND sr.sat) OR (sl.sat AND sr.unsat))")
	}
	return sel
}

// Store is a Querier over a live datastore.
type Store struct {
	cfg Config
	log *zap.Logger
}

// New creates a Store.  No connection is made until a query runs.
func New(cfg Config, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{cfg: cfg, log: log.Named("store")}
}

// Solved runs q on a fresh connection.
func (s *Store) Solved(ctx context.Context, q Solved) ([]Row, error) {
	db, e := Open(ctx, s.cfg)
	if e != nil {
		s.log.Error("connect", zap.Int64("experiment", q.Experiment), zap.Error(e))
		return nil, e
	}
	defer db.Close()
	var rows []Row
	if e := SolvedQuery(db, q).Scan(ctx, &rows); e != nil {
		s.log.Error("query", zap.Int64("experiment", q.Experiment), zap.Error(e))
		return nil, e
	}
	s.log.Debug("query", zap.Int64("experiment", q.Experiment), zap.Int("rows", len(rows)))
	return rows, nil
}
