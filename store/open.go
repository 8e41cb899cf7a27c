// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Open connects to the datastore described by c.  The returned handle
// holds at most one connection.
func Open(ctx context.Context, c Config) (*bun.DB, error) {
	sqldb, e := openSQL(c)
	if e != nil {
		return nil, e
	}
	sqldb.SetMaxOpenConns(1)
	sqldb.SetMaxIdleConns(0)
	if e := sqldb.PingContext(ctx); e != nil {
		sqldb.Close()
		return nil, fmt.Errorf("connecting to datastore with %s: %w", c.Driver, e)
	}
	return bun.NewDB(sqldb, pgdialect.New()), nil
}

func openSQL(c Config) (*sql.DB, error) {
	switch c.Driver {
	case DriverPgx, "":
		return sql.Open("pgx", c.ConnString())
	case DriverPostgres:
		return sql.Open("postgres", c.ConnString())
	case DriverPgdriver:
		return sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(c.ConnString()))), nil
	}
	return nil, fmt.Errorf("unknown datastore driver %q", c.Driver)
}

func isNotExist(e error) bool {
	return errors.Is(e, fs.ErrNotExist)
}
