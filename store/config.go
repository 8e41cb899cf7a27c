// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package store queries the results datastore for the solved instances of
// an experiment.
//
// Connection settings come from BENCHPLOT_DB_* environment variables,
// optionally read from .env files first.  Every query opens its own
// connection and closes it before returning.
package store

import (
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Drivers understood by Open.
const (
	DriverPgx      = "pgx"      // jackc/pgx stdlib
	DriverPostgres = "postgres" // lib/pq
	DriverPgdriver = "pgdriver" // bun's own driver
)

// Config holds the datastore connection settings.
type Config struct {
	Driver   string `env:"DRIVER" envDefault:"pgx"`
	DSN      string `env:"DSN"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"5432"`
	User     string `env:"USER" envDefault:"benchplot"`
	Password string `env:"PASSWORD"`
	Database string `env:"NAME" envDefault:"results"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
}

// LoadConfig reads Config from the environment.  The given dotenv files
// are loaded first when they exist; variables already set win.
func LoadConfig(dotenv ...string) (Config, error) {
	for _, f := range dotenv {
		if e := godotenv.Load(f); e != nil && !isNotExist(e) {
			return Config{}, fmt.Errorf("loading %s: %w", f, e)
		}
	}
	var c Config
	if e := env.ParseWithOptions(&c, env.Options{Prefix: "BENCHPLOT_DB_"}); e != nil {
		return Config{}, fmt.Errorf("datastore settings: %w", e)
	}
	return c, nil
}

// ConnString returns DSN when set, else a postgres URL built from the
// other fields.
func (c Config) ConnString() string {
	if c.DSN != "" {
		return c.DSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.Database,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}
