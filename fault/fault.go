// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package fault defines the error kinds reported by benchplot.
//
// Callers distinguish them with errors.As.  None of them is recovered
// locally: loading, joining and rendering stop at the first one and the
// command exits with its message.
package fault

import "fmt"

// ConfigError reports an unsupported or malformed setting: an unknown
// source kind, a statistic a source kind cannot provide, a datastore
// specification that is not a mapping, conflicting axis bounds.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "configuration: " + e.Msg
}

// Configf builds a *ConfigError from a format.
func Configf(format string, args ...interface{}) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// CardinalityError reports a rendering given the wrong number of records.
type CardinalityError struct {
	Want int
	Got  int
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("need exactly %d programs/experiments, %d provided", e.Want, e.Got)
}

// ConsistencyError reports joined records that do not line up.
type ConsistencyError struct {
	Msg string
}

func (e *ConsistencyError) Error() string {
	return "inconsistent data: " + e.Msg
}

// EmptyDataError reports an aggregate requested over zero measurements.
type EmptyDataError struct {
	Name string
}

func (e *EmptyDataError) Error() string {
	return fmt.Sprintf("no measurements for %q", e.Name)
}
