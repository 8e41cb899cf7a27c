// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package bench reads benchmark suites and the runs recorded on them.
//
// A suite is a directory of instances named bench-<i>.<ext> together with
// a "map" file giving the origin path of each instance and a "runs"
// directory.  Each run directory holds the command, the description and
// the timeouts of the run, and one inst-<i>.run directory per finished
// instance with its result and durations.
//
// Package bench only reads this layout; results of a run can be turned
// into benchplot records by package load.
package bench
