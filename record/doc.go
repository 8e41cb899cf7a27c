// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package record holds benchmark measurements per program or experiment.
//
// Package record provides
//
// 1. the Record type, an immutable map from instance name to a measured
// value (typically cpu time) for one solver configuration.
//
// 2. joining: restricting several Records to the instances they all have.
//
// 3. aggregates over a Record: count, minimum, maximum and average.
//
// 4. selection and relabelling of Record lists.
package record
