/*
 * Copyright 2024 The rmf-core Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package spacetime defines the conflict-detection boundary the schedule
// core calls through but never implements. Geometric conflict detection is
// an explicit Non-goal of the schedule database; this package only fixes
// the shape of the black box and ships one deliberately simple detector so
// spacetime-region queries can be exercised end to end.
package spacetime

import "github.com/AlexandreBarral/rmf-core/trajectory"

// Region is an opaque spacetime volume. The schedule core never inspects a
// Region directly -- it only ever hands one to a Detector.
type Region interface {
	// region is unexported so that, like the C++ original's opaque
	// Spacetime type, only this package's own Region implementations (or a
	// caller that embeds one) can satisfy the interface.
	region()
}

// Detector is the black-box conflict predicate: it reports whether a
// trajectory has any points of conflict with a region.
type Detector interface {
	Conflicts(t trajectory.Trajectory, r Region) bool
}
