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

package schedule

import (
	"time"

	"github.com/AlexandreBarral/rmf-core/spacetime"
)

// Query selects which Entries a mirror cares about, in one of two standard
// forms. The relevance inspector never learns which form was used; it only
// ever calls the predicate built from it.
type Query struct {
	// Region, when non-nil, selects the spacetime-region form: an Entry is
	// relevant iff the Database's Detector reports a conflict between the
	// Entry's trajectory and Region.
	Region spacetime.Region

	// Lower and Upper bound the time-window form, used whenever Region is
	// nil. Either bound may be left nil to mean "unbounded". An Entry is
	// relevant iff its trajectory's finish_time >= Lower (when set) and its
	// start_time <= Upper (when set).
	Lower, Upper *time.Time

	// After is the mirror's cursor: "I have already seen all changes with
	// version <= After." Nil means the mirror is fresh and has seen nothing.
	After *Version
}

// MatchAllQuery returns the time-window form with no bounds, matching every
// active lineage -- the query a fresh mirror issues to bootstrap its view.
func MatchAllQuery(after *Version) Query {
	return Query{After: after}
}

// RegionQuery returns the spacetime-region form of Query.
func RegionQuery(region spacetime.Region, after *Version) Query {
	return Query{Region: region, After: after}
}

// WindowQuery returns the time-window form of Query.
func WindowQuery(lower, upper *time.Time, after *Version) Query {
	return Query{Lower: lower, Upper: upper, After: after}
}

// predicate builds the relevance predicate P(e) this Query denotes, against
// detector for the spacetime-region form.
func (q Query) predicate(detector spacetime.Detector) func(*Entry) bool {
	if q.Region != nil {
		return func(e *Entry) bool {
			return detector.Conflicts(e.Trajectory(), q.Region)
		}
	}
	return func(e *Entry) bool {
		finish, _ := e.Trajectory().FinishTime()
		start, _ := e.Trajectory().StartTime()
		if q.Lower != nil && finish.Before(*q.Lower) {
			return false
		}
		if q.Upper != nil && q.Upper.Before(start) {
			return false
		}
		return true
	}
}
