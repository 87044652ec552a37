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

import "github.com/AlexandreBarral/rmf-core/trajectory"

// Entry is one node in a lineage graph: one revision of one trajectory.
// Forward links (succeededBy) own the rest of the chain; back links
// (succeeds) are non-owning -- they exist purely for the relevance
// inspector's ancestor walk and for history queries, and never keep a
// culled lineage artificially alive (Cull drops every Entry of a purged
// lineage from the store, at which point nothing but a caller's own
// held references keeps it around).
type Entry struct {
	version   Version
	traj      trajectory.Trajectory
	change    Change
	succeeds  *Entry
	succeeded *Entry
	erased    bool
}

// Version is the version at which this revision appeared.
func (e *Entry) Version() Version { return e.version }

// Trajectory is the trajectory in force at this revision.
func (e *Entry) Trajectory() trajectory.Trajectory { return e.traj }

// Change is the Change record that produced this Entry.
func (e *Entry) Change() Change { return e.change }

// Succeeds is the predecessor Entry in this lineage, or nil if this Entry
// is the lineage's root.
func (e *Entry) Succeeds() *Entry { return e.succeeds }

// SucceededBy is the next revision, or nil if this Entry is the lineage's
// current head.
func (e *Entry) SucceededBy() *Entry { return e.succeeded }

// Erased reports whether this Entry was produced by Erase, i.e. whether its
// lineage is terminated and excluded from active queries even though it
// remains reachable for history.
func (e *Entry) Erased() bool { return e.erased }

// lastKnownAncestor returns the most recent ancestor of e (inclusive) whose
// version is <= afterVersion, walking back through Succeeds. It returns nil
// if no such ancestor exists, i.e. every Entry in e's lineage postdates
// afterVersion.
func lastKnownAncestor(e *Entry, afterVersion Version) *Entry {
	check := e
	for check != nil && afterVersion < check.version {
		check = check.succeeds
	}
	return check
}

// changesSince collects, in ascending version order, the Change of every
// Entry strictly after ancestor up to and including e. ancestor must be an
// actual ancestor of e (or e itself, in which case the result is empty).
func changesSince(e, ancestor *Entry) []Change {
	var reversed []Change
	for cur := e; cur != ancestor && cur != nil; cur = cur.succeeds {
		reversed = append(reversed, cur.change)
	}
	out := make([]Change, len(reversed))
	for i, c := range reversed {
		out[len(reversed)-1-i] = c
	}
	return out
}
