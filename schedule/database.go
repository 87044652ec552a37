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

// Package schedule is the versioned lineage store and its relevance-filtered
// change log: the shared trajectory schedule database's core. Database is
// single-writer/multi-reader (see SPEC_FULL.md section 5): mutations take an
// exclusive lock and establish a happens-before edge to every later reader;
// queries take a shared lock and observe a consistent snapshot for the
// duration of one Changes call.
package schedule

import (
	"sort"
	"sync"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/AlexandreBarral/rmf-core/spacetime"
	"github.com/AlexandreBarral/rmf-core/trajectory"
	"github.com/AlexandreBarral/rmf-core/utils/log"
)

// Database is the authoritative, in-memory lineage store. The zero value is
// not usable; construct one with NewDatabase.
type Database struct {
	mu sync.RWMutex

	byHead    map[Version]*Entry
	byVersion map[Version]*Entry
	latest    Version

	detector spacetime.Detector
}

// NewDatabase returns an empty Database that evaluates spacetime-region
// queries with detector. Pass spacetime.BoundingBoxDetector{} for the
// bundled axis-aligned detector, or any Detector a collaborator supplies.
func NewDatabase(detector spacetime.Detector) *Database {
	return &Database{
		byHead:    make(map[Version]*Entry),
		byVersion: make(map[Version]*Entry),
		detector:  detector,
	}
}

// LatestVersion returns the largest version ever assigned, or 0 if no
// mutation has been applied yet.
func (db *Database) LatestVersion() Version {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.latest
}

func (db *Database) nextVersion() Version {
	db.latest++
	return db.latest
}

// ActiveLineages reports how many lineages currently have a non-erased
// head. Exported for collaborators like the metrics package that want a
// cheap, lock-protected gauge without walking by_head themselves.
func (db *Database) ActiveLineages() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	n := 0
	for _, head := range db.byHead {
		if !head.erased {
			n++
		}
	}
	return n
}

// resolveHead looks up originalID in by_head (never merely by_version, per
// SPEC_FULL.md section 4.3): a version that exists but is no longer a head
// is exactly as unknown to a mutation as one that never existed.
func (db *Database) resolveHead(originalID Version) (*Entry, error) {
	head, ok := db.byHead[originalID]
	if !ok {
		return nil, pkgerrors.Wrapf(ErrUnknownID, "id %d", originalID)
	}
	if head.succeeded != nil {
		// Unreachable under the invariants by_head maintains, kept as a
		// distinct error per SPEC_FULL.md section 7.
		return nil, pkgerrors.Wrapf(ErrSuperseded, "id %d", originalID)
	}
	return head, nil
}

// publishRoot assigns the next version and starts a new lineage with it.
// build receives the assigned version so it can stamp the Change's id.
func (db *Database) publishRoot(traj trajectory.Trajectory, build func(Version) Change) Version {
	v := db.nextVersion()
	entry := &Entry{version: v, traj: traj}
	entry.change = build(v)
	db.byHead[v] = entry
	db.byVersion[v] = entry
	return v
}

// publishSuccessor assigns the next version and appends it onto predecessor,
// maintaining the mutual succeeds/succeeded_by invariant.
func (db *Database) publishSuccessor(
	predecessor *Entry, traj trajectory.Trajectory, build func(Version) Change, erased bool,
) Version {
	v := db.nextVersion()
	entry := &Entry{version: v, traj: traj, succeeds: predecessor, erased: erased}
	entry.change = build(v)
	predecessor.succeeded = entry
	delete(db.byHead, predecessor.version)
	db.byHead[v] = entry
	db.byVersion[v] = entry
	return v
}

// Insert creates a new root Entry for traj, starting a new lineage.
func (db *Database) Insert(traj trajectory.Trajectory) (Version, error) {
	if traj.Empty() {
		return 0, ErrEmptyTrajectory
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	owned := traj.Copy()
	v := db.publishRoot(owned, func(v Version) Change { return makeInsert(ownedRef{owned}, v) })
	log.WithFields(log.Fields{"version": v, "op": "insert"}).Debug("schedule: applied mutation")
	return v, nil
}

// Interrupt appends a new head onto the lineage currently headed by
// originalID, splicing interruption into the trajectory at its start time
// and rescheduling whatever remained of the original trajectory by delay.
func (db *Database) Interrupt(
	originalID Version, interruption trajectory.Trajectory, delay time.Duration,
) (Version, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	head, err := db.resolveHead(originalID)
	if err != nil {
		return 0, err
	}
	composed, terr := trajectory.Interrupt(head.traj, interruption, delay)
	if terr != nil {
		return 0, pkgerrors.Wrapf(ErrInvalidTime, "original id %d: %v", originalID, terr)
	}
	ownedInterruption := interruption.Copy()
	v := db.publishSuccessor(head, composed, func(v Version) Change {
		return makeInterrupt(originalID, ownedRef{ownedInterruption}, delay, v)
	}, false)
	log.WithFields(log.Fields{"version": v, "op": "interrupt", "original_id": originalID}).
		Debug("schedule: applied mutation")
	return v, nil
}

// Delay appends a new head whose trajectory equals the predecessor's but
// with every waypoint at or after from shifted later by delay.
func (db *Database) Delay(originalID Version, from time.Time, delay time.Duration) (Version, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	head, err := db.resolveHead(originalID)
	if err != nil {
		return 0, err
	}
	composed, terr := trajectory.Delay(head.traj, from, delay)
	if terr != nil {
		return 0, pkgerrors.Wrapf(ErrInvalidTime, "original id %d: %v", originalID, terr)
	}
	v := db.publishSuccessor(head, composed, func(v Version) Change {
		return makeDelay(originalID, from, delay, v)
	}, false)
	log.WithFields(log.Fields{"version": v, "op": "delay", "original_id": originalID}).
		Debug("schedule: applied mutation")
	return v, nil
}

// Replace appends a new head whose trajectory is traj wholesale.
func (db *Database) Replace(originalID Version, traj trajectory.Trajectory) (Version, error) {
	if traj.Empty() {
		return 0, ErrEmptyTrajectory
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	head, err := db.resolveHead(originalID)
	if err != nil {
		return 0, err
	}
	owned := traj.Copy()
	v := db.publishSuccessor(head, owned, func(v Version) Change {
		return makeReplace(originalID, ownedRef{owned}, v)
	}, false)
	log.WithFields(log.Fields{"version": v, "op": "replace", "original_id": originalID}).
		Debug("schedule: applied mutation")
	return v, nil
}

// Erase appends a terminal head flagged erased. The lineage's head remains
// reachable for history queries but is excluded from active ones.
func (db *Database) Erase(originalID Version) (Version, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	head, err := db.resolveHead(originalID)
	if err != nil {
		return 0, err
	}
	v := db.publishSuccessor(head, head.traj, func(v Version) Change {
		return makeErase(originalID, v)
	}, true)
	log.WithFields(log.Fields{"version": v, "op": "erase", "original_id": originalID}).
		Debug("schedule: applied mutation")
	return v, nil
}

// Cull purges every lineage whose head's trajectory finishes strictly
// before beforeTime. It always assigns and returns a new version, even when
// no lineage matched (the emitted Cull Change simply carries an empty
// culled list in that case).
func (db *Database) Cull(beforeTime time.Time) Version {
	db.mu.Lock()
	defer db.mu.Unlock()

	var culled []Version
	for headVersion, head := range db.byHead {
		finish, ok := head.traj.FinishTime()
		if !ok || !finish.Before(beforeTime) {
			continue
		}
		culled = append(culled, headVersion)
	}
	sort.Slice(culled, func(i, j int) bool { return culled[i] < culled[j] })

	for _, headVersion := range culled {
		for e := db.byHead[headVersion]; e != nil; e = e.succeeds {
			delete(db.byVersion, e.version)
		}
		delete(db.byHead, headVersion)
	}

	v := db.nextVersion()
	entry := &Entry{version: v, change: makeCull(culled, v)}
	db.byVersion[v] = entry
	log.WithFields(log.Fields{"version": v, "op": "cull", "culled": culled}).
		Debug("schedule: applied mutation")
	return v
}

// Entry looks up any revision ever assigned a version, whether or not it is
// still a lineage head -- the history-query counterpart to resolveHead,
// which only ever sees current heads.
func (db *Database) Entry(id Version) (*Entry, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	e, ok := db.byVersion[id]
	return e, ok
}

// Trajectory is a convenience wrapper around Entry for callers that only
// need the trajectory a given version carried.
func (db *Database) Trajectory(id Version) (trajectory.Trajectory, bool) {
	e, ok := db.Entry(id)
	if !ok {
		return trajectory.Trajectory{}, false
	}
	return e.Trajectory(), true
}

// Changes computes the minimal Patch a mirror must apply to converge with
// the active set selected by q, given the mirror's cursor q.After. A culled
// lineage has no head left to inspect, so when q.After is set every Cull
// Change newer than it is included as is.
func (db *Database) Changes(q Query) *Patch {
	db.mu.RLock()
	defer db.mu.RUnlock()

	relevant := q.predicate(db.detector)
	var changes []Change
	for _, head := range db.byHead {
		changes = inspectEntry(head, q.After, relevant, changes)
	}
	if q.After != nil {
		for v, e := range db.byVersion {
			if v > *q.After && e.change.kind == KindCull {
				changes = append(changes, e.change)
			}
		}
	}
	return newPatch(changes, db.latest)
}
