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

// Package mirror is the materialized-view side of the schedule database: a
// consumer that pulls Patches and folds them into a local reconstruction of
// the active lineages it cares about, without ever touching the Database's
// lock itself.
package mirror

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/AlexandreBarral/rmf-core/schedule"
	"github.com/AlexandreBarral/rmf-core/trajectory"
	"github.com/AlexandreBarral/rmf-core/utils/log"
)

// View is a read-only reconstruction of a Database's active lineages, keyed
// by each lineage's current head version. It is safe for concurrent use.
type View struct {
	mu           sync.RWMutex
	trajectories map[schedule.Version]trajectory.Trajectory
	cursor       schedule.Version
}

// NewView returns an empty View with a zero cursor, ready to bootstrap from
// a Query whose After is nil.
func NewView() *View {
	return &View{trajectories: make(map[schedule.Version]trajectory.Trajectory)}
}

// Cursor is the version this View has fully folded in: the After a caller
// should set on its next Query against the upstream Database.
func (v *View) Cursor() schedule.Version {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.cursor
}

// Len reports how many active lineages this View currently holds.
func (v *View) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.trajectories)
}

// Trajectory returns the current trajectory for the active lineage headed by
// id, if this View knows of one.
func (v *View) Trajectory(id schedule.Version) (trajectory.Trajectory, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	t, ok := v.trajectories[id]
	return t, ok
}

// Trajectories returns a defensive snapshot of every active lineage this
// View currently knows about, keyed by its current head version.
func (v *View) Trajectories() map[schedule.Version]trajectory.Trajectory {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make(map[schedule.Version]trajectory.Trajectory, len(v.trajectories))
	for id, t := range v.trajectories {
		out[id] = t
	}
	return out
}

// Sync pulls a Patch from db using q with After replaced by this View's own
// cursor, applies it, and returns how many Changes were folded in. This is
// the in-process analogue of a mirror service's poll-and-pull loop.
func (v *View) Sync(db *schedule.Database, q schedule.Query) (int, error) {
	cursor := v.Cursor()
	if cursor == 0 {
		q.After = nil
	} else {
		q.After = &cursor
	}
	patch := db.Changes(q)
	if err := v.Apply(patch); err != nil {
		return 0, err
	}
	return patch.Len(), nil
}

// Apply folds every Change in patch into the View, in order, then advances
// the cursor to patch.LatestVersion. It is idempotent: every Change carries
// its own absolute id, and a Change whose id is at or below the cursor is
// skipped (and logged), so re-applying a Patch whose Changes are all already
// reflected in the View is a no-op beyond the cursor comparison.
func (v *View) Apply(patch *schedule.Patch) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := 0; i < patch.Len(); i++ {
		c := patch.At(i)
		if c.ID() <= v.cursor {
			log.WithFields(log.Fields{"id": c.ID(), "cursor": v.cursor}).
				Debug("mirror: skipped already-applied change")
			continue
		}
		if err := v.applyChange(c); err != nil {
			return errors.Wrapf(err, "change %d", c.ID())
		}
	}
	if patch.LatestVersion() > v.cursor {
		v.cursor = patch.LatestVersion()
	}
	return nil
}

// applyChange reconstructs the effect of a single Change. Interrupt and
// Delay carry only their delta (the interruption, or the from/delay pair)
// rather than a fully composed trajectory, so the View replays them through
// the same trajectory.Interrupt/trajectory.Delay the Database itself used --
// keeping the wire representation of a Patch proportional to what changed,
// not to the trajectory's size.
func (v *View) applyChange(c schedule.Change) error {
	switch c.Kind() {
	case schedule.KindInsert:
		traj, _ := c.Trajectory()
		v.trajectories[c.ID()] = traj
		return nil

	case schedule.KindInterrupt:
		originalID, _ := c.OriginalID()
		original, ok := v.trajectories[originalID]
		if !ok {
			return errors.Errorf("unknown predecessor %d", originalID)
		}
		interruption, _ := c.Interruption()
		delay, _ := c.Delay()
		interrupted, err := trajectory.Interrupt(original, interruption, delay)
		if err != nil {
			return errors.Wrap(err, "replay interrupt")
		}
		delete(v.trajectories, originalID)
		v.trajectories[c.ID()] = interrupted
		return nil

	case schedule.KindDelay:
		originalID, _ := c.OriginalID()
		original, ok := v.trajectories[originalID]
		if !ok {
			return errors.Errorf("unknown predecessor %d", originalID)
		}
		from, _ := c.From()
		delay, _ := c.Delay()
		delayed, err := trajectory.Delay(original, from, delay)
		if err != nil {
			return errors.Wrap(err, "replay delay")
		}
		delete(v.trajectories, originalID)
		v.trajectories[c.ID()] = delayed
		return nil

	case schedule.KindReplace:
		originalID, _ := c.OriginalID()
		delete(v.trajectories, originalID)
		traj, _ := c.Trajectory()
		v.trajectories[c.ID()] = traj
		return nil

	case schedule.KindErase:
		originalID, _ := c.OriginalID()
		delete(v.trajectories, originalID)
		return nil

	case schedule.KindCull:
		culled, _ := c.CulledIDs()
		for _, id := range culled {
			delete(v.trajectories, id)
		}
		return nil

	default:
		return errors.Errorf("unknown change kind %v", c.Kind())
	}
}
