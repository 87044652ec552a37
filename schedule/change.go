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

	"github.com/AlexandreBarral/rmf-core/trajectory"
)

// Version is a non-decreasing integer assigned by the Database on each
// mutation. Zero is reserved for "nothing assigned yet".
type Version uint64

// Kind tags which of the six mutations produced a Change.
type Kind int

const (
	// KindInsert tags a Change produced by Insert.
	KindInsert Kind = iota
	// KindInterrupt tags a Change produced by Interrupt.
	KindInterrupt
	// KindDelay tags a Change produced by Delay.
	KindDelay
	// KindReplace tags a Change produced by Replace.
	KindReplace
	// KindErase tags a Change produced by Erase.
	KindErase
	// KindCull tags a Change produced by Cull.
	KindCull
)

// String names a Kind for logging and debug output.
func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "Insert"
	case KindInterrupt:
		return "Interrupt"
	case KindDelay:
		return "Delay"
	case KindReplace:
		return "Replace"
	case KindErase:
		return "Erase"
	case KindCull:
		return "Cull"
	default:
		return "Unknown"
	}
}

// trajectoryRef is the owned/borrowed split from the spec's design notes: an
// ownedRef holds a value copy whose lifetime is independent of the
// Database; a borrowedRef aliases an Entry's trajectory field and is only
// ever constructed by the relevance inspector while it holds the Database's
// read lock. Go's garbage collector keeps the aliased Entry alive for as
// long as any borrowedRef (and so any Change holding one) still points into
// it, which is what makes the alias safe past the inspector's own stack
// frame -- see SPEC_FULL.md section 5.
type trajectoryRef interface {
	get() trajectory.Trajectory
}

type ownedRef struct{ t trajectory.Trajectory }

func (r ownedRef) get() trajectory.Trajectory { return r.t }

type borrowedRef struct{ ptr *trajectory.Trajectory }

func (r borrowedRef) get() trajectory.Trajectory { return *r.ptr }

// Change is a tagged record of exactly one mutation. Only the fields that
// belong to its Kind are populated; the accessor methods report a second
// boolean so callers never have to switch on Kind by hand.
type Change struct {
	kind Kind
	id   Version

	traj       trajectoryRef
	originalID Version
	from       time.Time
	delay      time.Duration
	culled     []Version
}

func makeInsert(ref trajectoryRef, id Version) Change {
	return Change{kind: KindInsert, id: id, traj: ref}
}

func makeInterrupt(originalID Version, interruption trajectoryRef, delay time.Duration, id Version) Change {
	return Change{kind: KindInterrupt, id: id, originalID: originalID, traj: interruption, delay: delay}
}

func makeDelay(originalID Version, from time.Time, delay time.Duration, id Version) Change {
	return Change{kind: KindDelay, id: id, originalID: originalID, from: from, delay: delay}
}

func makeReplace(originalID Version, ref trajectoryRef, id Version) Change {
	return Change{kind: KindReplace, id: id, originalID: originalID, traj: ref}
}

func makeErase(originalID Version, id Version) Change {
	return Change{kind: KindErase, id: id, originalID: originalID}
}

func makeCull(culled []Version, id Version) Change {
	cp := make([]Version, len(culled))
	copy(cp, culled)
	return Change{kind: KindCull, id: id, culled: cp}
}

// Kind reports which mutation produced this Change.
func (c Change) Kind() Kind { return c.kind }

// ID is the version at which this Change was applied.
func (c Change) ID() Version { return c.id }

// Trajectory is valid for KindInsert and KindReplace: the trajectory that
// was inserted, or that the lineage was wholesale-replaced with.
func (c Change) Trajectory() (trajectory.Trajectory, bool) {
	if c.kind != KindInsert && c.kind != KindReplace {
		return trajectory.Trajectory{}, false
	}
	return c.traj.get(), true
}

// Interruption is valid for KindInterrupt: the trajectory that was spliced
// into the original lineage.
func (c Change) Interruption() (trajectory.Trajectory, bool) {
	if c.kind != KindInterrupt {
		return trajectory.Trajectory{}, false
	}
	return c.traj.get(), true
}

// OriginalID is valid for KindInterrupt, KindDelay, KindReplace, and
// KindErase: the head version this Change was appended onto.
func (c Change) OriginalID() (Version, bool) {
	switch c.kind {
	case KindInterrupt, KindDelay, KindReplace, KindErase:
		return c.originalID, true
	default:
		return 0, false
	}
}

// From is valid for KindDelay: the instant at and after which waypoints
// were shifted.
func (c Change) From() (time.Time, bool) {
	if c.kind != KindDelay {
		return time.Time{}, false
	}
	return c.from, true
}

// Delay is valid for KindInterrupt and KindDelay: the duration waypoints
// were shifted by.
func (c Change) Delay() (time.Duration, bool) {
	if c.kind != KindInterrupt && c.kind != KindDelay {
		return 0, false
	}
	return c.delay, true
}

// CulledIDs is valid for KindCull: the ordered list of lineage head
// versions that were purged.
func (c Change) CulledIDs() ([]Version, bool) {
	if c.kind != KindCull {
		return nil, false
	}
	cp := make([]Version, len(c.culled))
	copy(cp, c.culled)
	return cp, true
}
