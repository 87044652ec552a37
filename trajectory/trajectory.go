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

// Package trajectory holds the value-typed, opaque motion primitive that the
// schedule database stores. The database core reads a trajectory only through
// its time accessors (StartTime, FinishTime, Empty), copies it with Copy, and
// composes revisions with Interrupt and Delay; positions and the rest exist
// for the collaborators that build and read trajectories.
package trajectory

import (
	"sort"
	"time"

	"github.com/mohae/deepcopy"
)

// Position is a single pose a robot occupies at a Waypoint's Time. It is
// opaque to the schedule core -- only Trajectory's Time accessors matter
// there -- but collaborators (planners, visualizers) read it.
type Position struct {
	X, Y, Yaw float64
}

// Waypoint is one timed pose along a Trajectory.
type Waypoint struct {
	Time     time.Time
	Position Position
}

// Trajectory is an immutable, time-parameterized motion. The zero value is
// the empty trajectory (no start_time, no finish_time). Revising a
// Trajectory always produces a new value; none of the methods here mutate
// the receiver's waypoints in place.
type Trajectory struct {
	waypoints []Waypoint
}

// New builds a Trajectory from waypoints already sorted ascending by Time.
// An unsorted slice is rejected rather than silently re-sorted, because a
// caller that hands us waypoints out of order almost certainly has a bug
// upstream of us.
func New(waypoints ...Waypoint) (Trajectory, error) {
	if len(waypoints) == 0 {
		return Trajectory{}, nil
	}
	cp := make([]Waypoint, len(waypoints))
	copy(cp, waypoints)
	if !sort.SliceIsSorted(cp, func(i, j int) bool { return cp[i].Time.Before(cp[j].Time) }) {
		return Trajectory{}, ErrUnsortedWaypoints
	}
	return Trajectory{waypoints: cp}, nil
}

// Empty reports whether the trajectory carries no waypoints.
func (t Trajectory) Empty() bool {
	return len(t.waypoints) == 0
}

// StartTime returns the time of the first waypoint, if any.
func (t Trajectory) StartTime() (time.Time, bool) {
	if t.Empty() {
		return time.Time{}, false
	}
	return t.waypoints[0].Time, true
}

// FinishTime returns the time of the last waypoint, if any.
func (t Trajectory) FinishTime() (time.Time, bool) {
	if t.Empty() {
		return time.Time{}, false
	}
	return t.waypoints[len(t.waypoints)-1].Time, true
}

// Waypoints returns a defensive copy of the trajectory's waypoints, in
// ascending time order.
func (t Trajectory) Waypoints() []Waypoint {
	return deepcopy.Copy(t.waypoints).([]Waypoint)
}

// Copy returns an independent value copy of t. Because Trajectory already
// behaves as a value type to its callers (every mutator here returns a new
// Trajectory rather than aliasing the receiver's backing array), Copy is
// mostly useful when a caller intends to hold onto a Trajectory beyond the
// lifetime of the slice it was built from.
func (t Trajectory) Copy() Trajectory {
	if t.Empty() {
		return Trajectory{}
	}
	return Trajectory{waypoints: deepcopy.Copy(t.waypoints).([]Waypoint)}
}

// Contains reports whether the closed interval [start_time, finish_time]
// includes instant.
func (t Trajectory) Contains(instant time.Time) bool {
	start, ok := t.StartTime()
	if !ok {
		return false
	}
	finish, _ := t.FinishTime()
	return !instant.Before(start) && !instant.After(finish)
}
