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

package trajectory

import "time"

// Interrupt conceptually truncates original at the interruption's start
// time, splices interruption in, and reschedules whatever remained of
// original by delay. It is the eager composition the schedule database's
// Interrupt mutation stores as the new head's trajectory.
//
// original is assumed non-empty; the caller (schedule.Database) is
// responsible for rejecting empty originals before composing. delay may be
// negative; if shifting the remainder by it would leave the result no
// longer sorted ascending by time, Interrupt returns ErrInvalidTime rather
// than a Trajectory that violates New's ordering invariant.
func Interrupt(original, interruption Trajectory, delay time.Duration) (Trajectory, error) {
	cut, ok := interruption.StartTime()
	if !ok {
		// Nothing to splice in; original is unaffected.
		return original.Copy(), nil
	}

	var kept, remainder []Waypoint
	for _, wp := range original.waypoints {
		if wp.Time.Before(cut) {
			kept = append(kept, wp)
		} else {
			remainder = append(remainder, wp)
		}
	}

	result := make([]Waypoint, 0, len(kept)+len(interruption.waypoints)+len(remainder))
	result = append(result, kept...)
	result = append(result, interruption.waypoints...)
	for _, wp := range remainder {
		result = append(result, Waypoint{
			Time:     wp.Time.Add(delay),
			Position: wp.Position,
		})
	}

	composed, err := New(result...)
	if err != nil {
		return Trajectory{}, ErrInvalidTime
	}
	return composed, nil
}

// Delay returns a Trajectory equal to original except that every waypoint
// at or after from is shifted later by delay (delay may be negative, which
// is how the schedule database undoes a previous delay). If the shift
// leaves the waypoints no longer sorted ascending by time, Delay returns
// ErrInvalidTime rather than a Trajectory that violates New's ordering
// invariant.
func Delay(original Trajectory, from time.Time, delay time.Duration) (Trajectory, error) {
	if !original.Contains(from) {
		return Trajectory{}, ErrInvalidTime
	}

	result := make([]Waypoint, len(original.waypoints))
	for i, wp := range original.waypoints {
		if !wp.Time.Before(from) {
			result[i] = Waypoint{Time: wp.Time.Add(delay), Position: wp.Position}
		} else {
			result[i] = wp
		}
	}
	composed, err := New(result...)
	if err != nil {
		return Trajectory{}, ErrInvalidTime
	}
	return composed, nil
}
