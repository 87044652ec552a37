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

package spacetime

import (
	"time"

	"github.com/AlexandreBarral/rmf-core/trajectory"
)

// BoundingBox is a Region bounded by a closed time interval and an
// axis-aligned footprint. It is intentionally simple: real collision
// detection between robot footprints is out of scope for this repository
// (see Non-goals), this exists only so the relevance inspector's
// spacetime-region query form has something concrete to call.
type BoundingBox struct {
	Lower, Upper time.Time
	MinX, MinY   float64
	MaxX, MaxY   float64
}

func (BoundingBox) region() {}

// BoundingBoxDetector reports a conflict whenever any waypoint of the
// trajectory falls within both the time interval and the footprint of a
// BoundingBox region.
type BoundingBoxDetector struct{}

// Conflicts implements Detector.
func (BoundingBoxDetector) Conflicts(t trajectory.Trajectory, r Region) bool {
	box, ok := r.(BoundingBox)
	if !ok {
		return false
	}
	for _, wp := range t.Waypoints() {
		if wp.Time.Before(box.Lower) || wp.Time.After(box.Upper) {
			continue
		}
		if wp.Position.X < box.MinX || wp.Position.X > box.MaxX {
			continue
		}
		if wp.Position.Y < box.MinY || wp.Position.Y > box.MaxY {
			continue
		}
		return true
	}
	return false
}
