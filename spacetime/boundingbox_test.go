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
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/AlexandreBarral/rmf-core/trajectory"
)

func TestBoundingBoxDetector(t *testing.T) {
	Convey("Given a trajectory passing through the origin at t=5", t, func() {
		tr, _ := trajectory.New(
			trajectory.Waypoint{Time: time.Unix(0, 0), Position: trajectory.Position{X: -1, Y: -1}},
			trajectory.Waypoint{Time: time.Unix(5, 0), Position: trajectory.Position{X: 0, Y: 0}},
			trajectory.Waypoint{Time: time.Unix(10, 0), Position: trajectory.Position{X: 1, Y: 1}},
		)
		detector := BoundingBoxDetector{}

		Convey("a box overlapping both the time and footprint reports a conflict", func() {
			box := BoundingBox{
				Lower: time.Unix(4, 0), Upper: time.Unix(6, 0),
				MinX: -0.5, MaxX: 0.5, MinY: -0.5, MaxY: 0.5,
			}
			So(detector.Conflicts(tr, box), ShouldBeTrue)
		})

		Convey("a box outside the time window reports no conflict", func() {
			box := BoundingBox{
				Lower: time.Unix(100, 0), Upper: time.Unix(200, 0),
				MinX: -10, MaxX: 10, MinY: -10, MaxY: 10,
			}
			So(detector.Conflicts(tr, box), ShouldBeFalse)
		})

		Convey("a box outside the footprint reports no conflict", func() {
			box := BoundingBox{
				Lower: time.Unix(0, 0), Upper: time.Unix(10, 0),
				MinX: 100, MaxX: 200, MinY: 100, MaxY: 200,
			}
			So(detector.Conflicts(tr, box), ShouldBeFalse)
		})
	})
}
