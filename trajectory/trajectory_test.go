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

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func at(seconds int) time.Time {
	return time.Unix(int64(seconds), 0).UTC()
}

func straight(from, to int) Trajectory {
	tr, _ := New(
		Waypoint{Time: at(from), Position: Position{X: 0, Y: 0}},
		Waypoint{Time: at(to), Position: Position{X: 1, Y: 1}},
	)
	return tr
}

func TestTrajectory(t *testing.T) {
	Convey("Given an empty trajectory", t, func() {
		var empty Trajectory
		So(empty.Empty(), ShouldBeTrue)

		Convey("it has neither a start nor a finish time", func() {
			_, ok := empty.StartTime()
			So(ok, ShouldBeFalse)
			_, ok = empty.FinishTime()
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Given a two-waypoint trajectory from t=0 to t=10", t, func() {
		tr := straight(0, 10)

		Convey("its endpoints are observable", func() {
			start, ok := tr.StartTime()
			So(ok, ShouldBeTrue)
			So(start, ShouldResemble, at(0))

			finish, ok := tr.FinishTime()
			So(ok, ShouldBeTrue)
			So(finish, ShouldResemble, at(10))
		})

		Convey("it contains its own endpoints and midpoint", func() {
			So(tr.Contains(at(0)), ShouldBeTrue)
			So(tr.Contains(at(5)), ShouldBeTrue)
			So(tr.Contains(at(10)), ShouldBeTrue)
			So(tr.Contains(at(11)), ShouldBeFalse)
		})

		Convey("New rejects out-of-order waypoints", func() {
			_, err := New(
				Waypoint{Time: at(10)},
				Waypoint{Time: at(0)},
			)
			So(err, ShouldEqual, ErrUnsortedWaypoints)
		})

		Convey("Delay shifts every waypoint at or after `from`", func() {
			shifted, err := Delay(tr, at(5), 20*time.Second)
			So(err, ShouldBeNil)
			start, _ := shifted.StartTime()
			finish, _ := shifted.FinishTime()
			So(start, ShouldResemble, at(0))
			So(finish, ShouldResemble, at(30))
		})

		Convey("Delay rejects a `from` outside the trajectory's extent", func() {
			_, err := Delay(tr, at(50), 20*time.Second)
			So(err, ShouldEqual, ErrInvalidTime)
		})

		Convey("Delay rejects a shift that would invert waypoint order", func() {
			// waypoints [t=0, t=10]; shifting the t=10 waypoint by -20s would
			// leave it at t=-10, before the kept t=0 waypoint.
			_, err := Delay(tr, at(5), -20*time.Second)
			So(err, ShouldEqual, ErrInvalidTime)
		})

		Convey("Interrupt splices in the interruption and reschedules the remainder", func() {
			interruption := straight(3, 4)
			composed, err := Interrupt(tr, interruption, 5*time.Second)
			So(err, ShouldBeNil)

			start, _ := composed.StartTime()
			finish, _ := composed.FinishTime()
			So(start, ShouldResemble, at(0))
			// original waypoint at t=10 (>= cut at t=3) is rescheduled by +5s
			So(finish, ShouldResemble, at(15))
			So(len(composed.waypoints), ShouldEqual, 1 /* kept t=0 */ +2 /* interruption */ +1 /* rescheduled t=10 */)
		})

		Convey("Interrupt rejects a delay that would invert the rescheduled remainder", func() {
			// remainder is the original waypoint at t=10; shifting it by -20s
			// would leave it at t=-10, before the interruption's own t=4 end.
			interruption := straight(3, 4)
			_, err := Interrupt(tr, interruption, -20*time.Second)
			So(err, ShouldEqual, ErrInvalidTime)
		})
	})
}
