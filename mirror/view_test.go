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

package mirror

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/AlexandreBarral/rmf-core/schedule"
	"github.com/AlexandreBarral/rmf-core/spacetime"
	"github.com/AlexandreBarral/rmf-core/trajectory"
)

func at(seconds int) time.Time {
	return time.Unix(int64(seconds), 0).UTC()
}

func straight(from, to int) trajectory.Trajectory {
	tr, _ := trajectory.New(
		trajectory.Waypoint{Time: at(from), Position: trajectory.Position{X: 0, Y: 0}},
		trajectory.Waypoint{Time: at(to), Position: trajectory.Position{X: 1, Y: 1}},
	)
	return tr
}

func TestView(t *testing.T) {
	Convey("Given a Database with one lineage and a fresh View", t, func() {
		db := schedule.NewDatabase(spacetime.BoundingBoxDetector{})
		root, err := db.Insert(straight(0, 10))
		So(err, ShouldBeNil)

		view := NewView()

		Convey("Sync bootstraps the View from a fresh cursor", func() {
			n, err := view.Sync(db, schedule.MatchAllQuery(nil))
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 1)
			So(view.Len(), ShouldEqual, 1)
			So(view.Cursor(), ShouldEqual, db.LatestVersion())

			traj, ok := view.Trajectory(root)
			So(ok, ShouldBeTrue)
			finish, _ := traj.FinishTime()
			So(finish, ShouldResemble, at(10))
		})

		Convey("re-syncing with nothing new applied is a no-op", func() {
			_, err := view.Sync(db, schedule.MatchAllQuery(nil))
			So(err, ShouldBeNil)

			n, err := view.Sync(db, schedule.MatchAllQuery(nil))
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 0)
			So(view.Len(), ShouldEqual, 1)
		})

		Convey("Delay is replayed against the View's own copy of the predecessor", func() {
			_, err := view.Sync(db, schedule.MatchAllQuery(nil))
			So(err, ShouldBeNil)

			v, err := db.Delay(root, at(5), 20*time.Second)
			So(err, ShouldBeNil)

			n, err := view.Sync(db, schedule.MatchAllQuery(nil))
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 1)

			_, stillHasOld := view.Trajectory(root)
			So(stillHasOld, ShouldBeFalse)

			traj, ok := view.Trajectory(v)
			So(ok, ShouldBeTrue)
			finish, _ := traj.FinishTime()
			So(finish, ShouldResemble, at(30))
		})

		Convey("Interrupt is replayed the same way the Database composed it", func() {
			_, err := view.Sync(db, schedule.MatchAllQuery(nil))
			So(err, ShouldBeNil)

			v, err := db.Interrupt(root, straight(3, 4), 5*time.Second)
			So(err, ShouldBeNil)

			_, err = view.Sync(db, schedule.MatchAllQuery(nil))
			So(err, ShouldBeNil)

			viewTraj, ok := view.Trajectory(v)
			So(ok, ShouldBeTrue)
			dbTraj, ok := db.Trajectory(v)
			So(ok, ShouldBeTrue)

			viewFinish, _ := viewTraj.FinishTime()
			dbFinish, _ := dbTraj.FinishTime()
			So(viewFinish, ShouldResemble, dbFinish)
		})

		Convey("Erase drops the lineage from the View entirely", func() {
			_, err := view.Sync(db, schedule.MatchAllQuery(nil))
			So(err, ShouldBeNil)

			_, err = db.Erase(root)
			So(err, ShouldBeNil)

			n, err := view.Sync(db, schedule.MatchAllQuery(nil))
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 1)
			So(view.Len(), ShouldEqual, 0)
		})

		Convey("Cull drops a lineage the View never even knew about", func() {
			db.Cull(at(1000))

			n, err := view.Sync(db, schedule.MatchAllQuery(nil))
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 0)
			So(view.Len(), ShouldEqual, 0)
		})
	})
}
