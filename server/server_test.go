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

package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/AlexandreBarral/rmf-core/schedule"
	"github.com/AlexandreBarral/rmf-core/spacetime"
	"github.com/AlexandreBarral/rmf-core/trajectory"
)

func strTraj() trajectory.Trajectory {
	tr, _ := trajectory.New(
		trajectory.Waypoint{Time: time.Unix(0, 0).UTC()},
		trajectory.Waypoint{Time: time.Unix(10, 0).UTC()},
	)
	return tr
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestAPI(t *testing.T) {
	Convey("Given a router over an empty Database", t, func() {
		db := schedule.NewDatabase(spacetime.BoundingBoxDetector{})
		router := NewRouter(db)

		Convey("POST /trajectories inserts a new lineage", func() {
			payload := `{"waypoints":[{"time_unix_nano":0,"x":0,"y":0},{"time_unix_nano":10000000000,"x":1,"y":1}]}`
			req := httptest.NewRequest(http.MethodPost, "/trajectories", bytes.NewBufferString(payload))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			So(rec.Code, ShouldEqual, http.StatusOK)
			body := decode(t, rec)
			So(body["success"], ShouldEqual, true)
			So(db.LatestVersion(), ShouldEqual, schedule.Version(1))
		})

		Convey("GET /version reports 0 before any mutation", func() {
			req := httptest.NewRequest(http.MethodGet, "/version", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			So(rec.Code, ShouldEqual, http.StatusOK)
			body := decode(t, rec)
			data := body["data"].(map[string]interface{})
			So(data["version"], ShouldEqual, float64(0))
		})

		Convey("DELETE /trajectories/{id} on an unknown id fails", func() {
			req := httptest.NewRequest(http.MethodDelete, "/trajectories/42", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			So(rec.Code, ShouldEqual, http.StatusUnprocessableEntity)
			body := decode(t, rec)
			So(body["success"], ShouldEqual, false)
		})

		Convey("GET /changes after inserting reports one Insert", func() {
			_, err := db.Insert(strTraj())
			So(err, ShouldBeNil)

			req := httptest.NewRequest(http.MethodGet, "/changes", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			So(rec.Code, ShouldEqual, http.StatusOK)
			body := decode(t, rec)
			data := body["data"].(map[string]interface{})
			changes := data["changes"].([]interface{})
			So(len(changes), ShouldEqual, 1)

			change := changes[0].(map[string]interface{})
			So(change["kind"], ShouldEqual, "Insert")
			traj := change["trajectory"].(map[string]interface{})
			waypoints := traj["waypoints"].([]interface{})
			So(len(waypoints), ShouldEqual, 2)
			first := waypoints[0].(map[string]interface{})
			So(first["time_unix_nano"], ShouldEqual, float64(0))
		})
	})
}
