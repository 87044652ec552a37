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

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/AlexandreBarral/rmf-core/schedule"
	"github.com/AlexandreBarral/rmf-core/spacetime"
	"github.com/AlexandreBarral/rmf-core/trajectory"
)

func collect(t *testing.T, c *Collector) map[string]float64 {
	ch := make(chan prometheus.Metric, 8)
	c.Collect(ch)
	close(ch)

	out := make(map[string]float64)
	for m := range ch {
		var pb dto.Metric
		if err := m.Write(&pb); err != nil {
			t.Fatalf("write metric: %v", err)
		}
		out[m.Desc().String()] = pb.GetGauge().GetValue()
	}
	return out
}

func TestCollector(t *testing.T) {
	Convey("Given a Database with one active lineage", t, func() {
		db := schedule.NewDatabase(spacetime.BoundingBoxDetector{})
		tr, _ := trajectory.New(
			trajectory.Waypoint{Time: time.Unix(0, 0)},
			trajectory.Waypoint{Time: time.Unix(10, 0)},
		)
		_, err := db.Insert(tr)
		So(err, ShouldBeNil)

		c := NewCollector(db)

		Convey("Collect reports one non-negative value for each of latest_version and active_lineages", func() {
			values := collect(t, c)
			So(len(values), ShouldEqual, 2)
			for _, v := range values {
				So(v, ShouldBeGreaterThanOrEqualTo, 0)
			}
		})
	})
}
