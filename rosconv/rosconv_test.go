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

package rosconv

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTimeRoundTrip(t *testing.T) {
	Convey("Given a time with a sub-second component", t, func() {
		want := time.Unix(1000, 500).UTC()

		Convey("ToWireTime/FromWireTime round-trip exactly", func() {
			w := ToWireTime(want)
			So(w.Sec, ShouldEqual, int32(1000))
			So(w.Nanosec, ShouldEqual, uint32(500))
			So(FromWireTime(w), ShouldResemble, want)
		})
	})
}

func TestDurationRoundTrip(t *testing.T) {
	Convey("Given a positive duration", t, func() {
		want := 90*time.Second + 250*time.Nanosecond

		Convey("it converts and back without loss", func() {
			w := ToWireDuration(want)
			So(w.Sec, ShouldEqual, int32(90))
			So(w.Nanosec, ShouldEqual, uint32(250))
			So(FromWireDuration(w), ShouldEqual, want)
		})
	})

	Convey("Given a negative duration", t, func() {
		want := -1500 * time.Millisecond

		Convey("Nanosec stays normalized into [0, 1e9)", func() {
			w := ToWireDuration(want)
			So(w.Sec, ShouldEqual, int32(-2))
			So(w.Nanosec, ShouldEqual, uint32(500000000))
			So(FromWireDuration(w), ShouldEqual, want)
		})
	})
}
