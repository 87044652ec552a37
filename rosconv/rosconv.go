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

// Package rosconv converts between time.Time/time.Duration and the
// seconds-plus-nanoseconds wire pair a ROS2 bridge exchanges builtin_interfaces
// Time and Duration messages as. Nothing else in this repository depends on
// ROS2; this package exists purely so a bridging node has a single place to
// do the conversion the same way every time.
package rosconv

import "time"

// Time is the wire pair a builtin_interfaces/Time message carries.
type Time struct {
	Sec     int32
	Nanosec uint32
}

// Duration is the wire pair a builtin_interfaces/Duration message carries.
type Duration struct {
	Sec     int32
	Nanosec uint32
}

// ToWireTime converts t, assumed to be at or after the UNIX epoch, to its
// wire representation.
func ToWireTime(t time.Time) Time {
	sinceEpoch := t.Sub(time.Unix(0, 0))
	sec := int32(sinceEpoch / time.Second)
	nanosec := uint32(sinceEpoch % time.Second)
	return Time{Sec: sec, Nanosec: nanosec}
}

// FromWireTime is the inverse of ToWireTime.
func FromWireTime(w Time) time.Time {
	return time.Unix(int64(w.Sec), int64(w.Nanosec)).UTC()
}

// ToWireDuration converts d to its wire representation. A negative d yields
// a negative Sec with Nanosec normalized back into [0, 1e9), matching how
// builtin_interfaces/Duration represents time spans that run backward.
func ToWireDuration(d time.Duration) Duration {
	sec := d / time.Second
	nanosec := d % time.Second
	if nanosec < 0 {
		nanosec += time.Second
		sec--
	}
	return Duration{Sec: int32(sec), Nanosec: uint32(nanosec)}
}

// FromWireDuration is the inverse of ToWireDuration.
func FromWireDuration(w Duration) time.Duration {
	return time.Duration(w.Sec)*time.Second + time.Duration(w.Nanosec)
}
