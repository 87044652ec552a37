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

package schedule

import "errors"

var (
	// ErrUnknownID indicates a mutation referenced an original_id that is not
	// a current lineage head.
	ErrUnknownID = errors.New("schedule: id is not a current lineage head")
	// ErrSuperseded is reserved for future multi-writer scenarios: under the
	// single-writer invariants of this package it is redundant with
	// ErrUnknownID (a superseded entry is never a head, so it is never found
	// in by_head), but is kept as a distinct sentinel so callers can already
	// match on it.
	ErrSuperseded = errors.New("schedule: id has already been superseded")
	// ErrEmptyTrajectory indicates Insert or Replace was given a trajectory
	// with no start_time.
	ErrEmptyTrajectory = errors.New("schedule: trajectory is empty")
	// ErrInvalidTime indicates a Delay referenced a `from` outside the
	// predecessor trajectory's extent, or a Delay/Interrupt's shift would
	// leave the resulting trajectory's waypoints out of ascending order.
	ErrInvalidTime = errors.New("schedule: time is outside the trajectory's extent")
)
