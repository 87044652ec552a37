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

import "errors"

var (
	// ErrUnsortedWaypoints indicates New was given waypoints out of time order.
	ErrUnsortedWaypoints = errors.New("trajectory: waypoints must be sorted ascending by time")
	// ErrInvalidTime indicates a composition was asked to act at a time outside
	// the source trajectory's extent, or that its result would leave the
	// waypoints out of ascending time order.
	ErrInvalidTime = errors.New("trajectory: time is outside the trajectory's extent")
)
