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

import "sort"

// Patch is the version-sorted batch of Changes a relevance query produced,
// plus the Database's latest_version at the moment it ran. A mirror applies
// every Change in order and then advances its cursor to LatestVersion.
type Patch struct {
	changes       []Change
	latestVersion Version
}

func newPatch(changes []Change, latestVersion Version) *Patch {
	sort.SliceStable(changes, func(i, j int) bool { return changes[i].id < changes[j].id })
	return &Patch{changes: changes, latestVersion: latestVersion}
}

// Len reports how many Changes the Patch carries.
func (p *Patch) Len() int { return len(p.changes) }

// At returns the i'th Change in ascending id order.
func (p *Patch) At(i int) Change { return p.changes[i] }

// Changes returns every Change in the Patch, in ascending id order.
func (p *Patch) Changes() []Change {
	out := make([]Change, len(p.changes))
	copy(out, p.changes)
	return out
}

// LatestVersion is the Database's latest_version at the moment this Patch
// was constructed. A mirror that has applied every Change in the Patch may
// safely advance its cursor to this value.
func (p *Patch) LatestVersion() Version { return p.latestVersion }
