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

// inspectEntry implements the relevance walk's per-entry decision table
// (SPEC_FULL.md section 4.4) and appends whatever the walk decides to emit
// for e onto out.
func inspectEntry(e *Entry, after *Version, relevant func(*Entry) bool, out []Change) []Change {
	if e.succeeded != nil {
		// Defensive guard: by_head should never contain a non-head entry.
		return out
	}
	if after != nil && e.version <= *after {
		return out
	}

	// An erased head is never "needed" by an active query, however well its
	// trajectory matches: Erase already terminated the lineage, so the only
	// thing left to tell a mirror is to erase it too, never to (re)insert it.
	needed := relevant(e) && !e.erased

	if needed {
		if after != nil {
			if ancestor := lastKnownAncestor(e, *after); ancestor != nil && relevant(ancestor) {
				// The mirror already knows this lineage's history up to
				// ancestor; transmit only what changed since then.
				return append(out, changesSince(e, ancestor)...)
			}
		}
		// The mirror either never knew this lineage or didn't care about the
		// ancestor it knew; a single synthesized Insert of the current head
		// is sufficient and cheaper than replaying history it never needed.
		return append(out, makeInsert(borrowedRef{&e.traj}, e.version))
	}

	if after != nil {
		if ancestor := lastKnownAncestor(e, *after); ancestor != nil && relevant(ancestor) {
			// The mirror used to care about this lineage and no longer
			// does; tell it to erase rather than keep transmitting history
			// for a lineage it is about to discard anyway.
			return append(out, makeErase(ancestor.version, e.version))
		}
	}

	return out
}
