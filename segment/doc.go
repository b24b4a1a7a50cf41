// SPDX-License-Identifier: EPL-2.0

// Package segment maintains the chunk partition of a loaded signal.
//
// A loaded buffer always carries one or more chunks whose half-open
// [Start, End) ranges are ordered and pairwise non-overlapping. Chunks are
// metadata only; sample data lives in pcm.Buffer.
//
// # Identity
//
// Chunk ids come from a monotonically increasing counter and are never
// reused; the initial whole-buffer chunk has id 0 and SplitAt hands both
// halves fresh ids. The selected chunk is tracked by id and re-resolved
// against the live list on every access, so deleting the chunk clears the
// selection automatically.
//
// # Deletion algebra
//
// DeleteRange removes a time span and closes the gap in a single pass:
// untouched before, shifted after, removed inside, truncated on straddle.
// Total covered duration shrinks by exactly the deleted span and chunk order
// is preserved.
package segment
