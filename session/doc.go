// SPDX-License-Identifier: EPL-2.0

// Package session coordinates the editor core around one loaded signal.
//
// A Session ties together the chunk partition (segment), the range selection,
// the sample editor (edit), coordinate mapping (layout), transport (playback)
// and export. It is also where the interaction rules live:
//
//   - at most one of {range selection, selected chunk} is active; activating
//     one clears the other
//   - a press inside the active selection only moves the seek marker
//   - a press elsewhere arms a drag; the selected chunk survives until the
//     movement crosses DragThreshold
//   - a completed drag normalizes the selection and snaps the resume point
//     to its start; a plain click clears the selection, seeks, and selects
//     the chunk under it when more than one exists
//   - resize handles cannot shrink the selection below MinSelectionWidth
//   - destructive edits (delete, fade, silence, normalize) clear both
//     selection kinds afterwards
//   - the last remaining chunk cannot be deleted
//
// The session expects a single logical flow of control: one in-flight edit or
// playback operation, and no structural edit while an export of the same
// buffer is outstanding. Exports run on detached copies, so they survive
// later edits either way.
package session
