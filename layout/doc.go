// SPDX-License-Identifier: EPL-2.0

// Package layout converts between time positions and pixel coordinates.
//
// Two strategies implement the Layout interface. Gapped is the unzoomed
// default: chunks rendered side by side, width proportional to duration,
// separated by a constant pixel gap. Zoomed is active when a zoom factor
// above 1 is set: the whole buffer is mapped linearly across width*zoom and
// a scroll offset selects the visible window.
//
// Callers pick the strategy once per conversion or draw call instead of
// branching on the zoom level at every site. Both directions use the same
// half-open boundary convention as package segment.
package layout
