// SPDX-License-Identifier: EPL-2.0

// Package export turns buffer sub-ranges into encoded byte blobs.
//
// WAV export is built in and synchronous. Lossy export goes through an
// injected Encoder handle with a per-call timeout; the encoder always
// receives a detached copy of the range, so in-flight encodes survive later
// edits and a timed-out encode leaves the editor's state untouched.
package export
