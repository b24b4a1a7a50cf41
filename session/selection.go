// SPDX-License-Identifier: EPL-2.0

package session

// Selection is a transient time range independent of chunk boundaries.
// During an active drag Start may exceed End; Normalized orders the ends.
// A selection whose ends coincide means "no selection".
type Selection struct {
	Start float64
	End   float64
}

// Normalized returns the selection with Start <= End.
func (s Selection) Normalized() Selection {
	if s.Start > s.End {
		return Selection{Start: s.End, End: s.Start}
	}
	return s
}

// Empty reports whether the selection covers no time.
func (s Selection) Empty() bool { return s.Start == s.End }

// Duration returns the normalized width.
func (s Selection) Duration() float64 {
	n := s.Normalized()
	return n.End - n.Start
}

// Contains reports whether t lies inside the normalized half-open range.
func (s Selection) Contains(t float64) bool {
	n := s.Normalized()
	return t >= n.Start && t < n.End
}
