// SPDX-License-Identifier: EPL-2.0

package layout

import "github.com/romanurban/audio-cropper/segment"

// DefaultGap is the fixed inter-chunk gap in pixels used by the gapped
// layout.
const DefaultGap = 2.0

// TimeRange is a half-open [Start, End) span in seconds.
type TimeRange struct {
	Start float64
	End   float64
}

// Layout converts between time positions and pixel coordinates. Both
// directions use half-open chunk semantics: a time equal to a chunk's Start
// belongs to it, a time equal to its End does not. Conversions report
// ok=false when the position falls in a gap or outside the layout.
type Layout interface {
	TimeToPixel(t float64) (float64, bool)
	PixelToTime(x float64) (float64, bool)
	VisibleTimeRange() TimeRange
}

// Gapped lays chunks out left to right, each width proportional to its share
// of the total chunk duration, separated by a fixed pixel gap. This is the
// default, unzoomed layout.
type Gapped struct {
	chunks []segment.Chunk
	width  float64
	gap    float64
}

// NewGapped builds a gapped layout over the given chunks and container width.
func NewGapped(chunks []segment.Chunk, width, gap float64) *Gapped {
	return &Gapped{chunks: chunks, width: width, gap: gap}
}

func (g *Gapped) usableWidth() float64 {
	if len(g.chunks) == 0 {
		return 0
	}
	return g.width - g.gap*float64(len(g.chunks)-1)
}

func (g *Gapped) totalDuration() float64 {
	var d float64
	for _, c := range g.chunks {
		d += c.Duration()
	}
	return d
}

// TimeToPixel walks the chunks accumulating width+gap until it finds the
// chunk owning t, then interpolates linearly inside it.
func (g *Gapped) TimeToPixel(t float64) (float64, bool) {
	total := g.totalDuration()
	if total <= 0 {
		return 0, false
	}
	usable := g.usableWidth()
	x := 0.0
	for _, c := range g.chunks {
		w := c.Duration() / total * usable
		if c.Contains(t) {
			return x + (t-c.Start)/c.Duration()*w, true
		}
		x += w + g.gap
	}
	return 0, false
}

// PixelToTime is the inverse walk; pixels landing in a gap resolve to no
// time.
func (g *Gapped) PixelToTime(x float64) (float64, bool) {
	total := g.totalDuration()
	if total <= 0 || x < 0 {
		return 0, false
	}
	usable := g.usableWidth()
	left := 0.0
	for _, c := range g.chunks {
		w := c.Duration() / total * usable
		if x >= left && x < left+w {
			return c.Start + (x-left)/w*c.Duration(), true
		}
		left += w + g.gap
	}
	return 0, false
}

// VisibleTimeRange spans the full chunk list; the gapped layout never
// scrolls.
func (g *Gapped) VisibleTimeRange() TimeRange {
	if len(g.chunks) == 0 {
		return TimeRange{}
	}
	return TimeRange{Start: g.chunks[0].Start, End: g.chunks[len(g.chunks)-1].End}
}

// ChunkAtPixel resolves a pixel coordinate to the chunk whose proportional
// span contains it.
func (g *Gapped) ChunkAtPixel(x float64) (segment.Chunk, bool) {
	t, ok := g.PixelToTime(x)
	if !ok {
		return segment.Chunk{}, false
	}
	for _, c := range g.chunks {
		if c.Contains(t) {
			return c, true
		}
	}
	return segment.Chunk{}, false
}

// Zoomed maps the entire buffer (chunk gaps ignored) linearly across a
// virtual width of width*zoom; a scroll offset in seconds picks the visible
// sub-window. Active whenever the zoom factor exceeds 1.
type Zoomed struct {
	duration float64
	width    float64
	zoom     float64
	offset   float64 // seconds scrolled past on the left
}

// NewZoomed builds a zoomed layout. zoom values below 1 are treated as 1.
func NewZoomed(duration, width, zoom, offset float64) *Zoomed {
	if zoom < 1 {
		zoom = 1
	}
	return &Zoomed{duration: duration, width: width, zoom: zoom, offset: offset}
}

// VisibleTimeRange returns {offset, offset + duration/zoom} clamped to
// [0, duration].
func (z *Zoomed) VisibleTimeRange() TimeRange {
	start := z.offset
	if start < 0 {
		start = 0
	}
	end := start + z.duration/z.zoom
	if end > z.duration {
		end = z.duration
		start = end - z.duration/z.zoom
		if start < 0 {
			start = 0
		}
	}
	return TimeRange{Start: start, End: end}
}

func (z *Zoomed) TimeToPixel(t float64) (float64, bool) {
	vis := z.VisibleTimeRange()
	span := vis.End - vis.Start
	if span <= 0 {
		return 0, false
	}
	x := (t - vis.Start) / span * z.width
	if x < 0 || x >= z.width {
		return 0, false
	}
	return x, true
}

func (z *Zoomed) PixelToTime(x float64) (float64, bool) {
	if x < 0 || x >= z.width {
		return 0, false
	}
	vis := z.VisibleTimeRange()
	t := vis.Start + x/z.width*(vis.End-vis.Start)
	if t < 0 || t >= z.duration {
		return 0, false
	}
	return t, true
}
