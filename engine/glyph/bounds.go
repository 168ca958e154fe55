package glyph

import (
	otf "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/npillmayer/unisvg/core/font"
)

// BBox is an axis-aligned bounding box in font design units, y-up.
type BBox struct {
	XMin, YMin float64
	XMax, YMax float64
}

func (box BBox) Width() float64 {
	return box.XMax - box.XMin
}

func (box BBox) Height() float64 {
	return box.YMax - box.YMin
}

// Degenerate tells if the box cannot anchor a scaling transform.
func (box BBox) Degenerate() bool {
	return box.Width() <= 0 || box.Height() <= 0
}

// Fallback bounds for glyphs without outline and metrics, roughly the ink
// extent of a typical letter in a 1000-upem font.
const (
	estimateYMin  = -150
	estimateYMax  = 700
	estimateWidth = 500
)

// Bounds determines the bounding box for a glyph. It prefers the exact
// extent of the outline's points, falls back to the font's glyph metrics,
// and as a last resort estimates a box from the advance width. The second
// return value tells which strategy produced the box.
func Bounds(f *font.LoadedFont, gid otf.GID) (BBox, BoundsOrigin) {
	if box, ok := outlineBounds(f, gid); ok {
		return box, BoundsExact
	}
	if box, ok := extentsBounds(f, gid); ok {
		return box, BoundsMetrics
	}
	return estimateBounds(f, gid), BoundsEstimated
}

// BoundsOrigin tells which strategy produced a bounding box.
type BoundsOrigin int8

const (
	BoundsExact BoundsOrigin = iota
	BoundsMetrics
	BoundsEstimated
)

func (o BoundsOrigin) String() string {
	switch o {
	case BoundsExact:
		return "outline"
	case BoundsMetrics:
		return "metrics"
	}
	return "estimated"
}

// outlineBounds accumulates the extent of all on-curve and control points
// of the glyph's outline.
func outlineBounds(f *font.LoadedFont, gid otf.GID) (BBox, bool) {
	outline, ok := f.Face.GlyphData(gid).(otf.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return BBox{}, false
	}
	var box BBox
	first := true
	visit := func(p opentype.SegmentPoint) {
		x, y := float64(p.X), float64(p.Y)
		if first {
			box = BBox{XMin: x, YMin: y, XMax: x, YMax: y}
			first = false
			return
		}
		if x < box.XMin {
			box.XMin = x
		}
		if x > box.XMax {
			box.XMax = x
		}
		if y < box.YMin {
			box.YMin = y
		}
		if y > box.YMax {
			box.YMax = y
		}
	}
	for _, seg := range outline.Segments {
		for _, p := range segmentPoints(seg) {
			visit(p)
		}
	}
	return box, !first
}

// extentsBounds derives a box from the font's glyph metrics. Note that the
// metrics count height downwards from the top bearing.
func extentsBounds(f *font.LoadedFont, gid otf.GID) (BBox, bool) {
	ext, ok := f.Face.GlyphExtents(gid)
	if !ok {
		return BBox{}, false
	}
	return BBox{
		XMin: float64(ext.XBearing),
		YMax: float64(ext.YBearing),
		XMax: float64(ext.XBearing + ext.Width),
		YMin: float64(ext.YBearing + ext.Height),
	}, true
}

// estimateBounds guesses a box when neither outline nor metrics are
// available. The advance width is usually still present and a better guess
// than a constant.
func estimateBounds(f *font.LoadedFont, gid otf.GID) BBox {
	w := float64(f.Face.HorizontalAdvance(gid))
	if w <= 0 {
		w = estimateWidth
	}
	tracer().Debugf("glyph %d has no outline nor metrics, estimating bounds", gid)
	return BBox{XMin: 0, YMin: estimateYMin, XMax: w, YMax: estimateYMax}
}

// segmentPoints returns the points a path segment carries, including
// control points of curves.
func segmentPoints(seg opentype.Segment) []opentype.SegmentPoint {
	switch seg.Op {
	case opentype.SegmentOpMoveTo, opentype.SegmentOpLineTo:
		return seg.Args[:1]
	case opentype.SegmentOpQuadTo:
		return seg.Args[:2]
	case opentype.SegmentOpCubeTo:
		return seg.Args[:3]
	}
	return nil
}
