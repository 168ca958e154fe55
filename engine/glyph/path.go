package glyph

import (
	"fmt"
	"strings"

	otf "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/npillmayer/unisvg/core/font"
)

// Rendering is a glyph outline, normalized and expressed as an SVG path.
type Rendering struct {
	Codepoint rune
	FontKey   string  // key of the font that resolved the codepoint
	Path      string  // SVG path expression; empty for outline-less glyphs
	Box       BBox    // bounding box in design units
	Origin    BoundsOrigin
	Scale     float64
	DX, DY    float64 // centering translation on the canvas
}

// Render normalizes the outline of a resolved glyph to targetSize and
// centers it on a square canvas. Glyphs without an outline (a space, say)
// render to an empty path; that is a valid outcome, not an error.
func Render(m Match, targetSize float64, canvas float64) Rendering {
	box, origin := Bounds(m.Font, m.GID)
	trafo, ok := Normalize(box, targetSize)
	r := Rendering{
		Codepoint: m.Codepoint,
		FontKey:   m.Font.Asset.Key,
		Box:       box,
		Origin:    origin,
		Scale:     trafo.Scale,
	}
	if ok {
		r.Path = outlinePath(m.Font, m.GID, trafo)
		r.DX, r.DY = CenterOffset(box, trafo.Scale, canvas)
	} else {
		r.DX, r.DY = canvas/2, canvas/2
	}
	tracer().Debugf("rendered U+%04X from %s: box=%s scale=%.4f", m.Codepoint,
		m.Font.Asset.Key, origin, r.Scale)
	return r
}

// outlinePath walks the glyph's outline segments through a transform and
// emits an SVG path expression. Every contour is closed explicitly.
func outlinePath(f *font.LoadedFont, gid otf.GID, trafo Transform) string {
	outline, ok := f.Face.GlyphData(gid).(otf.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return ""
	}
	var b strings.Builder
	open := false
	emit := func(cmd string, points []opentype.SegmentPoint) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(cmd)
		for _, p := range points {
			x, y := trafo.Apply(float64(p.X), float64(p.Y))
			fmt.Fprintf(&b, " %.2f %.2f", x, y)
		}
	}
	for _, seg := range outline.Segments {
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			if open {
				b.WriteString(" Z")
			}
			emit("M", seg.Args[:1])
			open = true
		case opentype.SegmentOpLineTo:
			emit("L", seg.Args[:1])
		case opentype.SegmentOpQuadTo:
			emit("Q", seg.Args[:2])
		case opentype.SegmentOpCubeTo:
			emit("C", seg.Args[:3])
		}
	}
	if open {
		b.WriteString(" Z")
	}
	return b.String()
}
