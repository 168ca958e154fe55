package glyph

// Transform maps a point from font design space (y-up, arbitrary extent)
// into SVG space (y-down, anchored at the origin). Scaling is uniform.
type Transform struct {
	Scale float64
	xMin  float64 // left edge of the source box
	yMax  float64 // top edge of the source box
}

// Apply transforms a design-space point into SVG space.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return (x - t.xMin) * t.Scale, (t.yMax - y) * t.Scale
}

// Normalize computes the transform that scales a bounding box uniformly to
// fit into target×target, preserving the aspect ratio, and flips it into
// y-down orientation. A degenerate box yields an identity-scale transform
// and ok=false; callers then emit an empty path.
func Normalize(box BBox, target float64) (Transform, bool) {
	t := Transform{Scale: 1.0, xMin: box.XMin, yMax: box.YMax}
	if box.Degenerate() {
		tracer().Debugf("degenerate bounding box %v, skipping normalization", box)
		return t, false
	}
	w, h := box.Width(), box.Height()
	longest := w
	if h > longest {
		longest = h
	}
	t.Scale = target / longest
	return t, true
}

// CenterOffset computes the translation that centers a scaled bounding box
// on a square canvas.
func CenterOffset(box BBox, scale float64, canvas float64) (float64, float64) {
	dx := (canvas - box.Width()*scale) / 2
	dy := (canvas - box.Height()*scale) / 2
	return dx, dy
}
