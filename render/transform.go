package render

import "dungeon-layout/geometry"

// Transform maps world coordinates to screen pixels
type Transform struct {
	Scale  float64
	Offset geometry.Point // screen position of world (0, 0)
}

// Fit returns the transform that centers bounds in a width x height area,
// scaled uniformly to leave margin pixels free on the tighter axis.
// Degenerate bounds keep a scale of 1.
func Fit(bounds geometry.Rect, width, height, margin float64) Transform {
	availW := width - 2*margin
	availH := height - 2*margin
	scale := 1.0
	if bounds.Width() > 0 && bounds.Height() > 0 && availW > 0 && availH > 0 {
		scale = min(availW/bounds.Width(), availH/bounds.Height())
	}
	screenCenter := geometry.Pt(width/2, height/2)
	return Transform{
		Scale:  scale,
		Offset: screenCenter.Sub(bounds.Center.Scale(scale)),
	}
}

// Apply converts a world point to screen space
func (t Transform) Apply(p geometry.Point) geometry.Point {
	return p.Scale(t.Scale).Add(t.Offset)
}

// ApplyRect converts a world rectangle to its screen-space top-left corner
// and size
func (t Transform) ApplyRect(r geometry.Rect) (x, y, w, h float32) {
	lo := t.Apply(r.Min())
	return float32(lo.X), float32(lo.Y), float32(r.Width() * t.Scale), float32(r.Height() * t.Scale)
}
