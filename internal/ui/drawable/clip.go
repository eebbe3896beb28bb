package drawable

import "github.com/riordanpawley/toastbar/internal/ui/canvas"

// ClipBounds wraps a drawable and paints it restricted to an arbitrary
// rectangle. Two regions of one shared background can then be styled
// independently: the wrapped drawable keeps its full bounds, so rounded
// ends stay where they are and only the clipped part is painted.
type ClipBounds struct {
	inner Drawable
	clip  canvas.Rect
}

// NewClipBounds wraps d. Until SetClipBounds is called nothing is painted.
func NewClipBounds(d Drawable) *ClipBounds {
	return &ClipBounds{inner: d}
}

// SetClipBounds stores the clip rectangle used by the next Draw. The
// rectangle is not checked against the bounds; an out-of-range clip simply
// paints everything or nothing.
func (d *ClipBounds) SetClipBounds(left, top, right, bottom int) {
	d.clip = canvas.Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// ClipBounds returns the stored clip rectangle
func (d *ClipBounds) ClipBounds() canvas.Rect {
	return d.clip
}

// SetBounds forwards to the wrapped drawable
func (d *ClipBounds) SetBounds(r canvas.Rect) { d.inner.SetBounds(r) }

// Bounds returns the wrapped drawable's bounds
func (d *ClipBounds) Bounds() canvas.Rect { return d.inner.Bounds() }

// Draw paints the wrapped drawable inside the clip and leaves the canvas
// state as it was on entry.
func (d *ClipBounds) Draw(c *canvas.Canvas) {
	c.Save()
	defer c.Restore()
	c.ClipRect(d.clip)
	d.inner.Draw(c)
}
