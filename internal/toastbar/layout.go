package toastbar

import (
	"github.com/riordanpawley/toastbar/internal/ui/canvas"
)

// Layout places the bar on screen at (x, y) with the given width and lays
// out its children. Call it whenever the host's geometry changes.
func (b *Bar) Layout(x, y, width int) {
	b.frame = canvas.NewRect(x, y, max(0, width), b.height)
	b.layout()
}

// Frame returns the bar's on-screen rectangle
func (b *Bar) Frame() canvas.Rect {
	return b.frame
}

// Height returns the number of rows the bar occupies
func (b *Bar) Height() int {
	return b.height
}

// ClipBounds returns the clip rectangle of the action region, relative to
// the action button.
func (b *Bar) ClipBounds() canvas.Rect {
	return b.buttonBg.ClipBounds()
}

// layout positions the children left to right, then mirrors them for
// right-to-left hosts. The action button holds the divider, action icon and
// action text, framed relative to the button:
//
//	╭──────────────────────────╮
//	│ ✓ Archived     │ ↶ Undo  │
//	╰──────────────────────────╯
//	               ^ button starts one cell before the divider
func (b *Bar) layout() {
	r := b.row
	width, height := b.frame.Width(), b.frame.Height()
	row := height / 2

	// action button, in button coordinates
	r.Divider.SetFrame(canvas.NewRect(1, 0, 1, height))
	cur := 3
	if r.ActionIcon.Visible() {
		w := r.ActionIcon.MeasuredWidth()
		r.ActionIcon.SetFrame(canvas.NewRect(cur, row, w, 1))
		cur += w + 1
	}
	w := r.ActionText.MeasuredWidth()
	r.ActionText.SetFrame(canvas.NewRect(cur, row, w, 1))
	cur += w
	buttonWidth := min(cur+2, width)
	button := canvas.NewRect(width-buttonWidth, 0, buttonWidth, height)

	// description, in bar coordinates
	cur = 2
	if r.DescriptionIcon.Visible() {
		w := r.DescriptionIcon.MeasuredWidth()
		r.DescriptionIcon.SetFrame(canvas.NewRect(cur, row, w, 1))
		cur += w + 1
	}
	avail := max(0, button.Left-1-cur)
	r.DescriptionText.SetFrame(canvas.NewRect(cur, row, min(r.DescriptionText.MeasuredWidth(), avail), 1))

	if b.rtl {
		button = button.MirrorX(width)
		r.DescriptionIcon.SetFrame(r.DescriptionIcon.Frame().MirrorX(width))
		r.DescriptionText.SetFrame(r.DescriptionText.Frame().MirrorX(width))
		r.Divider.SetFrame(r.Divider.Frame().MirrorX(buttonWidth))
		r.ActionIcon.SetFrame(r.ActionIcon.Frame().MirrorX(buttonWidth))
		r.ActionText.SetFrame(r.ActionText.Frame().MirrorX(buttonWidth))
	}
	r.ActionButton.SetFrame(button)

	b.background.SetBounds(canvas.NewRect(0, 0, width, height))
	b.buttonBg.SetBounds(canvas.NewRect(0, 0, buttonWidth, height))

	// The action region shares the bar's rounded background. Clipping at the
	// divider drops the rounded edge on the inner side, so the two regions
	// meet square and read as one split pill.
	left, right := r.Divider.Left(), r.ActionButton.Width()
	if b.rtl {
		left, right = 0, r.Divider.Right()
	}
	b.buttonBg.SetClipBounds(left, 0, right, r.ActionButton.Height())
}
