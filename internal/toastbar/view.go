package toastbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/riordanpawley/toastbar/internal/ui/canvas"
	"github.com/riordanpawley/toastbar/internal/ui/widget"
)

// View renders the bar at its laid out size. A bar that is not shown renders
// as blank rows so the host layout keeps its place.
func (b *Bar) View() string {
	width, height := b.frame.Width(), b.frame.Height()
	if width == 0 || height == 0 {
		return ""
	}
	host := lipgloss.NewStyle().Background(b.colors.Host)
	if !b.IsShown() {
		line := host.Render(strings.Repeat(" ", width))
		return strings.TrimSuffix(strings.Repeat(line+"\n", height), "\n")
	}

	c := b.paint()
	return c.Render()
}

// paint draws the bar into a fresh canvas
func (b *Bar) paint() *canvas.Canvas {
	width, height := b.frame.Width(), b.frame.Height()
	col := b.colors
	fade := func(to lipgloss.Color) lipgloss.Color {
		return blend(col.Host, to, b.opacity)
	}

	c := canvas.New(width, height, lipgloss.NewStyle().Background(col.Host))

	b.background.Foreground = fade(col.Border)
	b.background.Background = fade(col.Surface)
	b.background.Draw(c)

	surface := lipgloss.NewStyle().Background(fade(col.Surface))
	r := b.row
	if r.DescriptionIcon.Visible() {
		drawText(c, r.DescriptionIcon.Frame(), r.DescriptionIcon.Image(), surface.Foreground(fade(col.Icon)))
	}
	drawText(c, r.DescriptionText.Frame(), r.DescriptionText.Text(), surface.Foreground(fade(col.Text)))

	button := r.ActionButton.Frame()
	action := lipgloss.NewStyle().Background(fade(col.Action))

	c.Save()
	c.Translate(button.Left, button.Top)
	b.buttonPill.Foreground = fade(col.Border)
	b.buttonPill.Background = fade(col.Action)
	b.buttonBg.Draw(c)

	divider := action.Foreground(fade(col.Divider))
	top, bottom := 0, height
	if height >= 3 {
		top, bottom = 1, height-1
	}
	for y := top; y < bottom; y++ {
		c.Set(r.Divider.Left(), y, '│', divider)
	}
	if r.ActionIcon.Visible() {
		drawText(c, r.ActionIcon.Frame(), r.ActionIcon.Image(), action.Foreground(fade(col.ActionText)))
	}
	drawText(c, r.ActionText.Frame(), r.ActionText.Text(), action.Foreground(fade(col.ActionText)).Bold(true))
	c.Restore()

	return c
}

// drawText paints s into frame, truncated to the frame's width
func drawText(c *canvas.Canvas, frame canvas.Rect, s string, style lipgloss.Style) {
	if frame.Empty() || s == "" {
		return
	}
	if runewidth.StringWidth(s) > frame.Width() {
		s = runewidth.Truncate(s, frame.Width(), "…")
	}
	c.DrawString(frame.Left, frame.Top, s, style)
}

// blend mixes from toward to. t of 1 is fully to.
func blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	if t >= 1 {
		return to
	}
	if t <= 0 {
		return from
	}
	a, err := colorful.Hex(string(from))
	if err != nil {
		return to
	}
	z, err := colorful.Hex(string(to))
	if err != nil {
		return to
	}
	return lipgloss.Color(a.BlendLab(z, t).Clamped().Hex())
}

// Row exposes the child widgets for hosts that inspect the current content
func (b *Bar) Row() *widget.ToastRow {
	return b.row
}
