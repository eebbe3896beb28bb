// Package drawable contains backgrounds that paint into a canvas.
package drawable

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/toastbar/internal/ui/canvas"
)

// Drawable paints itself within its bounds
type Drawable interface {
	SetBounds(r canvas.Rect)
	Bounds() canvas.Rect
	Draw(c *canvas.Canvas)
}

// Rounded pill caps for single-row pills (powerline half circles)
const (
	CapLeft  = '\ue0b6'
	CapRight = '\ue0b4'
)

// Pill is a filled background with rounded ends. Rows taller than one cell
// are drawn as a rounded box.
type Pill struct {
	bounds     canvas.Rect
	Foreground lipgloss.TerminalColor
	Background lipgloss.TerminalColor
	// Caps used for one-row pills; zero values fall back to CapLeft/CapRight
	LeftCap, RightCap rune
}

// NewPill creates a pill drawn in the given colors
func NewPill(fg, bg lipgloss.TerminalColor) *Pill {
	return &Pill{Foreground: fg, Background: bg}
}

// SetBounds sets where the pill is drawn
func (p *Pill) SetBounds(r canvas.Rect) { p.bounds = r }

// Bounds returns where the pill is drawn
func (p *Pill) Bounds() canvas.Rect { return p.bounds }

// Draw paints the pill
func (p *Pill) Draw(c *canvas.Canvas) {
	b := p.bounds
	if b.Empty() {
		return
	}
	fill := lipgloss.NewStyle().Foreground(p.Foreground).Background(p.Background)
	c.Fill(b, ' ', fill)

	if b.Height() == 1 {
		left, right := p.LeftCap, p.RightCap
		if left == 0 {
			left = CapLeft
		}
		if right == 0 {
			right = CapRight
		}
		// caps are drawn in the pill color over the host background
		capStyle := lipgloss.NewStyle().Foreground(p.Background)
		c.Set(b.Left, b.Top, left, capStyle)
		c.Set(b.Right-1, b.Top, right, capStyle)
		return
	}

	border := lipgloss.RoundedBorder()
	top, bottom := b.Top, b.Bottom-1
	left, right := b.Left, b.Right-1
	for x := left + 1; x < right; x++ {
		c.DrawString(x, top, border.Top, fill)
		c.DrawString(x, bottom, border.Bottom, fill)
	}
	for y := top + 1; y < bottom; y++ {
		c.DrawString(left, y, border.Left, fill)
		c.DrawString(right, y, border.Right, fill)
	}
	c.DrawString(left, top, border.TopLeft, fill)
	c.DrawString(right, top, border.TopRight, fill)
	c.DrawString(left, bottom, border.BottomLeft, fill)
	c.DrawString(right, bottom, border.BottomRight, fill)
}
