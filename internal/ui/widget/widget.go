// Package widget holds the small child views a toast bar positions and
// populates. Widgets carry visibility, content and geometry only; the
// owner decides where they go and how they are painted.
package widget

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/riordanpawley/toastbar/internal/ui/canvas"
)

// View is the geometry and visibility shared by all widgets. Frame is
// relative to the parent.
type View struct {
	visible bool
	frame   canvas.Rect
}

// NewView creates a visible view
func NewView() *View {
	return &View{visible: true}
}

// SetVisible shows or hides the view
func (v *View) SetVisible(visible bool) { v.visible = visible }

// Visible reports whether the view takes part in layout and drawing
func (v *View) Visible() bool { return v.visible }

// SetFrame positions the view within its parent
func (v *View) SetFrame(r canvas.Rect) { v.frame = r }

// Frame returns the view's position within its parent
func (v *View) Frame() canvas.Rect { return v.frame }

// Left returns the left edge within the parent
func (v *View) Left() int { return v.frame.Left }

// Right returns the exclusive right edge within the parent
func (v *View) Right() int { return v.frame.Right }

// Width returns the laid out width
func (v *View) Width() int { return v.frame.Width() }

// Height returns the laid out height
func (v *View) Height() int { return v.frame.Height() }

// TextView shows a single line of text
type TextView struct {
	View
	text string
}

// NewTextView creates an empty, visible text view
func NewTextView() *TextView {
	return &TextView{View: View{visible: true}}
}

// SetText replaces the text
func (t *TextView) SetText(s string) { t.text = s }

// Text returns the current text
func (t *TextView) Text() string { return t.text }

// MeasuredWidth is the number of columns the text wants
func (t *TextView) MeasuredWidth() int {
	return runewidth.StringWidth(t.text)
}

// ImageView shows a single icon glyph
type ImageView struct {
	View
	glyph string
}

// NewImageView creates an empty, visible image view
func NewImageView() *ImageView {
	return &ImageView{View: View{visible: true}}
}

// SetImage replaces the glyph
func (i *ImageView) SetImage(glyph string) { i.glyph = glyph }

// Image returns the current glyph
func (i *ImageView) Image() string { return i.glyph }

// MeasuredWidth is the number of columns the glyph wants
func (i *ImageView) MeasuredWidth() int {
	return runewidth.StringWidth(i.glyph)
}

// ClickHandler is invoked when a button is clicked
type ClickHandler func() tea.Cmd

// Button is a clickable view. Its click handler can be rebound or cleared.
type Button struct {
	View
	onClick ClickHandler
}

// NewButton creates a visible button without a click handler
func NewButton() *Button {
	return &Button{View: View{visible: true}}
}

// SetOnClick binds h, replacing any previous handler. nil unbinds.
func (b *Button) SetOnClick(h ClickHandler) { b.onClick = h }

// HasOnClick reports whether a click handler is bound
func (b *Button) HasOnClick() bool { return b.onClick != nil }

// PerformClick runs the bound handler. Unbound buttons ignore clicks.
func (b *Button) PerformClick() tea.Cmd {
	if b.onClick == nil {
		return nil
	}
	return b.onClick()
}
