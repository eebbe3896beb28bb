package widget

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/toastbar/internal/ui/canvas"
	"github.com/stretchr/testify/assert"
)

func TestButton_Rebind(t *testing.T) {
	b := NewButton()
	assert.Nil(t, b.PerformClick(), "unbound button ignores clicks")

	var first, second int
	b.SetOnClick(func() tea.Cmd { first++; return nil })
	b.SetOnClick(func() tea.Cmd { second++; return nil })
	b.PerformClick()

	assert.Zero(t, first, "replaced handler must not fire")
	assert.Equal(t, 1, second)

	b.SetOnClick(nil)
	assert.False(t, b.HasOnClick())
	b.PerformClick()
	assert.Equal(t, 1, second)
}

func TestView_Geometry(t *testing.T) {
	v := NewView()
	v.SetFrame(canvas.NewRect(3, 0, 4, 3))

	assert.True(t, v.Visible())
	assert.Equal(t, 3, v.Left())
	assert.Equal(t, 7, v.Right())
	assert.Equal(t, 4, v.Width())
	assert.Equal(t, 3, v.Height())
}

func TestMeasuredWidth(t *testing.T) {
	tv := NewTextView()
	tv.SetText("Archived")
	assert.Equal(t, 8, tv.MeasuredWidth())

	iv := NewImageView()
	iv.SetImage("界")
	assert.Equal(t, 2, iv.MeasuredWidth())
}

func TestNewToastRow(t *testing.T) {
	row := NewToastRow()

	assert.NotNil(t, row.DescriptionIcon)
	assert.NotNil(t, row.DescriptionText)
	assert.NotNil(t, row.ActionButton)
	assert.NotNil(t, row.Divider)
	assert.NotNil(t, row.ActionIcon)
	assert.NotNil(t, row.ActionText)
}

func TestNewToastRow_ActionIcon(t *testing.T) {
	row := NewToastRow()
	assert.Equal(t, DefaultActionIcon, row.ActionIcon.Image())
}
