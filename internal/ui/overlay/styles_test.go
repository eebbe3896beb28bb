package overlay

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/toastbar/internal/ui/styles"
)

func TestNewStyles(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}

	if s.Overlay.GetBorderStyle() != lipgloss.RoundedBorder() {
		t.Error("Overlay should use a rounded border")
	}
	if !s.Title.GetBold() {
		t.Error("Title should be bold")
	}
	if !s.MenuKey.GetBold() {
		t.Error("MenuKey should be bold")
	}
}

func TestFromPalette(t *testing.T) {
	dark := FromPalette(styles.Macchiato)
	light := FromPalette(styles.Latte)

	if dark.MenuItem.GetForeground() != styles.Macchiato.Text {
		t.Errorf("MenuItem foreground = %v, want %v", dark.MenuItem.GetForeground(), styles.Macchiato.Text)
	}
	if light.Overlay.GetBackground() != styles.Latte.Base {
		t.Errorf("Overlay background = %v, want %v", light.Overlay.GetBackground(), styles.Latte.Base)
	}
}
