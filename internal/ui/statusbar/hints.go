package statusbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// GetHints formats the enabled bindings as "key: description" pairs
func GetHints(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
