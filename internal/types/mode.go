// Package types contains shared types used across the application.
package types

// Mode represents what the mailbox screen is doing
type Mode int

const (
	ModeNormal Mode = iota
	ModeFilter
	ModeToast
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeFilter:
		return "FILTER"
	case ModeToast:
		return "TOAST"
	default:
		return "UNKNOWN"
	}
}
