package toastbar

// VisibilityState is where the bar is in its show/hide cycle
type VisibilityState int

const (
	Hidden VisibilityState = iota
	Showing
	Visible
	Hiding
)

// String returns a display name for the state
func (s VisibilityState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Showing:
		return "showing"
	case Visible:
		return "visible"
	case Hiding:
		return "hiding"
	default:
		return "unknown"
	}
}

// live reports whether the dismiss timer and click handler belong armed
func (s VisibilityState) live() bool {
	return s == Showing || s == Visible
}
