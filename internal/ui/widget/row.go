package widget

// ToastRow is the set of child widgets a toast bar arranges. The divider,
// action icon and action text are children of the action button, so their
// frames are relative to the button.
type ToastRow struct {
	DescriptionIcon *ImageView
	DescriptionText *TextView
	ActionButton    *Button
	Divider         *View
	ActionIcon      *ImageView
	ActionText      *TextView
}

// DefaultActionIcon is the glyph shown beside the action label
const DefaultActionIcon = "↶"

// NewToastRow creates the default child widgets for a toast bar
func NewToastRow() *ToastRow {
	actionIcon := NewImageView()
	actionIcon.SetImage(DefaultActionIcon)
	return &ToastRow{
		DescriptionIcon: NewImageView(),
		DescriptionText: NewTextView(),
		ActionButton:    NewButton(),
		Divider:         NewView(),
		ActionIcon:      actionIcon,
		ActionText:      NewTextView(),
	}
}
