package toastbar

// ResourceID refers to an icon or label owned by the host. Zero means none.
type ResourceID int

// NoResource is the zero ResourceID
const NoResource ResourceID = 0

// Resources resolves resource IDs. Loading and localization live with the host.
type Resources interface {
	// Icon returns the glyph for id, or false if there is none
	Icon(id ResourceID) (string, bool)
	// String returns the label for id, or "" if there is none
	String(id ResourceID) string
}

// MapResources is a Resources backed by maps
type MapResources struct {
	Icons   map[ResourceID]string
	Strings map[ResourceID]string
}

// Icon implements Resources
func (r MapResources) Icon(id ResourceID) (string, bool) {
	if id == NoResource {
		return "", false
	}
	glyph, ok := r.Icons[id]
	if !ok || glyph == "" {
		return "", false
	}
	return glyph, true
}

// String implements Resources
func (r MapResources) String(id ResourceID) string {
	return r.Strings[id]
}
