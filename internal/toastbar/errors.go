package toastbar

import "errors"

// Errors returned by Show for unusable requests
var (
	ErrNilOperation = errors.New("toastbar: operation is required")
	ErrNilListener  = errors.New("toastbar: listener is required unless the operation takes click precedence")
	ErrDetached     = errors.New("toastbar: bar has been detached")
)
