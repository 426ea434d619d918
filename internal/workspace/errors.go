package workspace

import "errors"

// ErrRootNotFound is returned when the walk reaches the filesystem root
// without meeting a marker.
var ErrRootNotFound = errors.New("workspace root not found")
