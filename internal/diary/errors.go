package diary

import "errors"

// ErrPageMapMismatch is returned when entry line ranges and the line→page
// table cannot describe the same document.
var ErrPageMapMismatch = errors.New("entry line ranges inconsistent with page map")

// ErrUnknownStrategy indicates an attachment strategy name outside the known set.
var ErrUnknownStrategy = errors.New("unknown attachment strategy")
