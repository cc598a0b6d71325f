package engine

import "errors"

// ErrNotDevMode guards the day-shift controls; the real clock cannot be
// steered.
var ErrNotDevMode = errors.New("dev mode is off (run: tend day on)")
