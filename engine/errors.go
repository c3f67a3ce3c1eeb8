package engine

import "errors"

// ErrPlayerExists is returned when spawning a second player
var ErrPlayerExists = errors.New("engine: player already spawned")
