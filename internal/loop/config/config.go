// Package config centralizes the terminal front end's tunables.
package config

import "time"

// Terminal render area. Larger terminals get the court centered with a
// border instead of stretching further.
const (
	MaxTermWidth  = 200
	MaxTermHeight = 62
)

// Input
const (
	// Terminals only report key presses, never releases, so a key counts as
	// held for this long after its last byte. Must cover the keyboard's
	// auto-repeat interval or held keys stutter.
	KeyHoldDuration = 90 * time.Millisecond
)

// Inactivity
const (
	InactivityDisconnect = 5 * time.Minute // SSH sessions only
)
