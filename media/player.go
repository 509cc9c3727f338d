// Package media plays the intro after the splash and implements the controller's collaborator surface
package media

import "errors"

// Player starts intro playback and reports its natural end
type Player interface {
	// Play starts playback of path, onEnded fires once when playback finishes on its own
	Play(path string, onEnded func()) error
	// Stop halts playback, onEnded of the stopped playback never fires afterwards
	Stop()
	Name() string
}

// Sentinel errors
var (
	ErrNoPlayer = errors.New("no compatible media player found")
	ErrNoIntro  = errors.New("no intro media configured")
)
