// Package layout holds the drag, snap and reorder rules for the board.
//
// Nothing in here draws. Widgets are reached through Handle, so every rule
// can run against a fake in tests and against an Ebitengine card at runtime.
// All methods are meant to be called from the game's Update goroutine only.
package layout

import "time"

// Handle is the visual capability a draggable widget exposes to the tracker
// and the snap resolver. Positions are relative to the container's top-left.
type Handle interface {
	ID() string
	Position() Point
	Size() Size

	// SetPosition moves the widget immediately, dropping any running animation.
	SetPosition(p Point)
	// AnimateTo eases the widget to p over d. With transitions disabled it
	// behaves like SetPosition.
	AnimateTo(p Point, d time.Duration)
	SetTransitions(enabled bool)

	SetElevated(elevated bool)
	SetGrabbing(grabbing bool)

	// PlayBounce runs the cosmetic "did not snap" feedback. It never changes
	// Position.
	PlayBounce()
}
