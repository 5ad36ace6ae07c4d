package game

import "github.com/fitrush/fitrush/internal/core"

// MaxVelocity bounds the avatar's vertical speed in both directions.
const MaxVelocity = 15.0

// Avatar is the player-controlled body: a vertical position and velocity
// on the play field. Owned exclusively by the physics step; mutated once
// per frame while a run is live.
type Avatar struct {
	Y   float64 // Top edge of the hitbox
	Vel float64 // Positive is downward
}

// Update integrates one frame of vertical motion: constant gravity pulls
// down, exertion intensity lifts up, and the result is clamped to the
// field. Hitting either boundary kills the velocity.
func (a *Avatar) Update(intensity, gravity, lift, fieldH, size float64) {
	a.Vel += gravity
	a.Vel -= intensity * lift
	a.Vel = core.ClampF(a.Vel, -MaxVelocity, MaxVelocity)

	a.Y += a.Vel

	if a.Y < 0 {
		a.Y = 0
		a.Vel = 0
	}
	if floor := fieldH - size; a.Y > floor {
		a.Y = floor
		a.Vel = 0
	}
}

// Hitbox returns the avatar's collision rectangle at its fixed
// horizontal position.
func (a *Avatar) Hitbox(x, size float64) core.Rect {
	return core.NewRect(x, a.Y, size, size)
}
