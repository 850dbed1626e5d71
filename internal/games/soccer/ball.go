package soccer

import (
	"github.com/vovakirdan/tui-kickoff/internal/core"
)

// Ball physics constants.
const (
	BallRadius = 12.0

	// ballFriction is applied once per tick, not per second, so decay is
	// frame-rate dependent. This matches the arcade feel the game is
	// tuned for; do not time-normalize it.
	ballFriction = 0.95

	// ballStopSpeed is the speed below which the ball snaps to rest,
	// preventing endless micro-drift.
	ballStopSpeed = 0.1

	// ballBounceDamping is the fraction of velocity retained on the
	// bounced axis after hitting a boundary.
	ballBounceDamping = 0.7
)

// Ball is a point mass with velocity. It integrates its own motion,
// decays under friction, bounces off the field boundary, and reports
// itself to the goals each tick. Kicks come from agents, never from the
// ball itself.
type Ball struct {
	Position core.Vec2
	Velocity core.Vec2
	Radius   float64
}

// NewBall creates a ball at rest at the field origin.
func NewBall() *Ball {
	return &Ball{Radius: BallRadius}
}

// Update advances the ball by dt seconds: integrate position, apply
// friction, resolve boundary bounces, then check the goals. Both axes
// can bounce in the same tick, and both goals can score in the same tick;
// the ball resets to the origin after any goal.
func (b *Ball) Update(dt float64, goals []*Goal) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))

	b.Velocity = b.Velocity.Scale(ballFriction)
	if b.Velocity.Len() < ballStopSpeed {
		b.Velocity = core.Vec2{}
	}

	// Boundary bounce, each axis resolved independently.
	if b.Position.X > FieldHalfWidth {
		b.Position.X = FieldHalfWidth
		b.Velocity.X *= -ballBounceDamping
	} else if b.Position.X < -FieldHalfWidth {
		b.Position.X = -FieldHalfWidth
		b.Velocity.X *= -ballBounceDamping
	}
	if b.Position.Y > FieldHalfHeight {
		b.Position.Y = FieldHalfHeight
		b.Velocity.Y *= -ballBounceDamping
	} else if b.Position.Y < -FieldHalfHeight {
		b.Position.Y = -FieldHalfHeight
		b.Velocity.Y *= -ballBounceDamping
	}

	// Evaluate containment for every goal before resetting so that a ball
	// somehow inside both zones credits both callbacks.
	scored := false
	for _, g := range goals {
		if g.ContainsBall(b) {
			g.score()
			scored = true
		}
	}
	if scored {
		b.Reset()
	}
}

// Kick sets the ball's velocity to the normalized direction scaled by
// power. A zero-length direction results in zero velocity, never a fault.
func (b *Ball) Kick(dir core.Vec2, power float64) {
	b.Velocity = dir.Normalize().Scale(power)
}

// Reset returns the ball to the field origin at rest. Idempotent.
func (b *Ball) Reset() {
	b.Position = core.Vec2{}
	b.Velocity = core.Vec2{}
}
