package soccer

import (
	"testing"

	"github.com/vovakirdan/tui-kickoff/internal/core"
)

func newTestUser(pos core.Vec2, ball *Ball) *UserAgent {
	return NewUserAgent(TeamBlue, pos, ball, DefaultUserSpeed, DefaultUserKickPower)
}

func TestUserAgentMovesAlongInput(t *testing.T) {
	ball := NewBall()
	ball.Position = core.V(500, 500) // out of kick range
	a := newTestUser(core.V(0, 0), ball)

	a.SetInput(core.V(1, 0))
	a.Update(0.1)

	want := core.V(DefaultUserSpeed*0.1, 0)
	if !vecClose(a.Position(), want) {
		t.Errorf("position = %v, expected %v", a.Position(), want)
	}
}

func TestUserAgentInputClampedToUnit(t *testing.T) {
	ball := NewBall()
	ball.Position = core.V(500, 500)
	a := newTestUser(core.V(0, 0), ball)

	// Malformed oversized input must be clamped, not rejected.
	a.SetInput(core.V(5, 0))
	a.Update(0.1)

	want := core.V(DefaultUserSpeed*0.1, 0)
	if !vecClose(a.Position(), want) {
		t.Errorf("position = %v, expected %v (input clamped to magnitude 1)", a.Position(), want)
	}
}

func TestUserAgentKicksBallInRange(t *testing.T) {
	// Ball 25 units away, inside kick range 30: one update with input
	// (1,0) sets the ball velocity to kick power along the input.
	ball := NewBall()
	ball.Position = core.V(25, 0)
	a := newTestUser(core.V(0, 0), ball)

	a.SetInput(core.V(1, 0))
	a.Update(tickDt)

	if !vecClose(ball.Velocity, core.V(DefaultUserKickPower, 0)) {
		t.Errorf("ball velocity = %v, expected (%f, 0)", ball.Velocity, DefaultUserKickPower)
	}
}

func TestUserAgentNoKickWhenIdle(t *testing.T) {
	ball := NewBall()
	ball.Position = core.V(10, 0) // well within range
	a := newTestUser(core.V(0, 0), ball)

	a.SetInput(core.V(0, 0))
	a.Update(tickDt)

	if !ball.Velocity.IsZero() {
		t.Errorf("idle agent kicked the ball: velocity = %v", ball.Velocity)
	}
	if !a.Position().IsZero() {
		t.Errorf("idle agent moved: position = %v", a.Position())
	}
}

func TestUserAgentBoundaryAllOrNothing(t *testing.T) {
	ball := NewBall()
	ball.Position = core.V(-500, -500)

	// Agent just inside the inset boundary on x. A diagonal move whose x
	// component would cross the inset is rejected entirely: the legal y
	// component does not apply either.
	a := newTestUser(core.V(FieldHalfWidth-AgentRadius-1, 100), ball)
	start := a.Position()

	a.SetInput(core.V(1, -1).Normalize())
	a.Update(0.1)

	if !vecClose(a.Position(), start) {
		t.Errorf("position = %v, expected unchanged %v (move rejected atomically)", a.Position(), start)
	}

	// A pure y move from the same spot is fine.
	a.SetInput(core.V(0, -1))
	a.Update(0.1)

	if a.Position().X != start.X {
		t.Errorf("x changed to %f on a y-only move", a.Position().X)
	}
	if a.Position().Y >= start.Y {
		t.Errorf("y = %f, expected to decrease from %f", a.Position().Y, start.Y)
	}
}

func TestUserAgentCannotReachInsetBoundary(t *testing.T) {
	ball := NewBall()
	ball.Position = core.V(-500, -500)
	a := newTestUser(core.V(0, 0), ball)

	a.SetInput(core.V(1, 0))
	for i := 0; i < 2000; i++ {
		a.Update(tickDt)
	}

	limit := FieldHalfWidth - AgentRadius
	if a.Position().X >= limit {
		t.Errorf("position.X = %f, expected strictly below %f", a.Position().X, limit)
	}
}
