package soccer

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-kickoff/internal/core"
)

const tickDt = 1.0 / 60.0

func TestBallFrictionMonotonic(t *testing.T) {
	b := NewBall()
	b.Velocity = core.V(150, -90)

	prev := b.Velocity.Len()
	for i := 0; i < 120; i++ {
		b.Update(tickDt, nil)
		speed := b.Velocity.Len()
		if speed > prev {
			t.Fatalf("tick %d: speed increased from %f to %f without a kick", i, prev, speed)
		}
		prev = speed
	}
}

func TestBallStopsBelowThreshold(t *testing.T) {
	b := NewBall()
	b.Velocity = core.V(0.105, 0)

	// 0.105 * 0.95 = 0.09975 < 0.1, so one tick snaps to rest.
	b.Update(tickDt, nil)
	if !b.Velocity.IsZero() {
		t.Errorf("velocity %v should have snapped to zero", b.Velocity)
	}
}

func TestBallBounceRight(t *testing.T) {
	b := NewBall()
	b.Position = core.V(955, 300)
	b.Velocity = core.V(600, 0)

	b.Update(tickDt, nil)

	if b.Position.X != FieldHalfWidth {
		t.Errorf("position.X = %f, expected exactly %f", b.Position.X, FieldHalfWidth)
	}
	if b.Velocity.X >= 0 {
		t.Errorf("velocity.X = %f, expected negative after bounce", b.Velocity.X)
	}
	// Damping retains 70% of the post-friction speed on the bounced axis.
	want := -600 * ballFriction * ballBounceDamping
	if math.Abs(b.Velocity.X-want) > 1e-9 {
		t.Errorf("velocity.X = %f, expected %f", b.Velocity.X, want)
	}
}

func TestBallCornerBounceBothAxes(t *testing.T) {
	b := NewBall()
	b.Position = core.V(-958, -538)
	b.Velocity = core.V(-600, -600)

	b.Update(tickDt, nil)

	if b.Position.X != -FieldHalfWidth || b.Position.Y != -FieldHalfHeight {
		t.Errorf("position = %v, expected exact corner (-%f, -%f)", b.Position, FieldHalfWidth, FieldHalfHeight)
	}
	if b.Velocity.X <= 0 || b.Velocity.Y <= 0 {
		t.Errorf("velocity = %v, expected both axes reflected", b.Velocity)
	}
}

func TestBallKick(t *testing.T) {
	b := NewBall()

	b.Kick(core.V(0, 5), 300)
	if !vecClose(b.Velocity, core.V(0, 300)) {
		t.Errorf("Kick velocity = %v, expected (0, 300)", b.Velocity)
	}

	// Zero direction kicks with zero velocity, not a fault.
	b.Kick(core.V(0, 0), 300)
	if !b.Velocity.IsZero() {
		t.Errorf("zero-direction kick velocity = %v, expected zero", b.Velocity)
	}
}

func TestBallResetIdempotent(t *testing.T) {
	b := NewBall()
	b.Position = core.V(123, -45)
	b.Velocity = core.V(9, 9)

	b.Reset()
	first := *b
	b.Reset()

	if *b != first {
		t.Errorf("second Reset changed state: %+v vs %+v", *b, first)
	}
	if !b.Position.IsZero() || !b.Velocity.IsZero() {
		t.Errorf("after Reset, position = %v velocity = %v, expected origin at rest", b.Position, b.Velocity)
	}
}

func TestGoalContainmentInclusiveEdges(t *testing.T) {
	g := NewGoal(SideRight, nil)
	b := NewBall()

	tests := []struct {
		name     string
		pos      core.Vec2
		expected bool
	}{
		{"center of zone", core.V(GoalCenterX, 0), true},
		{"exactly on inner edge", core.V(GoalCenterX - GoalHalfDepth, 0), true},
		{"exactly on end line", core.V(GoalCenterX + GoalHalfDepth, 0), true},
		{"exactly on top edge", core.V(GoalCenterX, -GoalHalfHeight), true},
		{"exactly on bottom edge", core.V(GoalCenterX, GoalHalfHeight), true},
		{"just in front of zone", core.V(GoalCenterX - GoalHalfDepth - 0.01, 0), false},
		{"beside the post", core.V(GoalCenterX, GoalHalfHeight + 0.01), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b.Position = tc.pos
			if got := g.ContainsBall(b); got != tc.expected {
				t.Errorf("ContainsBall at %v = %v, expected %v", tc.pos, got, tc.expected)
			}
		})
	}
}

func TestBallScoresAndResets(t *testing.T) {
	// Ball fired hard right from the center with dt=1 overshoots the
	// boundary, clamps onto the end line inside the right goal, scores
	// for the player, and resets.
	scored := 0
	right := NewGoal(SideRight, func() { scored++ })
	left := NewGoal(SideLeft, func() { t.Error("left goal should not score") })

	b := NewBall()
	b.Velocity = core.V(2000, 0)

	b.Update(1.0, []*Goal{left, right})

	if scored != 1 {
		t.Errorf("right goal scored %d times, expected 1", scored)
	}
	if !b.Position.IsZero() || !b.Velocity.IsZero() {
		t.Errorf("after goal, position = %v velocity = %v, expected reset to origin at rest", b.Position, b.Velocity)
	}
}

func TestBallInBothGoalZonesCreditsBoth(t *testing.T) {
	// Containment is evaluated for every goal before the reset, so a ball
	// inside two overlapping zones credits both callbacks in one tick and
	// still resets once.
	scoredA := 0
	scoredB := 0
	a := NewGoal(SideRight, func() { scoredA++ })
	b2 := NewGoal(SideRight, func() { scoredB++ })

	b := NewBall()
	b.Position = core.V(GoalCenterX, 0)

	b.Update(tickDt, []*Goal{a, b2})

	if scoredA != 1 || scoredB != 1 {
		t.Errorf("callbacks fired (%d, %d) times, expected (1, 1)", scoredA, scoredB)
	}
	if !b.Position.IsZero() || !b.Velocity.IsZero() {
		t.Errorf("after goal, position = %v velocity = %v, expected reset to origin at rest", b.Position, b.Velocity)
	}
}

func TestBallGoalCallbackFiresOncePerEvent(t *testing.T) {
	scored := 0
	right := NewGoal(SideRight, func() { scored++ })

	b := NewBall()
	b.Position = core.V(GoalCenterX, 0)

	goals := []*Goal{right}
	b.Update(tickDt, goals)
	// The reset moved the ball to the origin, so the next tick must not
	// score again.
	b.Update(tickDt, goals)

	if scored != 1 {
		t.Errorf("scored %d times, expected exactly 1", scored)
	}
}

func vecClose(a, b core.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}
