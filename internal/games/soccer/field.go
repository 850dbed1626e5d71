// Package soccer implements a top-down soccer match: two teams of circular
// agents chase a ball on a bounded field, one agent driven by player input,
// the rest by reactive AI. The simulation is pure and tick-driven; the
// platform layer supplies input and renders the state.
package soccer

import (
	"github.com/vovakirdan/tui-kickoff/internal/core"
)

// Field half-extents in world units. The playable area spans
// [-FieldHalfWidth, FieldHalfWidth] x [-FieldHalfHeight, FieldHalfHeight].
const (
	FieldHalfWidth  = 960.0
	FieldHalfHeight = 540.0
)

// Goal zone geometry. Each goal is a box flush against an end line;
// the defended point agents fall back to sits slightly in front of it.
const (
	GoalCenterX    = 930.0
	GoalHalfDepth  = 30.0
	GoalHalfHeight = 100.0
	GoalMouthX     = 850.0 // X of the point goalkeepers guard
)

// Side identifies which end of the field a goal occupies.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	if s == SideLeft {
		return "Left"
	}
	return "Right"
}

// Goal is a rectangular scoring zone at one end of the field. It holds a
// non-owning callback into the match's score counters; it never mutates
// any state itself.
type Goal struct {
	Position core.Vec2
	HalfSize core.Vec2
	Side     Side

	onScore func()
}

// NewGoal creates the goal for the given side with the standard zone
// geometry. onScore is invoked once per detected containment; the caller
// is responsible for moving the ball out of the zone afterwards.
func NewGoal(side Side, onScore func()) *Goal {
	x := GoalCenterX
	if side == SideLeft {
		x = -GoalCenterX
	}
	return &Goal{
		Position: core.V(x, 0),
		HalfSize: core.V(GoalHalfDepth, GoalHalfHeight),
		Side:     side,
		onScore:  onScore,
	}
}

// Rect returns the goal's scoring zone as a world-space rectangle.
func (g *Goal) Rect() core.Rect {
	return core.NewRect(g.Position, g.HalfSize)
}

// ContainsBall reports whether the ball's center point lies inside the
// scoring zone. The check is inclusive at all four edges and ignores the
// ball radius.
func (g *Goal) ContainsBall(b *Ball) bool {
	return g.Rect().Contains(b.Position)
}

// score fires the scoring callback.
func (g *Goal) score() {
	if g.onScore != nil {
		g.onScore()
	}
}
