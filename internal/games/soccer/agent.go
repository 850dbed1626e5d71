package soccer

import (
	"math"

	"github.com/vovakirdan/tui-kickoff/internal/core"
)

// Shared agent constants.
const (
	AgentRadius = 20.0
	KickRange   = 30.0
)

// Team identifies which side an agent plays for. Blue defends the left
// goal and attacks right; Red is the mirror image.
type Team int

const (
	TeamBlue Team = iota
	TeamRed
)

// String returns a human-readable name for the team.
func (t Team) String() string {
	if t == TeamBlue {
		return "Blue"
	}
	return "Red"
}

// AttackingGoal returns the center of the goal this team shoots at.
func (t Team) AttackingGoal() core.Vec2 {
	if t == TeamBlue {
		return core.V(FieldHalfWidth, 0)
	}
	return core.V(-FieldHalfWidth, 0)
}

// DefendingGoal returns the point in front of this team's own goal that
// its goalkeeper guards.
func (t Team) DefendingGoal() core.Vec2 {
	if t == TeamBlue {
		return core.V(-GoalMouthX, 0)
	}
	return core.V(GoalMouthX, 0)
}

// Agent is the shared contract of the two agent variants: the
// player-driven agent and the reactive AI agent. All agents are circular
// movers updated once per tick by the match.
type Agent interface {
	// Update advances the agent by dt seconds of simulated time.
	Update(dt float64)

	// Position returns the agent's current center.
	Position() core.Vec2

	// Radius returns the agent's collision radius.
	Radius() float64

	// Team returns which side the agent plays for.
	Team() Team
}

// mover holds the kinematic state common to both agent variants.
type mover struct {
	pos       core.Vec2
	radius    float64
	team      Team
	speed     float64
	kickPower float64
}

// Position returns the agent's current center.
func (m *mover) Position() core.Vec2 { return m.pos }

// Radius returns the agent's collision radius.
func (m *mover) Radius() float64 { return m.radius }

// Team returns which side the agent plays for.
func (m *mover) Team() Team { return m.team }

// tryMove applies delta only if the resulting position keeps the whole
// agent strictly inside the field. Acceptance is all-or-nothing: a
// proposed position that violates either axis is rejected entirely.
func (m *mover) tryMove(delta core.Vec2) {
	next := m.pos.Add(delta)
	if math.Abs(next.X) < FieldHalfWidth-m.radius && math.Abs(next.Y) < FieldHalfHeight-m.radius {
		m.pos = next
	}
}

// inKickRange reports whether the ball is close enough to kick,
// measured center to center.
func (m *mover) inKickRange(b *Ball) bool {
	return m.pos.Dist(b.Position) < KickRange
}
