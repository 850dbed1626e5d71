package soccer

import (
	"github.com/vovakirdan/tui-kickoff/internal/core"
)

// Reactive AI tuning constants.
const (
	// goalkeeperAlertRange is how close the ball must be to the defended
	// goal before the goalkeeper leaves its line.
	goalkeeperAlertRange = 300.0

	// moveDeadzone stops agents from oscillating around their target.
	moveDeadzone = 0.5

	// Goalkeeper patrol window relative to the field center.
	keeperMinX = 700.0
	keeperMaxX = 950.0
	keeperMaxY = 150.0

	// How far past midfield a field agent will chase the ball.
	fieldChaseX = 600.0
	fieldClampX = 950.0

	// jitterSpread is the rough half-range of the per-agent target
	// offset, per axis.
	jitterSpread = 5.0
)

// ReactiveAgent is an AI-driven agent. A think timer gates target
// re-evaluation to once per think interval; movement toward the current
// target and kick attempts run every tick.
type ReactiveAgent struct {
	mover
	id            int
	ball          *Ball
	target        core.Vec2
	thinkTimer    float64
	thinkInterval float64
	goalkeeper    bool
}

// NewReactiveAgent creates an AI agent. The id must be stable and unique
// per agent; it seeds the deterministic target jitter that spreads field
// agents out around the ball.
func NewReactiveAgent(id int, team Team, pos core.Vec2, ball *Ball, goalkeeper bool, speed, kickPower, thinkInterval float64) *ReactiveAgent {
	return &ReactiveAgent{
		mover: mover{
			pos:       pos,
			radius:    AgentRadius,
			team:      team,
			speed:     speed,
			kickPower: kickPower,
		},
		id:            id,
		ball:          ball,
		target:        pos,
		thinkInterval: thinkInterval,
		goalkeeper:    goalkeeper,
	}
}

// IsGoalkeeper reports whether this agent plays goalkeeper.
func (a *ReactiveAgent) IsGoalkeeper() bool { return a.goalkeeper }

// Target returns the agent's current movement target.
func (a *ReactiveAgent) Target() core.Vec2 { return a.target }

// Update advances the think timer, re-targets when it fires, then moves
// toward the target and attempts a kick.
func (a *ReactiveAgent) Update(dt float64) {
	a.thinkTimer += dt
	if a.thinkTimer >= a.thinkInterval {
		a.updateTarget()
		// Reset to exactly zero: overshoot past the interval is
		// deliberately discarded, not carried into the next cycle.
		a.thinkTimer = 0
	}

	toward := a.target.Sub(a.pos)
	if toward.Len() > moveDeadzone {
		a.tryMove(toward.Normalize().Scale(a.speed * dt))
	}

	a.tryKick()
}

// updateTarget picks a new movement target from the current ball and
// goal positions. Called only when the think timer fires.
func (a *ReactiveAgent) updateTarget() {
	defend := a.team.DefendingGoal()

	if a.goalkeeper {
		if defend.Dist(a.ball.Position) < goalkeeperAlertRange {
			// Step toward the ball but stay biased to the goal, and never
			// leave the patrol window.
			t := a.ball.Position.Scale(0.7).Add(defend.Scale(0.3))
			if a.team == TeamRed {
				t.X = core.ClampF(t.X, keeperMinX, keeperMaxX)
			} else {
				t.X = core.ClampF(t.X, -keeperMaxX, -keeperMinX)
			}
			t.Y = core.ClampF(t.Y, -keeperMaxY, keeperMaxY)
			a.target = t
		} else {
			a.target = defend
		}
		return
	}

	// Field agents chase the ball, each offset by a stable per-agent
	// jitter so they fan out instead of stacking on it, and never chase
	// deep into their own attacking half's corner.
	t := a.ball.Position.Add(a.jitter())
	if a.team == TeamRed {
		t.X = core.ClampF(t.X, -fieldClampX, fieldChaseX)
	} else {
		t.X = core.ClampF(t.X, -fieldChaseX, fieldClampX)
	}
	a.target = t
}

// jitter derives a deterministic offset in roughly ±jitterSpread per axis
// from the agent's ID.
func (a *ReactiveAgent) jitter() core.Vec2 {
	x := float64((a.id*37)%11) - jitterSpread
	y := float64((a.id*53)%11) - jitterSpread
	return core.V(x, y)
}

// tryKick kicks the ball if it is in range. Goalkeepers clear away from
// their own goal; field agents shoot at the opponent's. A zero-length
// direction (ball exactly on the reference point) kicks with zero
// velocity, a defined no-op.
func (a *ReactiveAgent) tryKick() {
	if !a.inKickRange(a.ball) {
		return
	}

	var dir core.Vec2
	if a.goalkeeper {
		dir = a.ball.Position.Sub(a.team.DefendingGoal())
	} else {
		dir = a.team.AttackingGoal().Sub(a.ball.Position)
	}
	a.ball.Kick(dir, a.kickPower)
}
