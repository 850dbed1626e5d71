package soccer

import (
	"github.com/vovakirdan/tui-kickoff/internal/core"
)

// UserAgent is the single player-controlled agent. It carries no AI
// state; each tick it moves along the externally supplied input vector
// and kicks the ball along that direction when in range.
type UserAgent struct {
	mover
	ball  *Ball
	input core.Vec2
}

// NewUserAgent creates the player's agent at the given position.
func NewUserAgent(team Team, pos core.Vec2, ball *Ball, speed, kickPower float64) *UserAgent {
	return &UserAgent{
		mover: mover{
			pos:       pos,
			radius:    AgentRadius,
			team:      team,
			speed:     speed,
			kickPower: kickPower,
		},
		ball: ball,
	}
}

// SetInput supplies the direction vector for the next Update. The zero
// vector signifies idle. Out-of-range vectors are clamped to magnitude 1
// rather than rejected.
func (a *UserAgent) SetInput(v core.Vec2) {
	a.input = v.ClampLen(1)
}

// Update moves the agent along the current input vector and kicks the
// ball if it is in range. No kick happens while idle, even with the ball
// at the agent's feet.
func (a *UserAgent) Update(dt float64) {
	a.tryMove(a.input.Scale(a.speed * dt))

	if !a.input.IsZero() && a.inKickRange(a.ball) {
		a.ball.Kick(a.input, a.kickPower)
	}
}
