package soccer

import (
	"github.com/vovakirdan/tui-kickoff/internal/core"
)

// Default gameplay parameters. These are what the embedded config ships
// with; difficulty presets and user config may override them.
const (
	DefaultUserSpeed     = 200.0
	DefaultUserKickPower = 300.0
	DefaultAISpeed       = 180.0
	DefaultAIKickPower   = 280.0
	DefaultThinkInterval = 0.5
)

// TeamSize is the number of agents per team: one goalkeeper plus three
// field agents.
const TeamSize = 4

// Params are the tunable gameplay parameters of a match.
type Params struct {
	UserSpeed     float64
	UserKickPower float64
	AISpeed       float64
	AIKickPower   float64
	ThinkInterval float64
}

// DefaultParams returns the standard match parameters.
func DefaultParams() Params {
	return Params{
		UserSpeed:     DefaultUserSpeed,
		UserKickPower: DefaultUserKickPower,
		AISpeed:       DefaultAISpeed,
		AIKickPower:   DefaultAIKickPower,
		ThinkInterval: DefaultThinkInterval,
	}
}

// Match owns every entity of one soccer match: the ball, both goals and
// both teams. It advances the whole simulation one tick at a time and
// tracks the running score. Blue is the player's team, defending the
// left goal; Red is the AI team.
type Match struct {
	ball      *Ball
	leftGoal  *Goal
	rightGoal *Goal

	user     *UserAgent
	reactive []*ReactiveAgent

	playerScore int
	aiScore     int
}

// Kickoff formation, mirrored for the red team.
var (
	blueKeeperSpawn = core.V(-GoalMouthX, 0)
	blueFieldSpawns = []core.Vec2{{X: -300, Y: -150}, {X: -300, Y: 150}}
	blueUserSpawn   = core.V(-100, 0)

	redKeeperSpawn = core.V(GoalMouthX, 0)
	redFieldSpawns = []core.Vec2{{X: 300, Y: -200}, {X: 300, Y: 0}, {X: 300, Y: 200}}
)

// NewMatch assembles a match: ball at the center spot, two goals wired to
// the score counters, and four agents per team in kickoff formation. The
// player controls one blue field agent; every other agent is reactive.
func NewMatch(p Params) *Match {
	m := &Match{ball: NewBall()}

	// A ball in the left goal is a goal against the player.
	m.leftGoal = NewGoal(SideLeft, func() { m.aiScore++ })
	m.rightGoal = NewGoal(SideRight, func() { m.playerScore++ })

	m.user = NewUserAgent(TeamBlue, blueUserSpawn, m.ball, p.UserSpeed, p.UserKickPower)

	id := 0
	addReactive := func(team Team, pos core.Vec2, keeper bool) {
		m.reactive = append(m.reactive,
			NewReactiveAgent(id, team, pos, m.ball, keeper, p.AISpeed, p.AIKickPower, p.ThinkInterval))
		id++
	}

	addReactive(TeamBlue, blueKeeperSpawn, true)
	for _, pos := range blueFieldSpawns {
		addReactive(TeamBlue, pos, false)
	}
	addReactive(TeamRed, redKeeperSpawn, true)
	for _, pos := range redFieldSpawns {
		addReactive(TeamRed, pos, false)
	}

	return m
}

// Tick advances the whole match by dt seconds. Order matters: the user
// agent acts first, then the reactive agents in creation order, then the
// ball integrates. A kick this tick sets the ball's velocity immediately,
// so its displacement also lands this tick when the ball updates.
func (m *Match) Tick(dt float64, input core.Vec2) {
	m.user.SetInput(input)
	m.user.Update(dt)

	for _, a := range m.reactive {
		a.Update(dt)
	}

	m.ball.Update(dt, []*Goal{m.leftGoal, m.rightGoal})
}

// CameraTarget returns the position the renderer should center its view
// on: the user agent, clamped to the field bounds. Derived, read-only;
// not part of the simulation state.
func (m *Match) CameraTarget() core.Vec2 {
	return m.user.Position().Clamp(
		core.V(-FieldHalfWidth, -FieldHalfHeight),
		core.V(FieldHalfWidth, FieldHalfHeight),
	)
}

// PlayerScore returns goals scored by the player's (blue) team.
func (m *Match) PlayerScore() int { return m.playerScore }

// AIScore returns goals scored by the AI (red) team.
func (m *Match) AIScore() int { return m.aiScore }

// Ball returns the match ball.
func (m *Match) Ball() *Ball { return m.ball }

// Goals returns both goals, left then right.
func (m *Match) Goals() []*Goal { return []*Goal{m.leftGoal, m.rightGoal} }

// User returns the player-controlled agent.
func (m *Match) User() *UserAgent { return m.user }

// Agents returns every agent in update order: the user agent first, then
// the reactive agents.
func (m *Match) Agents() []Agent {
	agents := make([]Agent, 0, 2*TeamSize)
	agents = append(agents, m.user)
	for _, a := range m.reactive {
		agents = append(agents, a)
	}
	return agents
}

// ResetBall returns the ball to the center spot at rest. Idempotent.
func (m *Match) ResetBall() {
	m.ball.Reset()
}
