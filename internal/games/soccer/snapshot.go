package soccer

// Snapshot is a primitive-field export of the full match state, used by
// determinism tests and debugging tools.
type Snapshot struct {
	BallX  float64
	BallY  float64
	BallVX float64
	BallVY float64

	Agents []AgentSnapshot

	PlayerScore int
	AIScore     int
}

// AgentSnapshot captures one agent's externally visible state.
type AgentSnapshot struct {
	X, Y       float64
	Team       string
	User       bool
	Goalkeeper bool
}

// Snapshot returns the current match state. Agents appear in update
// order: the user agent first, then the reactive agents.
func (m *Match) Snapshot() Snapshot {
	snap := Snapshot{
		BallX:       m.ball.Position.X,
		BallY:       m.ball.Position.Y,
		BallVX:      m.ball.Velocity.X,
		BallVY:      m.ball.Velocity.Y,
		PlayerScore: m.playerScore,
		AIScore:     m.aiScore,
	}

	for _, a := range m.Agents() {
		as := AgentSnapshot{
			X:    a.Position().X,
			Y:    a.Position().Y,
			Team: a.Team().String(),
		}
		switch v := a.(type) {
		case *UserAgent:
			as.User = true
		case *ReactiveAgent:
			as.Goalkeeper = v.IsGoalkeeper()
		}
		snap.Agents = append(snap.Agents, as)
	}

	return snap
}
