package soccer

import (
	"github.com/vovakirdan/tui-kickoff/internal/config"
	"github.com/vovakirdan/tui-kickoff/internal/core"
	"github.com/vovakirdan/tui-kickoff/internal/registry"
)

// Package-level settings applied before game creation, set by the CLI.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path for the next game created.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next game created.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game adapts a Match to the arcade platform: it owns the fixed timestep,
// the match clock, pause handling, and rendering. The Match itself has no
// notion of time running out; full time lives here.
type Game struct {
	match   *Match
	runtime core.RuntimeConfig

	dt          float64 // seconds per tick
	elapsed     float64 // seconds of simulated play
	matchLength float64 // seconds; <= 0 means untimed

	gameOver bool
	paused   bool
}

// New creates a new soccer game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "soccer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Kickoff"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	cfg, err := config.LoadSoccer(configPath)
	if err != nil {
		cfg = config.DefaultSoccerConfig()
	}
	config.ApplySoccerPreset(&cfg, config.DifficultyPreset(difficultyPreset))

	g.match = NewMatch(Params{
		UserSpeed:     cfg.Player.Speed,
		UserKickPower: cfg.Player.KickPower,
		AISpeed:       cfg.AI.Speed,
		AIKickPower:   cfg.AI.KickPower,
		ThinkInterval: cfg.AI.ThinkInterval,
	})
	g.matchLength = cfg.Gameplay.MatchLength
	g.elapsed = 0
	g.gameOver = false
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.match.Tick(g.dt, in.Direction())
	g.elapsed += g.dt

	if g.matchLength > 0 && g.elapsed >= g.matchLength {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		PlayerScore: g.match.PlayerScore(),
		CPUScore:    g.match.AIScore(),
		GameOver:    g.gameOver,
		Paused:      g.paused,
	}
}

// Match exposes the underlying simulation, mainly for tests.
func (g *Game) Match() *Match {
	return g.match
}

// Elapsed returns seconds of simulated play so far.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}

// Remaining returns seconds left on the match clock, or -1 for an
// untimed match.
func (g *Game) Remaining() float64 {
	if g.matchLength <= 0 {
		return -1
	}
	left := g.matchLength - g.elapsed
	if left < 0 {
		return 0
	}
	return left
}

// Register the game with the registry
func init() {
	registry.Register("soccer", func() registry.Game {
		return New()
	})
}
