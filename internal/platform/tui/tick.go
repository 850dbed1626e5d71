// Package tui provides the Bubble Tea layer of kickoff: the match view,
// input mapping, the scoreboard, and the SSH server front end.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation tick of the running match.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command emitting tick messages at the
// given rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
