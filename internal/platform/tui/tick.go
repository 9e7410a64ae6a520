// Package tui runs games in the terminal with Bubble Tea: a fixed-rate
// tick loop, held-key input, colored rendering, a scoreboard and an SSH
// front door.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick. Each tick runs exactly one Step.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(TickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// TickInterval is the pause between ticks at tickRate Hz.
func TickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}
