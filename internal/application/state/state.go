// Package state holds the stage flow of a play session.
package state

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a trigger does not apply to the current state
var ErrInvalidTransition = errors.New("invalid transition")

// GameState represents the current stage of the game
type GameState int

const (
	StateStart GameState = iota
	StatePlaying
	StateLose
	StateLevelComplete
	StateWin
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StatePlaying:
		return "Playing"
	case StateLose:
		return "Lose"
	case StateLevelComplete:
		return "LevelComplete"
	case StateWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// Trigger is an event that can move the game between states
type Trigger int

const (
	TriggerAnyKey Trigger = iota
	TriggerDefeated
	TriggerGoalReached
	TriggerNextLevel
	TriggerAllCleared
	TriggerRestart
)

func (t Trigger) String() string {
	switch t {
	case TriggerAnyKey:
		return "AnyKey"
	case TriggerDefeated:
		return "Defeated"
	case TriggerGoalReached:
		return "GoalReached"
	case TriggerNextLevel:
		return "NextLevel"
	case TriggerAllCleared:
		return "AllCleared"
	case TriggerRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

var transitions = map[GameState]map[Trigger]GameState{
	StateStart: {
		TriggerAnyKey: StatePlaying,
	},
	StatePlaying: {
		TriggerDefeated:    StateLose,
		TriggerGoalReached: StateLevelComplete,
	},
	StateLevelComplete: {
		TriggerNextLevel:  StatePlaying,
		TriggerAllCleared: StateWin,
	},
	StateLose: {
		TriggerRestart: StateStart,
	},
	StateWin: {
		TriggerRestart: StateStart,
	},
}

// Machine is the stage state machine. It also owns the level-complete countdown.
type Machine struct {
	state          GameState
	countdown      int
	countdownTicks int
}

// NewMachine creates a machine in StateStart.
// countdownTicks is how long StateLevelComplete holds.
func NewMachine(countdownTicks int) *Machine {
	return &Machine{state: StateStart, countdownTicks: countdownTicks}
}

// State returns the current state
func (m *Machine) State() GameState {
	return m.state
}

// Fire moves to the next state for t
func (m *Machine) Fire(t Trigger) error {
	next, ok := transitions[m.state][t]
	if !ok {
		return fmt.Errorf("%w: %s in %s", ErrInvalidTransition, t, m.state)
	}

	m.state = next
	switch next {
	case StateLevelComplete:
		m.countdown = m.countdownTicks
	default:
		m.countdown = 0
	}
	return nil
}

// Countdown returns the ticks left in StateLevelComplete
func (m *Machine) Countdown() int {
	return m.countdown
}

// TickCountdown counts one tick down and reports whether the countdown has run out.
// It only counts in StateLevelComplete.
func (m *Machine) TickCountdown() bool {
	if m.state != StateLevelComplete {
		return false
	}
	if m.countdown > 0 {
		m.countdown--
	}
	return m.countdown == 0
}
