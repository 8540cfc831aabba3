package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StateStart, "Start"},
		{StatePlaying, "Playing"},
		{StateLose, "Lose"},
		{StateLevelComplete, "LevelComplete"},
		{StateWin, "Win"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestMachine_Transitions(t *testing.T) {
	tests := []struct {
		name     string
		triggers []Trigger
		want     GameState
	}{
		{"start", nil, StateStart},
		{"any key starts play", []Trigger{TriggerAnyKey}, StatePlaying},
		{"defeat", []Trigger{TriggerAnyKey, TriggerDefeated}, StateLose},
		{"goal", []Trigger{TriggerAnyKey, TriggerGoalReached}, StateLevelComplete},
		{"next level", []Trigger{TriggerAnyKey, TriggerGoalReached, TriggerNextLevel}, StatePlaying},
		{"win", []Trigger{TriggerAnyKey, TriggerGoalReached, TriggerAllCleared}, StateWin},
		{"restart after loss", []Trigger{TriggerAnyKey, TriggerDefeated, TriggerRestart}, StateStart},
		{"restart after win", []Trigger{TriggerAnyKey, TriggerGoalReached, TriggerAllCleared, TriggerRestart}, StateStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(120)
			for _, trig := range tt.triggers {
				require.NoError(t, m.Fire(trig))
			}
			assert.Equal(t, tt.want, m.State())
		})
	}
}

func TestMachine_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name  string
		setup []Trigger
		bad   Trigger
	}{
		{"restart while playing", []Trigger{TriggerAnyKey}, TriggerRestart},
		{"goal before start", nil, TriggerGoalReached},
		{"any key while lost", []Trigger{TriggerAnyKey, TriggerDefeated}, TriggerAnyKey},
		{"defeat during countdown", []Trigger{TriggerAnyKey, TriggerGoalReached}, TriggerDefeated},
		{"next level after win", []Trigger{TriggerAnyKey, TriggerGoalReached, TriggerAllCleared}, TriggerNextLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(120)
			for _, trig := range tt.setup {
				require.NoError(t, m.Fire(trig))
			}
			before := m.State()

			err := m.Fire(tt.bad)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, before, m.State(), "state is unchanged")
		})
	}
}

func TestMachine_Countdown(t *testing.T) {
	m := NewMachine(120)
	assert.False(t, m.TickCountdown(), "no countdown outside level complete")

	require.NoError(t, m.Fire(TriggerAnyKey))
	require.NoError(t, m.Fire(TriggerGoalReached))
	assert.Equal(t, 120, m.Countdown())

	for i := 1; i < 120; i++ {
		require.False(t, m.TickCountdown(), "tick %d", i)
	}
	assert.True(t, m.TickCountdown(), "runs out on tick 120")
	assert.Zero(t, m.Countdown())

	require.NoError(t, m.Fire(TriggerNextLevel))
	require.NoError(t, m.Fire(TriggerGoalReached))
	assert.Equal(t, 120, m.Countdown(), "re-armed on the next goal")
}

func TestTrigger_String(t *testing.T) {
	assert.Equal(t, "GoalReached", TriggerGoalReached.String())
	assert.Equal(t, "Unknown", Trigger(42).String())
}
