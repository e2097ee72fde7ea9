package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLedgerClampsHealth(t *testing.T) {
	l := NewLedger(scenarioRules)

	require.Equal(t, 100, l.ApplyCombatDelta(0, 5), "heal above max is clamped")
	require.Equal(t, 75, l.ApplyCombatDelta(1, 0))
	require.Equal(t, 50, l.ApplyCombatDelta(3, 0), "contact damage charged once per call")

	for i := 0; i < 10; i++ {
		l.ApplyCombatDelta(1, 0)
	}
	require.Equal(t, 0, l.Health())
	require.True(t, l.IsLethal())
}

func TestLedgerEscapeDebit(t *testing.T) {
	l := NewLedger(scenarioRules)
	require.Equal(t, 97, l.ApplyEscapeDebit(3))
	require.Equal(t, 97, l.ApplyEscapeDebit(-2))
}

func TestLedgerScoreNeverDecreases(t *testing.T) {
	l := NewLedger(scenarioRules)
	require.Equal(t, 20, l.ApplyScoreDelta(2))
	require.Equal(t, 20, l.ApplyScoreDelta(-5))

	l.Settle(TickDelta{Escapes: 3, PlayerHits: 1})
	require.Equal(t, 20, l.Score())
}

func TestLedgerSettleMergesDeltas(t *testing.T) {
	// At full health an escape and a kill in the same tick cancel out.
	// Applying them one by one would give 99 or 100 depending on order.
	l := NewLedger(scenarioRules)

	s := l.Settle(TickDelta{Escapes: 1, Kills: 1})

	require.Equal(t, 100, s.Health)
	require.Equal(t, 10, s.Score)
	require.False(t, s.BecameLethal)
}

func TestLedgerBecameLethalOnce(t *testing.T) {
	l := NewLedger(scenarioRules)
	l.Settle(TickDelta{Escapes: 99})

	s := l.Settle(TickDelta{Escapes: 5})
	require.True(t, s.BecameLethal)
	require.Zero(t, s.Health)

	s = l.Settle(TickDelta{Escapes: 1})
	require.False(t, s.BecameLethal)

	l.Reset()
	require.Equal(t, 100, l.Health())
	require.Zero(t, l.Score())
	require.False(t, l.IsLethal())
}
