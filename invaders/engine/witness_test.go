package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zkarcade/invaders/invaders/geom"
	"github.com/zkarcade/invaders/invaders/trace"
)

func TestWitnessDeterminism(t *testing.T) {
	actions, err := trace.Decode(trace.Frame10, winningTrace)
	require.NoError(t, err)

	a, endA := play(t, actions)
	b, endB := play(t, actions)
	require.Equal(t, endA, endB)
	require.Equal(t, a.EncodeWitness(), b.EncodeWitness())
	require.Equal(t, a.StateHash(), b.StateHash())
	require.Equal(t, a, b)
}

func TestWitnessCoversFields(t *testing.T) {
	base := NewArena()
	mutations := map[string]func(s *State){
		"ship":         func(s *State) { s.Ship.X++ },
		"shipShots":    func(s *State) { s.ShipShots = append(s.ShipShots, geom.XY(1, 1)) },
		"lastShot":     func(s *State) { s.LastShotFrame = 7 },
		"enemyOrder":   func(s *State) { s.Enemies[0], s.Enemies[1] = s.Enemies[1], s.Enemies[0] },
		"enemyShots":   func(s *State) { s.EnemyShots = append(s.EnemyShots, geom.XY(1, 1)) },
		"formation":    func(s *State) { s.Formation.JustDescended = true },
		"formationDir": func(s *State) { s.Formation.Dir = -1 },
		"lastMove":     func(s *State) { s.LastFormationMove = 21 },
		"lastEnemy":    func(s *State) { s.LastEnemyShot = 6 },
		"lives":        func(s *State) { s.Lives = 0 },
		"score":        func(s *State) { s.Score = 5 },
		"inputs":       func(s *State) { s.InputLog = append(s.InputLog, trace.Action{Frame: 1, Dir: trace.Left}) },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			s := base.Clone()
			require.Equal(t, base.StateHash(), s.StateHash())
			mutate(s)
			require.NotEqual(t, base.StateHash(), s.StateHash())
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := NewArena()
	s.Fire(16)
	c := s.Clone()
	c.Enemies[0].X = 0
	c.ShipShots[0].Y = 0
	c.Input(1, trace.Right)
	require.Equal(t, geom.XY(25, 3), s.Enemies[0])
	require.Equal(t, geom.XY(30, 20), s.ShipShots[0])
	require.Empty(t, s.InputLog)
}
