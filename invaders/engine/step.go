package engine

import (
	"slices"

	"github.com/zkarcade/invaders/invaders/geom"
)

// Advance runs the per-frame rules in fixed order:
// ship shots, enemy fire, damage to the ship, lives, formation movement.
func (s *State) Advance(frame uint16) {
	s.resolveShipShots()
	s.enemyFire(frame)
	damage := s.damage()
	if damage >= s.Lives {
		s.Lives = 0
	} else {
		s.Lives -= damage
	}
	s.moveFormation(frame)
}

func (s *State) resolveShipShots() {
	var gained uint32
	kept := s.ShipShots[:0]
	for _, shot := range s.ShipShots {
		if shot.Y == ShotTopRow {
			continue
		}
		before := len(s.Enemies)
		s.Enemies = slices.DeleteFunc(s.Enemies, func(e geom.Vec2) bool { return e == shot })
		if len(s.Enemies) != before {
			gained += ScorePerEnemy
			continue
		}
		kept = append(kept, shot)
	}
	s.ShipShots = kept
	s.addScore(gained)

	for i := range s.ShipShots {
		s.ShipShots[i].Y--
	}
}

// addScore saturates at the maximum of the 8-bit score.
func (s *State) addScore(n uint32) {
	if total := uint32(s.Score) + n; total > 0xFF {
		s.Score = 0xFF
	} else {
		s.Score = uint8(total)
	}
}

func (s *State) enemyFire(frame uint16) {
	if !(s.LastEnemyShot+EnemyFireGate < frame) {
		return
	}
	s.LastEnemyShot = frame
	if frame%EnemyFirePeriod == 0 {
		for _, e := range s.Enemies {
			if e.X%EnemyFireColumn == 0 && e.Y%EnemyFireRow == 0 {
				s.EnemyShots = append(s.EnemyShots, e)
			}
		}
	}
	kept := s.EnemyShots[:0]
	for _, shot := range s.EnemyShots {
		if shot.Y < s.Dimension.Y {
			shot.Y++
			kept = append(kept, shot)
		}
	}
	s.EnemyShots = kept
}

// damage removes the enemy shots hitting the ship and returns the damage taken this frame.
// An enemy reaching the ship is fatal whatever the remaining lives.
func (s *State) damage() uint32 {
	var damage uint32
	kept := s.EnemyShots[:0]
	for _, shot := range s.EnemyShots {
		if s.Ship.Near(shot) {
			damage++
			continue
		}
		kept = append(kept, shot)
	}
	s.EnemyShots = kept

	for _, e := range s.Enemies {
		if s.Ship.Near(e) {
			damage = CollisionDamage
		}
	}
	return damage
}

func (s *State) moveFormation(frame uint16) {
	if len(s.Enemies) == 0 {
		return
	}
	if !(s.LastFormationMove+FormationMoveGate < frame) {
		return
	}
	s.LastFormationMove = frame

	left, right := s.Enemies[0].X, s.Enemies[0].X
	for _, e := range s.Enemies[1:] {
		left = min(left, e.X)
		right = max(right, e.X)
	}

	if left == 0 || right == s.Dimension.X {
		if s.Formation.JustDescended {
			s.Formation.Dir = -s.Formation.Dir
			s.shiftFormation(geom.XY(s.Formation.Dir, 0))
			s.Formation.JustDescended = false
		} else {
			s.shiftFormation(geom.XY(0, 1))
			s.Formation.JustDescended = true
		}
		return
	}
	s.shiftFormation(geom.XY(s.Formation.Dir, 0))
}

func (s *State) shiftFormation(d geom.Vec2) {
	for i := range s.Enemies {
		s.Enemies[i] = s.Enemies[i].Add(d)
	}
}
