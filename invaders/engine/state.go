package engine

import (
	"github.com/zkarcade/invaders/invaders/geom"
	"github.com/zkarcade/invaders/invaders/trace"
)

// Formation is the shared movement state of all enemies.
type Formation struct {
	Dir           int32 `json:"dir"` // +1 right, -1 left
	JustDescended bool  `json:"justDescended"`
}

// State is the complete game state of one session or replay.
// It is advanced exclusively through MoveShip/Input, Fire and Advance, with the frame index
// supplied by the caller, so equal call sequences always produce equal states.
type State struct {
	Dimension geom.Vec2 `json:"dimension"`

	Ship          geom.Vec2   `json:"ship"`
	ShipShots     []geom.Vec2 `json:"shipShots"` // oldest first
	LastShotFrame uint16      `json:"lastShotFrame"`

	// Enemies keeps insertion order so every scan visits them in the same sequence.
	Enemies           []geom.Vec2 `json:"enemies"`
	EnemyShots        []geom.Vec2 `json:"enemyShots"`
	Formation         Formation   `json:"formation"`
	LastFormationMove uint16      `json:"lastFormationMove"`
	LastEnemyShot     uint16      `json:"lastEnemyShot"`

	Lives uint32 `json:"lives"`
	Score uint8  `json:"score"`

	InputLog []trace.Action `json:"inputLog"`
}

func NewState(dimension geom.Vec2) *State {
	var enemies []geom.Vec2
	for y := int32(FormationTop); y <= FormationBottom; y++ {
		for x := int32(FormationMargin); x < dimension.X-FormationMargin; x++ {
			if x%2 != 0 {
				enemies = append(enemies, geom.XY(x, y))
			}
		}
	}
	return &State{
		Dimension: dimension,
		Ship:      geom.XY(dimension.X/2, dimension.Y-2),
		Enemies:   enemies,
		Formation: Formation{Dir: 1},
		Lives:     InitialLives,
	}
}

// NewArena returns the state every session starts from.
func NewArena() *State {
	return NewState(geom.XY(ArenaWidth, ArenaHeight))
}

// MoveShip shifts the ship horizontally unless it already sits on the edge it moves towards.
// The right edge is the arena width itself, not width-1.
func (s *State) MoveShip(displacement int32) {
	if displacement < 0 && s.Ship.X != 0 || displacement > 0 && s.Ship.X != s.Dimension.X {
		s.Ship.X += displacement
	}
}

// Input applies a player action for the frame and appends it to the input log.
func (s *State) Input(frame uint16, dir trace.Direction) {
	s.MoveShip(dir.Displacement())
	s.InputLog = append(s.InputLog, trace.Action{Frame: frame, Dir: dir})
}

// Fire spawns a ship shot at the ship position if the cooldown has elapsed.
func (s *State) Fire(frame uint16) {
	if s.LastShotFrame+FireCooldown < frame {
		s.ShipShots = append(s.ShipShots, s.Ship)
		s.LastShotFrame = frame
	}
}

func (s *State) Clone() *State {
	out := *s
	out.ShipShots = append([]geom.Vec2(nil), s.ShipShots...)
	out.Enemies = append([]geom.Vec2(nil), s.Enemies...)
	out.EnemyShots = append([]geom.Vec2(nil), s.EnemyShots...)
	out.InputLog = append([]trace.Action(nil), s.InputLog...)
	return &out
}
