package engine

const (
	ArenaWidth  = 60
	ArenaHeight = 22

	// FrameLimit is the frame at which a session stops regardless of outcome.
	FrameLimit = 1023

	InitialLives = 1

	FormationTop    = 3
	FormationBottom = 6
	// FormationMargin is the number of columns kept free on each side of the formation band.
	FormationMargin = 25

	// Gates are strict: an event happens once more than the gate has elapsed since the last one.
	FireCooldown      = 15
	EnemyFireGate     = 5
	EnemyFirePeriod   = 66
	FormationMoveGate = 20

	// enemies only fire from columns and rows that are multiples of these
	EnemyFireColumn = 6
	EnemyFireRow    = 4

	ShotTopRow      = 1
	ScorePerEnemy   = 5
	CollisionDamage = 1000
)
