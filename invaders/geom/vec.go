package geom

import "fmt"

// Vec2 is an integer position on the arena grid.
// X grows to the right, Y grows towards the bottom edge.
type Vec2 struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

func XY(x, y int32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Eq(o Vec2) bool {
	return v == o
}

// Near reports whether o is on the same row as v and at most one column away.
func (v Vec2) Near(o Vec2) bool {
	return v.Y == o.Y && (o.X == v.X || o.X == v.X+1 || o.X == v.X-1)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}
