package core

import "math"

// Vec2 is a point or displacement on the playfield
// Origin is the playfield center, +Y points up
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the euclidean length
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceTo returns the center distance between two points
func (v Vec2) DistanceTo(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Within reports whether v lies strictly inside the box of half extents (hw, hh) around the origin
func (v Vec2) Within(hw, hh float64) bool {
	return v.X > -hw && v.X < hw && v.Y > -hh && v.Y < hh
}
