// Package core provides fundamental types and utilities for the arcade
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector over float64, used for world-space positions and
// velocities. All methods are value methods returning new vectors.
type Vec2 struct {
	X, Y float64
}

// V is a shorthand constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Normalize returns v scaled to unit length.
// The zero vector normalizes to the zero vector, never NaN.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Clamp restricts each axis of v independently into [min, max] for that axis.
func (v Vec2) Clamp(min, max Vec2) Vec2 {
	return Vec2{
		X: ClampF(v.X, min.X, max.X),
		Y: ClampF(v.Y, min.Y, max.Y),
	}
}

// ClampLen returns v shortened to at most maxLen, keeping its direction.
func (v Vec2) ClampLen(maxLen float64) Vec2 {
	l := v.Len()
	if l <= maxLen || l == 0 {
		return v
	}
	return v.Scale(maxLen / l)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rect is an axis-aligned box in world space, stored as a center point and
// half-extents. Containment is inclusive at all four edges.
type Rect struct {
	Center Vec2
	Half   Vec2
}

// NewRect creates a rectangle from its center and half-extents.
func NewRect(center, half Vec2) Rect {
	return Rect{Center: center, Half: half}
}

// Contains reports whether the point p lies inside the rectangle.
// Points exactly on an edge count as inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Center.X-r.Half.X && p.X <= r.Center.X+r.Half.X &&
		p.Y >= r.Center.Y-r.Half.Y && p.Y <= r.Center.Y+r.Half.Y
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts an integer value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
