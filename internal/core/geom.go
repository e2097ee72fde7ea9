// Package core provides fundamental types and utilities for the shooter.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Number is the set of coordinate types a Rect can be built from.
// Screen cells use int, the simulation uses float64.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect[T Number] struct {
	X, Y T // Top-left corner position
	W, H T // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect[T Number](x, y, w, h T) Rect[T] {
	return Rect[T]{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect[T]) Right() T {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect[T]) Bottom() T {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// All four comparisons are strict, so rectangles that only share an edge
// do not intersect.
func (r Rect[T]) Intersects(other Rect[T]) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect[T]) Contains(x, y T) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect[T]) Center() (T, T) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Translate returns a copy of the rectangle moved by (dx, dy).
func (r Rect[T]) Translate(dx, dy T) Rect[T] {
	r.X += dx
	r.Y += dy
	return r
}

// Clamp restricts a value to be within [lo, hi].
func Clamp[T Number](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
