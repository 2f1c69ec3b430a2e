package main

import "math"

// The game plane
// --------------
//
// The simulation is 2D even though the lights live in 3D. The plane is YZ:
// - Y is the horizontal axis of the game (left-right as you face the tree).
// - Z is the vertical axis (bottom-top of the tree).
// X only matters for deciding which lights face the viewer, via the rotation
// system. So a 2D point in this codebase is always (Y, Z) and a 3D point is
// (X, Y, Z).

type Vec2 struct {
	Y float64
	Z float64
}

type Vec3 struct {
	X float64
	Y float64
	Z float64
}

func (v Vec2) DistTo(other Vec2) float64 {
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return math.Sqrt(dy*dy + dz*dz)
}

// Rect is an axis-aligned box in the game plane. Unlike a screen rectangle,
// Min and Max are always ordered (Min.Y <= Max.Y, Min.Z <= Max.Z) because
// they come from taking the min/max over a set of points, never from two
// arbitrary corners.
type Rect struct {
	Min Vec2
	Max Vec2
}

func (r *Rect) Center() Vec2 {
	return Vec2{(r.Min.Y + r.Max.Y) / 2, (r.Min.Z + r.Max.Z) / 2}
}

// ContainsPt reports if pt is inside r expanded by tolY horizontally and
// tolZ vertically. The brick hit boxes are tight around the actual lights so
// collision checks always expand them a little.
func (r *Rect) ContainsPt(pt Vec2, tolY, tolZ float64) bool {
	return pt.Y >= r.Min.Y-tolY && pt.Y <= r.Max.Y+tolY &&
		pt.Z >= r.Min.Z-tolZ && pt.Z <= r.Max.Z+tolZ
}

// BoundsOf computes the tight bounding box of a set of points.
func BoundsOf(pts []Vec2) (r Rect) {
	r.Min = pts[0]
	r.Max = pts[0]
	for _, p := range pts[1:] {
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Min.Z = math.Min(r.Min.Z, p.Z)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
		r.Max.Z = math.Max(r.Max.Z, p.Z)
	}
	return
}

func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// WrapAngle normalizes an angle to the [-π, π] range. atan2 of the sin/cos
// pair handles inputs that are any number of turns off, which matters
// because the rotation angle keeps growing within a tick before it is
// wrapped.
func WrapAngle(a float64) float64 {
	return math.Atan2(math.Sin(a), math.Cos(a))
}
