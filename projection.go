package main

import "math"

// faceTolerance is the half-width of the visible face in radians. ±0.6π is
// deliberately wider than the ±0.5π of a true half-cylinder so that lights
// near the silhouette edge stay lit while the view rotates.
const faceTolerance = math.Pi * 0.6

// Projection is the per-tick mapping of the 3D catalog onto the 2D game
// plane for the current viewing angle. The two slices are indexed by light.
type Projection struct {
	// Visible marks the lights on the face of the tree we are playing on.
	Visible []bool
	// Y is the horizontal game-plane coordinate of each light under the
	// current rotation: radius × sin(relative angle). Lights behind the tree
	// still get a value; Visible decides whether it is used.
	Y []float64
}

// Project computes the visible face for a rotation angle. Pure function of
// (catalog, rotation): no state, no side effects, O(N).
func (p *PointCloud) Project(rotation float64, out *Projection) {
	if len(out.Visible) != len(p.Pts) {
		out.Visible = make([]bool, len(p.Pts))
		out.Y = make([]float64, len(p.Pts))
	}
	for i := range p.Pts {
		rel := WrapAngle(p.Angles[i] - rotation)
		out.Visible[i] = math.Abs(rel) < faceTolerance
		out.Y[i] = p.Radii[i] * math.Sin(rel)
	}
}
