package main

// Brick rules
// -----------
// - A brick is a run of consecutive lights from the brick band (the upper
// 60% of the tree). On a spirally wound string, consecutive lights sit next
// to each other, so each run forms a small physical clump that reads as one
// brick.
// - Bricks are built once, from the catalog, in catalog order. The layout is
// therefore reproducible: same catalog, same bricks, same indices.
// - A brick is never removed. Destroying a brick clears its Active flag,
// which keeps brick indices stable for collision scanning and lets a game
// reset just switch every flag back on.

type Brick struct {
	// Lights is the fixed set of LED indices that light up for this brick.
	Lights []int
	// Bounds is the hit box in the game plane, tight around the lights.
	Bounds Rect
	// Active is the only mutable field.
	Active bool
}

// MakeBricks partitions the catalog's brick band into bricks of
// lightsPerBrick consecutive lights each. A trailing run shorter than
// lightsPerBrick is discarded rather than producing a runt brick.
func MakeBricks(p *PointCloud, lightsPerBrick int) []Brick {
	numBricks := len(p.Band) / lightsPerBrick
	bricks := make([]Brick, 0, numBricks)
	for i := 0; i < numBricks; i++ {
		lights := p.Band[i*lightsPerBrick : (i+1)*lightsPerBrick]

		pts := make([]Vec2, len(lights))
		for j, lightIdx := range lights {
			pts[j] = Vec2{p.Pts[lightIdx].Y, p.Pts[lightIdx].Z}
		}

		bricks = append(bricks, Brick{
			Lights: lights,
			Bounds: BoundsOf(pts),
			Active: true,
		})
	}
	return bricks
}

// CountActive returns how many bricks are still in play.
func CountActive(bricks []Brick) int {
	n := 0
	for i := range bricks {
		if bricks[i].Active {
			n++
		}
	}
	return n
}
