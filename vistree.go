package main

import "sort"

// VisTree holds the "visual logic" of the tree: where each LED of the
// catalog sits on screen and in what order to paint them. It is the
// counterpart of the Game for the Draw side: Game decides colors, VisTree
// decides pixels. Built once per catalog, never mutated afterwards.
type VisTree struct {
	// ScreenX/ScreenY are pixel positions inside the tree area, one per
	// light, from an orthographic front view (catalog Y right, Z up).
	ScreenX []float64
	ScreenY []float64
	// DrawOrder lists light indices back-to-front (ascending catalog X), so
	// lights on the near side of the tree paint over the far side.
	DrawOrder []int
	// LedSize is the quad size in pixels, scaled with the tree.
	LedSize float64
}

func NewVisTree(p *PointCloud, areaWidth, areaHeight float64) (v VisTree) {
	// Extents of the front view.
	yMin, yMax := p.Pts[0].Y, p.Pts[0].Y
	for _, pt := range p.Pts[1:] {
		if pt.Y < yMin {
			yMin = pt.Y
		}
		if pt.Y > yMax {
			yMax = pt.Y
		}
	}

	ySpan := yMax - yMin
	zSpan := p.ZMax - p.ZMin
	if ySpan == 0 {
		ySpan = 1
	}
	if zSpan == 0 {
		zSpan = 1
	}

	// Fit the tree in the area, preserving aspect, with a small border.
	border := 0.05
	scale := (areaWidth * (1 - 2*border)) / ySpan
	if s := (areaHeight * (1 - 2*border)) / zSpan; s < scale {
		scale = s
	}

	offsetX := (areaWidth - ySpan*scale) / 2
	offsetY := (areaHeight - zSpan*scale) / 2

	v.ScreenX = make([]float64, len(p.Pts))
	v.ScreenY = make([]float64, len(p.Pts))
	for i, pt := range p.Pts {
		v.ScreenX[i] = offsetX + (pt.Y-yMin)*scale
		// Screen Y grows downward, catalog Z grows upward.
		v.ScreenY[i] = areaHeight - offsetY - (pt.Z-p.ZMin)*scale
	}

	v.DrawOrder = make([]int, len(p.Pts))
	for i := range v.DrawOrder {
		v.DrawOrder[i] = i
	}
	sort.SliceStable(v.DrawOrder, func(a, b int) bool {
		return p.Pts[v.DrawOrder[a]].X < p.Pts[v.DrawOrder[b]].X
	})

	v.LedSize = scale * 0.035
	if v.LedSize < 3 {
		v.LedSize = 3
	}
	return
}
