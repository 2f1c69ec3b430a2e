package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PointCloud holds the fixed catalog of light positions plus everything that
// can be derived from it once, at startup. Nothing in here changes after
// NewPointCloud returns. The runtime only ever reads it.
//
// The catalog order matters: the index of a point is the index of the LED on
// the physical string, and bricks are built from runs of consecutive indices.
type PointCloud struct {
	// Centered coordinates, catalog order. The raw catalog is shifted so the
	// centroid sits at the origin, which makes the rotation math and the
	// radial effects trivial.
	Pts []Vec3

	// Polar coordinates of each point in the XY (rotation) plane.
	Angles []float64
	Radii  []float64

	// Vertical extent of the centered catalog.
	ZMin float64
	ZMax float64

	// Rows are the distinct heights lights actually sit at (z rounded to 3
	// decimals, deduplicated, ascending). Game elements that should light up
	// a row of LEDs snap to these.
	Rows       []float64
	RowSpacing float64

	// Band is the index set of the brick band: every point whose z is in
	// the upper 60% of the vertical extent, catalog order.
	Band []int
}

// defaultRowSpacing is used when the catalog has fewer than two distinct
// rows, so that tolerances derived from the spacing stay sane.
const defaultRowSpacing = 0.01

func NewPointCloud(raw []Vec3) (*PointCloud, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("point catalog is empty")
	}

	p := &PointCloud{}

	// Center at the centroid.
	var c Vec3
	for _, pt := range raw {
		c.X += pt.X
		c.Y += pt.Y
		c.Z += pt.Z
	}
	n := float64(len(raw))
	c.X /= n
	c.Y /= n
	c.Z /= n

	p.Pts = make([]Vec3, len(raw))
	for i, pt := range raw {
		p.Pts[i] = Vec3{pt.X - c.X, pt.Y - c.Y, pt.Z - c.Z}
	}

	// Polar coordinates in the rotation plane.
	p.Angles = make([]float64, len(p.Pts))
	p.Radii = make([]float64, len(p.Pts))
	for i, pt := range p.Pts {
		p.Angles[i] = math.Atan2(pt.Y, pt.X)
		p.Radii[i] = math.Sqrt(pt.X*pt.X + pt.Y*pt.Y)
	}

	// Vertical extent.
	p.ZMin = p.Pts[0].Z
	p.ZMax = p.Pts[0].Z
	for _, pt := range p.Pts[1:] {
		p.ZMin = math.Min(p.ZMin, pt.Z)
		p.ZMax = math.Max(p.ZMax, pt.Z)
	}

	// Light rows. Two lights are on the same row if their heights agree to
	// 3 decimals. A string wound in a spiral gives nearly one row per light,
	// a grid gives few rows with many lights each. Both work.
	seen := map[float64]bool{}
	for _, pt := range p.Pts {
		r := math.Round(pt.Z*1000) / 1000
		if !seen[r] {
			seen[r] = true
			p.Rows = append(p.Rows, r)
		}
	}
	sortFloats(p.Rows)

	p.RowSpacing = defaultRowSpacing
	if len(p.Rows) > 1 {
		spacing := math.Inf(1)
		for i := 1; i < len(p.Rows); i++ {
			spacing = math.Min(spacing, p.Rows[i]-p.Rows[i-1])
		}
		p.RowSpacing = spacing
	}

	// The brick band: upper 60% of the tree.
	threshold := p.ZMin + (p.ZMax-p.ZMin)*0.4
	for i, pt := range p.Pts {
		if pt.Z >= threshold {
			p.Band = append(p.Band, i)
		}
	}

	return p, nil
}

func (p *PointCloud) NumPts() int {
	return len(p.Pts)
}

// SnapToRow returns the height of the light row nearest to z. With no rows
// at all there is nothing to snap to, so the input comes back unchanged.
func (p *PointCloud) SnapToRow(z float64) float64 {
	if len(p.Rows) == 0 {
		return z
	}
	best := p.Rows[0]
	for _, row := range p.Rows[1:] {
		if math.Abs(row-z) < math.Abs(best-z) {
			best = row
		}
	}
	return best
}

func sortFloats(v []float64) {
	// Insertion sort. The row list is built once at startup and is at most
	// one entry per light.
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j] < v[j-1]; j-- {
			v[j], v[j-1] = v[j-1], v[j]
		}
	}
}

// ParseCoordsCSV reads a catalog in the plain "x,y,z" one-light-per-line
// format that the coordinate scanning tools output. Blank lines are
// tolerated anywhere, an "x,y,z" header on the first non-blank line.
func ParseCoordsCSV(data []byte) ([]Vec3, error) {
	var pts []Vec3
	firstContent := true
	for lineIdx, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("coords line %d: expected 3 fields, "+
				"got %d", lineIdx+1, len(fields))
		}
		isHeader := firstContent &&
			strings.EqualFold(strings.TrimSpace(fields[0]), "x")
		firstContent = false
		if isHeader {
			continue
		}
		var pt Vec3
		var err error
		pt.X, err = strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err == nil {
			pt.Y, err = strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		}
		if err == nil {
			pt.Z, err = strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		}
		if err != nil {
			return nil, fmt.Errorf("coords line %d: %w", lineIdx+1, err)
		}
		pts = append(pts, pt)
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("coords file contains no points")
	}
	return pts, nil
}

// GenerateConePoints produces a synthetic catalog: a single string of n
// lights wound in a spiral around a cone, the usual shape of a wrapped
// Christmas tree. It is fully deterministic, which the tests rely on, and it
// doubles as the fallback catalog when no coords file is configured.
func GenerateConePoints(n int) []Vec3 {
	pts := make([]Vec3, n)
	for i := range pts {
		t := float64(i) / float64(max(n-1, 1))
		ang := float64(i) * 0.35
		r := 0.42 * (1 - 0.82*t)
		pts[i] = Vec3{
			X: r * math.Cos(ang),
			Y: r * math.Sin(ang),
			Z: 0.05 + 1.4*t,
		}
	}
	return pts
}
