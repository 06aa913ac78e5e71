package geo

import (
	"sort"

	"github.com/paulmach/orb"
)

// Vertex is one corner of a zone or parcel boundary in Lambert metres.
// Seq orders the ring; it need not start at zero or be contiguous.
type Vertex struct {
	Seq int     `json:"seq" msgpack:"seq"`
	X   float64 `json:"lambertX" msgpack:"x"`
	Y   float64 `json:"lambertY" msgpack:"y"`
}

func NewVertex(seq int, x, y float64) Vertex {
	return Vertex{
		Seq: seq,
		X:   x,
		Y:   y,
	}
}

func (v Vertex) Point() orb.Point {
	return orb.Point{v.X, v.Y}
}

// Ring returns a copy of vertices ordered by Seq. ties keep their input order.
func Ring(vertices []Vertex) []Vertex {
	ring := make([]Vertex, len(vertices))
	copy(ring, vertices)
	sort.SliceStable(ring, func(i, j int) bool {
		return ring[i].Seq < ring[j].Seq
	})
	return ring
}

// Centroid reduces a boundary to one planar point.
// >=3 vertices: area-weighted shoelace centroid of the closed ring.
// 1-2 vertices or a zero-area ring: mean of the coordinates.
// no vertices: ok is false.
// vertices is never modified.
func Centroid(vertices []Vertex) (c orb.Point, ok bool) {
	if len(vertices) == 0 {
		return orb.Point{}, false
	}

	ring := Ring(vertices)
	if len(ring) < 3 {
		return meanPoint(ring), true
	}

	var area, cx, cy float64
	for i := range ring {
		x1, y1 := ring[i].X, ring[i].Y
		next := ring[(i+1)%len(ring)]
		x2, y2 := next.X, next.Y

		cross := x1*y2 - x2*y1
		area += cross
		cx += (x1 + x2) * cross
		cy += (y1 + y2) * cross
	}
	area *= 0.5

	if area == 0 {
		return meanPoint(ring), true
	}

	return orb.Point{cx / (6 * area), cy / (6 * area)}, true
}

// SignedArea is the shoelace area of the ring ordered by Seq. positive when counter-clockwise.
func SignedArea(vertices []Vertex) float64 {
	ring := Ring(vertices)
	if len(ring) < 3 {
		return 0
	}
	var area float64
	for i := range ring {
		next := ring[(i+1)%len(ring)]
		area += ring[i].X*next.Y - next.X*ring[i].Y
	}
	return area * 0.5
}

func meanPoint(vertices []Vertex) orb.Point {
	var sx, sy float64
	for _, v := range vertices {
		sx += v.X
		sy += v.Y
	}
	n := float64(len(vertices))
	return orb.Point{sx / n, sy / n}
}
