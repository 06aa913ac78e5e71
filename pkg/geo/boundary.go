package geo

import "github.com/paulmach/orb"

type BoundaryKind int

const (
	NONE BoundaryKind = iota
	VERTICES
	SINGLE_POINT
)

func (k BoundaryKind) String() string {
	switch k {
	case VERTICES:
		return "vertices"
	case SINGLE_POINT:
		return "single_point"
	default:
		return "none"
	}
}

// BoundarySource is where an entity's map position comes from:
// its vertex ring, the legacy single Lambert point, or nothing.
type BoundarySource struct {
	kind     BoundaryKind
	vertices []Vertex
	point    orb.Point
}

func FromVertices(vertices []Vertex) BoundarySource {
	return BoundarySource{kind: VERTICES, vertices: vertices}
}

func FromPoint(x, y float64) BoundarySource {
	return BoundarySource{kind: SINGLE_POINT, point: orb.Point{x, y}}
}

func NoBoundary() BoundarySource {
	return BoundarySource{kind: NONE}
}

// BoundaryOf picks the source for a persisted entity: vertices when there are any,
// then the legacy lambertX/lambertY pair when both are set, else none.
func BoundaryOf(vertices []Vertex, lambertX, lambertY *float64) BoundarySource {
	if len(vertices) > 0 {
		return FromVertices(vertices)
	}
	if lambertX != nil && lambertY != nil {
		return FromPoint(*lambertX, *lambertY)
	}
	return NoBoundary()
}

func (b BoundarySource) Kind() BoundaryKind {
	return b.kind
}

// Planar reduces the source to one Lambert point.
func (b BoundarySource) Planar() (orb.Point, bool) {
	switch b.kind {
	case VERTICES:
		return Centroid(b.vertices)
	case SINGLE_POINT:
		return b.point, true
	default:
		return orb.Point{}, false
	}
}

// Resolve reduces the source to a planar point and projects it.
// ok is false when there is nothing to place on the map.
func Resolve(b BoundarySource, p Projection) (LatLon, bool) {
	pt, ok := b.Planar()
	if !ok {
		return LatLon{}, false
	}
	return NewLatLon(p.Project(pt.X(), pt.Y())), true
}
