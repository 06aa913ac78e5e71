package geo

import "github.com/paulmach/orb"

// LatLon is a WGS84 position in decimal degrees.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewLatLon(lat, lon float64) LatLon {
	return LatLon{
		Lat: lat,
		Lon: lon,
	}
}

// Orb returns the GeoJSON ordered point (lon, lat).
func (ll LatLon) Orb() orb.Point {
	return orb.Point{ll.Lon, ll.Lat}
}

// ProjectRing projects a boundary ring, ordered by Seq, to WGS84.
func ProjectRing(p Projection, vertices []Vertex) []LatLon {
	ring := Ring(vertices)
	out := make([]LatLon, 0, len(ring))
	for _, v := range ring {
		out = append(out, NewLatLon(p.Project(v.X, v.Y)))
	}
	return out
}

// OrbRing closes a projected ring for GeoJSON. nil for fewer than 3 positions.
func OrbRing(ring []LatLon) orb.Ring {
	if len(ring) < 3 {
		return nil
	}
	out := make(orb.Ring, 0, len(ring)+1)
	for _, ll := range ring {
		out = append(out, ll.Orb())
	}
	if out[0] != out[len(out)-1] {
		out = append(out, out[0])
	}
	return out
}

const DefaultFootprintHalfSize = 100.0 // metres

// Footprint is the placeholder square drawn for a parcel that has no vertices:
// ±half metres around (x, y), wound the way the map screen draws it.
func Footprint(x, y, half float64) []Vertex {
	return []Vertex{
		NewVertex(0, x-half, y-half),
		NewVertex(1, x-half, y+half),
		NewVertex(2, x+half, y+half),
		NewVertex(3, x+half, y-half),
	}
}
