package geo

import (
	"errors"
	"math"
	"strings"

	"github.com/lintang-b-s/zonemap/pkg"
)

const (
	earthRadiusKM = 6371.0
)

var (
	ErrInvalidBoundingBox = errors.New("bbox must be minLat,minLon,maxLat,maxLon")
)

type BoundingBox struct {
	min, max []float64 // lat, lon
}

func NewBoundingBox(lats, lons []float64) BoundingBox {
	min, max := []float64{lats[0], lons[0]}, []float64{lats[0], lons[0]}
	for i := 1; i < len(lats); i++ {
		if lats[i] < min[0] {
			min[0] = lats[i]
		}
		if lats[i] > max[0] {
			max[0] = lats[i]
		}
		if lons[i] < min[1] {
			min[1] = lons[i]
		}
		if lons[i] > max[1] {
			max[1] = lons[i]
		}
	}
	return BoundingBox{
		min: min,
		max: max,
	}
}

// ParseBoundingBox parses "minLat,minLon,maxLat,maxLon" as sent by the map screen.
func ParseBoundingBox(s string) (BoundingBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BoundingBox{}, ErrInvalidBoundingBox
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := pkg.ParseFloat(strings.ReplaceAll(p, " ", ""))
		if err != nil {
			return BoundingBox{}, ErrInvalidBoundingBox
		}
		vals[i] = v
	}
	if vals[0] > vals[2] || vals[1] > vals[3] {
		return BoundingBox{}, ErrInvalidBoundingBox
	}
	return NewBoundingBox([]float64{vals[0], vals[2]}, []float64{vals[1], vals[3]}), nil
}

func (bb *BoundingBox) Contains(lat, lon float64) bool {
	if lat < bb.min[0] || lat > bb.max[0] {
		return false
	}
	if lon < bb.min[1] || lon > bb.max[1] {
		return false
	}
	return true
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180.0
}

// sin^2(a/2)
func havFunction(angleRad float64) float64 {
	return math.Pow(math.Sin(angleRad/2.0), 2)
}

// HaversineDistance in km between two WGS84 points given in degrees.
func HaversineDistance(latOne, lonOne, latTwo, lonTwo float64) float64 {
	latOne, lonOne = degToRad(latOne), degToRad(lonOne)
	latTwo, lonTwo = degToRad(latTwo), degToRad(lonTwo)

	dist := 2.0 * math.Asin(math.Sqrt(havFunction(latOne-latTwo)+math.Cos(latOne)*math.Cos(latTwo)*havFunction(lonOne-lonTwo)))
	return earthRadiusKM * dist
}

func crossProduct(hx, hy, tx, ty, qx, qy float64) float64 {
	return ((tx - hx) * (qy - hy)) - ((qx - hx) * (ty - hy))
}

func isPointOnSegment(px, py, ax, ay, bx, by float64) bool {
	if crossProduct(ax, ay, bx, by, px, py) != 0 {
		return false
	}
	return px >= math.Min(ax, bx) && px <= math.Max(ax, bx) &&
		py >= math.Min(ay, by) && py <= math.Max(ay, by)
}

// windingNumber over the closed ring. a point on an edge counts as inside.
func windingNumber(px, py float64, ring []Vertex) (wn int) {
	n := len(ring)
	for i := 0; i < n; i++ {
		a, b := ring[i], ring[(i+1)%n]
		if isPointOnSegment(px, py, a.X, a.Y, b.X, b.Y) {
			wn = 1
			return
		}
		if a.Y <= py {
			if b.Y > py && crossProduct(a.X, a.Y, b.X, b.Y, px, py) > 0 {
				wn++
			}
		} else if b.Y <= py && crossProduct(a.X, a.Y, b.X, b.Y, px, py) < 0 {
			wn--
		}
	}
	return
}

// IsPointInRing reports whether planar (x, y) lies inside the boundary ordered by Seq.
func IsPointInRing(x, y float64, vertices []Vertex) bool {
	if len(vertices) < 3 {
		return false
	}
	return windingNumber(x, y, Ring(vertices)) != 0
}
