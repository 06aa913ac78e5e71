package geo

import (
	"fmt"
	"math"
	"sync"

	"github.com/ctessum/geom/proj"
)

const (
	// LambertMorocco is the Lambert Conformal Conic definition zones and parcels are surveyed in.
	// stored coordinates depend on these exact parameters.
	LambertMorocco = "+proj=lcc +lat_1=33.3 +lat_2=35.1 +lat_0=33 +lon_0=-5 +x_0=500000 +y_0=300000 +ellps=clrk80 +units=m +no_defs"

	WGS84 = "+proj=longlat +datum=WGS84 +no_defs"
)

// Projection is anything turning planar Lambert metres into (lat, lon) degrees.
type Projection interface {
	Project(x, y float64) (lat, lon float64)
}

// Projector converts planar Lambert coordinates (metres) to WGS84 latitude/longitude.
// A Projector is immutable once built and safe for concurrent use.
type Projector struct {
	def       string
	transform proj.Transformer
}

// NewProjector builds a projector from a proj4 definition to WGS84.
func NewProjector(def string) (*Projector, error) {
	src, err := proj.Parse(def)
	if err != nil {
		return nil, fmt.Errorf("parse projection %q: %w", def, err)
	}
	dst, err := proj.Parse(WGS84)
	if err != nil {
		return nil, fmt.Errorf("parse projection %q: %w", WGS84, err)
	}
	if _, _, err := src.Transformers(); err != nil {
		return nil, fmt.Errorf("projection %q: %w", def, err)
	}
	transform, err := src.NewTransform(dst)
	if err != nil {
		return nil, fmt.Errorf("build transform: %w", err)
	}

	p := &Projector{def: def, transform: transform}
	// the false origin must land somewhere, otherwise every point would come back NaN.
	x0, y0 := finiteOr(src.X0, 0), finiteOr(src.Y0, 0)
	if lat, lon := p.Project(x0, y0); math.IsNaN(lat) || math.IsNaN(lon) {
		return nil, fmt.Errorf("projection %q cannot project its own origin (%v, %v)", def, x0, y0)
	}
	return p, nil
}

func finiteOr(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// Project returns (lat, lon) in decimal degrees. the transform itself yields (lon, lat).
// there is no range check: points far from Morocco still get a number.
// a transform failure comes back as NaN, NaN.
func (p *Projector) Project(x, y float64) (lat, lon float64) {
	lon, lat, err := p.transform(x, y)
	if err != nil {
		return math.NaN(), math.NaN()
	}
	return lat, lon
}

func (p *Projector) Definition() string {
	return p.def
}

var (
	defaultProjector    *Projector
	defaultProjectorErr error
	defaultOnce         sync.Once
)

// DefaultProjector returns the process-wide LambertMorocco projector.
func DefaultProjector() *Projector {
	defaultOnce.Do(func() {
		defaultProjector, defaultProjectorErr = NewProjector(LambertMorocco)
	})
	if defaultProjectorErr != nil {
		panic(defaultProjectorErr)
	}
	return defaultProjector
}

// Project projects with the default Lambert definition.
func Project(x, y float64) (lat, lon float64) {
	return DefaultProjector().Project(x, y)
}
