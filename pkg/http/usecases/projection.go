package usecases

import (
	"math"

	"github.com/lintang-b-s/zonemap/pkg"
	"github.com/lintang-b-s/zonemap/pkg/geo"

	"go.uber.org/zap"
)

type ProjectionService struct {
	log       *zap.Logger
	projector geo.Projection
}

func NewProjectionService(log *zap.Logger, projector geo.Projection) *ProjectionService {
	return &ProjectionService{
		log:       log,
		projector: projector,
	}
}

// Project converts one Lambert point. no range check, like the projector itself.
func (s *ProjectionService) Project(x, y float64) (geo.LatLon, error) {
	ll := geo.NewLatLon(s.projector.Project(x, y))
	if math.IsNaN(ll.Lat) || math.IsNaN(ll.Lon) {
		s.log.Warn("projection produced NaN", zap.Float64("x", x), zap.Float64("y", y))
		return geo.LatLon{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "point (%v, %v) cannot be projected", x, y)
	}
	return ll, nil
}

// Centroid reduces a vertex list and projects the result.
func (s *ProjectionService) Centroid(vertices []geo.Vertex) (geo.LatLon, error) {
	if err := validateVertices(vertices); err != nil {
		return geo.LatLon{}, err
	}
	c, ok := geo.Centroid(vertices)
	if !ok {
		return geo.LatLon{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "at least one vertex is required")
	}
	return s.Project(c.X(), c.Y())
}
