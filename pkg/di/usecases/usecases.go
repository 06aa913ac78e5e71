package usecases_di

import (
	"github.com/lintang-b-s/zonemap/pkg/di/config"
	"github.com/lintang-b-s/zonemap/pkg/geo"
	"github.com/lintang-b-s/zonemap/pkg/http/http-router/controllers"
	"github.com/lintang-b-s/zonemap/pkg/http/usecases"
	"github.com/lintang-b-s/zonemap/pkg/kvdb"

	"go.uber.org/zap"
)

// NewProjection builds the Lambert Nord Maroc projector once for the whole process.
func NewProjection(log *zap.Logger) (geo.Projection, error) {
	projector, err := geo.NewProjector(geo.LambertMorocco)
	if err != nil {
		return nil, err
	}
	log.Info("projection ready", zap.String("definition", projector.Definition()))
	return projector, nil
}

func NewRepository(db *kvdb.KVDB) usecases.ZoneRepository {
	return db
}

func NewZoneService(log *zap.Logger, repo usecases.ZoneRepository, projection geo.Projection, cfg *config.Config) controllers.ZoneService {
	return usecases.NewZoneService(log, repo, projection, cfg.FootprintHalfSize)
}

func NewParcelService(log *zap.Logger, repo usecases.ZoneRepository, projection geo.Projection) controllers.ParcelService {
	return usecases.NewParcelService(log, repo, projection)
}

func NewProjectionService(log *zap.Logger, projection geo.Projection) controllers.ProjectionService {
	return usecases.NewProjectionService(log, projection)
}
