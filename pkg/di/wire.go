//go:build wireinject

//go:generate wire
package di

import (
	"context"

	"github.com/lintang-b-s/zonemap/pkg/di/config"
	shortcontext "github.com/lintang-b-s/zonemap/pkg/di/context"
	kv_di "github.com/lintang-b-s/zonemap/pkg/di/kv"
	logger_di "github.com/lintang-b-s/zonemap/pkg/di/logger"
	usecases_di "github.com/lintang-b-s/zonemap/pkg/di/usecases"
	zonemapHttp "github.com/lintang-b-s/zonemap/pkg/http"
	"github.com/lintang-b-s/zonemap/pkg/http/http-router/controllers"
	"github.com/lintang-b-s/zonemap/pkg/importer"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var defaultSet = wire.NewSet(
	shortcontext.New,
	config.New,
	logger_di.New,
	kv_di.New,
	usecases_di.NewProjection,
)

var apiSet = wire.NewSet(
	defaultSet,
	usecases_di.NewRepository,
	usecases_di.NewZoneService,
	usecases_di.NewParcelService,
	usecases_di.NewProjectionService,
	NewZoneMapAPIServer,
)

var importerSet = wire.NewSet(
	defaultSet,
	importer.New,
	NewImporterApp,
)

func NewZoneMapAPIServer(ctx context.Context, log *zap.Logger, cfg *config.Config,
	zoneService controllers.ZoneService, parcelService controllers.ParcelService,
	projectionService controllers.ProjectionService) (*zonemapHttp.Server, error) {
	api := zonemapHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, cfg, zoneService, parcelService, projectionService,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}

// ImporterApp is what cmd/importer needs: the workbook importer plus the
// signal-aware context and logger it runs with.
type ImporterApp struct {
	Ctx      context.Context
	Log      *zap.Logger
	Importer *importer.Importer
}

func NewImporterApp(ctx context.Context, log *zap.Logger, im *importer.Importer) *ImporterApp {
	return &ImporterApp{
		Ctx:      ctx,
		Log:      log,
		Importer: im,
	}
}

func InitializeZoneMapService() (*zonemapHttp.Server, func(), error) {
	panic(wire.Build(apiSet))
}

func InitializeImporter() (*ImporterApp, func(), error) {
	panic(wire.Build(importerSet))
}
