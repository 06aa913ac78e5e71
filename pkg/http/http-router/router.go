package http_router

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	_ "github.com/lintang-b-s/zonemap/docs"
	"github.com/lintang-b-s/zonemap/pkg/http/http-router/controllers"
	router_helper "github.com/lintang-b-s/zonemap/pkg/http/http-router/router-helper"
	http_server "github.com/lintang-b-s/zonemap/pkg/http/server"
	"github.com/lintang-b-s/zonemap/pkg/metrics"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

// Handler wires every route behind the middleware chain.
func (api *API) Handler(
	zoneService controllers.ZoneService,
	parcelService controllers.ParcelService,
	projectionService controllers.ProjectionService,
) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Location", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	group := router_helper.NewRouteGroup(router, "/api")

	controllers.NewZoneAPI(zoneService, api.log).Routes(group)
	controllers.NewParcelAPI(parcelService, api.log).Routes(group)
	controllers.NewMapAPI(zoneService, parcelService, projectionService, api.log).Routes(group)

	router.Handler(http.MethodGet, "/metrics", metrics.Handler())
	router.Handler(http.MethodGet, "/swagger/*any", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return alice.New(corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		RealIP, Heartbeat("healthz"), Logger(api.log), Labels).Then(router)
}

func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	zoneService controllers.ZoneService,
	parcelService controllers.ParcelService,
	projectionService controllers.ProjectionService,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(zoneService, parcelService, projectionService), config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
