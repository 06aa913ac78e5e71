package http

import (
	"context"

	"github.com/lintang-b-s/zonemap/pkg/di/config"
	http_router "github.com/lintang-b-s/zonemap/pkg/http/http-router"
	"github.com/lintang-b-s/zonemap/pkg/http/http-router/controllers"
	http_server "github.com/lintang-b-s/zonemap/pkg/http/server"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
	g   *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use starts the API in the background. Wait blocks until it stops.
func (s *Server) Use(
	ctx context.Context,
	cfg *config.Config,

	zoneService controllers.ZoneService,
	parcelService controllers.ParcelService,
	projectionService controllers.ProjectionService,
) (*Server, error) {
	serverConfig := http_server.Config{
		Port:    cfg.Port,
		Timeout: cfg.Timeout,
	}

	api := http_router.NewAPI(s.Log)

	g, ctx := errgroup.WithContext(ctx)
	s.g = g

	g.Go(func() error {
		return api.Run(
			ctx, serverConfig, zoneService, parcelService, projectionService,
		)
	})

	return s, nil
}

func (s *Server) Wait() error {
	if s.g == nil {
		return nil
	}
	return s.g.Wait()
}
