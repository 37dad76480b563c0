package http

import (
	"context"

	http_router "github.com/lintang-b-s/transitx/pkg/http/router"
	"github.com/lintang-b-s/transitx/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/transitx/pkg/http/server"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use serves the transit API until ctx is done or the listener fails.
func (s *Server) Use(
	ctx context.Context,
	useRateLimit bool,
	transitService controllers.TransitService,
) error {
	config := http_server.NewConfigFromViper()

	api := http_router.NewAPI(s.Log)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return api.Run(gctx, config, useRateLimit, transitService)
	})

	return g.Wait()
}
