package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/lintang-b-s/transitx/pkg/http/router/controllers"
	router_helper "github.com/lintang-b-s/transitx/pkg/http/router/routerhelper"
	http_server "github.com/lintang-b-s/transitx/pkg/http/server"
	"github.com/rs/cors"
	"go.uber.org/zap"

	httpSwagger "github.com/swaggo/http-swagger"
)

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

// Handler wires routes and the middleware chain.
func (api *API) Handler(config http_server.Config, useRateLimit bool,
	transitService controllers.TransitService) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	router.GET("/doc/*any", swaggerHandler)

	group := router_helper.NewRouteGroup(router, "/api")

	transitRoutes := controllers.New(transitService, api.log)
	transitRoutes.Routes(group)

	mwChain := []alice.Constructor{corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		RealIP, Heartbeat("healthz"), Logger(api.log)}
	if useRateLimit {
		mwChain = append(mwChain, Limit(config.RateLimitRPS, config.RateLimitBurst))
	}
	return alice.New(mwChain...).Then(router)
}

//	@title			Transitx API
//	@version		1.0
//	@description	Read-only query API of a bus transit catalogue and its fastest itinerary router.

//	@license.name	BSD License
//	@license.url	https://opensource.org/license/bsd-2-clause

// @host		localhost
// @BasePath	/api
func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	useRateLimit bool,
	transitService controllers.TransitService,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(config, useRateLimit, transitService), config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		api.log.Info("HTTP server stopped", zap.Error(err))
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		api.log.Info("Context canceled, shutting down server")
		_ = srv.Shutdown(context.Background())
		return ctx.Err()
	}
}

func swaggerHandler(res http.ResponseWriter, req *http.Request, p httprouter.Params) {
	httpSwagger.WrapHandler(res, req)
}
