// Package api serves the public HTTP API over h2c.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"safezone/config"
	"safezone/internal/delivery"
	apimiddleware "safezone/internal/delivery/api/middleware"
	"safezone/internal/delivery/api/router"
	"safezone/internal/delivery/api/validator"
	"safezone/internal/delivery/middleware"
	"safezone/internal/domain/lifecycle"
	"safezone/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	hostPort string
	h2       *http2.Server
	logger   *slog.Logger
	engine   *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		hostPort: net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		h2:       &http2.Server{IdleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout},
		logger:   params.Logger,
		engine:   NewEngine(params.Cfg, params.Logger, params.RouterParams),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEngine assembles the echo instance: middleware chain, error handler,
// validator and every route.
func NewEngine(cfg *config.Config, logger *slog.Logger, routerParams router.RouterParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Order matters: panics are recovered first, and the request id must
	// exist before the access log line is written.
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowHeaders: []string{
				echo.HeaderAuthorization,
				echo.HeaderContentType,
				apimiddleware.HeaderDeviceID,
				echo.HeaderXRequestID,
			},
			ExposeHeaders: []string{echo.HeaderXRequestID},
		}),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	r := router.NewRouter(routerParams)
	r.RegisterRoutes(e)
	r.RegisterTestRoutes(e)

	return e
}

func (s *apiServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting API HTTP server", slog.String("host_port", s.hostPort))
	if err := s.engine.StartH2CServer(s.hostPort, s.h2); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.engine.Shutdown(shutdownCtx))
}
