// Package api serves the public marketplace HTTP API.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"autohub/config"
	"autohub/internal/delivery"
	apimiddleware "autohub/internal/delivery/api/middleware"
	"autohub/internal/delivery/api/router"
	"autohub/internal/delivery/api/validator"
	"autohub/internal/delivery/middleware"
	"autohub/internal/domain/lifecycle"
	"autohub/internal/errors"
	"autohub/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Registry
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params.Cfg)
	useMiddleware(e, params)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(e)
	r.RegisterTestRoutes(e)

	srv := &apiServer{cfg: params.Cfg, logger: params.Logger, server: e}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

func newEcho(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	// watch streams clear their own write deadline
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	return e
}

// useMiddleware installs the chain outermost first: panics are recovered
// before anything else runs, and the request id exists before the access log
// needs it.
func useMiddleware(e *echo.Echo, params ServerParams) {
	cfg := params.Cfg

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, cfg).Handle)
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimitWithConfig(echomiddleware.BodyLimitConfig{
		Limit: cfg.HTTP.MaxRequestBodySize,
		// uploads are capped by storage.maxUploadSize
		Skipper: func(c echo.Context) bool { return c.Path() == router.UploadPath },
	}))

	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		e.Use(params.Metrics.Middleware())
		e.GET(cfg.Metrics.Path, echo.WrapHandler(params.Metrics.Handler()))
	}
}

// Serve speaks HTTP/1.1 and cleartext HTTP/2 on the same port.
func (s *apiServer) Serve(context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))

	h2 := &http2.Server{IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout}
	if err := s.server.StartH2CServer(hostPort, h2); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(ctx))
}
