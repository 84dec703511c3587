// Package worker serves the notifier: a Pub/Sub push endpoint plus a health probe.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"autohub/config"
	"autohub/internal/delivery"
	"autohub/internal/delivery/middleware"
	"autohub/internal/delivery/worker/handler"
	"autohub/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PushPath receives Pub/Sub push deliveries.
const PushPath = "/push"

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

type notifierServer struct {
	addr   string
	echo   *echo.Echo
	logger *slog.Logger
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	httpCfg := params.Cfg.HTTP

	e := echo.New()
	e.HideBanner, e.HidePort = true, true
	e.Server.ReadTimeout = httpCfg.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = httpCfg.Timeouts.ReadHeaderTimeout
	e.Server.IdleTimeout = httpCfg.Timeouts.IdleTimeout

	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
	)
	if httpCfg.MaxRequestBodySize != "" {
		e.Use(echomiddleware.BodyLimit(httpCfg.MaxRequestBodySize))
	}

	e.GET("/health", health)
	e.POST(PushPath, params.PushHandler.HandlePush)

	srv := &notifierServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(httpCfg.Port)),
		echo:   e,
		logger: params.Logger.With(slog.String("service", "notifier")),
	}
	params.Lc.Append(fx.StopHook(srv.shutdown))

	return srv, nil
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "notifier"})
}

func (s *notifierServer) Serve(context.Context) error {
	s.logger.Info("Notifier listening", slog.String("addr", s.addr))

	err := s.echo.Start(s.addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *notifierServer) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Notifier shutting down")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
