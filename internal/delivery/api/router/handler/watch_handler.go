package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"autohub/internal/delivery/api/middleware"
	"autohub/internal/delivery/api/response"
	deliverycontext "autohub/internal/delivery/context"
	"autohub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// heartbeatInterval keeps idle SSE connections open through proxies.
const heartbeatInterval = 15 * time.Second

// WatchHandlerParams holds dependencies for WatchHandler, injected by Fx.
type WatchHandlerParams struct {
	fx.In

	WatchUC usecase.WatchUsecase
	Logger  *slog.Logger
}

// WatchHandler streams live list snapshots as server-sent events.
type WatchHandler struct {
	watchUC   usecase.WatchUsecase
	logger    *slog.Logger
	heartbeat time.Duration
}

// NewWatchHandler is the constructor for WatchHandler.
func NewWatchHandler(params WatchHandlerParams) *WatchHandler {
	return &WatchHandler{
		watchUC:   params.WatchUC,
		logger:    params.Logger,
		heartbeat: heartbeatInterval,
	}
}

// Watch streams the list named by :stream until the client disconnects.
func (h *WatchHandler) Watch(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	stream := usecase.WatchStream(c.Param("stream"))

	snapshots, err := h.watchUC.Watch(ctx, session, stream)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	res := c.Response()
	// The server write timeout would otherwise cut long-lived streams.
	if err := http.NewResponseController(res.Writer).SetWriteDeadline(time.Time{}); err != nil {
		logger.Debug("Write deadline not adjustable", slog.Any("error", err))
	}
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)

	if err := writeEvent(res, "connected", map[string]string{"stream": string(stream)}); err != nil {
		return nil
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Watch client gone", slog.String("stream", string(stream)))

			return nil
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": heartbeat\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case snapshot, open := <-snapshots:
			if !open {
				logger.Debug("Watch feed closed", slog.String("stream", string(stream)))

				return nil
			}
			if err := writeEvent(res, "snapshot", newSnapshotView(snapshot)); err != nil {
				logger.Debug("Watch write failed", slog.Any("error", err))

				return nil
			}
		}
	}
}

func writeEvent(res *echo.Response, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	res.Flush()

	return nil
}

func newSnapshotView(snapshot usecase.Snapshot) *SnapshotView {
	view := &SnapshotView{Stream: string(snapshot.Stream)}
	if snapshot.Orders != nil {
		view.Orders = mapViews(snapshot.Orders, newOrderView)
	}
	if snapshot.Appointments != nil {
		view.Appointments = mapViews(snapshot.Appointments, newAppointmentView)
	}

	return view
}
