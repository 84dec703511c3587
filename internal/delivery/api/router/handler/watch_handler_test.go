package handler

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	mockUc "autohub/internal/mocks/usecase"
	"autohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWatchHandler_StreamsSnapshotsUntilFeedCloses(t *testing.T) {
	watchUC := mockUc.NewMockWatchUsecase(t)
	h := NewWatchHandler(WatchHandlerParams{WatchUC: watchUC, Logger: newDiscardLogger()})
	h.heartbeat = time.Hour
	e := newTestEcho()
	shopID := uuid.New()
	session := ownerSession(shopID)

	ch := make(chan usecase.Snapshot, 2)
	ch <- usecase.Snapshot{
		Stream: usecase.WatchShopOrders,
		Orders: []*entity.Order{{ID: uuid.New(), ShopID: shopID, Status: entity.OrderPlaced}},
	}
	ch <- usecase.Snapshot{Stream: usecase.WatchShopOrders, Orders: []*entity.Order{}}
	close(ch)

	watchUC.EXPECT().Watch(mock.Anything, session, usecase.WatchShopOrders).Return((<-chan usecase.Snapshot)(ch), nil)

	c, rec := newRequest(e, http.MethodGet, "/api/v1/watch/shop_orders", "", session)
	c.SetParamNames("stream")
	c.SetParamValues("shop_orders")

	require.NoError(t, h.Watch(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "event: connected\n"))
	assert.Equal(t, 2, strings.Count(body, "event: snapshot\n"))
	assert.Contains(t, body, "Order Placed")
}

func TestWatchHandler_RejectedStreamIsAnError(t *testing.T) {
	watchUC := mockUc.NewMockWatchUsecase(t)
	h := NewWatchHandler(WatchHandlerParams{WatchUC: watchUC, Logger: newDiscardLogger()})
	e := newTestEcho()
	session := customerSession()

	watchUC.EXPECT().Watch(mock.Anything, session, usecase.WatchShopOrders).Return(nil, domainerrors.ErrForbidden)

	c, rec := newRequest(e, http.MethodGet, "/", "", session)
	c.SetParamNames("stream")
	c.SetParamValues("shop_orders")

	require.NoError(t, h.Watch(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
