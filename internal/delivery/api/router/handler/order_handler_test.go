package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	mockUc "autohub/internal/mocks/usecase"
	"autohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderHandlerFixture(t *testing.T) (*OrderHandler, *mockUc.MockOrderUsecase) {
	orderUC := mockUc.NewMockOrderUsecase(t)

	return NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()}), orderUC
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	h, orderUC := newOrderHandlerFixture(t)
	e := newTestEcho()
	session := customerSession()
	shopID := uuid.New()
	partID := uuid.New()

	order := &entity.Order{
		ID:     uuid.New(),
		ShopID: shopID,
		Status: entity.OrderPlaced,
		Items: []entity.OrderItem{
			{Part: entity.PartSnapshot{PartID: partID, Title: "Brake pad", Price: 40}, Quantity: 2},
		},
	}

	orderUC.EXPECT().PlaceOrder(mock.Anything, session, mock.MatchedBy(func(in *usecase.PlaceOrderInput) bool {
		return in.ShopID == shopID && len(in.Items) == 1 && in.Items[0].PartID == partID && in.Items[0].Quantity == 2
	})).Return(order, nil)

	body := `{"shopId":"` + shopID.String() + `","items":[{"partId":"` + partID.String() + `","quantity":2}],"address":"Main st 1"}`
	c, rec := newRequest(e, http.MethodPost, "/api/v1/orders", body, session)

	require.NoError(t, h.PlaceOrder(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got struct {
		Data OrderView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Order Placed", got.Data.Status)
	assert.Equal(t, int64(80), got.Data.Total)
}

func TestOrderHandler_PlaceOrderValidation(t *testing.T) {
	h, _ := newOrderHandlerFixture(t)
	e := newTestEcho()

	tests := []struct {
		name  string
		body  string
		field string
		rule  string
	}{
		{name: "no items", body: `{"shopId":"` + uuid.NewString() + `","items":[]}`, field: "items", rule: "min=1"},
		{name: "zero quantity", body: `{"shopId":"` + uuid.NewString() + `","items":[{"partId":"` + uuid.NewString() + `","quantity":0}]}`, field: "items[0].quantity", rule: "gt=0"},
		{name: "missing shop", body: `{"items":[{"partId":"` + uuid.NewString() + `","quantity":1}]}`, field: "shopId", rule: "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newRequest(e, http.MethodPost, "/api/v1/orders", tt.body, customerSession())

			require.NoError(t, h.PlaceOrder(c))
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var got struct {
				Error struct {
					Code    string            `json:"code"`
					Details map[string]string `json:"details"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, "VALIDATION_ERROR", got.Error.Code)
			assert.Equal(t, tt.rule, got.Error.Details[tt.field])
		})
	}
}

func TestOrderHandler_TransitionOrderMapsDomainErrors(t *testing.T) {
	h, orderUC := newOrderHandlerFixture(t)
	e := newTestEcho()
	session := customerSession()
	orderID := uuid.New()

	orderUC.EXPECT().TransitionOrder(mock.Anything, session, orderID, entity.OrderActionCancel).
		Return(nil, domainerrors.ErrInvalidTransition.WrapMessage("order already delivered"))

	c, rec := newRequest(e, http.MethodPost, "/api/v1/orders/"+orderID.String()+"/actions", `{"action":"cancel"}`, session)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	require.NoError(t, h.TransitionOrder(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_STATUS_TRANSITION")
}

func TestOrderHandler_UnknownActionRejectedBeforeUsecase(t *testing.T) {
	h, _ := newOrderHandlerFixture(t)
	e := newTestEcho()
	orderID := uuid.New()

	c, rec := newRequest(e, http.MethodPost, "/", `{"action":"refund"}`, customerSession())
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	require.NoError(t, h.TransitionOrder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_RequiresSession(t *testing.T) {
	h, _ := newOrderHandlerFixture(t)
	e := newTestEcho()

	c, rec := newRequest(e, http.MethodGet, "/api/v1/me/orders", "", nil)

	require.NoError(t, h.ListCustomerOrders(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderHandler_ListShopOrdersPassesLimit(t *testing.T) {
	h, orderUC := newOrderHandlerFixture(t)
	e := newTestEcho()
	shopID := uuid.New()
	session := ownerSession(shopID)

	orderUC.EXPECT().ListShopOrders(mock.Anything, session, 5).Return([]*entity.Order{
		{ID: uuid.New(), ShopID: shopID, Status: entity.OrderConfirmed},
	}, nil)

	c, rec := newRequest(e, http.MethodGet, "/api/v1/my-shop/orders?limit=5", "", session)

	require.NoError(t, h.ListShopOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order Confirmed")
}
