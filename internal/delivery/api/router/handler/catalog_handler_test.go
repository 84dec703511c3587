package handler

import (
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

func newCatalogHandlerFixture(t *testing.T) (*CatalogHandler, *mockUc.MockCatalogUsecase) {
	catalogUC := mockUc.NewMockCatalogUsecase(t)

	return NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()}), catalogUC
}

func TestCatalogHandler_GetShop(t *testing.T) {
	h, catalogUC := newCatalogHandlerFixture(t)
	e := newTestEcho()
	shopID := uuid.New()

	catalogUC.EXPECT().GetShop(mock.Anything, shopID).Return(&usecase.ShopDetails{
		Shop:          &entity.Shop{ID: shopID, Title: "Quick Fix"},
		Services:      []*entity.ShopService{{ID: uuid.New(), ShopID: shopID, Name: "Oil change", Price: 500}},
		SpareParts:    []*entity.SparePart{{ID: uuid.New(), ShopID: shopID, Title: "Filter", ManageInventory: true, Quantity: 0, LowStockLimit: 10}},
		AverageRating: 4.5,
	}, nil)

	c, rec := newRequest(e, http.MethodGet, "/", "", customerSession())
	c.SetParamNames("id")
	c.SetParamValues(shopID.String())

	require.NoError(t, h.GetShop(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"averageRating":4.5`)
	assert.Contains(t, body, `"outOfStock":true`)
	assert.Contains(t, body, `"lowStock":false`)
}

func TestCatalogHandler_GetShopInvalidID(t *testing.T) {
	h, _ := newCatalogHandlerFixture(t)
	e := newTestEcho()

	c, rec := newRequest(e, http.MethodGet, "/", "", customerSession())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetShop(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestCatalogHandler_CreateSparePartKeepsExplicitZeroLimit(t *testing.T) {
	h, catalogUC := newCatalogHandlerFixture(t)
	e := newTestEcho()
	shopID := uuid.New()
	session := ownerSession(shopID)

	catalogUC.EXPECT().CreateSparePart(mock.Anything, session, mock.MatchedBy(func(in *usecase.SparePartInput) bool {
		return in.LowStockLimit != nil && *in.LowStockLimit == 0 && in.ManageInventory && in.Quantity == 3
	})).Return(&entity.SparePart{ID: uuid.New(), ShopID: shopID, Title: "Belt", ManageInventory: true, Quantity: 3}, nil)

	c, rec := newRequest(e, http.MethodPost, "/", `{"title":"Belt","price":120,"manageInventory":true,"quantity":3,"lowStockLimit":0}`, session)

	require.NoError(t, h.CreateSparePart(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCatalogHandler_CreateShopForbidden(t *testing.T) {
	h, catalogUC := newCatalogHandlerFixture(t)
	e := newTestEcho()
	session := customerSession()

	catalogUC.EXPECT().CreateShop(mock.Anything, session, mock.Anything).Return(nil, domainerrors.ErrForbidden)

	c, rec := newRequest(e, http.MethodPost, "/", `{"title":"Garage"}`, session)

	require.NoError(t, h.CreateShop(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCatalogHandler_SearchSparePartsShopFilter(t *testing.T) {
	h, catalogUC := newCatalogHandlerFixture(t)
	e := newTestEcho()
	shopID := uuid.New()

	catalogUC.EXPECT().SearchSpareParts(mock.Anything, mock.MatchedBy(func(q usecase.SparePartQuery) bool {
		return q.ShopID != nil && *q.ShopID == shopID && q.Query == "pad" && q.Limit == 0
	})).Return([]*entity.SparePart{}, nil)

	c, rec := newRequest(e, http.MethodGet, "/?q=pad&shopId="+shopID.String(), "", customerSession())

	require.NoError(t, h.SearchSpareParts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
