package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"food-kiosk/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Checkout(ctx context.Context) (*model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) GetAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestOrderHandler_Checkout_Success(t *testing.T) {
	order := &model.Order{
		ID:          1700000000000,
		Items:       []model.CartLine{{Name: "Burger", Price: 9.90, Quantity: 2}},
		TotalAmount: 19.80,
		CreatedAt:   time.Now(),
	}

	svc := new(MockOrderService)
	svc.On("Checkout", mock.Anything).Return(order, nil)

	h := NewOrderHandler(svc, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Checkout(rec, httptest.NewRequest(http.MethodPost, "/api/orders", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, order.ID, resp.ID)
	assert.Equal(t, order.TotalAmount, resp.TotalAmount)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Burger", resp.Items[0].Name)
}

func TestOrderHandler_Checkout_EmptyCart(t *testing.T) {
	svc := new(MockOrderService)
	svc.On("Checkout", mock.Anything).Return(nil, model.ErrEmptyCart)

	h := NewOrderHandler(svc, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Checkout(rec, httptest.NewRequest(http.MethodPost, "/api/orders", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.ErrEmptyCart.Message, resp.Error)
}

func TestOrderHandler_GetAll(t *testing.T) {
	orders := []model.Order{
		{ID: 1, TotalAmount: 23.30},
		{ID: 2, TotalAmount: 9.90},
	}

	svc := new(MockOrderService)
	svc.On("GetAll", mock.Anything).Return(orders, nil)

	h := NewOrderHandler(svc, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.GetAll(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestOrderHandler_Remove(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockErr        error
		expectService  bool
		expectedStatus int
	}{
		{
			name:           "Success",
			path:           "/api/orders/1700000000000",
			expectService:  true,
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Not found",
			path:           "/api/orders/42",
			mockErr:        model.ErrOrderNotFound,
			expectService:  true,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Invalid ID format",
			path:           "/api/orders/not-a-number",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing ID",
			path:           "/api/orders/",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockOrderService)
			if tt.expectService {
				svc.On("Remove", mock.Anything, mock.AnythingOfType("int64")).Return(tt.mockErr)
			}

			h := NewOrderHandler(svc, zerolog.Nop())

			rec := httptest.NewRecorder()
			h.Remove(rec, httptest.NewRequest(http.MethodDelete, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
