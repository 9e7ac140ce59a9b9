package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/velvetbox/settlecore/internal/domain"
	"github.com/velvetbox/settlecore/internal/dto"
	lifecycleservice "github.com/velvetbox/settlecore/internal/service/lifecycleservice"
	"github.com/velvetbox/settlecore/pkg/auth"
)

func NewMock(t *testing.T) (*OrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, body string, userID int, orderID string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(r.Context(), auth.UserIDKey, userID)
	if orderID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("orderID", orderID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func TestCreateOrderHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Order created",
			body: `{"items":[{"name":"Engraved photo frame","quantity":2,"unitPrice":50000}],"deliveryFee":4900,"platformFee":500,"cashbackUsed":10000,"deliveryType":"standard","address":"221B Baker Street","vendorId":7,"vendorAccount":"acct_7f2c1"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, gomock.Any()).
					Return(&domain.Order{ID: 42, OrderNumber: "570048152732", PaymentRef: "pay_ref_9a1"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Malformed body",
			body:         `{"items":`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Validation failure",
			body: `{"items":[]}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, gomock.Any()).
					Return(nil, lifecycleservice.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Gateway down",
			body: `{"items":[{"name":"x","quantity":1,"unitPrice":100}]}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, gomock.Any()).
					Return(nil, lifecycleservice.ErrPaymentInit)
			},
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := newRequest(http.MethodPost, "/orders", tt.body, 1, "")
			w := httptest.NewRecorder()
			handler.CreateOrder(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.CreateOrderResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(42), body.OrderID)
				assert.Equal(t, "570048152732", body.OrderNumber)
				assert.Equal(t, "pay_ref_9a1", body.PaymentRef)
			}
		})
	}
}

func TestGetOrderHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	tests := []struct {
		name         string
		orderID      string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:    "Order status returned",
			orderID: "42",
			prepareMock: func() {
				service.EXPECT().GetOrder(gomock.Any(), 1, int64(42)).
					Return(&domain.Order{ID: 42, Status: domain.StatusCrafting, SubStatus: "mockup_approved", UpdatedAt: now}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Bad order id",
			orderID:      "abc",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "Unknown order",
			orderID: "42",
			prepareMock: func() {
				service.EXPECT().GetOrder(gomock.Any(), 1, int64(42)).
					Return(nil, lifecycleservice.ErrOrderNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "Someone else's order",
			orderID: "42",
			prepareMock: func() {
				service.EXPECT().GetOrder(gomock.Any(), 1, int64(42)).
					Return(nil, lifecycleservice.ErrNotOwner)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := newRequest(http.MethodGet, "/orders/"+tt.orderID, "", 1, tt.orderID)
			w := httptest.NewRecorder()
			handler.GetOrder(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.OrderStatusResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, domain.StatusCrafting, body.Status)
				assert.Equal(t, "mockup_approved", body.SubStatus)
			}
		})
	}
}

func TestCustomizeHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Details accepted",
			body: `{"items":[{"itemId":1,"details":"Happy anniversary, Maya!"}]}`,
			prepareMock: func() {
				service.EXPECT().SubmitCustomization(gomock.Any(), 1, int64(42),
					map[int64]string{1: "Happy anniversary, Maya!"}).
					Return(&domain.Order{ID: 42, Status: domain.StatusPersonalizing}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Empty details rejected",
			body:         `{"items":[]}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Wrong state",
			body: `{"items":[{"itemId":1,"details":"text"}]}`,
			prepareMock: func() {
				service.EXPECT().SubmitCustomization(gomock.Any(), 1, int64(42), gomock.Any()).
					Return(nil, lifecycleservice.ErrInvalidTransition)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := newRequest(http.MethodPost, "/orders/42/customize", tt.body, 1, "42")
			w := httptest.NewRecorder()
			handler.Customize(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestMockupHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name              string
		body              string
		prepareMock       func()
		expectedCode      int
		expectedSubStatus string
	}{
		{
			name: "Approved",
			body: `{"approved":true}`,
			prepareMock: func() {
				service.EXPECT().ApproveMockup(gomock.Any(), 1, int64(42), true).
					Return(&domain.Order{ID: 42, Status: domain.StatusCrafting, SubStatus: "mockup_approved"}, nil)
			},
			expectedCode:      http.StatusOK,
			expectedSubStatus: "mockup_approved",
		},
		{
			name: "Declined keeps the order waiting for a new mockup",
			body: `{"approved":false}`,
			prepareMock: func() {
				service.EXPECT().ApproveMockup(gomock.Any(), 1, int64(42), false).
					Return(&domain.Order{ID: 42, Status: domain.StatusMockupReady, SubStatus: "revision_requested"}, nil)
			},
			expectedCode:      http.StatusOK,
			expectedSubStatus: "revision_requested",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodPost, "/orders/42/mockup", tt.body, 1, "42")
			w := httptest.NewRecorder()
			handler.Mockup(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)

			var body dto.OrderStatusResponseDTO
			_ = json.NewDecoder(w.Body).Decode(&body)
			assert.Equal(t, tt.expectedSubStatus, body.SubStatus)
		})
	}
}

func TestCancelHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Cancelled with a reason",
			body: `{"reason":"changed_mind"}`,
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), 1, int64(42), "changed_mind").
					Return(&domain.Order{ID: 42, Status: domain.StatusCancelled}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Cancelled without a body",
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), 1, int64(42), "").
					Return(&domain.Order{ID: 42, Status: domain.StatusCancelled}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Too late to cancel",
			body: `{"reason":"changed_mind"}`,
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), 1, int64(42), "changed_mind").
					Return(nil, lifecycleservice.ErrInvalidTransition)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodPost, "/orders/42/cancel", tt.body, 1, "42")
			w := httptest.NewRecorder()
			handler.Cancel(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestVendorUpdateStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Ready for pickup",
			body: `{"status":"ready_for_pickup"}`,
			prepareMock: func() {
				service.EXPECT().MarkReady(gomock.Any(), 7, int64(42)).
					Return(&domain.Order{ID: 42, Status: domain.StatusReadyForPickup}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Out for delivery",
			body: `{"status":"out_for_delivery"}`,
			prepareMock: func() {
				service.EXPECT().MarkOutForDelivery(gomock.Any(), 7, int64(42)).
					Return(&domain.Order{ID: 42, Status: domain.StatusOutForDelivery}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Delivered",
			body: `{"status":"delivered"}`,
			prepareMock: func() {
				service.EXPECT().MarkDelivered(gomock.Any(), 7, int64(42)).
					Return(&domain.Order{ID: 42, Status: domain.StatusDelivered}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Unknown target status",
			body:         `{"status":"teleported"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Another vendor's order",
			body: `{"status":"delivered"}`,
			prepareMock: func() {
				service.EXPECT().MarkDelivered(gomock.Any(), 7, int64(42)).
					Return(nil, lifecycleservice.ErrNotVendor)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := newRequest(http.MethodPost, "/vendor/orders/42/status", tt.body, 7, "42")
			w := httptest.NewRecorder()
			handler.VendorUpdateStatus(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestVendorListOrdersHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListVendorOrders(gomock.Any(), 7).
		Return([]domain.Order{
			{ID: 42, OrderNumber: "570048152732", Status: domain.StatusPersonalizing},
		}, nil)

	r := newRequest(http.MethodGet, "/vendor/orders", "", 7, "")
	w := httptest.NewRecorder()
	handler.VendorListOrders(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	var body []dto.VendorOrderDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 1)
	assert.Equal(t, "570048152732", body[0].OrderNumber)
}
