package payment

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/velvetbox/settlecore/internal/domain"
	"github.com/velvetbox/settlecore/internal/dto"
	lifecycleservice "github.com/velvetbox/settlecore/internal/service/lifecycleservice"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService, *MockVerifier) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	verifier := NewMockVerifier(ctrl)
	handler := New(service, verifier)
	defer ctrl.Finish()
	return handler, service, verifier
}

func TestVerifyHandler(t *testing.T) {
	handler, service, verifier := NewMock(t)

	order := &domain.Order{ID: 42, PaymentRef: "pay_ref_9a1", Status: domain.StatusPending}

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedCode   int
		expectedStatus string
	}{
		{
			name:         "Malformed body",
			body:         `{"orderId":`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing payment id",
			body:         `{"orderId":42,"signature":"sig","status":"captured"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown order",
			body: `{"orderId":42,"paymentId":"tx_5501","signature":"sig","status":"captured"}`,
			prepareMock: func() {
				service.EXPECT().GetOrderByID(gomock.Any(), int64(42)).
					Return(nil, lifecycleservice.ErrOrderNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Signature mismatch never reaches confirmation",
			body: `{"orderId":42,"paymentId":"tx_5501","signature":"bad","status":"captured"}`,
			prepareMock: func() {
				service.EXPECT().GetOrderByID(gomock.Any(), int64(42)).Return(order, nil)
				verifier.EXPECT().VerifySignature("pay_ref_9a1", "tx_5501", "bad").Return(false)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Captured payment confirmed",
			body: `{"orderId":42,"paymentId":"tx_5501","signature":"good","status":"captured"}`,
			prepareMock: func() {
				service.EXPECT().GetOrderByID(gomock.Any(), int64(42)).Return(order, nil)
				verifier.EXPECT().VerifySignature("pay_ref_9a1", "tx_5501", "good").Return(true)
				service.EXPECT().ConfirmPayment(gomock.Any(), int64(42), "tx_5501", true).
					Return(&domain.Order{ID: 42, Status: domain.StatusAwaitingDetails}, nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: domain.StatusAwaitingDetails,
		},
		{
			name: "Failed capture reported by the gateway",
			body: `{"orderId":42,"paymentId":"tx_5501","signature":"good","status":"failed"}`,
			prepareMock: func() {
				service.EXPECT().GetOrderByID(gomock.Any(), int64(42)).Return(order, nil)
				verifier.EXPECT().VerifySignature("pay_ref_9a1", "tx_5501", "good").Return(true)
				service.EXPECT().ConfirmPayment(gomock.Any(), int64(42), "tx_5501", false).
					Return(&domain.Order{ID: 42, Status: domain.StatusPending}, nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: domain.StatusPending,
		},
		{
			name: "Confirmation failure",
			body: `{"orderId":42,"paymentId":"tx_5501","signature":"good","status":"captured"}`,
			prepareMock: func() {
				service.EXPECT().GetOrderByID(gomock.Any(), int64(42)).Return(order, nil)
				verifier.EXPECT().VerifySignature("pay_ref_9a1", "tx_5501", "good").Return(true)
				service.EXPECT().ConfirmPayment(gomock.Any(), int64(42), "tx_5501", true).
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := httptest.NewRequest(http.MethodPost, "/payment/verify", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Verify(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.PaymentVerifyResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(42), body.OrderID)
				assert.Equal(t, tt.expectedStatus, body.Status)
			}
		})
	}
}
