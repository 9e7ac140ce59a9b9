package lifecycleservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/velvetbox/settlecore/internal/config"
	"github.com/velvetbox/settlecore/internal/domain"
	"github.com/velvetbox/settlecore/internal/service/settlementservice"
	"github.com/velvetbox/settlecore/internal/service/walletservice"
	"github.com/velvetbox/settlecore/pkg/validate"
)

type mocks struct {
	repo       *MockRepo
	settlement *MockSettlement
	gateway    *MockPaymentGateway
	wallet     *MockWallet
	events     *MockEvents
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:       NewMockRepo(ctrl),
		settlement: NewMockSettlement(ctrl),
		gateway:    NewMockPaymentGateway(ctrl),
		wallet:     NewMockWallet(ctrl),
		events:     NewMockEvents(ctrl),
	}
	cfg := &config.Config{CashbackCapPercent: 20}
	service := New(m.repo, m.settlement, m.gateway, m.wallet, m.events, cfg)
	defer ctrl.Finish()
	return service, m
}

func validInput() CreateOrderInput {
	return CreateOrderInput{
		Items: []ItemInput{
			{Name: "Engraved photo frame", Quantity: 2, UnitPrice: 50000},
		},
		DeliveryFee:   4900,
		PlatformFee:   500,
		CashbackUsed:  10000,
		DeliveryType:  "standard",
		Address:       "221B Baker Street",
		VendorID:      7,
		VendorAccount: "acct_7f2c1",
	}
}

func TestCreate(t *testing.T) {
	service, m := NewMock(t)
	tests := []struct {
		name          string
		input         func() CreateOrderInput
		prepareMock   func()
		expectedError error
		check         func(t *testing.T, order *domain.Order)
	}{
		{
			name: "Order with no items is rejected",
			input: func() CreateOrderInput {
				in := validInput()
				in.Items = nil
				return in
			},
			expectedError: ErrValidation,
		},
		{
			name: "Negative delivery fee is rejected",
			input: func() CreateOrderInput {
				in := validInput()
				in.DeliveryFee = -1
				return in
			},
			expectedError: ErrValidation,
		},
		{
			name: "Zero quantity item is rejected",
			input: func() CreateOrderInput {
				in := validInput()
				in.Items[0].Quantity = 0
				return in
			},
			expectedError: ErrValidation,
		},
		{
			name: "Cashback above the cap is rejected",
			input: func() CreateOrderInput {
				in := validInput()
				in.CashbackUsed = 20001
				return in
			},
			expectedError: ErrValidation,
		},
		{
			name:  "Gateway failure becomes ErrPaymentInit",
			input: validInput,
			prepareMock: func() {
				m.gateway.EXPECT().CreatePaymentOrder(gomock.Any(), gomock.Any(), int64(95400)).
					Return("", errors.New("gateway down"))
			},
			expectedError: ErrPaymentInit,
		},
		{
			name:  "Order is created with the monetary invariant intact",
			input: validInput,
			prepareMock: func() {
				m.gateway.EXPECT().CreatePaymentOrder(gomock.Any(), gomock.Any(), int64(95400)).
					Return("pay_ref_9a1", nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.wallet.EXPECT().GetOrCreateWallet(gomock.Any(), 1).
					Return(&domain.Wallet{ID: "w-1", UserID: 1}, nil)
				m.wallet.EXPECT().Debit(gomock.Any(), "w-1", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, amount decimal.Decimal, description string) (decimal.Decimal, error) {
						assert.True(t, amount.Equal(decimal.NewFromInt(100)))
						assert.Contains(t, description, "cashback spent on order")
						return decimal.NewFromInt(95), nil
					})
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, int64(100000), order.ItemTotal)
				assert.Equal(t, order.ItemTotal+order.DeliveryFee+order.PlatformFee-order.CashbackUsed, order.Total)
				assert.Equal(t, domain.StatusPending, order.Status)
				assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
				assert.Equal(t, "pay_ref_9a1", order.PaymentRef)
				assert.Len(t, order.OrderNumber, 12)
				assert.True(t, validate.IsLuhn(order.OrderNumber))
			},
		},
		{
			name: "Order without cashback touches no wallet",
			input: func() CreateOrderInput {
				in := validInput()
				in.CashbackUsed = 0
				return in
			},
			prepareMock: func() {
				m.gateway.EXPECT().CreatePaymentOrder(gomock.Any(), gomock.Any(), int64(105400)).
					Return("pay_ref_9a2", nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, int64(105400), order.Total)
				assert.Equal(t, int64(0), order.CashbackUsed)
			},
		},
		{
			name:  "Insufficient cashback balance cancels the fresh order",
			input: validInput,
			prepareMock: func() {
				m.gateway.EXPECT().CreatePaymentOrder(gomock.Any(), gomock.Any(), int64(95400)).
					Return("pay_ref_9a1", nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.wallet.EXPECT().GetOrCreateWallet(gomock.Any(), 1).
					Return(&domain.Wallet{ID: "w-1", UserID: 1}, nil)
				m.wallet.EXPECT().Debit(gomock.Any(), "w-1", gomock.Any(), gomock.Any()).
					Return(decimal.Zero, walletservice.ErrInsufficientBalance)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.StatusPending, domain.StatusCancelled, "cashback_debit_failed").
					Return(true, nil)
			},
			expectedError: ErrValidation,
		},
		{
			name:  "Save failure is returned",
			input: validInput,
			prepareMock: func() {
				m.gateway.EXPECT().CreatePaymentOrder(gomock.Any(), gomock.Any(), int64(95400)).
					Return("pay_ref_9a1", nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			expectedError: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			order, err := service.Create(context.Background(), 1, tt.input())
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.expectedError.Error())
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				tt.check(t, order)
			}
		})
	}
}

func TestConfirmPayment(t *testing.T) {
	service, m := NewMock(t)

	pendingOrder := func() *domain.Order {
		return &domain.Order{
			ID:            42,
			UserID:        1,
			VendorID:      7,
			Total:         95400,
			Status:        domain.StatusPending,
			PaymentStatus: domain.PaymentStatusPending,
		}
	}

	tests := []struct {
		name           string
		captured       bool
		prepareMock    func()
		expectedError  error
		expectedStatus string
	}{
		{
			name:     "Unknown order",
			captured: true,
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name:     "Failed capture keeps the order pending",
			captured: false,
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(pendingOrder(), nil)
				m.repo.EXPECT().SetPaymentFailed(gomock.Any(), int64(42), "tx_5501").Return(nil)
			},
			expectedStatus: domain.StatusPending,
		},
		{
			name:     "First confirmation wins and triggers the split",
			captured: true,
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(pendingOrder(), nil)
				m.repo.EXPECT().CapturePayment(gomock.Any(), int64(42), "tx_5501", "payment_captured").Return(true, nil)
				m.events.EXPECT().Publish(gomock.Any(), gomock.Any())
				m.settlement.EXPECT().SplitPayment(gomock.Any(), gomock.Any(), "tx_5501").
					Return(&domain.SettlementRecord{}, nil)
			},
			expectedStatus: domain.StatusAwaitingDetails,
		},
		{
			name:     "Repeated confirmation is a no-op",
			captured: true,
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(pendingOrder(), nil)
				m.repo.EXPECT().CapturePayment(gomock.Any(), int64(42), "tx_5501", "payment_captured").Return(false, nil)
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(&domain.Order{
					ID:            42,
					Status:        domain.StatusAwaitingDetails,
					PaymentStatus: domain.PaymentStatusCaptured,
				}, nil)
			},
			expectedStatus: domain.StatusAwaitingDetails,
		},
		{
			name:     "Late capture for a cancelled order changes nothing",
			captured: true,
			prepareMock: func() {
				cancelled := &domain.Order{
					ID:            42,
					UserID:        1,
					Total:         95400,
					Status:        domain.StatusCancelled,
					PaymentStatus: domain.PaymentStatusPending,
				}
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(cancelled, nil)
				m.repo.EXPECT().CapturePayment(gomock.Any(), int64(42), "tx_5501", "payment_captured").Return(false, nil)
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(cancelled, nil)
			},
			expectedStatus: domain.StatusCancelled,
		},
		{
			name:     "Split failure never blocks the customer",
			captured: true,
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(pendingOrder(), nil)
				m.repo.EXPECT().CapturePayment(gomock.Any(), int64(42), "tx_5501", "payment_captured").Return(true, nil)
				m.events.EXPECT().Publish(gomock.Any(), gomock.Any())
				m.settlement.EXPECT().SplitPayment(gomock.Any(), gomock.Any(), "tx_5501").
					Return(nil, errors.New("transfer failed"))
			},
			expectedStatus: domain.StatusAwaitingDetails,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			order, err := service.ConfirmPayment(context.Background(), 42, "tx_5501", tt.captured)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStatus, order.Status)
			}
		})
	}
}

func TestSubmitCustomization(t *testing.T) {
	service, m := NewMock(t)
	details := map[int64]string{1: "Happy anniversary, Maya!"}

	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Someone else's order",
			userID: 2,
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).
					Return(&domain.Order{ID: 42, UserID: 1, Status: domain.StatusAwaitingDetails}, nil)
			},
			expectedError: ErrNotOwner,
		},
		{
			name:   "Rejected once crafting started",
			userID: 1,
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).
					Return(&domain.Order{ID: 42, UserID: 1, Status: domain.StatusCrafting}, nil)
			},
			expectedError: ErrInvalidTransition,
		},
		{
			name:   "Accepted while awaiting details",
			userID: 1,
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).
					Return(&domain.Order{ID: 42, UserID: 1, Status: domain.StatusAwaitingDetails}, nil)
				m.repo.EXPECT().UpdateCustomizations(gomock.Any(), int64(42), details).Return(nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(42), domain.StatusAwaitingDetails, domain.StatusPersonalizing, "customization_received").
					Return(true, nil)
				m.events.EXPECT().Publish(gomock.Any(), gomock.Any())
			},
		},
		{
			name:   "Accepted again while personalizing",
			userID: 1,
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).
					Return(&domain.Order{ID: 42, UserID: 1, Status: domain.StatusPersonalizing}, nil)
				m.repo.EXPECT().UpdateCustomizations(gomock.Any(), int64(42), details).Return(nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(42), domain.StatusPersonalizing, domain.StatusPersonalizing, "customization_received").
					Return(true, nil)
				m.events.EXPECT().Publish(gomock.Any(), gomock.Any())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			order, err := service.SubmitCustomization(context.Background(), tt.userID, 42, details)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.StatusPersonalizing, order.Status)
			}
		})
	}
}

func TestApproveMockup(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name              string
		approved          bool
		prepareMock       func()
		expectedError     error
		expectedStatus    string
		expectedSubStatus string
	}{
		{
			name:     "No mockup to approve yet",
			approved: true,
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).
					Return(&domain.Order{ID: 42, UserID: 1, Status: domain.StatusPersonalizing}, nil)
			},
			expectedError: ErrInvalidTransition,
		},
		{
			name:     "Approval moves the order into crafting",
			approved: true,
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).
					Return(&domain.Order{ID: 42, UserID: 1, Status: domain.StatusMockupReady}, nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(42), domain.StatusMockupReady, domain.StatusCrafting, "mockup_approved").
					Return(true, nil)
				m.events.EXPECT().Publish(gomock.Any(), gomock.Any())
			},
			expectedStatus:    domain.StatusCrafting,
			expectedSubStatus: "mockup_approved",
		},
		{
			name:     "Decline keeps mockup_ready and requests a revision",
			approved: false,
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).
					Return(&domain.Order{ID: 42, UserID: 1, Status: domain.StatusMockupReady}, nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(42), domain.StatusMockupReady, domain.StatusMockupReady, "revision_requested").
					Return(true, nil)
			},
			expectedStatus:    domain.StatusMockupReady,
			expectedSubStatus: "revision_requested",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			order, err := service.ApproveMockup(context.Background(), 1, 42, tt.approved)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStatus, order.Status)
				assert.Equal(t, tt.expectedSubStatus, order.SubStatus)
			}
		})
	}
}

func TestMarkDelivered(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		vendorID      int
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Another vendor's order",
			vendorID: 8,
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).
					Return(&domain.Order{ID: 42, VendorID: 7, Status: domain.StatusOutForDelivery}, nil)
			},
			expectedError: ErrNotVendor,
		},
		{
			name:     "Not out for delivery yet",
			vendorID: 7,
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).
					Return(&domain.Order{ID: 42, VendorID: 7, Status: domain.StatusCrafting}, nil)
			},
			expectedError: ErrInvalidTransition,
		},
		{
			name:     "Delivery credits cashback once",
			vendorID: 7,
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).
					Return(&domain.Order{ID: 42, VendorID: 7, Status: domain.StatusOutForDelivery}, nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(42), domain.StatusOutForDelivery, domain.StatusDelivered, "delivered").
					Return(true, nil)
				m.events.EXPECT().Publish(gomock.Any(), gomock.Any())
				m.settlement.EXPECT().CreditCashback(gomock.Any(), gomock.Any()).
					Return(&settlementservice.CashbackResult{}, nil)
			},
		},
		{
			name:     "Cashback failure does not undo delivery",
			vendorID: 7,
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).
					Return(&domain.Order{ID: 42, VendorID: 7, Status: domain.StatusOutForDelivery}, nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(42), domain.StatusOutForDelivery, domain.StatusDelivered, "delivered").
					Return(true, nil)
				m.events.EXPECT().Publish(gomock.Any(), gomock.Any())
				m.settlement.EXPECT().CreditCashback(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("ledger down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			order, err := service.MarkDelivered(context.Background(), tt.vendorID, 42)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.StatusDelivered, order.Status)
			}
		})
	}
}

func TestCancel(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		reason        string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Too late once out for delivery",
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).
					Return(&domain.Order{ID: 42, UserID: 1, Status: domain.StatusOutForDelivery}, nil)
			},
			expectedError: ErrInvalidTransition,
		},
		{
			name:   "Captured payment is refunded",
			reason: "changed_mind",
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).
					Return(&domain.Order{
						ID: 42, UserID: 1, Total: 95400,
						Status:        domain.StatusPersonalizing,
						PaymentStatus: domain.PaymentStatusCaptured,
						PaymentID:     "tx_5501",
					}, nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(42), domain.StatusPersonalizing, domain.StatusCancelled, "changed_mind").
					Return(true, nil)
				m.events.EXPECT().Publish(gomock.Any(), gomock.Any())
				m.gateway.EXPECT().Refund(gomock.Any(), "tx_5501", int64(95400)).Return("rf_1", nil)
			},
		},
		{
			name: "Pending order cancels without a refund",
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).
					Return(&domain.Order{
						ID: 42, UserID: 1,
						Status:        domain.StatusPending,
						PaymentStatus: domain.PaymentStatusPending,
					}, nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(42), domain.StatusPending, domain.StatusCancelled, "cancelled").
					Return(true, nil)
				m.events.EXPECT().Publish(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "Spent cashback is returned on cancel",
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).
					Return(&domain.Order{
						ID: 42, UserID: 1, Total: 95400,
						OrderNumber:   "570048152732",
						CashbackUsed:  10000,
						Status:        domain.StatusPending,
						PaymentStatus: domain.PaymentStatusPending,
					}, nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(42), domain.StatusPending, domain.StatusCancelled, "cancelled").
					Return(true, nil)
				m.events.EXPECT().Publish(gomock.Any(), gomock.Any())
				m.wallet.EXPECT().GetOrCreateWallet(gomock.Any(), 1).
					Return(&domain.Wallet{ID: "w-1", UserID: 1}, nil)
				m.wallet.EXPECT().Credit(gomock.Any(), "w-1", int64(42), gomock.Any(), "cashback returned for order 570048152732").
					DoAndReturn(func(_ context.Context, _ string, _ int64, amount decimal.Decimal, _ string) (decimal.Decimal, error) {
						assert.True(t, amount.Equal(decimal.NewFromInt(100)))
						return decimal.NewFromInt(195), nil
					})
			},
		},
		{
			name: "Repeated cashback return is benign",
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).
					Return(&domain.Order{
						ID: 42, UserID: 1, Total: 95400,
						OrderNumber:   "570048152732",
						CashbackUsed:  10000,
						Status:        domain.StatusPending,
						PaymentStatus: domain.PaymentStatusPending,
					}, nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(42), domain.StatusPending, domain.StatusCancelled, "cancelled").
					Return(true, nil)
				m.events.EXPECT().Publish(gomock.Any(), gomock.Any())
				m.wallet.EXPECT().GetOrCreateWallet(gomock.Any(), 1).
					Return(&domain.Wallet{ID: "w-1", UserID: 1}, nil)
				m.wallet.EXPECT().Credit(gomock.Any(), "w-1", int64(42), gomock.Any(), gomock.Any()).
					Return(decimal.Zero, walletservice.ErrAlreadyCredited)
			},
		},
		{
			name:   "Refund failure still cancels",
			reason: "changed_mind",
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).
					Return(&domain.Order{
						ID: 42, UserID: 1, Total: 95400,
						Status:        domain.StatusAwaitingDetails,
						PaymentStatus: domain.PaymentStatusCaptured,
						PaymentID:     "tx_5501",
					}, nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(42), domain.StatusAwaitingDetails, domain.StatusCancelled, "changed_mind").
					Return(true, nil)
				m.events.EXPECT().Publish(gomock.Any(), gomock.Any())
				m.gateway.EXPECT().Refund(gomock.Any(), "tx_5501", int64(95400)).
					Return("", errors.New("gateway down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			order, err := service.Cancel(context.Background(), 1, 42, tt.reason)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.StatusCancelled, order.Status)
			}
		})
	}
}

func TestVendorTransitions(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name        string
		call        func() (*domain.Order, error)
		from        string
		to          string
		subStatus   string
		prepareMock func(from, to, subStatus string)
	}{
		{
			name: "SubmitMockup",
			call: func() (*domain.Order, error) { return service.SubmitMockup(context.Background(), 7, 42) },
			from: domain.StatusPersonalizing, to: domain.StatusMockupReady, subStatus: "awaiting_approval",
		},
		{
			name: "MarkReady",
			call: func() (*domain.Order, error) { return service.MarkReady(context.Background(), 7, 42) },
			from: domain.StatusCrafting, to: domain.StatusReadyForPickup, subStatus: "awaiting_pickup",
		},
		{
			name: "MarkOutForDelivery",
			call: func() (*domain.Order, error) { return service.MarkOutForDelivery(context.Background(), 7, 42) },
			from: domain.StatusReadyForPickup, to: domain.StatusOutForDelivery, subStatus: "in_transit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).
				Return(&domain.Order{ID: 42, VendorID: 7, Status: tt.from}, nil)
			m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(42), tt.from, tt.to, tt.subStatus).Return(true, nil)
			m.events.EXPECT().Publish(gomock.Any(), gomock.Any())

			order, err := tt.call()
			assert.NoError(t, err)
			assert.Equal(t, tt.to, order.Status)
			assert.Equal(t, tt.subStatus, order.SubStatus)
		})
	}
}

func TestTransitionLostRace(t *testing.T) {
	service, m := NewMock(t)

	m.repo.EXPECT().GetByID(gomock.Any(), int64(42)).
		Return(&domain.Order{ID: 42, VendorID: 7, Status: domain.StatusCrafting}, nil)
	m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(42), domain.StatusCrafting, domain.StatusReadyForPickup, "awaiting_pickup").
		Return(false, nil)

	_, err := service.MarkReady(context.Background(), 7, 42)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
