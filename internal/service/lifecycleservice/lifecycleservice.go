package lifecycleservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/velvetbox/settlecore/internal/config"
	"github.com/velvetbox/settlecore/internal/domain"
	"github.com/velvetbox/settlecore/internal/service/settlementservice"
	"github.com/velvetbox/settlecore/internal/service/walletservice"
)

//go:generate mockgen -source=lifecycleservice.go -destination=lifecycleservice_mock.go -package=lifecycleservice

type Repo interface {
	Save(ctx context.Context, order *domain.Order, items []domain.OrderItem) error
	GetByID(ctx context.Context, orderID int64) (*domain.Order, error)
	GetItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	UpdateStatus(ctx context.Context, orderID int64, from, to, subStatus string) (bool, error)
	CapturePayment(ctx context.Context, orderID int64, paymentID, subStatus string) (bool, error)
	SetPaymentFailed(ctx context.Context, orderID int64, paymentID string) error
	UpdateCustomizations(ctx context.Context, orderID int64, details map[int64]string) error
	FindByUserID(ctx context.Context, userID int) ([]domain.Order, error)
	FindByVendorID(ctx context.Context, vendorID int) ([]domain.Order, error)
}

type Settlement interface {
	SplitPayment(ctx context.Context, order *domain.Order, paymentID string) (*domain.SettlementRecord, error)
	CreditCashback(ctx context.Context, order *domain.Order) (*settlementservice.CashbackResult, error)
}

type PaymentGateway interface {
	CreatePaymentOrder(ctx context.Context, orderNumber string, amountMinor int64) (string, error)
	Refund(ctx context.Context, paymentID string, amountMinor int64) (string, error)
}

type Wallet interface {
	GetOrCreateWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	Credit(ctx context.Context, walletID string, orderID int64, amount decimal.Decimal, description string) (decimal.Decimal, error)
	Debit(ctx context.Context, walletID string, amount decimal.Decimal, description string) (decimal.Decimal, error)
}

type Events interface {
	Publish(ctx context.Context, event domain.StatusChanged)
}

type Service struct {
	repo        Repo
	settlement  Settlement
	gateway     PaymentGateway
	wallet      Wallet
	events      Events
	cashbackCap int
}

func New(repo Repo, settlement Settlement, gateway PaymentGateway, wallet Wallet, events Events, cfg *config.Config) *Service {
	return &Service{
		repo:        repo,
		settlement:  settlement,
		gateway:     gateway,
		wallet:      wallet,
		events:      events,
		cashbackCap: cfg.CashbackCapPercent,
	}
}

var (
	ErrValidation        = errors.New("order validation failed")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrOrderNotFound     = errors.New("order not found")
	ErrNotOwner          = errors.New("order belongs to another user")
	ErrNotVendor         = errors.New("order belongs to another vendor")
	ErrPaymentInit       = errors.New("can't create payment order")
)

type ItemInput struct {
	Name      string
	Quantity  int
	UnitPrice int64
}

type CreateOrderInput struct {
	Items         []ItemInput
	DeliveryFee   int64
	PlatformFee   int64
	CashbackUsed  int64
	DeliveryType  string
	Address       string
	VendorID      int
	VendorAccount string
}

const orderNumberLength = 12

// Create validates the monetary invariant, persists a pending order and
// registers a payment order with the gateway. total is always
// itemTotal + deliveryFee + platformFee - cashbackUsed.
func (s *Service) Create(ctx context.Context, userID int, in CreateOrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: order has no items", ErrValidation)
	}
	if in.DeliveryFee < 0 || in.PlatformFee < 0 || in.CashbackUsed < 0 {
		return nil, fmt.Errorf("%w: monetary fields must be non-negative", ErrValidation)
	}

	var itemTotal int64
	items := make([]domain.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		if item.Quantity <= 0 || item.UnitPrice < 0 {
			return nil, fmt.Errorf("%w: bad item quantity or price", ErrValidation)
		}
		itemTotal += int64(item.Quantity) * item.UnitPrice
		items = append(items, domain.OrderItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	if in.CashbackUsed > itemTotal*int64(s.cashbackCap)/100 {
		return nil, fmt.Errorf("%w: cashback exceeds %d%% of item total", ErrValidation, s.cashbackCap)
	}

	total := itemTotal + in.DeliveryFee + in.PlatformFee - in.CashbackUsed
	if total < 0 {
		return nil, fmt.Errorf("%w: total is negative", ErrValidation)
	}

	orderNumber := goluhn.Generate(orderNumberLength)

	paymentRef, err := s.gateway.CreatePaymentOrder(ctx, orderNumber, total)
	if err != nil {
		zap.L().Error("can't register payment order", zap.String("orderNumber", orderNumber), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPaymentInit, err)
	}

	order := &domain.Order{
		UserID:        userID,
		VendorID:      in.VendorID,
		VendorAccount: in.VendorAccount,
		OrderNumber:   orderNumber,
		ItemTotal:     itemTotal,
		DeliveryFee:   in.DeliveryFee,
		PlatformFee:   in.PlatformFee,
		CashbackUsed:  in.CashbackUsed,
		Total:         total,
		DeliveryType:  in.DeliveryType,
		Status:        domain.StatusPending,
		SubStatus:     "awaiting_payment",
		PaymentRef:    paymentRef,
		PaymentStatus: domain.PaymentStatusPending,
		Address:       in.Address,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Save(ctx, order, items); err != nil {
		zap.L().Error("can't save order: ", zap.Error(err))
		return nil, err
	}

	if in.CashbackUsed > 0 {
		if err := s.debitCashback(ctx, order); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// debitCashback spends the cashback applied to a just-created order. A
// wallet that can't cover it cancels the order: nothing was captured yet,
// so the cancel needs no gateway refund.
func (s *Service) debitCashback(ctx context.Context, order *domain.Order) error {
	amount := decimal.NewFromInt(order.CashbackUsed).Div(decimal.NewFromInt(100))

	wallet, err := s.wallet.GetOrCreateWallet(ctx, order.UserID)
	if err == nil {
		_, err = s.wallet.Debit(ctx, wallet.ID, amount, "cashback spent on order "+order.OrderNumber)
	}
	if err == nil {
		return nil
	}

	if _, cancelErr := s.repo.UpdateStatus(ctx, order.ID, domain.StatusPending, domain.StatusCancelled, "cashback_debit_failed"); cancelErr != nil {
		zap.L().Error("can't cancel order after failed cashback debit",
			zap.Int64("orderID", order.ID), zap.Error(cancelErr))
	}
	if errors.Is(err, walletservice.ErrInsufficientBalance) {
		return fmt.Errorf("%w: insufficient cashback balance", ErrValidation)
	}
	return err
}

// ConfirmPayment applies a capture result reported by the gateway.
// Idempotent: the transition and the settlement split happen only for the
// call that wins the conditional capture update; repeats, and captures
// arriving after the order left pending, are no-ops that return the
// stored state.
func (s *Service) ConfirmPayment(ctx context.Context, orderID int64, paymentID string, captured bool) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if !captured {
		if err := s.repo.SetPaymentFailed(ctx, orderID, paymentID); err != nil {
			return nil, err
		}
		// The order stays pending: the customer may retry payment.
		order.PaymentStatus = domain.PaymentStatusFailed
		order.PaymentID = paymentID
		zap.L().Info("payment capture failed", zap.Int64("orderID", orderID), zap.String("paymentID", paymentID))
		return order, nil
	}

	won, err := s.repo.CapturePayment(ctx, orderID, paymentID, "payment_captured")
	if err != nil {
		return nil, err
	}
	if !won {
		zap.L().Info("payment already processed", zap.Int64("orderID", orderID), zap.String("paymentID", paymentID))
		return s.repo.GetByID(ctx, orderID)
	}

	oldStatus := order.Status
	order.Status = domain.StatusAwaitingDetails
	order.SubStatus = "payment_captured"
	order.PaymentID = paymentID
	order.PaymentStatus = domain.PaymentStatusCaptured
	s.emit(ctx, order, oldStatus)

	// Settlement failure is surfaced to operations via logs and the failed
	// record; it never blocks customer-visible progress.
	if _, err := s.settlement.SplitPayment(ctx, order, paymentID); err != nil {
		zap.L().Error("settlement split failed", zap.Int64("orderID", orderID), zap.Error(err))
	}

	return order, nil
}

// SubmitCustomization accepts per-item personalization details. Valid only
// while the order is awaiting details or already personalizing.
func (s *Service) SubmitCustomization(ctx context.Context, userID int, orderID int64, details map[int64]string) (*domain.Order, error) {
	order, err := s.ownedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.StatusAwaitingDetails && order.Status != domain.StatusPersonalizing {
		return nil, fmt.Errorf("%w: can't submit customization from %s", ErrInvalidTransition, order.Status)
	}

	if err := s.repo.UpdateCustomizations(ctx, orderID, details); err != nil {
		zap.L().Error("can't save customizations", zap.Int64("orderID", orderID), zap.Error(err))
		return nil, err
	}

	return s.transition(ctx, order, domain.StatusPersonalizing, "customization_received")
}

// SubmitMockup is the vendor reporting a mockup is ready for approval.
func (s *Service) SubmitMockup(ctx context.Context, vendorID int, orderID int64) (*domain.Order, error) {
	order, err := s.vendorOrder(ctx, vendorID, orderID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, order, domain.StatusMockupReady, "awaiting_approval")
}

// ApproveMockup moves the order into crafting. A declined mockup keeps the
// order in mockup_ready and flags it for revision.
func (s *Service) ApproveMockup(ctx context.Context, userID int, orderID int64, approved bool) (*domain.Order, error) {
	order, err := s.ownedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.StatusMockupReady {
		return nil, fmt.Errorf("%w: can't approve mockup from %s", ErrInvalidTransition, order.Status)
	}

	if !approved {
		ok, err := s.repo.UpdateStatus(ctx, orderID, order.Status, order.Status, "revision_requested")
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: order moved on concurrently", ErrInvalidTransition)
		}
		order.SubStatus = "revision_requested"
		return order, nil
	}

	return s.transition(ctx, order, domain.StatusCrafting, "mockup_approved")
}

// MarkReady is the vendor reporting the crafted item is ready for pickup.
func (s *Service) MarkReady(ctx context.Context, vendorID int, orderID int64) (*domain.Order, error) {
	order, err := s.vendorOrder(ctx, vendorID, orderID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, order, domain.StatusReadyForPickup, "awaiting_pickup")
}

// MarkOutForDelivery records handover to the delivery provider.
func (s *Service) MarkOutForDelivery(ctx context.Context, vendorID int, orderID int64) (*domain.Order, error) {
	order, err := s.vendorOrder(ctx, vendorID, orderID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, order, domain.StatusOutForDelivery, "in_transit")
}

// MarkDelivered finishes the order and credits cashback exactly once. A
// cashback failure never blocks the delivered transition.
func (s *Service) MarkDelivered(ctx context.Context, vendorID int, orderID int64) (*domain.Order, error) {
	order, err := s.vendorOrder(ctx, vendorID, orderID)
	if err != nil {
		return nil, err
	}

	order, err = s.transition(ctx, order, domain.StatusDelivered, "delivered")
	if err != nil {
		return nil, err
	}

	if _, err := s.settlement.CreditCashback(ctx, order); err != nil {
		zap.L().Error("cashback credit failed", zap.Int64("orderID", orderID), zap.Error(err))
	}

	return order, nil
}

// Cancel is valid from any non-terminal state before out_for_delivery. A
// captured payment is refunded through the gateway.
func (s *Service) Cancel(ctx context.Context, userID int, orderID int64, reason string) (*domain.Order, error) {
	order, err := s.ownedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	subStatus := "cancelled"
	if reason != "" {
		subStatus = reason
	}

	order, err = s.transition(ctx, order, domain.StatusCancelled, subStatus)
	if err != nil {
		return nil, err
	}

	if order.PaymentStatus == domain.PaymentStatusCaptured {
		if _, err := s.gateway.Refund(ctx, order.PaymentID, order.Total); err != nil {
			zap.L().Error("refund failed, needs operator follow-up",
				zap.Int64("orderID", orderID), zap.Error(err))
		}
	}

	if order.CashbackUsed > 0 {
		s.refundCashback(ctx, order)
	}

	return order, nil
}

// refundCashback returns the cashback spent on a now-cancelled order. The
// ledger's per-order credit uniqueness makes repeats benign.
func (s *Service) refundCashback(ctx context.Context, order *domain.Order) {
	wallet, err := s.wallet.GetOrCreateWallet(ctx, order.UserID)
	if err == nil {
		amount := decimal.NewFromInt(order.CashbackUsed).Div(decimal.NewFromInt(100))
		_, err = s.wallet.Credit(ctx, wallet.ID, order.ID, amount, "cashback returned for order "+order.OrderNumber)
	}
	if err != nil && !errors.Is(err, walletservice.ErrAlreadyCredited) {
		zap.L().Error("cashback return failed, needs operator follow-up",
			zap.Int64("orderID", order.ID), zap.Error(err))
	}
}

func (s *Service) GetOrder(ctx context.Context, userID int, orderID int64) (*domain.Order, error) {
	return s.ownedOrder(ctx, userID, orderID)
}

// GetOrderByID skips the ownership check; for system callers (payment
// webhook, cashback crediting).
func (s *Service) GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) GetOrderItems(ctx context.Context, userID int, orderID int64) ([]domain.OrderItem, error) {
	if _, err := s.ownedOrder(ctx, userID, orderID); err != nil {
		return nil, err
	}
	return s.repo.GetItems(ctx, orderID)
}

func (s *Service) ListOrders(ctx context.Context, userID int) ([]domain.Order, error) {
	orders, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *Service) ListVendorOrders(ctx context.Context, vendorID int) ([]domain.Order, error) {
	orders, err := s.repo.FindByVendorID(ctx, vendorID)
	if err != nil {
		zap.L().Error("failed to get vendor orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// transition applies a validated status change. The conditional update is
// keyed on the status the caller observed, so two racing processes can't
// both apply the same edge.
func (s *Service) transition(ctx context.Context, order *domain.Order, to, subStatus string) (*domain.Order, error) {
	if !domain.CanTransition(order.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, to)
	}

	ok, err := s.repo.UpdateStatus(ctx, order.ID, order.Status, to, subStatus)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: order moved on concurrently", ErrInvalidTransition)
	}

	oldStatus := order.Status
	order.Status = to
	order.SubStatus = subStatus
	s.emit(ctx, order, oldStatus)
	return order, nil
}

func (s *Service) emit(ctx context.Context, order *domain.Order, oldStatus string) {
	s.events.Publish(ctx, domain.StatusChanged{
		OrderID:   order.ID,
		VendorID:  order.VendorID,
		OldStatus: oldStatus,
		NewStatus: order.Status,
		SubStatus: order.SubStatus,
		UpdatedAt: time.Now(),
	})
}

func (s *Service) ownedOrder(ctx context.Context, userID int, orderID int64) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != userID {
		return nil, ErrNotOwner
	}
	return order, nil
}

func (s *Service) vendorOrder(ctx context.Context, vendorID int, orderID int64) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.VendorID != vendorID {
		return nil, ErrNotVendor
	}
	return order, nil
}
