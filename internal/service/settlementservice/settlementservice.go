package settlementservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/velvetbox/settlecore/internal/config"
	"github.com/velvetbox/settlecore/internal/domain"
)

//go:generate mockgen -source=settlementservice.go -destination=settlementservice_mock.go -package=settlementservice

type Repo interface {
	Insert(ctx context.Context, record *domain.SettlementRecord) (bool, error)
	UpdateStatus(ctx context.Context, id, status, transferID string) error
	FindByOrderAndPayment(ctx context.Context, orderID int64, paymentID string) (*domain.SettlementRecord, error)
	FindFailed(ctx context.Context, limit uint32) ([]RetryItem, error)
}

type Ledger interface {
	GetOrCreateWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	Credit(ctx context.Context, walletID string, orderID int64, amount decimal.Decimal, description string) (decimal.Decimal, error)
}

type Transfer interface {
	RouteTransfer(ctx context.Context, vendorAccount string, amountMinor int64, note string) (string, error)
}

// RetryItem is a failed settlement joined with the order fields the route
// transfer needs.
type RetryItem struct {
	Record        domain.SettlementRecord
	VendorAccount string
	OrderNumber   string
}

type CashbackResult struct {
	Amount     decimal.Decimal
	NewBalance decimal.Decimal
}

type Service struct {
	repo           Repo
	ledger         Ledger
	transfer       Transfer
	commissionRate int
	cashbackRate   int
}

func New(cfg *config.Config, repo Repo, ledger Ledger, transfer Transfer) *Service {
	return &Service{
		repo:           repo,
		ledger:         ledger,
		transfer:       transfer,
		commissionRate: cfg.CommissionPercent,
		cashbackRate:   cfg.CashbackPercent,
	}
}

var (
	ErrOrderNotDelivered = errors.New("order is not delivered")
	ErrTransferFailed    = errors.New("route transfer failed")
)

// splitAmounts computes the platform share by rounding half up, then takes
// the vendor share as the remainder. Subtraction, never a second rounding,
// keeps platform + vendor == total exact.
func splitAmounts(totalMinor int64, ratePercent int) (platform, vendor int64) {
	platform = (totalMinor*int64(ratePercent) + 50) / 100
	vendor = totalMinor - platform
	return platform, vendor
}

// SplitPayment records the platform/vendor split for a captured payment and
// transfers the vendor share. The record keeps its already-computed amounts
// even when the transfer fails; the retry worker re-drives failed records.
// A duplicate (orderID, paymentID) pair is a no-op returning the existing
// record.
func (s *Service) SplitPayment(ctx context.Context, order *domain.Order, paymentID string) (*domain.SettlementRecord, error) {
	platform, vendor := splitAmounts(order.Total, s.commissionRate)

	record := &domain.SettlementRecord{
		ID:             uuid.NewString(),
		OrderID:        order.ID,
		PaymentID:      paymentID,
		TotalAmount:    order.Total,
		CommissionRate: s.commissionRate,
		PlatformAmount: platform,
		VendorAmount:   vendor,
		Status:         domain.SettlementCreated,
	}

	inserted, err := s.repo.Insert(ctx, record)
	if err != nil {
		zap.L().Error("can't persist settlement record", zap.Int64("orderID", order.ID), zap.Error(err))
		return nil, err
	}
	if !inserted {
		existing, err := s.repo.FindByOrderAndPayment(ctx, order.ID, paymentID)
		if err != nil {
			return nil, err
		}
		zap.L().Info("settlement already exists for payment",
			zap.Int64("orderID", order.ID), zap.String("paymentID", paymentID))
		return existing, nil
	}

	transferID, err := s.transfer.RouteTransfer(ctx, order.VendorAccount, vendor, "settlement for order "+order.OrderNumber)
	if err != nil {
		record.Status = domain.SettlementFailed
		if upErr := s.repo.UpdateStatus(ctx, record.ID, domain.SettlementFailed, ""); upErr != nil {
			zap.L().Error("can't mark settlement failed", zap.String("settlementID", record.ID), zap.Error(upErr))
		}
		zap.L().Error("route transfer failed, settlement kept for retry",
			zap.Int64("orderID", order.ID),
			zap.Int64("vendorAmount", vendor),
			zap.Error(err),
		)
		return record, fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	record.Status = domain.SettlementProcessed
	record.RouteTransferID = transferID
	if err := s.repo.UpdateStatus(ctx, record.ID, domain.SettlementProcessed, transferID); err != nil {
		zap.L().Error("can't mark settlement processed", zap.String("settlementID", record.ID), zap.Error(err))
		return record, err
	}

	zap.L().Info("payment settled",
		zap.Int64("orderID", order.ID),
		zap.Int64("platformAmount", platform),
		zap.Int64("vendorAmount", vendor),
	)
	return record, nil
}

// CreditCashback credits the delivery cashback for an order to the
// customer's wallet. The cashback amount is the order total multiplied by
// the configured rate, rounded half away from zero to 2 decimals. Crediting
// is at-most-once per order: a repeat call surfaces the ledger's
// ErrAlreadyCredited, which callers treat as a benign no-op.
func (s *Service) CreditCashback(ctx context.Context, order *domain.Order) (*CashbackResult, error) {
	if order.Status != domain.StatusDelivered {
		return nil, ErrOrderNotDelivered
	}

	amount := decimal.NewFromInt(order.Total).
		Mul(decimal.NewFromInt(int64(s.cashbackRate))).
		Div(decimal.NewFromInt(10000)).
		Round(2)
	if !amount.IsPositive() {
		return &CashbackResult{Amount: decimal.Zero, NewBalance: decimal.Zero}, nil
	}

	wallet, err := s.ledger.GetOrCreateWallet(ctx, order.UserID)
	if err != nil {
		return nil, err
	}

	balance, err := s.ledger.Credit(ctx, wallet.ID, order.ID,
		amount, "cashback for order "+order.OrderNumber)
	if err != nil {
		return nil, err
	}

	zap.L().Info("cashback credited",
		zap.Int64("orderID", order.ID),
		zap.String("amount", amount.String()),
	)
	return &CashbackResult{Amount: amount, NewBalance: balance}, nil
}
