package walletservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/velvetbox/settlecore/internal/domain"
)

//go:generate mockgen -source=walletservice.go -destination=walletservice_mock.go -package=walletservice

type Repo interface {
	GetWalletByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	GetWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)
	UpsertWallet(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error)
	Credit(ctx context.Context, tx *domain.WalletTransaction) (decimal.Decimal, bool, error)
	Debit(ctx context.Context, tx *domain.WalletTransaction) (decimal.Decimal, bool, error)
	GetTransactions(ctx context.Context, walletID string) ([]domain.WalletTransaction, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrAlreadyCredited     = errors.New("order already credited")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrWalletNotFound      = errors.New("wallet not found")
)

// GetOrCreateWallet returns the user's wallet, creating an empty one on
// first use.
func (s *Service) GetOrCreateWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.repo.GetWalletByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}

	wallet, err = s.repo.UpsertWallet(ctx, &domain.Wallet{
		ID:      uuid.NewString(),
		UserID:  userID,
		Balance: decimal.Zero,
	})
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// Credit appends a credit transaction for the order and bumps the balance
// inside one database transaction. The storage layer's unique credit index
// is the at-most-once guarantee: a conflicting insert, not a prior read, is
// what reports ErrAlreadyCredited.
func (s *Service) Credit(ctx context.Context, walletID string, orderID int64, amount decimal.Decimal, description string) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}

	balance, inserted, err := s.repo.Credit(ctx, &domain.WalletTransaction{
		ID:          uuid.NewString(),
		WalletID:    walletID,
		OrderID:     &orderID,
		Type:        domain.TxTypeCredit,
		Amount:      amount,
		Description: description,
	})
	if err != nil {
		zap.L().Error("failed to credit wallet", zap.String("walletID", walletID), zap.Error(err))
		return decimal.Zero, err
	}
	if !inserted {
		zap.L().Info("credit already applied for order", zap.Int64("orderID", orderID))
		return decimal.Zero, ErrAlreadyCredited
	}

	zap.L().Info("wallet credited",
		zap.String("walletID", walletID),
		zap.Int64("orderID", orderID),
		zap.String("amount", amount.String()),
	)
	return balance, nil
}

// Debit spends from the wallet. The balance guard runs inside the same
// conditional update that applies the debit, so concurrent spends can't
// take the balance negative.
func (s *Service) Debit(ctx context.Context, walletID string, amount decimal.Decimal, description string) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}

	balance, applied, err := s.repo.Debit(ctx, &domain.WalletTransaction{
		ID:          uuid.NewString(),
		WalletID:    walletID,
		Type:        domain.TxTypeDebit,
		Amount:      amount,
		Description: description,
	})
	if err != nil {
		zap.L().Error("failed to debit wallet", zap.String("walletID", walletID), zap.Error(err))
		return decimal.Zero, err
	}
	if !applied {
		return decimal.Zero, ErrInsufficientBalance
	}
	return balance, nil
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Wallet, error) {
	return s.GetOrCreateWallet(ctx, userID)
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.WalletTransaction, error) {
	wallet, err := s.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	txs, err := s.repo.GetTransactions(ctx, wallet.ID)
	if err != nil {
		zap.L().Error("failed to fetch wallet transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}
