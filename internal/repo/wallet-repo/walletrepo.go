package walletrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/velvetbox/settlecore/internal/domain"
	"github.com/velvetbox/settlecore/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetWalletByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance
        FROM wallets
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) GetWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance
        FROM wallets
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, walletID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// UpsertWallet creates the user's wallet if absent and returns the stored
// row either way, so two lazy creations can't race into an error.
func (r *Repository) UpsertWallet(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (id, user_id, balance)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
        RETURNING id, user_id, balance
    `
	row := r.db.QueryRow(ctx, query, wallet.ID, wallet.UserID, wallet.Balance)
	var stored domain.Wallet
	err := row.Scan(&stored.ID, &stored.UserID, &stored.Balance)
	if err != nil {
		zap.L().Error("failed to upsert wallet", zap.Error(err))
		return nil, err
	}
	return &stored, nil
}

// Credit inserts the credit transaction and updates the balance as one
// transaction. The partial unique index on (wallet_id, order_id) for
// credits makes the insert itself the idempotency check: ON CONFLICT DO
// NOTHING reports zero affected rows for a repeated order.
func (r *Repository) Credit(ctx context.Context, tx *domain.WalletTransaction) (decimal.Decimal, bool, error) {
	insertQuery := `
        INSERT INTO wallet_transactions (id, wallet_id, order_id, type, amount, description)
        VALUES ($1, $2, $3, 'credit', $4, $5)
        ON CONFLICT (wallet_id, order_id) WHERE type = 'credit' DO NOTHING
    `
	balanceQuery := `
        UPDATE wallets
        SET balance = balance + $1
        WHERE id = $2
        RETURNING balance
    `
	var balance decimal.Decimal
	inserted := false
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, insertQuery, tx.ID, tx.WalletID, tx.OrderID, tx.Amount, tx.Description)
		if err != nil {
			zap.L().Error("can't insert credit transaction", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		inserted = true

		row := r.db.QueryRow(ctx, balanceQuery, tx.Amount, tx.WalletID)
		if err := row.Scan(&balance); err != nil {
			zap.L().Error("can't update wallet balance", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return decimal.Zero, false, err
	}
	return balance, inserted, nil
}

// Debit pairs the balance guard with the update: the conditional decrement
// only lands when the balance covers the amount.
func (r *Repository) Debit(ctx context.Context, tx *domain.WalletTransaction) (decimal.Decimal, bool, error) {
	balanceQuery := `
        UPDATE wallets
        SET balance = balance - $1
        WHERE id = $2 AND balance >= $1
        RETURNING balance
    `
	insertQuery := `
        INSERT INTO wallet_transactions (id, wallet_id, order_id, type, amount, description)
        VALUES ($1, $2, $3, 'debit', $4, $5)
    `
	var balance decimal.Decimal
	applied := false
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, balanceQuery, tx.Amount, tx.WalletID)
		err := row.Scan(&balance)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			zap.L().Error("can't apply debit", zap.Error(err))
			return err
		}
		applied = true

		_, err = r.db.Exec(ctx, insertQuery, tx.ID, tx.WalletID, tx.OrderID, tx.Amount, tx.Description)
		if err != nil {
			zap.L().Error("can't insert debit transaction", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return decimal.Zero, false, err
	}
	return balance, applied, nil
}

func (r *Repository) GetTransactions(ctx context.Context, walletID string) ([]domain.WalletTransaction, error) {
	query := `
        SELECT id, wallet_id, order_id, type, amount, description, created_at
        FROM wallet_transactions
        WHERE wallet_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, walletID)
	if err != nil {
		zap.L().Error("can't get wallet transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.WalletTransaction
	for rows.Next() {
		var tx domain.WalletTransaction
		err := rows.Scan(&tx.ID, &tx.WalletID, &tx.OrderID, &tx.Type, &tx.Amount, &tx.Description, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan wallet transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
