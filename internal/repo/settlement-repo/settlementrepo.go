package settlementrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/velvetbox/settlecore/internal/domain"
	"github.com/velvetbox/settlecore/internal/pg"
	"github.com/velvetbox/settlecore/internal/service/settlementservice"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Insert persists a settlement record. The unique (order_id, payment_id)
// pair makes a repeated insert report false instead of duplicating the
// settlement.
func (r *Repository) Insert(ctx context.Context, record *domain.SettlementRecord) (bool, error) {
	query := `
        INSERT INTO settlement_records (id, order_id, payment_id, total_amount,
            commission_rate, platform_amount, vendor_amount, route_transfer_id, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (order_id, payment_id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query,
		record.ID, record.OrderID, record.PaymentID, record.TotalAmount,
		record.CommissionRate, record.PlatformAmount, record.VendorAmount,
		record.RouteTransferID, record.Status,
	)
	if err != nil {
		zap.L().Error("can't insert settlement record", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id, status, transferID string) error {
	query := `
        UPDATE settlement_records
        SET status = $2, route_transfer_id = $3, updated_at = now()
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id, status, transferID)
	if err != nil {
		zap.L().Error("can't update settlement status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByOrderAndPayment(ctx context.Context, orderID int64, paymentID string) (*domain.SettlementRecord, error) {
	query := `
        SELECT id, order_id, payment_id, total_amount, commission_rate,
            platform_amount, vendor_amount, route_transfer_id, status, created_at, updated_at
        FROM settlement_records
        WHERE order_id = $1 AND payment_id = $2
    `
	row := r.db.QueryRow(ctx, query, orderID, paymentID)
	var record domain.SettlementRecord
	err := row.Scan(
		&record.ID, &record.OrderID, &record.PaymentID, &record.TotalAmount,
		&record.CommissionRate, &record.PlatformAmount, &record.VendorAmount,
		&record.RouteTransferID, &record.Status, &record.CreatedAt, &record.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find settlement record", zap.Error(err))
		return nil, err
	}
	return &record, nil
}

func (r *Repository) FindFailed(ctx context.Context, limit uint32) ([]settlementservice.RetryItem, error) {
	query := `
        SELECT s.id, s.order_id, s.payment_id, s.total_amount, s.commission_rate,
            s.platform_amount, s.vendor_amount, s.route_transfer_id, s.status,
            s.created_at, s.updated_at, o.vendor_account, o.order_number
        FROM settlement_records s
        JOIN orders o ON o.id = s.order_id
        WHERE s.status = 'failed'
        ORDER BY s.updated_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get failed settlements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []settlementservice.RetryItem
	for rows.Next() {
		var item settlementservice.RetryItem
		err := rows.Scan(
			&item.Record.ID, &item.Record.OrderID, &item.Record.PaymentID, &item.Record.TotalAmount,
			&item.Record.CommissionRate, &item.Record.PlatformAmount, &item.Record.VendorAmount,
			&item.Record.RouteTransferID, &item.Record.Status,
			&item.Record.CreatedAt, &item.Record.UpdatedAt,
			&item.VendorAccount, &item.OrderNumber,
		)
		if err != nil {
			zap.L().Error("can't scan settlement row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
