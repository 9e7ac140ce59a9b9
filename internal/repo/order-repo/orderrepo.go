package orderrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

const orderColumns = `id, user_id, vendor_id, vendor_account, order_number, item_total, delivery_fee,
		platform_fee, cashback_used, total, delivery_type, status, sub_status,
		payment_ref, payment_id, payment_status, address, created_at, updated_at`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID, &order.UserID, &order.VendorID, &order.VendorAccount, &order.OrderNumber,
		&order.ItemTotal, &order.DeliveryFee, &order.PlatformFee, &order.CashbackUsed,
		&order.Total, &order.DeliveryType, &order.Status, &order.SubStatus,
		&order.PaymentRef, &order.PaymentID, &order.PaymentStatus, &order.Address,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *Repository) Save(ctx context.Context, order *domain.Order, items []domain.OrderItem) error {
	orderQuery := `
        INSERT INTO orders (user_id, vendor_id, vendor_account, order_number, item_total,
            delivery_fee, platform_fee, cashback_used, total, delivery_type,
            status, sub_status, payment_ref, payment_status, address)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING id, created_at, updated_at
    `
	itemQuery := `
        INSERT INTO order_items (order_id, name, quantity, unit_price, customization)
        VALUES ($1, $2, $3, $4, $5)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, orderQuery,
			order.UserID, order.VendorID, order.VendorAccount, order.OrderNumber, order.ItemTotal,
			order.DeliveryFee, order.PlatformFee, order.CashbackUsed, order.Total, order.DeliveryType,
			order.Status, order.SubStatus, order.PaymentRef, order.PaymentStatus, order.Address,
		)
		if err := row.Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
			zap.L().Error("can't save order", zap.Error(err))
			return err
		}
		for _, item := range items {
			_, err := r.db.Exec(ctx, itemQuery, order.ID, item.Name, item.Quantity, item.UnitPrice, item.Customization)
			if err != nil {
				zap.L().Error("can't save order item", zap.Error(err))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) GetItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	query := `
        SELECT id, order_id, name, quantity, unit_price, customization
        FROM order_items
        WHERE order_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get order items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.Name, &item.Quantity, &item.UnitPrice, &item.Customization)
		if err != nil {
			zap.L().Error("can't scan order item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// UpdateStatus applies a transition conditionally: the update lands only if
// the order still carries the status the caller observed.
func (r *Repository) UpdateStatus(ctx context.Context, orderID int64, from, to, subStatus string) (bool, error) {
	query := `
        UPDATE orders
        SET status = $3, sub_status = $4, updated_at = now()
        WHERE id = $1 AND status = $2
    `
	tag, err := r.db.Exec(ctx, query, orderID, from, to, subStatus)
	if err != nil {
		zap.L().Error("failed to update order status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// CapturePayment marks the payment captured and moves the order to
// awaiting_details in one statement. Returns false when another call
// already captured a payment for the order, or when the order has left
// pending (a late webhook for a cancelled order), which makes repeated
// and stale confirmations no-ops.
func (r *Repository) CapturePayment(ctx context.Context, orderID int64, paymentID, subStatus string) (bool, error) {
	query := `
        UPDATE orders
        SET payment_id = $2, payment_status = 'captured', status = 'awaiting_details',
            sub_status = $3, updated_at = now()
        WHERE id = $1 AND payment_status <> 'captured' AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, orderID, paymentID, subStatus)
	if err != nil {
		zap.L().Error("failed to capture payment", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) SetPaymentFailed(ctx context.Context, orderID int64, paymentID string) error {
	query := `
        UPDATE orders
        SET payment_id = $2, payment_status = 'failed', updated_at = now()
        WHERE id = $1 AND payment_status = 'pending'
    `
	_, err := r.db.Exec(ctx, query, orderID, paymentID)
	if err != nil {
		zap.L().Error("failed to mark payment failed", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateCustomizations(ctx context.Context, orderID int64, details map[int64]string) error {
	query := `
        UPDATE order_items
        SET customization = $3
        WHERE order_id = $1 AND id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		for itemID, text := range details {
			_, err := r.db.Exec(ctx, query, orderID, itemID, text)
			if err != nil {
				zap.L().Error("can't update item customization", zap.Error(err))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	return r.findOrders(ctx, query, userID)
}

func (r *Repository) FindByVendorID(ctx context.Context, vendorID int) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE vendor_id = $1 AND status NOT IN ('delivered', 'cancelled')
        ORDER BY created_at ASC
    `
	return r.findOrders(ctx, query, vendorID)
}

func (r *Repository) findOrders(ctx context.Context, query string, arg any) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}
