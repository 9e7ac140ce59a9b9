package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Money on orders and settlements is kept in integer minor units. The wallet
// ledger uses 2-decimal values because cashback is presented to customers in
// major units.

type Order struct {
	ID            int64     `db:"id"`
	UserID        int       `db:"user_id"`
	VendorID      int       `db:"vendor_id"`
	VendorAccount string    `db:"vendor_account"`
	OrderNumber   string    `db:"order_number"`
	ItemTotal     int64     `db:"item_total"`
	DeliveryFee   int64     `db:"delivery_fee"`
	PlatformFee   int64     `db:"platform_fee"`
	CashbackUsed  int64     `db:"cashback_used"`
	Total         int64     `db:"total"`
	DeliveryType  string    `db:"delivery_type"`
	Status        string    `db:"status"`
	SubStatus     string    `db:"sub_status"`
	PaymentRef    string    `db:"payment_ref"`
	PaymentID     string    `db:"payment_id"`
	PaymentStatus string    `db:"payment_status"`
	Address       string    `db:"address"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type OrderItem struct {
	ID            int64  `db:"id"`
	OrderID       int64  `db:"order_id"`
	Name          string `db:"name"`
	Quantity      int    `db:"quantity"`
	UnitPrice     int64  `db:"unit_price"`
	Customization string `db:"customization"`
}

type Wallet struct {
	ID      string          `db:"id"`
	UserID  int             `db:"user_id"`
	Balance decimal.Decimal `db:"balance"`
}

type WalletTransaction struct {
	ID          string          `db:"id"`
	WalletID    string          `db:"wallet_id"`
	OrderID     *int64          `db:"order_id"`
	Type        string          `db:"type"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}

const (
	TxTypeCredit = "credit"
	TxTypeDebit  = "debit"
)

type SettlementRecord struct {
	ID              string    `db:"id"`
	OrderID         int64     `db:"order_id"`
	PaymentID       string    `db:"payment_id"`
	TotalAmount     int64     `db:"total_amount"`
	CommissionRate  int       `db:"commission_rate"`
	PlatformAmount  int64     `db:"platform_amount"`
	VendorAmount    int64     `db:"vendor_amount"`
	RouteTransferID string    `db:"route_transfer_id"`
	Status          string    `db:"status"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

const (
	// SettlementCreated запись создана, перевод ещё не выполнялся;
	SettlementCreated = "created"
	// SettlementProcessed перевод продавцу выполнен;
	SettlementProcessed = "processed"
	// SettlementFailed перевод не прошёл, запись ждёт повторной обработки.
	SettlementFailed = "failed"
)
