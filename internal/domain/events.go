package domain

import "time"

// StatusChanged is emitted on every order status transition and fanned out
// to subscribers by the realtime bus.
type StatusChanged struct {
	OrderID   int64     `json:"orderId"`
	VendorID  int       `json:"vendorId"`
	OldStatus string    `json:"oldStatus"`
	NewStatus string    `json:"status"`
	SubStatus string    `json:"subStatus,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}
