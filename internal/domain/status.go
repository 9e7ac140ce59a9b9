package domain

const (
	// StatusPending заказ создан, оплата ещё не подтверждена;
	StatusPending = "pending"
	// StatusAwaitingDetails оплата получена, ждём данные персонализации;
	StatusAwaitingDetails = "awaiting_details"
	// StatusPersonalizing покупатель заполняет детали, продавец готовит макет;
	StatusPersonalizing = "personalizing"
	// StatusMockupReady макет готов и ждёт одобрения покупателя;
	StatusMockupReady = "mockup_ready"
	// StatusCrafting макет одобрен, изделие в работе;
	StatusCrafting = "crafting"
	// StatusReadyForPickup изделие готово к передаче в доставку;
	StatusReadyForPickup = "ready_for_pickup"
	// StatusOutForDelivery заказ передан в доставку;
	StatusOutForDelivery = "out_for_delivery"
	// StatusDelivered заказ доставлен, терминальный статус;
	StatusDelivered = "delivered"
	// StatusCancelled заказ отменён, терминальный статус.
	StatusCancelled = "cancelled"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusCaptured = "captured"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// transitions is the only source of truth for the order state machine. An
// edge absent from this table is rejected, never coerced.
var transitions = map[string][]string{
	StatusPending:         {StatusAwaitingDetails, StatusCancelled},
	StatusAwaitingDetails: {StatusPersonalizing, StatusCancelled},
	StatusPersonalizing:   {StatusPersonalizing, StatusMockupReady, StatusCancelled},
	StatusMockupReady:     {StatusCrafting, StatusCancelled},
	StatusCrafting:        {StatusReadyForPickup, StatusCancelled},
	StatusReadyForPickup:  {StatusOutForDelivery, StatusCancelled},
	StatusOutForDelivery:  {StatusDelivered},
	StatusDelivered:       {},
	StatusCancelled:       {},
}

// CanTransition reports whether the state machine allows moving an order
// from one status to another. Pure function of the two statuses.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions exist from the status.
func IsTerminal(status string) bool {
	return len(transitions[status]) == 0
}
