package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{name: "Payment capture opens the order", from: StatusPending, to: StatusAwaitingDetails, allowed: true},
		{name: "Details start personalization", from: StatusAwaitingDetails, to: StatusPersonalizing, allowed: true},
		{name: "Repeated customization keeps personalizing", from: StatusPersonalizing, to: StatusPersonalizing, allowed: true},
		{name: "Mockup goes out for approval", from: StatusPersonalizing, to: StatusMockupReady, allowed: true},
		{name: "Approval starts crafting", from: StatusMockupReady, to: StatusCrafting, allowed: true},
		{name: "Crafted item is ready for pickup", from: StatusCrafting, to: StatusReadyForPickup, allowed: true},
		{name: "Pickup hands over to delivery", from: StatusReadyForPickup, to: StatusOutForDelivery, allowed: true},
		{name: "Delivery finishes the order", from: StatusOutForDelivery, to: StatusDelivered, allowed: true},
		{name: "No skipping straight to crafting", from: StatusAwaitingDetails, to: StatusCrafting, allowed: false},
		{name: "No going back from crafting", from: StatusCrafting, to: StatusPersonalizing, allowed: false},
		{name: "No cancel once out for delivery", from: StatusOutForDelivery, to: StatusCancelled, allowed: false},
		{name: "Delivered is terminal", from: StatusDelivered, to: StatusPending, allowed: false},
		{name: "Cancelled is terminal", from: StatusCancelled, to: StatusPending, allowed: false},
		{name: "Unknown status has no edges", from: "refunded", to: StatusPending, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestCancelAllowedBeforeDelivery(t *testing.T) {
	for _, from := range []string{
		StatusPending, StatusAwaitingDetails, StatusPersonalizing,
		StatusMockupReady, StatusCrafting, StatusReadyForPickup,
	} {
		assert.True(t, CanTransition(from, StatusCancelled), "cancel from %s", from)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusDelivered))
	assert.True(t, IsTerminal(StatusCancelled))
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusOutForDelivery))
}
