package dto

type OrderItemDTO struct {
	Name      string `json:"name" example:"Engraved photo frame"`
	Quantity  int    `json:"quantity" example:"2"`
	UnitPrice int64  `json:"unitPrice" example:"50000"`
}

type CreateOrderRequestDTO struct {
	Items         []OrderItemDTO `json:"items"`
	DeliveryFee   int64          `json:"deliveryFee" example:"4900"`
	PlatformFee   int64          `json:"platformFee" example:"500"`
	CashbackUsed  int64          `json:"cashbackUsed" example:"10000"`
	DeliveryType  string         `json:"deliveryType" example:"standard"`
	Address       string         `json:"address" example:"221B Baker Street"`
	VendorID      int            `json:"vendorId" example:"7"`
	VendorAccount string         `json:"vendorAccount" example:"acct_7f2c1"`
}

type CreateOrderResponseDTO struct {
	OrderID     int64  `json:"orderId" example:"42"`
	OrderNumber string `json:"orderNumber" example:"570048152732"`
	PaymentRef  string `json:"paymentRef" example:"pay_ref_9a1"`
}

type OrderStatusResponseDTO struct {
	OrderID   int64  `json:"orderId" example:"42"`
	Status    string `json:"status" example:"personalizing"`
	SubStatus string `json:"subStatus,omitempty" example:"customization_received"`
	UpdatedAt string `json:"updatedAt" example:"2024-11-02T16:09:57+03:00"`
}

type ItemCustomizationDTO struct {
	ItemID  int64  `json:"itemId" example:"1"`
	Details string `json:"details" example:"Happy anniversary, Maya!"`
}

type CustomizeRequestDTO struct {
	Items []ItemCustomizationDTO `json:"items"`
}

type MockupDecisionRequestDTO struct {
	Approved bool `json:"approved" example:"true"`
}

type CancelOrderRequestDTO struct {
	Reason string `json:"reason,omitempty" example:"changed_mind"`
}

type VendorStatusRequestDTO struct {
	Status string `json:"status" example:"out_for_delivery"`
}

type VendorOrderDTO struct {
	OrderID     int64  `json:"orderId" example:"42"`
	OrderNumber string `json:"orderNumber" example:"570048152732"`
	Status      string `json:"status" example:"crafting"`
	SubStatus   string `json:"subStatus,omitempty" example:"mockup_approved"`
	UpdatedAt   string `json:"updatedAt" example:"2024-11-02T16:09:57+03:00"`
}
