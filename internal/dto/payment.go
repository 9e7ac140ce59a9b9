package dto

type PaymentVerifyRequestDTO struct {
	OrderID   int64  `json:"orderId" example:"42"`
	PaymentID string `json:"paymentId" example:"pay_9hf31a"`
	Signature string `json:"signature" example:"b1946ac92492d2347c6235b4d2611184"`
	Status    string `json:"status" example:"captured"`
}

type PaymentVerifyResponseDTO struct {
	OrderID int64  `json:"orderId" example:"42"`
	Status  string `json:"status" example:"awaiting_details"`
}
