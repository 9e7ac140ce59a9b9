package dto

type CashbackCreditRequestDTO struct {
	OrderID int64 `json:"orderId" example:"42"`
}

type CashbackCreditResponseDTO struct {
	AmountCredited string `json:"amountCredited" example:"95.40"`
	NewBalance     string `json:"newBalance" example:"195.40"`
}

type WalletBalanceResponseDTO struct {
	Balance string `json:"balance" example:"195.40"`
}

type WalletTransactionDTO struct {
	OrderID     *int64 `json:"orderId,omitempty" example:"42"`
	Type        string `json:"type" example:"credit"`
	Amount      string `json:"amount" example:"95.40"`
	Description string `json:"description" example:"cashback for order 570048152732"`
	CreatedAt   string `json:"createdAt" example:"2024-11-02T16:09:57+03:00"`
}
