package cashback

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/velvetbox/settlecore/internal/domain"
	"github.com/velvetbox/settlecore/internal/dto"
	lifecycleservice "github.com/velvetbox/settlecore/internal/service/lifecycleservice"
	settlementservice "github.com/velvetbox/settlecore/internal/service/settlementservice"
	walletservice "github.com/velvetbox/settlecore/internal/service/walletservice"
	"github.com/velvetbox/settlecore/pkg/auth"
	"github.com/velvetbox/settlecore/pkg/utils"
)

//go:generate mockgen -source=cashback.go -destination=cashback_mock.go -package=cashback

type Orders interface {
	GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error)
}

type Service interface {
	CreditCashback(ctx context.Context, order *domain.Order) (*settlementservice.CashbackResult, error)
}

type Wallet interface {
	GetBalance(ctx context.Context, userID int) (*domain.Wallet, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.WalletTransaction, error)
}

type CashbackHandler struct {
	orders            Orders
	settlementService Service
	walletService     Wallet
}

func New(orders Orders, settlementService Service, walletService Wallet) *CashbackHandler {
	return &CashbackHandler{
		orders:            orders,
		settlementService: settlementService,
		walletService:     walletService,
	}
}

// Credit godoc
//
//	@Summary		Credit delivery cashback for an order
//	@Description	System endpoint. At most one credit per order ever lands; repeats report already credited.
//	@Tags			Cashback
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CashbackCreditRequestDTO	true	"Order to credit"
//	@Success		200		{object}	dto.CashbackCreditResponseDTO
//	@Failure		400		{object}	utils.Response	"Order not delivered or already credited"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Router			/cashback/credit [post]
func (h *CashbackHandler) Credit(w http.ResponseWriter, r *http.Request) {
	var req dto.CashbackCreditRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orders.GetOrderByID(r.Context(), req.OrderID)
	if err != nil {
		if errors.Is(err, lifecycleservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	result, err := h.settlementService.CreditCashback(r.Context(), order)
	if err != nil {
		switch {
		case errors.Is(err, settlementservice.ErrOrderNotDelivered):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, walletservice.ErrAlreadyCredited):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CashbackCreditResponseDTO{
		AmountCredited: result.Amount.StringFixed(2),
		NewBalance:     result.NewBalance.StringFixed(2),
	})
}

// GetWallet godoc
//
//	@Summary	Get the user's cashback balance
//	@Tags		Wallet
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.WalletBalanceResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/wallet [get]
func (h *CashbackHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.walletService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletBalanceResponseDTO{
		Balance: wallet.Balance.StringFixed(2),
	})
}

// GetTransactions godoc
//
//	@Summary	Get the user's wallet transaction history
//	@Tags		Wallet
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.WalletTransactionDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/wallet/transactions [get]
func (h *CashbackHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	txs, err := h.walletService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.WalletTransactionDTO, 0, len(txs))
	for _, tx := range txs {
		response = append(response, dto.WalletTransactionDTO{
			OrderID:     tx.OrderID,
			Type:        tx.Type,
			Amount:      tx.Amount.StringFixed(2),
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
