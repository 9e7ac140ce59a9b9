package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/velvetbox/settlecore/internal/domain"
	"github.com/velvetbox/settlecore/internal/dto"
	lifecycleservice "github.com/velvetbox/settlecore/internal/service/lifecycleservice"
	"github.com/velvetbox/settlecore/pkg/utils"
)

//go:generate mockgen -source=payment.go -destination=payment_mock.go -package=payment

type Service interface {
	GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error)
	ConfirmPayment(ctx context.Context, orderID int64, paymentID string, captured bool) (*domain.Order, error)
}

// Verifier checks the gateway's confirmation signature. Requests with a bad
// signature never reach the lifecycle manager.
type Verifier interface {
	VerifySignature(paymentRef, paymentID, signature string) bool
}

type PaymentHandler struct {
	lifecycleService Service
	verifier         Verifier
}

func New(lifecycleService Service, verifier Verifier) *PaymentHandler {
	return &PaymentHandler{
		lifecycleService: lifecycleService,
		verifier:         verifier,
	}
}

// Verify godoc
//
//	@Summary		Confirm a payment capture reported by the gateway
//	@Description	Idempotent: repeated confirmations for the same payment are no-ops.
//	@Tags			Payment
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PaymentVerifyRequestDTO	true	"Capture result with signature"
//	@Success		200		{object}	dto.PaymentVerifyResponseDTO
//	@Failure		400		{object}	utils.Response	"Signature mismatch"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/payment/verify [post]
func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentVerifyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PaymentID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "paymentId is required")
		return
	}

	order, err := h.lifecycleService.GetOrderByID(r.Context(), req.OrderID)
	if err != nil {
		if errors.Is(err, lifecycleservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if !h.verifier.VerifySignature(order.PaymentRef, req.PaymentID, req.Signature) {
		utils.RespondWithError(w, http.StatusBadRequest, "signature mismatch")
		return
	}

	captured := req.Status == domain.PaymentStatusCaptured
	order, err = h.lifecycleService.ConfirmPayment(r.Context(), req.OrderID, req.PaymentID, captured)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentVerifyResponseDTO{
		OrderID: order.ID,
		Status:  order.Status,
	})
}
