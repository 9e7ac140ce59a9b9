package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/velvetbox/settlecore/internal/domain"
	"github.com/velvetbox/settlecore/internal/dto"
	lifecycleservice "github.com/velvetbox/settlecore/internal/service/lifecycleservice"
	"github.com/velvetbox/settlecore/pkg/auth"
	"github.com/velvetbox/settlecore/pkg/utils"
)

//go:generate mockgen -source=orders.go -destination=orders_mock.go -package=orders

type Service interface {
	Create(ctx context.Context, userID int, in lifecycleservice.CreateOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, userID int, orderID int64) (*domain.Order, error)
	ListOrders(ctx context.Context, userID int) ([]domain.Order, error)
	SubmitCustomization(ctx context.Context, userID int, orderID int64, details map[int64]string) (*domain.Order, error)
	ApproveMockup(ctx context.Context, userID int, orderID int64, approved bool) (*domain.Order, error)
	Cancel(ctx context.Context, userID int, orderID int64, reason string) (*domain.Order, error)
	SubmitMockup(ctx context.Context, vendorID int, orderID int64) (*domain.Order, error)
	MarkReady(ctx context.Context, vendorID int, orderID int64) (*domain.Order, error)
	MarkOutForDelivery(ctx context.Context, vendorID int, orderID int64) (*domain.Order, error)
	MarkDelivered(ctx context.Context, vendorID int, orderID int64) (*domain.Order, error)
	ListVendorOrders(ctx context.Context, vendorID int) ([]domain.Order, error)
}

type OrderHandler struct {
	lifecycleService Service
}

func New(lifecycleService Service) *OrderHandler {
	return &OrderHandler{
		lifecycleService: lifecycleService,
	}
}

// CreateOrder godoc
//
//	@Summary		Create a new order
//	@Description	Validate totals, persist a pending order and register it with the payment gateway.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Order payload"
//	@Success		200		{object}	dto.CreateOrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Validation failed"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		502		{object}	utils.Response	"Payment gateway unavailable"
//	@Router			/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]lifecycleservice.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, lifecycleservice.ItemInput{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	order, err := h.lifecycleService.Create(r.Context(), userID, lifecycleservice.CreateOrderInput{
		Items:         items,
		DeliveryFee:   req.DeliveryFee,
		PlatformFee:   req.PlatformFee,
		CashbackUsed:  req.CashbackUsed,
		DeliveryType:  req.DeliveryType,
		Address:       req.Address,
		VendorID:      req.VendorID,
		VendorAccount: req.VendorAccount,
	})
	if err != nil {
		switch {
		case errors.Is(err, lifecycleservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, lifecycleservice.ErrPaymentInit):
			utils.RespondWithError(w, http.StatusBadGateway, "payment gateway unavailable, retry later")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CreateOrderResponseDTO{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		PaymentRef:  order.PaymentRef,
	})
}

// GetOrder godoc
//
//	@Summary		Get order status
//	@Description	Current status of the user's order; also the polling fallback for realtime updates.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.OrderStatusResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Order belongs to another user"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Router			/orders/{orderID} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	orderID, ok := orderIDParam(w, r)
	if !ok {
		return
	}

	order, err := h.lifecycleService.GetOrder(r.Context(), userID, orderID)
	if err != nil {
		respondLifecycleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, orderStatusDTO(order))
}

// ListOrders godoc
//
//	@Summary	List the user's orders
//	@Tags		Orders
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.OrderStatusResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	orders, err := h.lifecycleService.ListOrders(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.OrderStatusResponseDTO, 0, len(orders))
	for i := range orders {
		response = append(response, orderStatusDTO(&orders[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Customize godoc
//
//	@Summary		Submit per-item personalization details
//	@Description	Valid only while the order awaits details or is already personalizing.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CustomizeRequestDTO	true	"Per-item details"
//	@Success		200		{object}	dto.OrderStatusResponseDTO
//	@Failure		400		{object}	utils.Response	"Wrong state"
//	@Failure		403		{object}	utils.Response	"Order belongs to another user"
//	@Router			/orders/{orderID}/customize [post]
func (h *OrderHandler) Customize(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	orderID, ok := orderIDParam(w, r)
	if !ok {
		return
	}

	var req dto.CustomizeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Items) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "customization details are required")
		return
	}

	details := make(map[int64]string, len(req.Items))
	for _, item := range req.Items {
		details[item.ItemID] = item.Details
	}

	order, err := h.lifecycleService.SubmitCustomization(r.Context(), userID, orderID, details)
	if err != nil {
		respondLifecycleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, orderStatusDTO(order))
}

// Mockup godoc
//
//	@Summary		Approve or decline the vendor's mockup
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.MockupDecisionRequestDTO	true	"Approval decision"
//	@Success		200		{object}	dto.OrderStatusResponseDTO
//	@Failure		400		{object}	utils.Response	"Wrong state"
//	@Failure		403		{object}	utils.Response	"Order belongs to another user"
//	@Router			/orders/{orderID}/mockup [post]
func (h *OrderHandler) Mockup(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	orderID, ok := orderIDParam(w, r)
	if !ok {
		return
	}

	var req dto.MockupDecisionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.lifecycleService.ApproveMockup(r.Context(), userID, orderID, req.Approved)
	if err != nil {
		respondLifecycleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, orderStatusDTO(order))
}

// Cancel godoc
//
//	@Summary		Cancel an order
//	@Description	Valid from any state before out_for_delivery; captured payments are refunded.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CancelOrderRequestDTO	false	"Cancellation reason"
//	@Success		200		{object}	dto.OrderStatusResponseDTO
//	@Failure		400		{object}	utils.Response	"Wrong state"
//	@Router			/orders/{orderID}/cancel [post]
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	orderID, ok := orderIDParam(w, r)
	if !ok {
		return
	}

	var req dto.CancelOrderRequestDTO
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	order, err := h.lifecycleService.Cancel(r.Context(), userID, orderID, req.Reason)
	if err != nil {
		respondLifecycleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, orderStatusDTO(order))
}

// VendorListOrders godoc
//
//	@Summary	List the vendor's open orders
//	@Tags		Vendor
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.VendorOrderDTO
//	@Failure	403	{object}	utils.Response	"Vendor role required"
//	@Router		/vendor/orders [get]
func (h *OrderHandler) VendorListOrders(w http.ResponseWriter, r *http.Request) {
	vendorID := r.Context().Value(auth.UserIDKey).(int)

	orders, err := h.lifecycleService.ListVendorOrders(r.Context(), vendorID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.VendorOrderDTO, 0, len(orders))
	for _, order := range orders {
		response = append(response, dto.VendorOrderDTO{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			Status:      order.Status,
			SubStatus:   order.SubStatus,
			UpdatedAt:   order.UpdatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// VendorSubmitMockup godoc
//
//	@Summary	Report a mockup is ready for customer approval
//	@Tags		Vendor
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.OrderStatusResponseDTO
//	@Failure	400	{object}	utils.Response	"Wrong state"
//	@Failure	403	{object}	utils.Response	"Order belongs to another vendor"
//	@Router		/vendor/orders/{orderID}/mockup [post]
func (h *OrderHandler) VendorSubmitMockup(w http.ResponseWriter, r *http.Request) {
	vendorID := r.Context().Value(auth.UserIDKey).(int)
	orderID, ok := orderIDParam(w, r)
	if !ok {
		return
	}

	order, err := h.lifecycleService.SubmitMockup(r.Context(), vendorID, orderID)
	if err != nil {
		respondLifecycleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, orderStatusDTO(order))
}

// VendorUpdateStatus godoc
//
//	@Summary		Advance fulfillment (ready_for_pickup, out_for_delivery, delivered)
//	@Tags			Vendor
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VendorStatusRequestDTO	true	"Target status"
//	@Success		200		{object}	dto.OrderStatusResponseDTO
//	@Failure		400		{object}	utils.Response	"Wrong state or unknown status"
//	@Failure		403		{object}	utils.Response	"Order belongs to another vendor"
//	@Router			/vendor/orders/{orderID}/status [post]
func (h *OrderHandler) VendorUpdateStatus(w http.ResponseWriter, r *http.Request) {
	vendorID := r.Context().Value(auth.UserIDKey).(int)
	orderID, ok := orderIDParam(w, r)
	if !ok {
		return
	}

	var req dto.VendorStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var order *domain.Order
	var err error
	switch req.Status {
	case domain.StatusReadyForPickup:
		order, err = h.lifecycleService.MarkReady(r.Context(), vendorID, orderID)
	case domain.StatusOutForDelivery:
		order, err = h.lifecycleService.MarkOutForDelivery(r.Context(), vendorID, orderID)
	case domain.StatusDelivered:
		order, err = h.lifecycleService.MarkDelivered(r.Context(), vendorID, orderID)
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "unknown target status")
		return
	}
	if err != nil {
		respondLifecycleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, orderStatusDTO(order))
}

func orderIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return 0, false
	}
	return orderID, true
}

func orderStatusDTO(order *domain.Order) dto.OrderStatusResponseDTO {
	return dto.OrderStatusResponseDTO{
		OrderID:   order.ID,
		Status:    order.Status,
		SubStatus: order.SubStatus,
		UpdatedAt: order.UpdatedAt.Format(time.RFC3339),
	}
}

func respondLifecycleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, lifecycleservice.ErrOrderNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, lifecycleservice.ErrNotOwner), errors.Is(err, lifecycleservice.ErrNotVendor):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, lifecycleservice.ErrInvalidTransition), errors.Is(err, lifecycleservice.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
