package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/velvetbox/settlecore/docs"
	cashbackhandlers "github.com/velvetbox/settlecore/internal/handlers/cashback"
	ordershandlers "github.com/velvetbox/settlecore/internal/handlers/orders"
	paymenthandlers "github.com/velvetbox/settlecore/internal/handlers/payment"
	"github.com/velvetbox/settlecore/internal/payments"
	"github.com/velvetbox/settlecore/internal/service"
	"github.com/velvetbox/settlecore/pkg/auth"
)

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	ListOrders(w http.ResponseWriter, r *http.Request)
	Customize(w http.ResponseWriter, r *http.Request)
	Mockup(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	VendorListOrders(w http.ResponseWriter, r *http.Request)
	VendorSubmitMockup(w http.ResponseWriter, r *http.Request)
	VendorUpdateStatus(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Verify(w http.ResponseWriter, r *http.Request)
}

type CashbackHandler interface {
	Credit(w http.ResponseWriter, r *http.Request)
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	OrderHandler    OrderHandler
	PaymentHandler  PaymentHandler
	CashbackHandler CashbackHandler
}

func New(s *service.Services, gateway payments.Gateway) *Handlers {
	return &Handlers{
		OrderHandler:    ordershandlers.New(s.Lifecycle),
		PaymentHandler:  paymenthandlers.New(s.Lifecycle, gateway),
		CashbackHandler: cashbackhandlers.New(s.Lifecycle, s.Settlement, s.Wallet),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	// Authenticated by signature, not by bearer token: the gateway calls it.
	r.Post("/payment/verify", h.PaymentHandler.Verify)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.OrderHandler.CreateOrder)
			r.Get("/", h.OrderHandler.ListOrders)
			r.Route("/{orderID}", func(r chi.Router) {
				r.Get("/", h.OrderHandler.GetOrder)
				r.Post("/customize", h.OrderHandler.Customize)
				r.Post("/mockup", h.OrderHandler.Mockup)
				r.Post("/cancel", h.OrderHandler.Cancel)
			})
		})

		r.Route("/wallet", func(r chi.Router) {
			r.Get("/", h.CashbackHandler.GetWallet)
			r.Get("/transactions", h.CashbackHandler.GetTransactions)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleVendor))
			r.Route("/vendor/orders", func(r chi.Router) {
				r.Get("/", h.OrderHandler.VendorListOrders)
				r.Post("/{orderID}/mockup", h.OrderHandler.VendorSubmitMockup)
				r.Post("/{orderID}/status", h.OrderHandler.VendorUpdateStatus)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleSystem))
			r.Post("/cashback/credit", h.CashbackHandler.Credit)
		})
	})

	return r
}
