package transport

import (
	"net/http"
	"time"

	"catalog-orders/internal/domain"
	"catalog-orders/internal/middleware"
	"catalog-orders/internal/repository"
	"catalog-orders/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OrderRequest is the payload for placing an order. The total is taken as
// given and never recomputed from product prices.
type OrderRequest struct {
	Date       OrderDate `json:"date" validate:"required"`
	ProductIDs []string  `json:"product_ids"`
	Total      float64   `json:"total" validate:"gte=0"`
}

// OrderHandler handles HTTP requests for orders
type OrderHandler struct {
	orderService service.OrderService
	location     *time.Location
	logger       *zap.Logger
}

// NewOrderHandler creates a new OrderHandler. Order dates sent without a
// zone are read in location.
func NewOrderHandler(orderService service.OrderService, location *time.Location, logger *zap.Logger) *OrderHandler {
	if location == nil {
		location = time.UTC
	}
	return &OrderHandler{
		orderService: orderService,
		location:     location,
		logger:       logger,
	}
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
	})
}

// Create places an order and records it on every product in the cart
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	order, err := h.orderService.Create(r.Context(), &domain.Order{
		Date:       req.Date.In(h.location),
		ProductIDs: nonNil(req.ProductIDs),
		Total:      req.Total,
	})
	if err != nil {
		middleware.RespondWithStoreError(w, r, err, repository.ErrOrderNotFound, "Order not found", h.logger)
		return
	}

	h.logger.Info("Order created",
		zap.String("order_id", order.ID.Hex()),
		zap.Int("products", len(order.ProductIDs)),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, toOrderResponse(order))
}

// Get returns a single order
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithStoreError(w, r, err, repository.ErrOrderNotFound, "Order not found", h.logger)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, toOrderResponse(order))
}

// List returns every order
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.List(r.Context())
	if err != nil {
		middleware.RespondWithStoreError(w, r, err, repository.ErrOrderNotFound, "Order not found", h.logger)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, toOrderResponses(orders))
}
