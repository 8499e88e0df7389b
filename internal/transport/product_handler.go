package transport

import (
	"net/http"

	"catalog-orders/internal/domain"
	"catalog-orders/internal/middleware"
	"catalog-orders/internal/repository"
	"catalog-orders/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductRequest is the payload for creating or replacing a product
type ProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	ImageURL    string   `json:"image_url"`
	CategoryIDs []string `json:"category_ids"`
}

func (req ProductRequest) toDomain() *domain.Product {
	return &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CategoryIDs: nonNil(req.CategoryIDs),
	}
}

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Get("/{id}/categories", h.Categories)
	})
}

// Create handles product creation
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	product, err := h.productService.Create(r.Context(), req.toDomain())
	if err != nil {
		middleware.RespondWithStoreError(w, r, err, repository.ErrProductNotFound, "Product not found", h.logger)
		return
	}

	h.logger.Info("Product created", zap.String("product_id", product.ID.Hex()))
	middleware.RespondWithJSON(w, http.StatusCreated, toProductResponse(product))
}

// Update replaces the mutable fields of a product
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	product, err := h.productService.Update(r.Context(), chi.URLParam(r, "id"), req.toDomain())
	if err != nil {
		middleware.RespondWithStoreError(w, r, err, repository.ErrProductNotFound, "Product not found", h.logger)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, toProductResponse(product))
}

// Get returns a single product
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.productService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithStoreError(w, r, err, repository.ErrProductNotFound, "Product not found", h.logger)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, toProductResponse(product))
}

// List returns every product
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.List(r.Context())
	if err != nil {
		middleware.RespondWithStoreError(w, r, err, repository.ErrProductNotFound, "Product not found", h.logger)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, toProductResponses(products))
}

// Categories returns the categories a product belongs to
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.productService.Categories(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithStoreError(w, r, err, repository.ErrProductNotFound, "Product not found", h.logger)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, toCategoryResponses(categories))
}
