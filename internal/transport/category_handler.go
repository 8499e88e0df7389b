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

// CategoryRequest is the payload for creating a category
type CategoryRequest struct {
	Name       string   `json:"name"`
	ProductIDs []string `json:"product_ids"`
}

// CategoryHandler handles HTTP requests for categories
type CategoryHandler struct {
	categoryService service.CategoryService
	logger          *zap.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// RegisterRoutes registers all category routes
func (h *CategoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Get("/{id}/products", h.Products)
	})
}

// Create handles category creation
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	category, err := h.categoryService.Create(r.Context(), &domain.Category{
		Name:       req.Name,
		ProductIDs: nonNil(req.ProductIDs),
	})
	if err != nil {
		middleware.RespondWithStoreError(w, r, err, repository.ErrCategoryNotFound, "Category not found", h.logger)
		return
	}

	h.logger.Info("Category created", zap.String("category_id", category.ID.Hex()))
	middleware.RespondWithJSON(w, http.StatusCreated, toCategoryResponse(category))
}

// Get returns a single category
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	category, err := h.categoryService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithStoreError(w, r, err, repository.ErrCategoryNotFound, "Category not found", h.logger)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, toCategoryResponse(category))
}

// List returns every category
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.List(r.Context())
	if err != nil {
		middleware.RespondWithStoreError(w, r, err, repository.ErrCategoryNotFound, "Category not found", h.logger)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, toCategoryResponses(categories))
}

// Products returns the products listed by a category
func (h *CategoryHandler) Products(w http.ResponseWriter, r *http.Request) {
	products, err := h.categoryService.Products(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithStoreError(w, r, err, repository.ErrCategoryNotFound, "Category not found", h.logger)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, toProductResponses(products))
}
