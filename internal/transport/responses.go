package transport

import (
	"net/http"
	"time"

	"catalog-orders/internal/domain"
	"catalog-orders/internal/middleware"

	"go.uber.org/zap"
)

// ProductResponse is the public view of a product. Order ids stay internal.
type ProductResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"image_url"`
	CategoryIDs []string `json:"category_ids"`
}

// CategoryResponse is the public view of a category
type CategoryResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ProductIDs []string `json:"product_ids"`
}

// OrderResponse is the public view of an order
type OrderResponse struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	ProductIDs []string  `json:"product_ids"`
	Total      float64   `json:"total"`
}

func toProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		CategoryIDs: nonNil(p.CategoryIDs),
	}
}

func toProductResponses(products []*domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

func toCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:         c.ID.Hex(),
		Name:       c.Name,
		ProductIDs: nonNil(c.ProductIDs),
	}
}

func toCategoryResponses(categories []*domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	return out
}

func toOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID.Hex(),
		Date:       o.Date,
		ProductIDs: nonNil(o.ProductIDs),
		Total:      o.Total,
	}
}

func toOrderResponses(orders []*domain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

// decodeRequest decodes and validates a JSON body. On failure it writes the
// error response and reports false.
func decodeRequest(w http.ResponseWriter, r *http.Request, v interface{}, logger *zap.Logger) bool {
	if err := middleware.DecodeAndValidate(r, v); err != nil {
		logger.Debug("Request validation failed", zap.String("path", r.URL.Path), zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return false
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
