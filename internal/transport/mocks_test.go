package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"catalog-orders/internal/domain"
	"catalog-orders/internal/repository"
	"catalog-orders/internal/service"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// In-memory repositories backing the real services in handler tests

func checkID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrInvalidID
	}
	return nil
}

func addToSet(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func uniqueIDs(ids []string) []string {
	out := []string{}
	for _, id := range ids {
		out = addToSet(out, id)
	}
	return out
}

type mockProductRepository struct {
	products map[string]*domain.Product
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	product.ID = primitive.NewObjectID()
	product.CategoryIDs = uniqueIDs(product.CategoryIDs)
	stored := *product
	m.products[product.ID.Hex()] = &stored
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, id string, product *domain.Product) error {
	if err := checkID(id); err != nil {
		return err
	}
	existing, ok := m.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.ImageURL = product.ImageURL
	existing.CategoryIDs = uniqueIDs(product.CategoryIDs)
	return nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	product, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	copied := *product
	return &copied, nil
}

func (m *mockProductRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	products := []*domain.Product{}
	for _, id := range ids {
		if product, ok := m.products[id]; ok {
			products = append(products, product)
		}
	}
	return products, nil
}

func (m *mockProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	products := []*domain.Product{}
	for _, product := range m.products {
		products = append(products, product)
	}
	return products, nil
}

func (m *mockProductRepository) AddOrderID(ctx context.Context, productID, orderID string) error {
	product, ok := m.products[productID]
	if !ok {
		return repository.ErrProductNotFound
	}
	product.OrderIDs = addToSet(product.OrderIDs, orderID)
	return nil
}

type mockCategoryRepository struct {
	categories map[string]*domain.Category
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	category.ID = primitive.NewObjectID()
	category.ProductIDs = uniqueIDs(category.ProductIDs)
	stored := *category
	m.categories[category.ID.Hex()] = &stored
	return nil
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	category, ok := m.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	copied := *category
	return &copied, nil
}

func (m *mockCategoryRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Category, error) {
	categories := []*domain.Category{}
	for _, id := range ids {
		if category, ok := m.categories[id]; ok {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	categories := []*domain.Category{}
	for _, category := range m.categories {
		categories = append(categories, category)
	}
	return categories, nil
}

func (m *mockCategoryRepository) AddProductID(ctx context.Context, categoryID, productID string) error {
	category, ok := m.categories[categoryID]
	if !ok {
		return repository.ErrCategoryNotFound
	}
	category.ProductIDs = addToSet(category.ProductIDs, productID)
	return nil
}

type mockOrderRepository struct {
	orders map[string]*domain.Order
}

func (m *mockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	order.ID = primitive.NewObjectID()
	stored := *order
	m.orders[order.ID.Hex()] = &stored
	return nil
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	order, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	return order, nil
}

func (m *mockOrderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	orders := []*domain.Order{}
	for _, order := range m.orders {
		orders = append(orders, order)
	}
	return orders, nil
}

type stubDashboardService struct {
	metrics *domain.DashboardMetrics
	err     error
}

func (s *stubDashboardService) Metrics(ctx context.Context) (*domain.DashboardMetrics, error) {
	return s.metrics, s.err
}

// testAPI wires real services over the in-memory repositories behind a chi router
type testAPI struct {
	router     chi.Router
	products   *mockProductRepository
	categories *mockCategoryRepository
	orders     *mockOrderRepository
	dashboard  *stubDashboardService
}

func newTestAPI() *testAPI {
	logger := zap.NewNop()
	api := &testAPI{
		router:     chi.NewRouter(),
		products:   &mockProductRepository{products: make(map[string]*domain.Product)},
		categories: &mockCategoryRepository{categories: make(map[string]*domain.Category)},
		orders:     &mockOrderRepository{orders: make(map[string]*domain.Order)},
		dashboard:  &stubDashboardService{metrics: &domain.DashboardMetrics{}},
	}

	links := service.NewRelationshipMaintainer(api.products, api.categories, logger)

	NewProductHandler(service.NewProductService(api.products, api.categories, links), logger).RegisterRoutes(api.router)
	NewCategoryHandler(service.NewCategoryService(api.categories, api.products), logger).RegisterRoutes(api.router)
	NewOrderHandler(service.NewOrderService(api.orders, links), time.UTC, logger).RegisterRoutes(api.router)
	NewDashboardHandler(api.dashboard, logger).RegisterRoutes(api.router)

	return api
}

func (a *testAPI) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

var errStoreDown = errors.New("server selection error: context deadline exceeded")
