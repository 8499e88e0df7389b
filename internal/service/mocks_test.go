package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"catalog-orders/internal/domain"
	"catalog-orders/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mock repositories for testing. They mirror the Mongo semantics the
// services rely on: generated ids, set-add links and silent skipping of
// dangling ids.

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

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[string]*domain.Product)}
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
	product.ID = existing.ID
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
	if err := checkID(productID); err != nil {
		return err
	}
	product, ok := m.products[productID]
	if !ok {
		return repository.ErrProductNotFound
	}
	product.OrderIDs = addToSet(product.OrderIDs, orderID)
	return nil
}

type mockCategoryRepository struct {
	categories map[string]*domain.Category
	addErr     error
}

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{categories: make(map[string]*domain.Category)}
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
	if m.addErr != nil {
		return m.addErr
	}
	if err := checkID(categoryID); err != nil {
		return err
	}
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

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{orders: make(map[string]*domain.Order)}
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

// mockDashboardRepository computes the dashboard figures over the orders held
// by a mockOrderRepository
type mockDashboardRepository struct {
	orders *mockOrderRepository
	err    error
}

func (m *mockDashboardRepository) CountOrders(ctx context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.orders.orders)), nil
}

func (m *mockDashboardRepository) AverageOrderTotal(ctx context.Context) (float64, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.orders.orders) == 0 {
		return 0, nil
	}
	sum, _ := m.SumOrderTotals(ctx)
	return sum / float64(len(m.orders.orders)), nil
}

func (m *mockDashboardRepository) SumOrderTotals(ctx context.Context) (float64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var sum float64
	for _, order := range m.orders.orders {
		sum += order.Total
	}
	return sum, nil
}

func (m *mockDashboardRepository) DailyOrderCounts(ctx context.Context, since time.Time, timezone string) ([]domain.DailyOrderCount, error) {
	if m.err != nil {
		return nil, m.err
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, errors.New("unrecognized time zone identifier: " + timezone)
	}

	buckets := make(map[string]int64)
	for _, order := range m.orders.orders {
		if !order.Date.Before(since) {
			buckets[order.Date.In(loc).Format("2006-01-02")]++
		}
	}

	counts := []domain.DailyOrderCount{}
	for day, count := range buckets {
		counts = append(counts, domain.DailyOrderCount{Day: day, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Day < counts[j].Day })
	return counts, nil
}

type mockClearer struct {
	cleared int
	product *mockProductRepository
	cat     *mockCategoryRepository
	order   *mockOrderRepository
}

func (m *mockClearer) Clear(ctx context.Context) error {
	m.cleared++
	m.product.products = make(map[string]*domain.Product)
	m.cat.categories = make(map[string]*domain.Category)
	m.order.orders = make(map[string]*domain.Order)
	return nil
}
