package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/url"
	"time"

	"catalog-orders/internal/domain"
	"catalog-orders/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Clearer empties the store before seeding
type Clearer interface {
	Clear(ctx context.Context) error
}

type seedProduct struct {
	name  string
	price string
}

type seedCategory struct {
	name     string
	products []seedProduct
}

var seedCatalog = []seedCategory{
	{name: "Fruits", products: []seedProduct{
		{"Banana", "2.50"}, {"Apple", "3.00"}, {"Orange", "2.00"}, {"Strawberry", "5.00"}, {"Grape", "6.00"},
	}},
	{name: "Electronics", products: []seedProduct{
		{"Smartphone", "1500.00"}, {"Notebook", "3500.00"}, {"Headphones", "200.00"}, {"Smartwatch", "800.00"}, {"Tablet", "1200.00"},
	}},
	{name: "Clothing", products: []seedProduct{
		{"T-Shirt", "50.00"}, {"Jeans", "120.00"}, {"Sneakers", "200.00"}, {"Coat", "150.00"}, {"Dress", "100.00"},
	}},
	{name: "Books", products: []seedProduct{
		{"Fiction Book", "40.00"}, {"Non-Fiction Book", "50.00"}, {"Self-Help Book", "30.00"}, {"Children's Book", "25.00"}, {"Cookbook", "60.00"},
	}},
}

// SeedSummary reports what a seeding run created
type SeedSummary struct {
	Categories int
	Products   int
	Orders     int
}

// Seeder wipes the store and fills it with a demo catalog and random orders
type Seeder struct {
	clearer      Clearer
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
	links        RelationshipMaintainer
	logger       *zap.Logger
	rng          *rand.Rand
	now          func() time.Time
}

// NewSeeder creates a new Seeder
func NewSeeder(
	clearer Clearer,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	links RelationshipMaintainer,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{
		clearer:      clearer,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		links:        links,
		logger:       logger,
		rng:          rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		now:          time.Now,
	}
}

// Seed clears all collections, writes the demo catalog with its category
// links, then creates the requested number of random orders. Each order holds
// one to five distinct products and is dated one to thirty days ago.
func (s *Seeder) Seed(ctx context.Context, orders int) (*SeedSummary, error) {
	if err := s.clearer.Clear(ctx); err != nil {
		return nil, err
	}

	summary := &SeedSummary{}
	var products []*domain.Product

	for _, sc := range seedCatalog {
		category := &domain.Category{Name: sc.name}
		if err := s.categoryRepo.Create(ctx, category); err != nil {
			return nil, err
		}
		summary.Categories++

		for _, sp := range sc.products {
			price, err := decimal.NewFromString(sp.price)
			if err != nil {
				return nil, fmt.Errorf("invalid seed price for %s: %w", sp.name, err)
			}

			product := &domain.Product{
				Name:        sp.name,
				Description: fmt.Sprintf("Description of %s.", sp.name),
				Price:       price.InexactFloat64(),
				ImageURL:    "https://placehold.co/400x400?text=" + url.QueryEscape(sp.name),
				CategoryIDs: []string{category.ID.Hex()},
			}
			if err := s.productRepo.Create(ctx, product); err != nil {
				return nil, err
			}
			s.links.LinkProductToCategories(ctx, product.ID.Hex(), product.CategoryIDs)

			products = append(products, product)
			summary.Products++
		}
	}

	for i := 0; i < orders; i++ {
		order := s.randomOrder(products)
		if err := s.orderRepo.Create(ctx, order); err != nil {
			return nil, err
		}
		s.links.LinkOrderToProducts(ctx, order.ID.Hex(), order.ProductIDs)
		summary.Orders++
	}

	s.logger.Info("Database seeded",
		zap.Int("categories", summary.Categories),
		zap.Int("products", summary.Products),
		zap.Int("orders", summary.Orders),
	)

	return summary, nil
}

func (s *Seeder) randomOrder(products []*domain.Product) *domain.Order {
	n := 1 + s.rng.IntN(min(5, len(products)))
	picked := s.rng.Perm(len(products))[:n]

	total := decimal.Zero
	ids := make([]string, 0, n)
	for _, idx := range picked {
		ids = append(ids, products[idx].ID.Hex())
		total = total.Add(decimal.NewFromFloat(products[idx].Price))
	}

	daysAgo := 1 + s.rng.IntN(30)

	return &domain.Order{
		Date:       s.now().Add(-time.Duration(daysAgo) * 24 * time.Hour),
		ProductIDs: ids,
		Total:      total.InexactFloat64(),
	}
}
