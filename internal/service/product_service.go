package service

import (
	"context"
	"fmt"

	"catalog-orders/internal/domain"
	"catalog-orders/internal/repository"
)

// ProductService defines the interface for product business logic
type ProductService interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Categories(ctx context.Context, id string) ([]*domain.Category, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	links        RelationshipMaintainer
}

// NewProductService creates a new instance of ProductService
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	links RelationshipMaintainer,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		links:        links,
	}
}

// Create stores the product and then links it into each referenced category
func (s *productService) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	// ids and back-references are server-owned
	product.OrderIDs = nil

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.links.LinkProductToCategories(ctx, product.ID.Hex(), product.CategoryIDs)

	return product, nil
}

// Update replaces the product and links it into its new categories. Links
// from categories it no longer references are kept.
func (s *productService) Update(ctx context.Context, id string, product *domain.Product) (*domain.Product, error) {
	if err := s.productRepo.Update(ctx, id, product); err != nil {
		return nil, err
	}

	s.links.LinkProductToCategories(ctx, id, product.CategoryIDs)

	updated, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload product: %w", err)
	}

	return updated, nil
}

// GetByID returns a single product
func (s *productService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// List returns every product
func (s *productService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepo.List(ctx)
}

// Categories expands the product's category_ids into the categories that
// still exist
func (s *productService) Categories(ctx context.Context, id string) ([]*domain.Category, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.categoryRepo.FindByIDs(ctx, product.CategoryIDs)
}
