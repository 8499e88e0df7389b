package service

import (
	"context"

	"catalog-orders/internal/domain"
	"catalog-orders/internal/repository"
)

// CategoryService defines the interface for category business logic
type CategoryService interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Products(ctx context.Context, id string) ([]*domain.Product, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// Create stores the category as given; product_ids supplied by the client are
// kept and no reverse link is written
func (s *categoryService) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return s.categoryRepo.FindByID(ctx, id)
}

func (s *categoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categoryRepo.List(ctx)
}

// Products expands the category's product_ids, omitting ids that no longer
// resolve
func (s *categoryService) Products(ctx context.Context, id string) ([]*domain.Product, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.productRepo.FindByIDs(ctx, category.ProductIDs)
}
