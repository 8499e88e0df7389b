package service

import (
	"context"

	"catalog-orders/internal/domain"
	"catalog-orders/internal/repository"
)

// OrderService defines the interface for order business logic
type OrderService interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	links     RelationshipMaintainer
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(orderRepo repository.OrderRepository, links RelationshipMaintainer) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		links:     links,
	}
}

// Create stores the order exactly as submitted (the total is not recomputed)
// and records it on every product in the cart
func (s *orderService) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.links.LinkOrderToProducts(ctx, order.ID.Hex(), order.ProductIDs)

	return order, nil
}

func (s *orderService) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.orderRepo.FindByID(ctx, id)
}

func (s *orderService) List(ctx context.Context) ([]*domain.Order, error) {
	return s.orderRepo.List(ctx)
}
