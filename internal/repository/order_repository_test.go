package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"catalog-orders/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestOrderRepository_CreateAndFind(t *testing.T) {
	resetCollections(t)
	orderRepo := NewOrderRepository(testDB)
	ctx := context.Background()

	productID := primitive.NewObjectID().Hex()
	date := time.Date(2026, 10, 12, 15, 30, 0, 0, time.UTC)
	order := &domain.Order{
		Date:       date,
		ProductIDs: []string{productID, productID},
		Total:      5.5,
	}

	if err := orderRepo.Create(ctx, order); err != nil {
		t.Fatalf("Failed to create order: %v", err)
	}

	retrieved, err := orderRepo.FindByID(ctx, order.ID.Hex())
	if err != nil {
		t.Fatalf("Failed to retrieve order: %v", err)
	}

	if !retrieved.Date.Equal(date) {
		t.Errorf("Expected date %s, got %s", date, retrieved.Date)
	}
	if len(retrieved.ProductIDs) != 2 {
		t.Errorf("Duplicate cart entries must be kept, got %v", retrieved.ProductIDs)
	}
	if retrieved.Total != 5.5 {
		t.Errorf("Expected total 5.5, got %f", retrieved.Total)
	}
}

func TestOrderRepository_FindByIDErrors(t *testing.T) {
	resetCollections(t)
	orderRepo := NewOrderRepository(testDB)
	ctx := context.Background()

	if _, err := orderRepo.FindByID(ctx, primitive.NewObjectID().Hex()); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("Expected ErrOrderNotFound, got %v", err)
	}
	if _, err := orderRepo.FindByID(ctx, "12345"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Expected ErrInvalidID, got %v", err)
	}
}

func TestOrderRepository_List(t *testing.T) {
	resetCollections(t)
	orderRepo := NewOrderRepository(testDB)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if err := orderRepo.Create(ctx, &domain.Order{Date: time.Now(), Total: float64(i)}); err != nil {
			t.Fatalf("Failed to create order: %v", err)
		}
	}

	orders, err := orderRepo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(orders) != 4 {
		t.Errorf("Expected 4 orders, got %d", len(orders))
	}
}
