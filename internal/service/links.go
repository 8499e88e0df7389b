package service

import (
	"context"
	"errors"

	"catalog-orders/internal/repository"

	"go.uber.org/zap"
)

// RelationshipMaintainer keeps the denormalized back-references in step with
// the primary writes. Every link is a best-effort set-add: failures are
// logged and never reach the caller, and nothing is rolled back.
type RelationshipMaintainer interface {
	LinkProductToCategories(ctx context.Context, productID string, categoryIDs []string)
	LinkOrderToProducts(ctx context.Context, orderID string, productIDs []string)
}

type relationshipMaintainer struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       *zap.Logger
}

// NewRelationshipMaintainer creates a new RelationshipMaintainer
func NewRelationshipMaintainer(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	logger *zap.Logger,
) RelationshipMaintainer {
	return &relationshipMaintainer{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// LinkProductToCategories adds productID to each category's product_ids
func (m *relationshipMaintainer) LinkProductToCategories(ctx context.Context, productID string, categoryIDs []string) {
	for _, categoryID := range categoryIDs {
		err := m.categoryRepo.AddProductID(ctx, categoryID, productID)
		m.logLinkError(err, "category", categoryID, "product", productID)
	}
}

// LinkOrderToProducts adds orderID to each product's order_ids. Repeated
// product ids just repeat the set-add.
func (m *relationshipMaintainer) LinkOrderToProducts(ctx context.Context, orderID string, productIDs []string) {
	for _, productID := range productIDs {
		err := m.productRepo.AddOrderID(ctx, productID, orderID)
		m.logLinkError(err, "product", productID, "order", orderID)
	}
}

func (m *relationshipMaintainer) logLinkError(err error, targetKind, targetID, refKind, refID string) {
	if err == nil {
		return
	}

	fields := []zap.Field{
		zap.String("target_kind", targetKind),
		zap.String("target_id", targetID),
		zap.String("ref_kind", refKind),
		zap.String("ref_id", refID),
		zap.Error(err),
	}

	// dangling references are expected
	if errors.Is(err, repository.ErrCategoryNotFound) || errors.Is(err, repository.ErrProductNotFound) {
		m.logger.Debug("Skipped link to missing document", fields...)
		return
	}

	m.logger.Warn("Failed to maintain relationship link", fields...)
}
