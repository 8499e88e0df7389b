package repository

import (
	"context"
	"errors"
	"fmt"

	"catalog-orders/internal/database"
	"catalog-orders/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	AddProductID(ctx context.Context, categoryID, productID string) error
}

type categoryRepository struct {
	collection *mongo.Collection
}

// NewCategoryRepository creates a new instance of CategoryRepository
func NewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &categoryRepository{collection: db.Collection(database.CategoriesCollection)}
}

// Create inserts a new category. product_ids is stored as a duplicate-free
// array so later set-adds apply cleanly.
func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	category.ID = primitive.NewObjectID()
	category.ProductIDs = uniqueIDs(category.ProductIDs)

	if _, err := r.collection.InsertOne(ctx, category); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// FindByID retrieves a category by its id
func (r *categoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	category := &domain.Category{}
	err = r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID: %w", err)
	}

	return category, nil
}

// FindByIDs retrieves the categories whose ids resolve, skipping the rest
func (r *categoryRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Category, error) {
	oids := parseIDs(ids)
	if len(oids) == 0 {
		return []*domain.Category{}, nil
	}

	return r.find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}})
}

// List retrieves all categories
func (r *categoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	return r.find(ctx, bson.D{})
}

// AddProductID adds productID to the category's product_ids set
func (r *categoryRepository) AddProductID(ctx context.Context, categoryID, productID string) error {
	oid, err := parseID(categoryID)
	if err != nil {
		return err
	}

	update := bson.D{{Key: "$addToSet", Value: bson.D{{Key: "product_ids", Value: productID}}}}

	result, err := r.collection.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		return fmt.Errorf("failed to add product to category: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

func (r *categoryRepository) find(ctx context.Context, filter bson.D) ([]*domain.Category, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []*domain.Category{}
	for cursor.Next(ctx) {
		category := &domain.Category{}
		if err := cursor.Decode(category); err != nil {
			return nil, fmt.Errorf("failed to decode category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}
