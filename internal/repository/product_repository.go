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
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, id string, product *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	AddOrderID(ctx context.Context, productID, orderID string) error
}

type productRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *mongo.Database) ProductRepository {
	return &productRepository{collection: db.Collection(database.ProductsCollection)}
}

// Create inserts a new product and assigns its store-generated id
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	product.ID = primitive.NewObjectID()
	product.CategoryIDs = uniqueIDs(product.CategoryIDs)

	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// Update replaces the client-editable fields of a product. The order_ids
// back-references are left untouched.
func (r *productRepository) Update(ctx context.Context, id string, product *domain.Product) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	product.ID = oid
	product.CategoryIDs = uniqueIDs(product.CategoryIDs)

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: product.Name},
		{Key: "description", Value: product.Description},
		{Key: "price", Value: product.Price},
		{Key: "image_url", Value: product.ImageURL},
		{Key: "category_ids", Value: product.CategoryIDs},
	}}}

	result, err := r.collection.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrProductNotFound
	}

	return nil
}

// FindByID retrieves a product by its id
func (r *productRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{}
	err = r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return product, nil
}

// FindByIDs retrieves the products whose ids resolve. Missing or malformed ids
// are skipped without error.
func (r *productRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	oids := parseIDs(ids)
	if len(oids) == 0 {
		return []*domain.Product{}, nil
	}

	return r.find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}})
}

// List retrieves every product
func (r *productRepository) List(ctx context.Context) ([]*domain.Product, error) {
	return r.find(ctx, bson.D{})
}

// AddOrderID adds orderID to the product's order_ids set
func (r *productRepository) AddOrderID(ctx context.Context, productID, orderID string) error {
	oid, err := parseID(productID)
	if err != nil {
		return err
	}

	update := bson.D{{Key: "$addToSet", Value: bson.D{{Key: "order_ids", Value: orderID}}}}

	result, err := r.collection.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		return fmt.Errorf("failed to add order to product: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (r *productRepository) find(ctx context.Context, filter bson.D) ([]*domain.Product, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []*domain.Product{}
	for cursor.Next(ctx) {
		product := &domain.Product{}
		if err := cursor.Decode(product); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, product)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
