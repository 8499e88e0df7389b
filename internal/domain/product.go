package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product represents a product in the catalog
type Product struct {
	ID          primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	ImageURL    string             `json:"image_url" bson:"image_url"`
	CategoryIDs []string           `json:"category_ids" bson:"category_ids"`
	// OrderIDs is maintained as a side effect of order creation and never
	// leaves the service.
	OrderIDs []string `json:"-" bson:"order_ids,omitempty"`
}

// Category represents a product category
type Category struct {
	ID         primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	ProductIDs []string           `json:"product_ids" bson:"product_ids"`
}
