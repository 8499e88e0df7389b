package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order represents a placed order. ProductIDs is the cart content and may
// contain the same product more than once.
type Order struct {
	ID         primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Date       time.Time          `json:"date" bson:"date"`
	ProductIDs []string           `json:"product_ids" bson:"product_ids"`
	Total      float64            `json:"total" bson:"total"`
}
