package repository

import (
	"context"
	"fmt"
	"time"

	"catalog-orders/internal/database"
	"catalog-orders/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DayFormat is the calendar-day layout of histogram buckets in
// $dateToString syntax
const DayFormat = "%Y-%m-%d"

// DashboardRepository computes aggregate figures over the orders collection.
// Each figure is an independent query.
type DashboardRepository interface {
	CountOrders(ctx context.Context) (int64, error)
	AverageOrderTotal(ctx context.Context) (float64, error)
	SumOrderTotals(ctx context.Context) (float64, error)
	DailyOrderCounts(ctx context.Context, since time.Time, timezone string) ([]domain.DailyOrderCount, error)
}

type dashboardRepository struct {
	orders *mongo.Collection
}

// NewDashboardRepository creates a new instance of DashboardRepository
func NewDashboardRepository(db *mongo.Database) DashboardRepository {
	return &dashboardRepository{orders: db.Collection(database.OrdersCollection)}
}

// CountOrders counts all orders
func (r *dashboardRepository) CountOrders(ctx context.Context) (int64, error) {
	count, err := r.orders.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// AverageOrderTotal returns the mean order total, 0 when there are no orders
func (r *dashboardRepository) AverageOrderTotal(ctx context.Context) (float64, error) {
	return r.groupTotal(ctx, "$avg")
}

// SumOrderTotals returns the sum of order totals, 0 when there are no orders
func (r *dashboardRepository) SumOrderTotals(ctx context.Context) (float64, error) {
	return r.groupTotal(ctx, "$sum")
}

func (r *dashboardRepository) groupTotal(ctx context.Context, accumulator string) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "value", Value: bson.D{{Key: accumulator, Value: "$total"}}},
		}}},
	}

	cursor, err := r.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate order totals: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Value float64 `bson:"value"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode order totals: %w", err)
	}

	// no orders, no group
	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Value, nil
}

// DailyOrderCounts groups orders placed at or after since by calendar day in
// the given timezone. Days without orders are absent; days are ascending.
func (r *dashboardRepository) DailyOrderCounts(ctx context.Context, since time.Time, timezone string) ([]domain.DailyOrderCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "date", Value: bson.D{{Key: "$gte", Value: since}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: DayFormat},
				{Key: "date", Value: "$date"},
				{Key: "timezone", Value: timezone},
			}}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily orders: %w", err)
	}
	defer cursor.Close(ctx)

	counts := []domain.DailyOrderCount{}
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode daily orders: %w", err)
	}

	return counts, nil
}
