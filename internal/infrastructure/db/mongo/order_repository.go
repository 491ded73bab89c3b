package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

const ordersCollection = "orders"

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(ordersCollection)}
}

type orderItemDoc struct {
	ProductID string  `bson:"product_id"`
	Name      string  `bson:"name"`
	Quantity  int     `bson:"quantity"`
	Price     float64 `bson:"price"`
}

type orderDoc struct {
	ID           string         `bson:"_id"`
	CustomerID   string         `bson:"customer_id"`
	CustomerName string         `bson:"customer_name"`
	Date         int64          `bson:"date"`
	Total        float64        `bson:"total"`
	Status       string         `bson:"status"`
	Items        []orderItemDoc `bson:"items"`
}

func toOrderDoc(o *domain.Order) orderDoc {
	items := make([]orderItemDoc, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemDoc(item))
	}
	return orderDoc{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		Date:         o.Date.Unix(),
		Total:        o.Total,
		Status:       string(o.Status),
		Items:        items,
	}
}

func (d orderDoc) toDomain() *domain.Order {
	items := make([]domain.OrderItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, domain.OrderItem(item))
	}
	return &domain.Order{
		ID:           d.ID,
		CustomerID:   d.CustomerID,
		CustomerName: d.CustomerName,
		Date:         unixToTime(d.Date),
		Total:        d.Total,
		Status:       domain.OrderStatus(d.Status),
		Items:        items,
	}
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc orderDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *OrderRepository) List(ctx context.Context, filter ports.ListOrdersFilter) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.CustomerID != "" {
		query["customer_id"] = filter.CustomerID
	}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.Search != "" {
		pattern := bson.M{"$regex": filter.Search, "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"_id": pattern},
			bson.M{"customer_name": pattern},
			bson.M{"status": pattern},
		}
	}

	// Newest first, matching the order list every role sees.
	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []*domain.Order
	for cursor.Next(ctx) {
		var doc orderDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, doc.toDomain())
	}
	return orders, cursor.Err()
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, toOrderDoc(o)); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// EnsureIndexes creates the lookup indexes on the orders collection.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: -1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
