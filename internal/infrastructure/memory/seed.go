package memory

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/invenflow/invenflow-api/internal/core/domain"
)

// Stores bundles every in-memory repository behind one seedable unit.
type Stores struct {
	Users     *UserRepository
	Products  *ProductRepository
	Orders    *OrderRepository
	Suppliers *SupplierRepository
	Reviews   *ReviewRepository
	Movements *MovementRepository
	Carts     *CartRepository
}

// NewStores builds empty repositories.
func NewStores() *Stores {
	return &Stores{
		Users:     NewUserRepository(),
		Products:  NewProductRepository(),
		Orders:    NewOrderRepository(),
		Suppliers: NewSupplierRepository(),
		Reviews:   NewReviewRepository(),
		Movements: NewMovementRepository(),
		Carts:     NewCartRepository(),
	}
}

// Seed loads the demo accounts, catalog, orders, suppliers, reviews, and
// movements.
func (s *Stores) Seed(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	for _, u := range seedUsers {
		u.PasswordHash = string(hash)
		if err := s.Users.Create(ctx, &u); err != nil {
			return err
		}
	}
	for _, p := range seedProducts {
		if err := s.Products.Create(ctx, &p); err != nil {
			return err
		}
	}
	for _, o := range seedOrders {
		if err := s.Orders.Create(ctx, &o); err != nil {
			return err
		}
	}
	for _, sup := range seedSuppliers {
		if err := s.Suppliers.Create(ctx, &sup); err != nil {
			return err
		}
	}
	for _, rev := range seedReviews {
		if err := s.Reviews.Create(ctx, &rev); err != nil {
			return err
		}
	}
	for _, m := range seedMovements {
		if err := s.Movements.Create(ctx, &m); err != nil {
			return err
		}
	}
	return nil
}

func day(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

// seedPassword is shared by the seeded managed accounts. The canned demo
// identities are not seeded here; they sign in through the demo fallback in
// the auth service, which only applies to emails no stored account claims.
const seedPassword = "password123"

var seedUsers = []domain.User{
	{ID: "customer-2", Name: "Emily Johnson", Email: "emily.johnson@example.com", Role: domain.RoleCustomer, Active: true, CreatedAt: day("2025-02-03")},
	{ID: "customer-3", Name: "Michael Brown", Email: "michael.brown@example.com", Role: domain.RoleCustomer, Active: true, CreatedAt: day("2025-02-11")},
	{ID: "customer-4", Name: "Robert Davis", Email: "robert.davis@example.com", Role: domain.RoleCustomer, Active: true, CreatedAt: day("2025-02-19")},
	{ID: "supplier-2", Name: "Laura Chen", Email: "laura.chen@highlandroasters.com", Role: domain.RoleSupplier, Active: true, CreatedAt: day("2025-01-28")},
}

// Product SupplierID carries the supplier *account* id: the dashboard and the
// supplier_id list filter scope by the signed-in account.
var seedProducts = []domain.Product{
	{ID: "PROD-1234", Name: "Organic Green Tea", SKU: "TEA-001", Category: "Beverages", Stock: 150, Price: 12.99, SupplierID: "supplier-1"},
	{ID: "PROD-2345", Name: "Coffee Beans (Dark Roast)", SKU: "COF-101", Category: "Beverages", Stock: 30, Price: 18.50, SupplierID: "supplier-1"},
	{ID: "PROD-3456", Name: "Whole Grain Pasta", SKU: "PASTA-201", Category: "Dry Goods", Stock: 245, Price: 3.99, SupplierID: "supplier-2"},
	{ID: "PROD-4567", Name: "Extra Virgin Olive Oil", SKU: "OIL-301", Category: "Oils & Vinegars", Stock: 75, Price: 15.75, SupplierID: "supplier-2"},
	{ID: "PROD-5678", Name: "Artisan Honey", SKU: "HONEY-401", Category: "Sweeteners", Stock: 0, Price: 9.99, SupplierID: "supplier-2"},
}

var seedOrders = []domain.Order{
	{
		ID: "ORD-1234", CustomerID: "customer-1", CustomerName: "Jane Smith",
		Date: day("2025-04-10"), Total: 145.99, Status: domain.OrderDelivered,
		Items: []domain.OrderItem{
			{ProductID: "PROD-1234", Name: "Organic Green Tea", Quantity: 2, Price: 12.99},
			{ProductID: "PROD-3456", Name: "Whole Grain Pasta", Quantity: 3, Price: 3.99},
		},
	},
	{
		ID: "ORD-1235", CustomerID: "customer-2", CustomerName: "Emily Johnson",
		Date: day("2025-04-08"), Total: 89.50, Status: domain.OrderShipped,
		Items: []domain.OrderItem{
			{ProductID: "PROD-2345", Name: "Coffee Beans (Dark Roast)", Quantity: 1, Price: 18.50},
			{ProductID: "PROD-4567", Name: "Extra Virgin Olive Oil", Quantity: 1, Price: 15.75},
			{ProductID: "PROD-3456", Name: "Whole Grain Pasta", Quantity: 2, Price: 3.99},
		},
	},
	{
		ID: "ORD-1236", CustomerID: "customer-3", CustomerName: "Michael Brown",
		Date: day("2025-04-05"), Total: 215.75, Status: domain.OrderProcessing,
		Items: []domain.OrderItem{
			{ProductID: "PROD-1234", Name: "Organic Green Tea", Quantity: 5, Price: 12.99},
			{ProductID: "PROD-4567", Name: "Extra Virgin Olive Oil", Quantity: 3, Price: 15.75},
			{ProductID: "PROD-2345", Name: "Coffee Beans (Dark Roast)", Quantity: 4, Price: 18.50},
		},
	},
	{
		ID: "ORD-1237", CustomerID: "customer-1", CustomerName: "Jane Smith",
		Date: day("2025-04-03"), Total: 56.97, Status: domain.OrderPending,
		Items: []domain.OrderItem{
			{ProductID: "PROD-3456", Name: "Whole Grain Pasta", Quantity: 5, Price: 3.99},
			{ProductID: "PROD-1234", Name: "Organic Green Tea", Quantity: 3, Price: 12.99},
		},
	},
	{
		ID: "ORD-1238", CustomerID: "customer-4", CustomerName: "Robert Davis",
		Date: day("2025-04-01"), Total: 124.25, Status: domain.OrderDelivered,
		Items: []domain.OrderItem{
			{ProductID: "PROD-2345", Name: "Coffee Beans (Dark Roast)", Quantity: 2, Price: 18.50},
			{ProductID: "PROD-4567", Name: "Extra Virgin Olive Oil", Quantity: 3, Price: 15.75},
			{ProductID: "PROD-1234", Name: "Organic Green Tea", Quantity: 1, Price: 12.99},
		},
	},
}

var seedSuppliers = []domain.Supplier{
	{ID: "SUP-001", Name: "Highland Roasters", Contact: "Laura Chen", Email: "orders@highlandroasters.com", Phone: "+1 555 0134", Active: true},
	{ID: "SUP-002", Name: "Mediterraneo Foods", Contact: "Paolo Ricci", Email: "sales@mediterraneofoods.com", Phone: "+1 555 0178", Active: true},
	{ID: "SUP-003", Name: "Golden Hive Co.", Contact: "Sam Walker", Email: "hello@goldenhive.co", Active: true},
}

var seedReviews = []domain.Review{
	{
		ID: "REV-0001", ProductID: "PROD-1234", CustomerID: "customer-1", CustomerName: "Jane Smith",
		Rating: 5, Comment: "Fresh and aromatic, the best green tea I've ordered online.",
		CreatedAt: day("2025-04-12"),
	},
	{
		ID: "REV-0002", ProductID: "PROD-2345", CustomerID: "customer-2", CustomerName: "Emily Johnson",
		Rating: 4, Comment: "Great roast, though the bag arrived slightly dented.",
		CreatedAt: day("2025-04-09"),
	},
}

var seedMovements = []domain.StockMovement{
	{ID: "MOV-0001", ProductID: "PROD-3456", ProductName: "Whole Grain Pasta", Type: domain.MovementIn, Quantity: 100, Date: day("2025-04-02")},
	{ID: "MOV-0002", ProductID: "PROD-2345", ProductName: "Coffee Beans (Dark Roast)", Type: domain.MovementOut, Quantity: 10, Date: day("2025-04-04")},
	{ID: "MOV-0003", ProductID: "PROD-5678", ProductName: "Artisan Honey", Type: domain.MovementOut, Quantity: 12, Date: day("2025-04-06")},
}
