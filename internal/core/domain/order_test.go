package domain

import "testing"

func TestOrderStatus_Transitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderPending, OrderProcessing, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderDelivered, false},
		{OrderProcessing, OrderShipped, true},
		{OrderProcessing, OrderCancelled, true},
		{OrderShipped, OrderDelivered, true},
		{OrderShipped, OrderCancelled, false},
		{OrderDelivered, OrderShipped, false},
		{OrderCancelled, OrderPending, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestOrderStatus_Cancellable(t *testing.T) {
	open := []OrderStatus{OrderPending, OrderProcessing}
	closed := []OrderStatus{OrderShipped, OrderDelivered, OrderCancelled}

	for _, s := range open {
		if !s.Cancellable() {
			t.Fatalf("expected %s to be cancellable", s)
		}
	}
	for _, s := range closed {
		if s.Cancellable() {
			t.Fatalf("expected %s to not be cancellable", s)
		}
	}
}

func TestProduct_StockStatus(t *testing.T) {
	if got := (Product{Stock: 150}).StockStatus(); got != StockIn {
		t.Fatalf("expected %s, got %s", StockIn, got)
	}
	if got := (Product{Stock: 30}).StockStatus(); got != StockLow {
		t.Fatalf("expected %s, got %s", StockLow, got)
	}
	if got := (Product{Stock: 0}).StockStatus(); got != StockOut {
		t.Fatalf("expected %s, got %s", StockOut, got)
	}
}

func TestCart_Total(t *testing.T) {
	cart := Cart{
		CustomerID: "customer-1",
		Items: []CartItem{
			{ProductID: "PROD-1234", Price: 12.99, Quantity: 2},
			{ProductID: "PROD-3456", Price: 3.99, Quantity: 3},
		},
	}

	want := 12.99*2 + 3.99*3
	if got := cart.Total(); got != want {
		t.Fatalf("expected total %.2f, got %.2f", want, got)
	}
	if cart.Empty() {
		t.Fatalf("cart with items reported empty")
	}
	if !(Cart{}).Empty() {
		t.Fatalf("zero cart not reported empty")
	}
}
