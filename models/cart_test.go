package models

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAddItemMergesByID(t *testing.T) {
	cart := NewCart()

	for i := 0; i < 3; i++ {
		// Quantity and price on later adds must be ignored.
		cart.AddItem(CartItem{ID: 1, Name: "Big Mac", Price: 5.99, Quantity: 10, Restaurant: "McDonald's"})
	}

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", items[0].Quantity)
	}
	if !almostEqual(items[0].Price, 5.99) {
		t.Fatalf("expected stored price 5.99, got %v", items[0].Price)
	}
}

func TestAddItemForcesQuantityToOne(t *testing.T) {
	cart := NewCart()
	cart.AddItem(CartItem{ID: 7, Name: "Fries", Price: 3.99, Quantity: 42})

	if got := cart.ItemCount(); got != 1 {
		t.Fatalf("expected item count 1, got %d", got)
	}
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		id        int
		quantity  int
		wantErr   error
		wantCount int
	}{
		{name: "set quantity", id: 1, quantity: 5, wantCount: 6},
		{name: "zero removes", id: 1, quantity: 0, wantCount: 1},
		{name: "negative rejected", id: 1, quantity: -1, wantErr: ErrInvalidQuantity, wantCount: 2},
		{name: "missing id", id: 99, quantity: 2, wantErr: ErrCartItemNotFound, wantCount: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart()
			cart.AddItem(CartItem{ID: 1, Name: "Big Mac", Price: 5.99})
			cart.AddItem(CartItem{ID: 2, Name: "Fries", Price: 3.99})

			err := cart.UpdateQuantity(tt.id, tt.quantity)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if got := cart.ItemCount(); got != tt.wantCount {
				t.Fatalf("expected item count %d, got %d", tt.wantCount, got)
			}
		})
	}
}

func TestUpdateQuantityZeroExcludesFromCount(t *testing.T) {
	cart := NewCart()
	cart.AddItem(CartItem{ID: 1, Name: "Big Mac", Price: 5.99})
	cart.AddItem(CartItem{ID: 2, Name: "Fries", Price: 3.99})

	if err := cart.UpdateQuantity(1, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cart.ItemCount(); got != 1 {
		t.Fatalf("expected item count 1 after removal, got %d", got)
	}
	for _, item := range cart.Items() {
		if item.ID == 1 {
			t.Fatal("removed item still present")
		}
	}
}

func TestSubtotalScenario(t *testing.T) {
	cart := NewCart()
	cart.AddItem(CartItem{ID: 1, Name: "Big Mac", Price: 5.99, Restaurant: "McDonald's"})
	cart.AddItem(CartItem{ID: 1, Name: "Big Mac", Price: 5.99, Restaurant: "McDonald's"})
	cart.AddItem(CartItem{ID: 2, Name: "Fries", Price: 3.99, Restaurant: "McDonald's"})

	if got := cart.Subtotal(); !almostEqual(got, 15.97) {
		t.Fatalf("expected subtotal 15.97, got %v", got)
	}

	if err := cart.UpdateQuantity(1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cart.Subtotal(); !almostEqual(got, 9.98) {
		t.Fatalf("expected subtotal 9.98, got %v", got)
	}
}

func TestSubtotalOrderIndependence(t *testing.T) {
	// Two adds then an update lands on the same subtotal as a single add
	// updated to the same final quantity.
	a := NewCart()
	a.AddItem(CartItem{ID: 1, Price: 5.99})
	a.AddItem(CartItem{ID: 1, Price: 5.99})
	if err := a.UpdateQuantity(1, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b := NewCart()
	b.AddItem(CartItem{ID: 1, Price: 5.99})
	if err := b.UpdateQuantity(1, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(a.Subtotal(), b.Subtotal()) {
		t.Fatalf("subtotals differ: %v vs %v", a.Subtotal(), b.Subtotal())
	}
}

func TestClearResetsDerivedValues(t *testing.T) {
	cart := NewCart()
	cart.AddItem(CartItem{ID: 1, Price: 5.99})
	cart.AddItem(CartItem{ID: 2, Price: 3.99})

	cart.Clear()

	if got := cart.ItemCount(); got != 0 {
		t.Fatalf("expected item count 0, got %d", got)
	}
	if got := cart.Subtotal(); got != 0 {
		t.Fatalf("expected subtotal 0, got %v", got)
	}
	if !cart.IsEmpty() {
		t.Fatal("expected cart to be empty")
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	cart := NewCart()
	cart.AddItem(CartItem{ID: 3, Name: "McFlurry", Price: 3.49})
	cart.AddItem(CartItem{ID: 1, Name: "Big Mac", Price: 5.99})
	cart.AddItem(CartItem{ID: 2, Name: "Fries", Price: 3.99})
	cart.AddItem(CartItem{ID: 3, Name: "McFlurry", Price: 3.49})

	want := []int{3, 1, 2}
	items := cart.Items()
	if len(items) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(items))
	}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("position %d: expected id %d, got %d", i, id, items[i].ID)
		}
	}
}
