package services

import (
	"errors"
	"testing"

	"foodie-finder/models"
	"foodie-finder/repositories"
)

func TestCartServiceSessionsAreIsolated(t *testing.T) {
	carts := NewCartService(repositories.NewSessionRepository())

	carts.AddItem(1, models.CartItem{ID: 1, Name: "Big Mac", Price: 5.99})
	carts.AddItem(2, models.CartItem{ID: 2, Name: "Fries", Price: 3.99})

	if got := carts.Get(1); got.ItemCount != 1 || got.Items[0].ID != 1 {
		t.Fatalf("user 1 cart wrong: %+v", got)
	}
	if got := carts.Get(2); got.ItemCount != 1 || got.Items[0].ID != 2 {
		t.Fatalf("user 2 cart wrong: %+v", got)
	}

	carts.Clear(1)
	if got := carts.Get(2); got.ItemCount != 1 {
		t.Fatalf("clearing user 1 touched user 2: %+v", got)
	}
}

func TestCartServiceUpdateQuantityErrors(t *testing.T) {
	carts := NewCartService(repositories.NewSessionRepository())
	carts.AddItem(1, models.CartItem{ID: 1, Name: "Big Mac", Price: 5.99})

	if _, err := carts.UpdateQuantity(1, 99, 2); !errors.Is(err, models.ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
	if _, err := carts.UpdateQuantity(1, 1, -3); !errors.Is(err, models.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}
