package models

// CartItem is one line in a cart. ID refers to the catalog entry it was
// added from; at most one line exists per ID.
type CartItem struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Restaurant string  `json:"restaurant"`
}

// Cart holds the items a user intends to purchase, in insertion order.
// It is owned by a single session; callers serialize access through the
// session lock.
type Cart struct {
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem merges by catalog ID: an existing line gets its quantity bumped by
// one and keeps its stored name/price, a new line is inserted with quantity
// forced to 1 no matter what the caller passed.
func (c *Cart) AddItem(item CartItem) {
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			return
		}
	}
	item.Quantity = 1
	c.items = append(c.items, item)
}

// UpdateQuantity sets the quantity of the line with the given ID. Zero
// removes the line. Negative quantities are rejected with
// ErrInvalidQuantity, unknown IDs with ErrCartItemNotFound.
func (c *Cart) UpdateQuantity(id, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	for i := range c.items {
		if c.items[i].ID != id {
			continue
		}
		if quantity == 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = quantity
		}
		return nil
	}
	return ErrCartItemNotFound
}

func (c *Cart) Clear() {
	c.items = nil
}

// ItemCount is the sum of all line quantities, used for the badge count.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) Subtotal() float64 {
	sum := 0.0
	for _, item := range c.items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns a copy so holders cannot bypass the mutation methods.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}
