package models

import "time"

type OrderStatus string

const (
	OrderInProgress OrderStatus = "in-progress"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// Order is a history record written when a checkout completes.
type Order struct {
	Number        string          `json:"number"`
	Status        OrderStatus     `json:"status"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Address       DeliveryAddress `json:"address"`
	Subtotal      float64         `json:"subtotal"`
	DeliveryFee   float64         `json:"delivery_fee"`
	Tax           float64         `json:"tax"`
	Total         float64         `json:"total"`
	Items         []OrderItem     `json:"items"`
	PlacedAt      time.Time       `json:"placed_at"`
}

type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
