package models

// Catalog records are seeded at startup and immutable for the process
// lifetime.

type Review struct {
	ID      int     `json:"id"`
	User    string  `json:"user"`
	Avatar  string  `json:"avatar"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
	Date    string  `json:"date"`
}

type Restaurant struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Image        string   `json:"image"`
	Rating       float64  `json:"rating"`
	Price        string   `json:"price"`
	Cuisine      string   `json:"cuisine"`
	DeliveryTime string   `json:"delivery_time"`
	DeliveryFee  string   `json:"delivery_fee"`
	Address      string   `json:"address"`
	Featured     bool     `json:"featured"`
	MustTry      string   `json:"must_try"`
	Location     string   `json:"location"`
	Reviews      []Review `json:"reviews"`
}

type MenuItem struct {
	ID           int     `json:"id"`
	RestaurantID int     `json:"restaurant_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	Popular      bool    `json:"popular"`
}

type Deal struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	Merchant        string  `json:"merchant"`
	Image           string  `json:"image"`
	Description     string  `json:"description"`
	OriginalPrice   float64 `json:"original_price"`
	DiscountedPrice float64 `json:"discounted_price"`
	ExpiryDate      string  `json:"expiry_date"`
	Code            string  `json:"code,omitempty"`
}

type PickupLocation struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Image           string  `json:"image"`
	Rating          float64 `json:"rating"`
	Address         string  `json:"address"`
	Distance        string  `json:"distance"`
	PreparationTime string  `json:"preparation_time"`
	IsOpen          bool    `json:"is_open"`
	OpenUntil       string  `json:"open_until"`
}
