package models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required,min=3"`
	Phone    string `json:"phone" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest carries the identity asserted by the external provider.
// The token is accepted as-is; verification belongs to the provider.
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Name    string `json:"name"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type AddCartItemRequest struct {
	ID         int     `json:"id" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Price      float64 `json:"price" binding:"min=0"`
	Quantity   int     `json:"quantity"`
	Restaurant string  `json:"restaurant"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type SetAddressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

type SelectPaymentRequest struct {
	Method string `json:"method" binding:"required"`
	Card   struct {
		Number string `json:"number"`
		Expiry string `json:"expiry"`
		CVV    string `json:"cvv"`
		Name   string `json:"name"`
	} `json:"card"`
}

type AddNotificationRequest struct {
	Category string `json:"category" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

type CartResponse struct {
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"item_count"`
	Subtotal  float64    `json:"subtotal"`
}

type CheckoutResponse struct {
	State       string          `json:"state"`
	Address     DeliveryAddress `json:"address"`
	Method      PaymentMethod   `json:"payment_method,omitempty"`
	Subtotal    float64         `json:"subtotal"`
	DeliveryFee float64         `json:"delivery_fee"`
	Tax         float64         `json:"tax"`
	Total       float64         `json:"total"`
}

type NotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}
