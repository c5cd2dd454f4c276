package models

import "errors"

var (
	ErrCartItemNotFound            = errors.New("cart item not found")
	ErrInvalidQuantity             = errors.New("quantity must be a positive integer")
	ErrNotificationNotFound        = errors.New("notification not found")
	ErrInvalidNotificationCategory = errors.New("invalid notification category")
	ErrCartEmpty                   = errors.New("cart is empty")
	ErrCheckoutActive              = errors.New("checkout already in progress")
	ErrCheckoutNotActive           = errors.New("no checkout in progress")
	ErrPaymentMethodRequired       = errors.New("payment method required")
	ErrInvalidPaymentMethod        = errors.New("invalid payment method")
	ErrPaymentDeclined             = errors.New("payment declined")
	ErrInvalidTransition           = errors.New("invalid checkout transition")
	ErrRestaurantNotFound          = errors.New("restaurant not found")
)

// AuthError wraps any failure at the identity boundary. Callers only check
// for presence and show the message; they never branch on the cause.
type AuthError struct {
	Op  string
	Err error
}

func (e *AuthError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
