package controllers

import (
	"errors"
	"net/http"

	"foodie-finder/models"
)

// errorStatus maps domain errors onto HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrCartItemNotFound),
		errors.Is(err, models.ErrNotificationNotFound),
		errors.Is(err, models.ErrRestaurantNotFound),
		errors.Is(err, models.ErrCheckoutNotActive):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidQuantity),
		errors.Is(err, models.ErrInvalidPaymentMethod),
		errors.Is(err, models.ErrInvalidNotificationCategory),
		errors.Is(err, models.ErrPaymentMethodRequired):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrPaymentDeclined):
		return http.StatusPaymentRequired
	case errors.Is(err, models.ErrCartEmpty),
		errors.Is(err, models.ErrCheckoutActive),
		errors.Is(err, models.ErrInvalidTransition):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
