package models

import (
	"fmt"
	"time"
)

type CheckoutState int

const (
	StateAddressEntry CheckoutState = iota
	StatePaymentSelection
	StateReviewAndConfirm
	StatePaymentFailed
	StateCompleted
	StateCancelled
)

func (s CheckoutState) String() string {
	switch s {
	case StateAddressEntry:
		return "address_entry"
	case StatePaymentSelection:
		return "payment_selection"
	case StateReviewAndConfirm:
		return "review_and_confirm"
	case StatePaymentFailed:
		return "payment_failed"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	}
	return "unknown"
}

func (s CheckoutState) Terminal() bool {
	return s == StateCompleted || s == StateCancelled
}

type PaymentMethod string

const (
	PaymentCard     PaymentMethod = "card"
	PaymentPayPal   PaymentMethod = "paypal"
	PaymentApplePay PaymentMethod = "applepay"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentPayPal, PaymentApplePay:
		return true
	}
	return false
}

// Redirect reports whether the method completes through an external
// redirect-style confirmation instead of step-by-step card capture.
func (m PaymentMethod) Redirect() bool {
	return m == PaymentPayPal || m == PaymentApplePay
}

// DeliveryAddress is free text; no format validation is applied.
type DeliveryAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

// CardDetails are captured but never validated for format or checksum.
type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
	Name   string `json:"name"`
}

type CheckoutAction int

const (
	ActionAdvance CheckoutAction = iota
	ActionBack
	ActionConfirm
	ActionCancel
	ActionPaymentDeclined
	ActionRetryPayment
)

func (a CheckoutAction) String() string {
	switch a {
	case ActionAdvance:
		return "advance"
	case ActionBack:
		return "back"
	case ActionConfirm:
		return "confirm"
	case ActionCancel:
		return "cancel"
	case ActionPaymentDeclined:
		return "payment_declined"
	case ActionRetryPayment:
		return "retry_payment"
	}
	return "unknown"
}

// CheckoutSession is the ephemeral state of one checkout. The price snapshot
// is taken when the session starts and never re-reads the cart.
type CheckoutSession struct {
	State       CheckoutState   `json:"state"`
	Address     DeliveryAddress `json:"address"`
	Method      PaymentMethod   `json:"payment_method,omitempty"`
	Card        CardDetails     `json:"-"`
	Subtotal    float64         `json:"subtotal"`
	DeliveryFee float64         `json:"delivery_fee"`
	TaxRate     float64         `json:"tax_rate"`
	StartedAt   time.Time       `json:"started_at"`
}

func (cs *CheckoutSession) Tax() float64 {
	return cs.Subtotal * cs.TaxRate
}

func (cs *CheckoutSession) Total() float64 {
	return cs.Subtotal + cs.DeliveryFee + cs.Tax()
}

// Transition is the pure checkout state machine. It depends only on its
// inputs; the selected method gates the advance out of payment selection and
// enables the redirect shortcut straight to completion.
func Transition(state CheckoutState, action CheckoutAction, method PaymentMethod) (CheckoutState, error) {
	switch action {
	case ActionAdvance:
		switch state {
		case StateAddressEntry:
			return StatePaymentSelection, nil
		case StatePaymentSelection:
			if method == "" {
				return state, ErrPaymentMethodRequired
			}
			if !method.Valid() {
				return state, ErrInvalidPaymentMethod
			}
			return StateReviewAndConfirm, nil
		}
	case ActionBack:
		switch state {
		case StatePaymentSelection:
			return StateAddressEntry, nil
		case StateReviewAndConfirm:
			return StatePaymentSelection, nil
		}
	case ActionConfirm:
		if state == StateReviewAndConfirm {
			return StateCompleted, nil
		}
		// Redirect methods confirm straight from payment selection.
		if state == StatePaymentSelection && method.Redirect() {
			return StateCompleted, nil
		}
	case ActionPaymentDeclined:
		if state == StateReviewAndConfirm || state == StatePaymentSelection {
			return StatePaymentFailed, nil
		}
	case ActionRetryPayment:
		if state == StatePaymentFailed {
			return StatePaymentSelection, nil
		}
	case ActionCancel:
		if !state.Terminal() {
			return StateCancelled, nil
		}
	}
	return state, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, state)
}
