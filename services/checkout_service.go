package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"foodie-finder/libs"
	"foodie-finder/models"
	"foodie-finder/repositories"
	"foodie-finder/utils"
)

// PaymentGateway authorizes a payment for the given amount. Redirect-style
// methods resolve after an external confirmation round-trip; card payments
// resolve inline.
type PaymentGateway interface {
	Authorize(method models.PaymentMethod, card models.CardDetails, amount float64) error
}

// SimulatedGateway stands in for a real payment provider. Redirect methods
// always confirm after Delay. Card payments approve unless the number ends
// in the sandbox decline suffix.
type SimulatedGateway struct {
	Delay time.Duration
}

// Sandbox convention: cards ending in 0002 are declined.
const declineSuffix = "0002"

func (g SimulatedGateway) Authorize(method models.PaymentMethod, card models.CardDetails, amount float64) error {
	if method.Redirect() {
		if g.Delay > 0 {
			time.Sleep(g.Delay)
		}
		return nil
	}
	if strings.HasSuffix(card.Number, declineSuffix) {
		return models.ErrPaymentDeclined
	}
	return nil
}

// RedirectResult is delivered when a deferred redirect confirmation lands.
type RedirectResult struct {
	Order *models.Order
	Err   error
}

type CheckoutService struct {
	sessions    *repositories.SessionRepository
	gateway     PaymentGateway
	deliveryFee float64
	taxRate     float64
}

func NewCheckoutService(sessions *repositories.SessionRepository, gateway PaymentGateway, deliveryFee, taxRate float64) *CheckoutService {
	return &CheckoutService{
		sessions:    sessions,
		gateway:     gateway,
		deliveryFee: deliveryFee,
		taxRate:     taxRate,
	}
}

// Start opens a checkout for the user's cart, snapshotting the subtotal and
// pricing constants. Fails if the cart is empty or a checkout is already
// open.
func (s *CheckoutService) Start(userID int) (*models.CheckoutSession, error) {
	sess := s.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()

	if sess.Checkout != nil {
		return nil, models.ErrCheckoutActive
	}
	if sess.Cart.IsEmpty() {
		return nil, models.ErrCartEmpty
	}

	sess.Checkout = &models.CheckoutSession{
		State:       models.StateAddressEntry,
		Subtotal:    sess.Cart.Subtotal(),
		DeliveryFee: s.deliveryFee,
		TaxRate:     s.taxRate,
		StartedAt:   time.Now(),
	}
	return s.snapshot(sess), nil
}

func (s *CheckoutService) Current(userID int) (*models.CheckoutSession, error) {
	sess := s.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()

	if sess.Checkout == nil {
		return nil, models.ErrCheckoutNotActive
	}
	return s.snapshot(sess), nil
}

// SetAddress records the delivery address. Free text; nothing is validated.
func (s *CheckoutService) SetAddress(userID int, addr models.DeliveryAddress) error {
	sess := s.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()

	if sess.Checkout == nil {
		return models.ErrCheckoutNotActive
	}
	if sess.Checkout.State != models.StateAddressEntry {
		return fmt.Errorf("%w: set address from %s", models.ErrInvalidTransition, sess.Checkout.State)
	}
	sess.Checkout.Address = addr
	return nil
}

// SelectPayment records the payment method and, for cards, the captured
// details. Card fields are stored as given; no format or checksum checks.
func (s *CheckoutService) SelectPayment(userID int, method models.PaymentMethod, card models.CardDetails) error {
	sess := s.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()

	if sess.Checkout == nil {
		return models.ErrCheckoutNotActive
	}
	if sess.Checkout.State != models.StatePaymentSelection {
		return fmt.Errorf("%w: select payment from %s", models.ErrInvalidTransition, sess.Checkout.State)
	}
	if !method.Valid() {
		return models.ErrInvalidPaymentMethod
	}
	sess.Checkout.Method = method
	if method == models.PaymentCard {
		sess.Checkout.Card = card
	} else {
		sess.Checkout.Card = models.CardDetails{}
	}
	return nil
}

func (s *CheckoutService) Advance(userID int) (*models.CheckoutSession, error) {
	return s.apply(userID, models.ActionAdvance)
}

// Back steps to the previous screen; entered data is preserved.
func (s *CheckoutService) Back(userID int) (*models.CheckoutSession, error) {
	return s.apply(userID, models.ActionBack)
}

// Retry moves a failed payment back to payment selection. The cart was never
// touched, so the user can pick another method and confirm again.
func (s *CheckoutService) Retry(userID int) (*models.CheckoutSession, error) {
	return s.apply(userID, models.ActionRetryPayment)
}

func (s *CheckoutService) apply(userID int, action models.CheckoutAction) (*models.CheckoutSession, error) {
	sess := s.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()

	if sess.Checkout == nil {
		return nil, models.ErrCheckoutNotActive
	}
	next, err := models.Transition(sess.Checkout.State, action, sess.Checkout.Method)
	if err != nil {
		return nil, err
	}
	sess.Checkout.State = next
	return s.snapshot(sess), nil
}

// Confirm settles a card checkout from the review screen. A decline moves
// the flow to the failed state and leaves the cart intact; approval writes
// the order, notifies, clears the cart and closes the flow.
func (s *CheckoutService) Confirm(userID int) (*models.Order, error) {
	sess := s.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()

	if sess.Checkout == nil {
		return nil, models.ErrCheckoutNotActive
	}
	cs := sess.Checkout
	if cs.State != models.StateReviewAndConfirm {
		return nil, fmt.Errorf("%w: confirm from %s", models.ErrInvalidTransition, cs.State)
	}

	if err := s.gateway.Authorize(cs.Method, cs.Card, cs.Total()); err != nil {
		cs.State, _ = models.Transition(cs.State, models.ActionPaymentDeclined, cs.Method)
		return nil, err
	}

	cs.State, _ = models.Transition(cs.State, models.ActionConfirm, cs.Method)
	return s.finalize(sess), nil
}

// ConfirmRedirect kicks off the deferred confirmation for paypal/applepay.
// It returns immediately with a channel that resolves once the simulated
// provider round-trip finishes. There is no cancellation or timeout once
// started.
func (s *CheckoutService) ConfirmRedirect(userID int) (<-chan RedirectResult, error) {
	sess := s.sessions.Get(userID)
	sess.Lock()

	if sess.Checkout == nil {
		sess.Unlock()
		return nil, models.ErrCheckoutNotActive
	}
	cs := sess.Checkout
	if cs.State != models.StatePaymentSelection || !cs.Method.Redirect() {
		state := cs.State
		sess.Unlock()
		return nil, fmt.Errorf("%w: redirect confirm from %s", models.ErrInvalidTransition, state)
	}
	method, card, total := cs.Method, cs.Card, cs.Total()
	sess.Unlock()

	done := make(chan RedirectResult, 1)
	go func() {
		err := s.gateway.Authorize(method, card, total)

		sess.Lock()
		defer sess.Unlock()

		// The confirmation may land after the user cancelled, or cancelled
		// and opened a new checkout. It only applies to the session it was
		// started from.
		if sess.Checkout != cs {
			done <- RedirectResult{Err: models.ErrCheckoutNotActive}
			return
		}
		if err != nil {
			cs.State, _ = models.Transition(cs.State, models.ActionPaymentDeclined, method)
			done <- RedirectResult{Err: err}
			return
		}
		next, err := models.Transition(cs.State, models.ActionConfirm, method)
		if err != nil {
			done <- RedirectResult{Err: err}
			return
		}
		cs.State = next
		done <- RedirectResult{Order: s.finalize(sess)}
	}()
	return done, nil
}

// Cancel discards the checkout session. Cart and notifications stay as they
// are.
func (s *CheckoutService) Cancel(userID int) error {
	sess := s.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()

	if sess.Checkout == nil {
		return models.ErrCheckoutNotActive
	}
	if _, err := models.Transition(sess.Checkout.State, models.ActionCancel, sess.Checkout.Method); err != nil {
		return err
	}
	sess.Checkout = nil
	return nil
}

// finalize runs with the session lock held and the checkout in the completed
// state: write the history record, emit exactly one order notification,
// clear the cart and drop the checkout session.
func (s *CheckoutService) finalize(sess *repositories.Session) *models.Order {
	cs := sess.Checkout
	total := utils.Round2(cs.Total())

	order := models.Order{
		Number:        "ORD-" + uuid.NewString(),
		Status:        models.OrderInProgress,
		PaymentMethod: cs.Method,
		Address:       cs.Address,
		Subtotal:      utils.Round2(cs.Subtotal),
		DeliveryFee:   utils.Round2(cs.DeliveryFee),
		Tax:           utils.Round2(cs.Tax()),
		Total:         total,
		PlacedAt:      time.Now(),
	}
	for _, item := range sess.Cart.Items() {
		order.Items = append(order.Items, models.OrderItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}
	sess.Orders = append([]models.Order{order}, sess.Orders...)

	title, message := confirmationCopy(cs.Method, total)
	sess.Notifications.Add(models.CategoryOrder, title, message)
	libs.NotificationsCreated.WithLabelValues(string(models.CategoryOrder)).Inc()

	sess.Cart.Clear()
	sess.Checkout = nil

	libs.OrdersCompleted.WithLabelValues(string(order.PaymentMethod)).Inc()
	return &order
}

func confirmationCopy(method models.PaymentMethod, total float64) (title, message string) {
	switch method {
	case models.PaymentPayPal:
		return "PayPal Order Confirmed!",
			fmt.Sprintf("Your PayPal payment for $%.2f has been processed successfully.", total)
	case models.PaymentApplePay:
		return "Apple Pay Order Confirmed!",
			fmt.Sprintf("Your Apple Pay payment for $%.2f has been processed successfully.", total)
	default:
		return "Order Confirmed!",
			fmt.Sprintf("Your order for $%.2f has been confirmed and is being prepared.", total)
	}
}

// snapshot copies the checkout so callers never hold a reference into the
// session.
func (s *CheckoutService) snapshot(sess *repositories.Session) *models.CheckoutSession {
	copied := *sess.Checkout
	return &copied
}
