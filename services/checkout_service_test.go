package services

import (
	"errors"
	"math"
	"testing"

	"foodie-finder/models"
	"foodie-finder/repositories"
)

const testUser = 1

func newCheckoutFixture(gateway PaymentGateway) (*repositories.SessionRepository, *CartService, *CheckoutService, *NotificationService) {
	sessions := repositories.NewSessionRepository()
	return sessions,
		NewCartService(sessions),
		NewCheckoutService(sessions, gateway, 2.99, 0.08),
		NewNotificationService(sessions)
}

// seedCart puts a single 7.99 item at quantity 3 in the cart: subtotal 23.97.
func seedCart(t *testing.T, carts *CartService) {
	t.Helper()
	carts.AddItem(testUser, models.CartItem{ID: 1, Name: "Whopper", Price: 7.99, Restaurant: "Hungry Jack's"})
	if _, err := carts.UpdateQuantity(testUser, 1, 3); err != nil {
		t.Fatalf("seeding cart: %v", err)
	}
}

func TestCardCheckoutHappyPath(t *testing.T) {
	_, carts, checkouts, notifications := newCheckoutFixture(SimulatedGateway{})
	seedCart(t, carts)

	cs, err := checkouts.Start(testUser)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if cs.State != models.StateAddressEntry {
		t.Fatalf("expected address entry, got %s", cs.State)
	}
	if math.Abs(cs.Subtotal-23.97) > 1e-9 {
		t.Fatalf("expected subtotal snapshot 23.97, got %v", cs.Subtotal)
	}

	if err := checkouts.SetAddress(testUser, models.DeliveryAddress{Street: "1 Collins St", City: "Melbourne", State: "VIC", PostalCode: "3000"}); err != nil {
		t.Fatalf("set address: %v", err)
	}
	if _, err := checkouts.Advance(testUser); err != nil {
		t.Fatalf("advance to payment: %v", err)
	}
	if err := checkouts.SelectPayment(testUser, models.PaymentCard, models.CardDetails{Number: "4242424242424242", Expiry: "12/27", CVV: "123", Name: "Jane Doe"}); err != nil {
		t.Fatalf("select payment: %v", err)
	}
	if _, err := checkouts.Advance(testUser); err != nil {
		t.Fatalf("advance to review: %v", err)
	}

	order, err := checkouts.Confirm(testUser)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if math.Abs(order.Total-28.86) > 1e-9 {
		t.Fatalf("expected total 28.86, got %v", order.Total)
	}
	if order.Tax != 1.92 {
		t.Fatalf("expected tax rounded to cents, got %v", order.Tax)
	}
	if order.Subtotal != 23.97 || order.DeliveryFee != 2.99 {
		t.Fatalf("expected rounded money fields, got subtotal %v fee %v", order.Subtotal, order.DeliveryFee)
	}

	list := notifications.List(testUser)
	if len(list.Notifications) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(list.Notifications))
	}
	if list.Notifications[0].Category != models.CategoryOrder {
		t.Fatalf("expected order category, got %s", list.Notifications[0].Category)
	}

	if got := carts.Get(testUser); got.ItemCount != 0 || got.Subtotal != 0 {
		t.Fatalf("expected empty cart after checkout, got %+v", got)
	}
	if _, err := checkouts.Current(testUser); !errors.Is(err, models.ErrCheckoutNotActive) {
		t.Fatalf("expected checkout to be closed, got %v", err)
	}
}

func TestStartRequiresItems(t *testing.T) {
	_, _, checkouts, _ := newCheckoutFixture(SimulatedGateway{})

	if _, err := checkouts.Start(testUser); !errors.Is(err, models.ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestStartTwiceFails(t *testing.T) {
	_, carts, checkouts, _ := newCheckoutFixture(SimulatedGateway{})
	seedCart(t, carts)

	if _, err := checkouts.Start(testUser); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := checkouts.Start(testUser); !errors.Is(err, models.ErrCheckoutActive) {
		t.Fatalf("expected ErrCheckoutActive, got %v", err)
	}
}

func TestCancelLeavesCartAndNotifications(t *testing.T) {
	_, carts, checkouts, notifications := newCheckoutFixture(SimulatedGateway{})
	seedCart(t, carts)
	if _, err := notifications.Add(testUser, models.CategoryOffer, "2 for 1", "deal"); err != nil {
		t.Fatalf("add notification: %v", err)
	}

	if _, err := checkouts.Start(testUser); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := checkouts.Cancel(testUser); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if got := carts.Get(testUser); got.ItemCount != 3 {
		t.Fatalf("expected cart untouched, got count %d", got.ItemCount)
	}
	if got := notifications.List(testUser); len(got.Notifications) != 1 {
		t.Fatalf("expected notifications untouched, got %d", len(got.Notifications))
	}
	if _, err := checkouts.Current(testUser); !errors.Is(err, models.ErrCheckoutNotActive) {
		t.Fatalf("expected checkout discarded, got %v", err)
	}
}

func TestBackPreservesEnteredData(t *testing.T) {
	_, carts, checkouts, _ := newCheckoutFixture(SimulatedGateway{})
	seedCart(t, carts)

	if _, err := checkouts.Start(testUser); err != nil {
		t.Fatalf("start: %v", err)
	}
	addr := models.DeliveryAddress{Street: "1 Collins St", City: "Melbourne", State: "VIC", PostalCode: "3000"}
	if err := checkouts.SetAddress(testUser, addr); err != nil {
		t.Fatalf("set address: %v", err)
	}
	if _, err := checkouts.Advance(testUser); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if err := checkouts.SelectPayment(testUser, models.PaymentCard, models.CardDetails{Number: "4242424242424242"}); err != nil {
		t.Fatalf("select payment: %v", err)
	}

	if _, err := checkouts.Back(testUser); err != nil {
		t.Fatalf("back: %v", err)
	}
	cs, err := checkouts.Current(testUser)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if cs.State != models.StateAddressEntry {
		t.Fatalf("expected address entry, got %s", cs.State)
	}
	if cs.Address != addr {
		t.Fatalf("expected address preserved, got %+v", cs.Address)
	}
	if cs.Method != models.PaymentCard {
		t.Fatalf("expected method preserved, got %q", cs.Method)
	}
}

func TestCardDeclineThenRetry(t *testing.T) {
	_, carts, checkouts, notifications := newCheckoutFixture(SimulatedGateway{})
	seedCart(t, carts)

	if _, err := checkouts.Start(testUser); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := checkouts.Advance(testUser); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if err := checkouts.SelectPayment(testUser, models.PaymentCard, models.CardDetails{Number: "4000000000000002"}); err != nil {
		t.Fatalf("select payment: %v", err)
	}
	if _, err := checkouts.Advance(testUser); err != nil {
		t.Fatalf("advance: %v", err)
	}

	if _, err := checkouts.Confirm(testUser); !errors.Is(err, models.ErrPaymentDeclined) {
		t.Fatalf("expected decline, got %v", err)
	}

	cs, err := checkouts.Current(testUser)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if cs.State != models.StatePaymentFailed {
		t.Fatalf("expected payment failed, got %s", cs.State)
	}
	if got := carts.Get(testUser); got.ItemCount != 3 {
		t.Fatalf("expected cart untouched after decline, got count %d", got.ItemCount)
	}
	if got := notifications.List(testUser); len(got.Notifications) != 0 {
		t.Fatalf("expected no notification on decline, got %d", len(got.Notifications))
	}

	if _, err := checkouts.Retry(testUser); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if err := checkouts.SelectPayment(testUser, models.PaymentCard, models.CardDetails{Number: "4242424242424242"}); err != nil {
		t.Fatalf("select payment: %v", err)
	}
	if _, err := checkouts.Advance(testUser); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if _, err := checkouts.Confirm(testUser); err != nil {
		t.Fatalf("confirm after retry: %v", err)
	}
}

func TestRedirectCheckout(t *testing.T) {
	_, carts, checkouts, notifications := newCheckoutFixture(SimulatedGateway{})
	seedCart(t, carts)

	if _, err := checkouts.Start(testUser); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := checkouts.Advance(testUser); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if err := checkouts.SelectPayment(testUser, models.PaymentPayPal, models.CardDetails{}); err != nil {
		t.Fatalf("select payment: %v", err)
	}

	done, err := checkouts.ConfirmRedirect(testUser)
	if err != nil {
		t.Fatalf("confirm redirect: %v", err)
	}
	result := <-done
	if result.Err != nil {
		t.Fatalf("redirect result: %v", result.Err)
	}
	if math.Abs(result.Order.Total-28.86) > 1e-9 {
		t.Fatalf("expected total 28.86, got %v", result.Order.Total)
	}

	list := notifications.List(testUser)
	if len(list.Notifications) != 1 {
		t.Fatalf("expected one notification, got %d", len(list.Notifications))
	}
	if list.Notifications[0].Title != "PayPal Order Confirmed!" {
		t.Fatalf("unexpected title %q", list.Notifications[0].Title)
	}
	if got := carts.Get(testUser); got.ItemCount != 0 {
		t.Fatalf("expected empty cart, got count %d", got.ItemCount)
	}
}

func TestRedirectRequiresRedirectMethod(t *testing.T) {
	_, carts, checkouts, _ := newCheckoutFixture(SimulatedGateway{})
	seedCart(t, carts)

	if _, err := checkouts.Start(testUser); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := checkouts.Advance(testUser); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if err := checkouts.SelectPayment(testUser, models.PaymentCard, models.CardDetails{Number: "4242424242424242"}); err != nil {
		t.Fatalf("select payment: %v", err)
	}

	if _, err := checkouts.ConfirmRedirect(testUser); !errors.Is(err, models.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

// declineGateway rejects everything, standing in for a provider outage.
type declineGateway struct{}

func (declineGateway) Authorize(models.PaymentMethod, models.CardDetails, float64) error {
	return models.ErrPaymentDeclined
}

func TestRedirectDeclineMovesToFailed(t *testing.T) {
	_, carts, checkouts, _ := newCheckoutFixture(declineGateway{})
	seedCart(t, carts)

	if _, err := checkouts.Start(testUser); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := checkouts.Advance(testUser); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if err := checkouts.SelectPayment(testUser, models.PaymentApplePay, models.CardDetails{}); err != nil {
		t.Fatalf("select payment: %v", err)
	}

	done, err := checkouts.ConfirmRedirect(testUser)
	if err != nil {
		t.Fatalf("confirm redirect: %v", err)
	}
	result := <-done
	if !errors.Is(result.Err, models.ErrPaymentDeclined) {
		t.Fatalf("expected decline, got %v", result.Err)
	}

	cs, err := checkouts.Current(testUser)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if cs.State != models.StatePaymentFailed {
		t.Fatalf("expected payment failed, got %s", cs.State)
	}
	if got := carts.Get(testUser); got.ItemCount != 3 {
		t.Fatalf("expected cart untouched, got count %d", got.ItemCount)
	}
}

// blockingGateway holds every authorization until release is closed, so a
// test can interleave other calls with a pending redirect confirmation.
type blockingGateway struct {
	release chan struct{}
}

func (g *blockingGateway) Authorize(models.PaymentMethod, models.CardDetails, float64) error {
	<-g.release
	return nil
}

func TestStaleRedirectConfirmationDoesNotTouchNewCheckout(t *testing.T) {
	gateway := &blockingGateway{release: make(chan struct{})}
	sessions, carts, checkouts, notifications := newCheckoutFixture(gateway)
	seedCart(t, carts)

	if _, err := checkouts.Start(testUser); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := checkouts.Advance(testUser); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if err := checkouts.SelectPayment(testUser, models.PaymentPayPal, models.CardDetails{}); err != nil {
		t.Fatalf("select payment: %v", err)
	}

	done, err := checkouts.ConfirmRedirect(testUser)
	if err != nil {
		t.Fatalf("confirm redirect: %v", err)
	}

	// Abandon the flow and open a fresh checkout while the provider
	// round-trip is still in flight.
	if err := checkouts.Cancel(testUser); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := checkouts.Start(testUser); err != nil {
		t.Fatalf("restart: %v", err)
	}

	close(gateway.release)
	result := <-done
	if !errors.Is(result.Err, models.ErrCheckoutNotActive) {
		t.Fatalf("expected stale confirmation to be dropped, got order %+v err %v", result.Order, result.Err)
	}
	if result.Order != nil {
		t.Fatalf("expected no order from stale confirmation, got %+v", result.Order)
	}

	cs, err := checkouts.Current(testUser)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if cs.State != models.StateAddressEntry {
		t.Fatalf("expected fresh checkout untouched, got %s", cs.State)
	}
	if got := carts.Get(testUser); got.ItemCount != 3 {
		t.Fatalf("expected cart untouched, got count %d", got.ItemCount)
	}
	if got := notifications.List(testUser); len(got.Notifications) != 0 {
		t.Fatalf("expected no notification, got %d", len(got.Notifications))
	}

	history := NewOrderService(sessions).List(testUser)
	if len(history) != 0 {
		t.Fatalf("expected no orders, got %d", len(history))
	}
}

func TestOrderHistoryNewestFirst(t *testing.T) {
	sessions, carts, checkouts, _ := newCheckoutFixture(SimulatedGateway{})
	orders := NewOrderService(sessions)

	for i := 0; i < 2; i++ {
		seedCart(t, carts)
		if _, err := checkouts.Start(testUser); err != nil {
			t.Fatalf("start: %v", err)
		}
		if _, err := checkouts.Advance(testUser); err != nil {
			t.Fatalf("advance: %v", err)
		}
		if err := checkouts.SelectPayment(testUser, models.PaymentCard, models.CardDetails{Number: "4242424242424242"}); err != nil {
			t.Fatalf("select payment: %v", err)
		}
		if _, err := checkouts.Advance(testUser); err != nil {
			t.Fatalf("advance: %v", err)
		}
		if _, err := checkouts.Confirm(testUser); err != nil {
			t.Fatalf("confirm: %v", err)
		}
	}

	history := orders.List(testUser)
	if len(history) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(history))
	}
	if history[0].PlacedAt.Before(history[1].PlacedAt) {
		t.Fatal("expected newest order first")
	}
	if history[0].Number == history[1].Number {
		t.Fatal("expected unique order numbers")
	}
}
