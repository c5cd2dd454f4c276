package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodie-finder/middleware"
	"foodie-finder/models"
	"foodie-finder/services"
	"foodie-finder/utils"
)

type CheckoutController struct {
	checkoutService *services.CheckoutService
}

func NewCheckoutController(checkoutService *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutService: checkoutService}
}

func checkoutResponse(cs *models.CheckoutSession) models.CheckoutResponse {
	return models.CheckoutResponse{
		State:       cs.State.String(),
		Address:     cs.Address,
		Method:      cs.Method,
		Subtotal:    utils.Round2(cs.Subtotal),
		DeliveryFee: cs.DeliveryFee,
		Tax:         utils.Round2(cs.Tax()),
		Total:       utils.Round2(cs.Total()),
	}
}

// Start godoc
// @Summary Start checkout
// @Description Open a checkout session snapshotting the cart subtotal
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 201 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Start(c *gin.Context) {
	cs, err := ctrl.checkoutService.Start(middleware.UserID(c))
	if err != nil {
		c.JSON(errorStatus(err), models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Checkout started", Data: checkoutResponse(cs)})
}

// Current godoc
// @Summary Get checkout state
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /checkout [get]
func (ctrl *CheckoutController) Current(c *gin.Context) {
	cs, err := ctrl.checkoutService.Current(middleware.UserID(c))
	if err != nil {
		c.JSON(errorStatus(err), models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Checkout retrieved successfully", Data: checkoutResponse(cs)})
}

// SetAddress godoc
// @Summary Set delivery address
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.SetAddressRequest true "Delivery Address"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /checkout/address [put]
func (ctrl *CheckoutController) SetAddress(c *gin.Context) {
	var req models.SetAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	err := ctrl.checkoutService.SetAddress(middleware.UserID(c), models.DeliveryAddress{
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		c.JSON(errorStatus(err), models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Address saved"})
}

// SelectPayment godoc
// @Summary Select payment method
// @Description Choose card, paypal or applepay; card details are captured as-is
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.SelectPaymentRequest true "Payment Method"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout/payment [put]
func (ctrl *CheckoutController) SelectPayment(c *gin.Context) {
	var req models.SelectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	err := ctrl.checkoutService.SelectPayment(middleware.UserID(c), models.PaymentMethod(req.Method), models.CardDetails{
		Number: req.Card.Number,
		Expiry: req.Card.Expiry,
		CVV:    req.Card.CVV,
		Name:   req.Card.Name,
	})
	if err != nil {
		c.JSON(errorStatus(err), models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Payment method selected"})
}

// Advance godoc
// @Summary Advance to the next step
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout/advance [post]
func (ctrl *CheckoutController) Advance(c *gin.Context) {
	cs, err := ctrl.checkoutService.Advance(middleware.UserID(c))
	if err != nil {
		c.JSON(errorStatus(err), models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Checkout advanced", Data: checkoutResponse(cs)})
}

// Back godoc
// @Summary Step back, keeping entered data
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout/back [post]
func (ctrl *CheckoutController) Back(c *gin.Context) {
	cs, err := ctrl.checkoutService.Back(middleware.UserID(c))
	if err != nil {
		c.JSON(errorStatus(err), models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Checkout stepped back", Data: checkoutResponse(cs)})
}

// Confirm godoc
// @Summary Confirm a card order
// @Description Settle the order from the review step; clears the cart on success
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 402 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout/confirm [post]
func (ctrl *CheckoutController) Confirm(c *gin.Context) {
	order, err := ctrl.checkoutService.Confirm(middleware.UserID(c))
	if err != nil {
		c.JSON(errorStatus(err), models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Order confirmed", Data: order})
}

// Pay godoc
// @Summary Confirm a redirect-style payment
// @Description PayPal/Apple Pay shortcut; waits for the simulated provider confirmation
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 402 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout/pay [post]
func (ctrl *CheckoutController) Pay(c *gin.Context) {
	done, err := ctrl.checkoutService.ConfirmRedirect(middleware.UserID(c))
	if err != nil {
		c.JSON(errorStatus(err), models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	result := <-done
	if result.Err != nil {
		c.JSON(errorStatus(result.Err), models.ErrorResponse{Success: false, Message: result.Err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Order confirmed", Data: result.Order})
}

// Retry godoc
// @Summary Retry after a declined payment
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout/retry [post]
func (ctrl *CheckoutController) Retry(c *gin.Context) {
	cs, err := ctrl.checkoutService.Retry(middleware.UserID(c))
	if err != nil {
		c.JSON(errorStatus(err), models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Back to payment selection", Data: checkoutResponse(cs)})
}

// Cancel godoc
// @Summary Cancel checkout
// @Description Discard the checkout session; cart and notifications are untouched
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /checkout [delete]
func (ctrl *CheckoutController) Cancel(c *gin.Context) {
	if err := ctrl.checkoutService.Cancel(middleware.UserID(c)); err != nil {
		c.JSON(errorStatus(err), models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Checkout cancelled"})
}
