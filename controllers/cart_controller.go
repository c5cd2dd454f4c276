package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodie-finder/middleware"
	"foodie-finder/models"
	"foodie-finder/services"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// GetCart godoc
// @Summary Get cart
// @Description Get the current cart with item count and subtotal
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart := ctrl.cartService.Get(middleware.UserID(c))
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart retrieved successfully", Data: cart})
}

// AddItem godoc
// @Summary Add item to cart
// @Description Add a catalog item; adding the same item again increments its quantity
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Cart Item"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	cart := ctrl.cartService.AddItem(middleware.UserID(c), models.CartItem{
		ID:         req.ID,
		Name:       req.Name,
		Price:      req.Price,
		Quantity:   req.Quantity,
		Restaurant: req.Restaurant,
	})
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Item added to cart", Data: cart})
}

// UpdateQuantity godoc
// @Summary Update item quantity
// @Description Set an item's quantity; zero removes the item
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body models.UpdateQuantityRequest true "Quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid item id"})
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	cart, err := ctrl.cartService.UpdateQuantity(middleware.UserID(c), itemID, *req.Quantity)
	if err != nil {
		c.JSON(errorStatus(err), models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Quantity updated", Data: cart})
}

// ClearCart godoc
// @Summary Clear cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	cart := ctrl.cartService.Clear(middleware.UserID(c))
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart cleared", Data: cart})
}
