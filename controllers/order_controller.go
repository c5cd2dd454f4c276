package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodie-finder/middleware"
	"foodie-finder/models"
	"foodie-finder/services"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// List godoc
// @Summary Order history
// @Description The session's completed orders, newest first
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *OrderController) List(c *gin.Context) {
	orders := ctrl.orderService.List(middleware.UserID(c))
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Orders retrieved successfully", Data: orders})
}
