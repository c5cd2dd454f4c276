package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodie-finder/middleware"
	"foodie-finder/models"
	"foodie-finder/services"
)

type NotificationController struct {
	notificationService *services.NotificationService
}

func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// List godoc
// @Summary List notifications
// @Description Notifications newest-first with the unread count
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /notifications [get]
func (ctrl *NotificationController) List(c *gin.Context) {
	result := ctrl.notificationService.List(middleware.UserID(c))
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Notifications retrieved successfully", Data: result})
}

// Add godoc
// @Summary Add a notification
// @Tags Notifications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddNotificationRequest true "Notification"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /notifications [post]
func (ctrl *NotificationController) Add(c *gin.Context) {
	var req models.AddNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	n, err := ctrl.notificationService.Add(middleware.UserID(c), models.NotificationCategory(req.Category), req.Title, req.Message)
	if err != nil {
		c.JSON(errorStatus(err), models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Notification added", Data: n})
}

// MarkAsRead godoc
// @Summary Mark a notification as read
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /notifications/{id}/read [patch]
func (ctrl *NotificationController) MarkAsRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid notification id"})
		return
	}

	if err := ctrl.notificationService.MarkAsRead(middleware.UserID(c), id); err != nil {
		c.JSON(errorStatus(err), models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Notification marked as read"})
}
