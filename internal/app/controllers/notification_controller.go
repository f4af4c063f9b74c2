package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillsphere/skillsphere/internal/app/models/dto"
	"github.com/skillsphere/skillsphere/internal/app/services"
	"github.com/skillsphere/skillsphere/internal/middleware"
)

// NotificationController serves deadline notifications
type NotificationController struct {
	notificationService *services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// ListNotifications refreshes and returns the caller's notifications
// @Summary List notifications
// @Description Derives deadline reminders for courses ending within seven days, then returns all notifications newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Notification "Notifications retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notifications [get]
func (c *NotificationController) ListNotifications(ctx *gin.Context) {
	notifications, err := c.notificationService.ListNotifications(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, notifications)
}

// MarkRead marks one notification as read
// @Summary Mark a notification read
// @Description Marks the caller's notification as read; unknown ids are a no-op
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID" Format(int64) minimum(1)
// @Success 200 {object} dto.MessageResponse "Notification marked as read"
// @Failure 400 {object} dto.ErrorResponse "Invalid notification ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notifications/{id}/read [patch]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	notificationID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || notificationID <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Notification ID must be a valid number"))
		return
	}

	if err := c.notificationService.MarkRead(ctx, middleware.CurrentUserID(ctx), notificationID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Notification marked as read"})
}
