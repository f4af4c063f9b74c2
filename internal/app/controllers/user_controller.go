package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillsphere/skillsphere/internal/app/models/dto"
	"github.com/skillsphere/skillsphere/internal/app/services"
	"github.com/skillsphere/skillsphere/internal/middleware"
)

// avatarFormField is the multipart field carrying the avatar upload
const avatarFormField = "avatar"

// UserController handles profile reads and updates
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetProfile returns the caller's profile with counters and achievements
// @Summary Get profile
// @Description Returns the caller's profile with course and certificate counters plus earned achievements
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse "Profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	profile, err := c.userService.GetProfile(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// UpdateProfile applies a partial profile update with an optional avatar
// @Summary Update profile
// @Description Applies the provided multipart form fields; absent fields are left untouched. An uploaded avatar replaces the current one.
// @Tags users
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string false "Display name"
// @Param bio formData string false "Short bio"
// @Param avatar formData file false "Avatar image"
// @Success 200 {object} dto.ProfileResponse "Profile updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request data"))
		return
	}

	avatarFile, err := ctx.FormFile(avatarFormField)
	if err != nil && err != http.ErrMissingFile {
		avatarFile = nil
	}

	profile, err := c.userService.UpdateProfile(ctx, middleware.CurrentUserID(ctx), &req, avatarFile)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}
