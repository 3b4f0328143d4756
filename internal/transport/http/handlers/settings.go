package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spyojana/subsidy-portal/internal/repository"
	"github.com/spyojana/subsidy-portal/internal/transport/http/middleware"
	"github.com/spyojana/subsidy-portal/internal/usecase"
)

// SettingsHandler exposes admin self-service credential endpoints. Both act
// on the authenticated caller's own account.
type SettingsHandler struct {
	settings *usecase.SettingsService
}

func NewSettingsHandler(settings *usecase.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// RegisterRoutes wires the settings endpoints into the provided group. The
// group is expected to carry the auth middleware.
func (h *SettingsHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.PUT("/password", h.ChangePassword)
	group.PUT("/email", h.ChangeEmail)
}

// ChangePassword godoc
// @Summary Rotate the authenticated admin's password
// @Tags Settings
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer access token"
// @Param request body PasswordChangeRequest true "Password change payload"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/settings/password [put]
func (h *SettingsHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetAuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, NewErrorResponse(c, "Access denied. No token provided."))
		return
	}

	var req PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "Current password and new password are required"))
		return
	}

	err := h.settings.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: usecase.ErrPasswordTooShort, Status: http.StatusBadRequest, Message: "New password must be at least 6 characters"},
			{Err: usecase.ErrCurrentPasswordInvalid, Status: http.StatusUnauthorized, Message: "Current password is incorrect"},
			{Err: repository.ErrNotFound, Status: http.StatusNotFound, Message: "User not found"},
		}, http.StatusInternalServerError, "Failed to update password")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Password updated successfully"})
}

// ChangeEmail godoc
// @Summary Replace the authenticated admin's email address
// @Tags Settings
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer access token"
// @Param request body EmailChangeRequest true "Email change payload"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/settings/email [put]
func (h *SettingsHandler) ChangeEmail(c *gin.Context) {
	userID, ok := middleware.GetAuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, NewErrorResponse(c, "Access denied. No token provided."))
		return
	}

	var req EmailChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "Password and new email are required"))
		return
	}

	err := h.settings.ChangeEmail(c.Request.Context(), userID, req.Password, req.NewEmail)
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: usecase.ErrInvalidEmail, Status: http.StatusBadRequest, Message: "Invalid email format"},
			{Err: usecase.ErrCurrentPasswordInvalid, Status: http.StatusUnauthorized, Message: "Password is incorrect"},
			{Err: usecase.ErrEmailTaken, Status: http.StatusConflict, Message: "Email already in use"},
			{Err: repository.ErrNotFound, Status: http.StatusNotFound, Message: "User not found"},
		}, http.StatusInternalServerError, "Failed to update email")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Email updated successfully"})
}
