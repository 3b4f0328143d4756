package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spyojana/subsidy-portal/internal/usecase"
)

// AuthHandler exposes the admin login endpoint.
type AuthHandler struct {
	auth *usecase.AuthService
}

func NewAuthHandler(auth *usecase.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterRoutes wires the auth endpoints into the provided group.
func (h *AuthHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/login", h.Login)
}

// Login godoc
// @Summary Authenticate an admin account
// @Description Validates credentials and returns a bearer token for the admin dashboard.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "Email and password are required"))
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: usecase.ErrMissingCredentials, Status: http.StatusBadRequest, Message: "Email and password are required"},
			{Err: usecase.ErrInvalidCredentials, Status: http.StatusUnauthorized, Message: "Invalid email or password"},
		}, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:     result.Token,
		User:      newUserSummary(result.User),
		ExpiresIn: result.ExpiresIn,
	})
}
