package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spyojana/subsidy-portal/internal/core/domain"
	"github.com/spyojana/subsidy-portal/internal/transport/http/middleware"
)

// ErrorResponse represents a generic error payload with the correlation
// identifier for debugging.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// NewErrorResponse creates an error response tagged with the request ID.
func NewErrorResponse(c *gin.Context, errorMsg string) ErrorResponse {
	return ErrorResponse{
		Error:     errorMsg,
		RequestID: middleware.GetRequestID(c),
	}
}

// MessageResponse represents a simple message payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserSummary describes the admin account view returned by the login endpoint.
type UserSummary struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  domain.Role `json:"role"`
}

// LoginRequest defines the payload for the admin login endpoint. Field
// presence is validated in the service so the response carries the exact
// message the portal frontend expects.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse describes the response returned for a successful login.
type LoginResponse struct {
	Token     string      `json:"token"`
	User      UserSummary `json:"user"`
	ExpiresIn int         `json:"expires_in"`
}

// ApplicationRequest defines the public solar pump application payload.
type ApplicationRequest struct {
	FullName     string `json:"fullName"`
	FatherName   string `json:"fatherName"`
	Village      string `json:"village"`
	District     string `json:"district"`
	State        string `json:"state"`
	Mobile       string `json:"mobile"`
	AadharNumber string `json:"aadharNumber"`
}

// PumpApplicationRequest defines the public submersible pump application payload.
type PumpApplicationRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Pin       string `json:"pin"`
	PumpPower string `json:"pumpPower"`
}

// SubmissionAcceptedResponse is returned after a submission is persisted.
type SubmissionAcceptedResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// StatusUpdateRequest carries the target review state for a submission.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// ApplicationResponse is the admin-facing view of a solar pump application.
type ApplicationResponse struct {
	ID           string        `json:"id"`
	FullName     string        `json:"fullName"`
	FatherName   string        `json:"fatherName"`
	Village      string        `json:"village"`
	District     string        `json:"district"`
	State        string        `json:"state"`
	Mobile       string        `json:"mobile"`
	AadharNumber string        `json:"aadharNumber"`
	Status       domain.Status `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// PumpApplicationResponse is the admin-facing view of a submersible pump application.
type PumpApplicationResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Address   string        `json:"address"`
	City      string        `json:"city"`
	Pin       string        `json:"pin"`
	PumpPower string        `json:"pumpPower"`
	Status    domain.Status `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// PasswordChangeRequest defines the settings payload for rotating the admin password.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// EmailChangeRequest defines the settings payload for replacing the admin email.
type EmailChangeRequest struct {
	Password string `json:"password"`
	NewEmail string `json:"newEmail"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func newUserSummary(user domain.User) UserSummary {
	return UserSummary{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}

func newApplicationResponse(app domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:           app.ID,
		FullName:     app.FullName,
		FatherName:   app.FatherName,
		Village:      app.Village,
		District:     app.District,
		State:        app.State,
		Mobile:       app.Mobile,
		AadharNumber: app.AadharNumber,
		Status:       app.Status,
		CreatedAt:    app.CreatedAt,
	}
}

func newPumpApplicationResponse(app domain.PumpApplication) PumpApplicationResponse {
	return PumpApplicationResponse{
		ID:        app.ID,
		Name:      app.Name,
		Email:     app.Email,
		Phone:     app.Phone,
		Address:   app.Address,
		City:      app.City,
		Pin:       app.Pin,
		PumpPower: app.PumpPower,
		Status:    app.Status,
		CreatedAt: app.CreatedAt,
	}
}
