package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spyojana/subsidy-portal/internal/core/domain"
	"github.com/spyojana/subsidy-portal/internal/repository"
	"github.com/spyojana/subsidy-portal/internal/usecase"
)

// PumpApplicationHandler exposes the submersible pump application endpoints.
type PumpApplicationHandler struct {
	submissions *usecase.SubmissionService
}

func NewPumpApplicationHandler(submissions *usecase.SubmissionService) *PumpApplicationHandler {
	return &PumpApplicationHandler{submissions: submissions}
}

// Create godoc
// @Summary Submit a submersible pump subsidy application
// @Tags PumpApplications
// @Accept json
// @Produce json
// @Param request body PumpApplicationRequest true "Pump application payload"
// @Success 201 {object} SubmissionAcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/pump-applications [post]
func (h *PumpApplicationHandler) Create(c *gin.Context) {
	var req PumpApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "All fields are required"))
		return
	}

	app, err := h.submissions.SubmitPumpApplication(c.Request.Context(), usecase.PumpApplicationInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		Pin:       req.Pin,
		PumpPower: req.PumpPower,
	})
	if err != nil {
		RespondWithMappedError(c, err, nil,
			http.StatusInternalServerError, "Failed to submit pump application")
		return
	}

	c.JSON(http.StatusCreated, SubmissionAcceptedResponse{
		ID:      app.ID,
		Message: "Pump application submitted successfully",
	})
}

// List godoc
// @Summary List all submersible pump applications, newest first
// @Tags PumpApplications
// @Produce json
// @Param Authorization header string true "Bearer access token"
// @Success 200 {array} PumpApplicationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/pump-applications [get]
func (h *PumpApplicationHandler) List(c *gin.Context) {
	apps, err := h.submissions.ListPumpApplications(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "Failed to fetch pump applications"))
		return
	}

	out := make([]PumpApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, newPumpApplicationResponse(app))
	}

	c.JSON(http.StatusOK, out)
}

// Get godoc
// @Summary Fetch a single submersible pump application
// @Tags PumpApplications
// @Produce json
// @Param Authorization header string true "Bearer access token"
// @Param id path string true "Pump application ID"
// @Success 200 {object} PumpApplicationResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/pump-applications/{id} [get]
func (h *PumpApplicationHandler) Get(c *gin.Context) {
	app, err := h.submissions.GetPumpApplication(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: repository.ErrNotFound, Status: http.StatusNotFound, Message: "Pump application not found"},
		}, http.StatusInternalServerError, "Failed to fetch pump application")
		return
	}

	c.JSON(http.StatusOK, newPumpApplicationResponse(*app))
}

// UpdateStatus godoc
// @Summary Move a submersible pump application to a new review state
// @Tags PumpApplications
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer access token"
// @Param id path string true "Pump application ID"
// @Param request body StatusUpdateRequest true "Target status"
// @Success 200 {object} PumpApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/pump-applications/{id}/status [patch]
func (h *PumpApplicationHandler) UpdateStatus(c *gin.Context) {
	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "Invalid status"))
		return
	}

	app, err := h.submissions.UpdatePumpApplicationStatus(c.Request.Context(), c.Param("id"), domain.Status(req.Status))
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: usecase.ErrInvalidStatus, Status: http.StatusBadRequest, Message: "Invalid status"},
			{Err: repository.ErrNotFound, Status: http.StatusNotFound, Message: "Pump application not found"},
		}, http.StatusInternalServerError, "Failed to update status")
		return
	}

	c.JSON(http.StatusOK, newPumpApplicationResponse(*app))
}
