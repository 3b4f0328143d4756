package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spyojana/subsidy-portal/internal/core/domain"
	"github.com/spyojana/subsidy-portal/internal/repository"
	"github.com/spyojana/subsidy-portal/internal/usecase"
)

// ApplicationHandler exposes the solar pump application endpoints. Submission
// is public; listing and review are admin-only and guarded by middleware at
// route registration.
type ApplicationHandler struct {
	submissions *usecase.SubmissionService
}

func NewApplicationHandler(submissions *usecase.SubmissionService) *ApplicationHandler {
	return &ApplicationHandler{submissions: submissions}
}

// Create godoc
// @Summary Submit a solar pump subsidy application
// @Tags Applications
// @Accept json
// @Produce json
// @Param request body ApplicationRequest true "Application payload"
// @Success 201 {object} SubmissionAcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/applications [post]
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "All fields are required"))
		return
	}

	app, err := h.submissions.SubmitApplication(c.Request.Context(), usecase.ApplicationInput{
		FullName:     req.FullName,
		FatherName:   req.FatherName,
		Village:      req.Village,
		District:     req.District,
		State:        req.State,
		Mobile:       req.Mobile,
		AadharNumber: req.AadharNumber,
	})
	if err != nil {
		RespondWithMappedError(c, err, nil,
			http.StatusInternalServerError, "Failed to submit application")
		return
	}

	c.JSON(http.StatusCreated, SubmissionAcceptedResponse{
		ID:      app.ID,
		Message: "Application submitted successfully",
	})
}

// List godoc
// @Summary List all solar pump applications, newest first
// @Tags Applications
// @Produce json
// @Param Authorization header string true "Bearer access token"
// @Success 200 {array} ApplicationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.submissions.ListApplications(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "Failed to fetch applications"))
		return
	}

	out := make([]ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, newApplicationResponse(app))
	}

	c.JSON(http.StatusOK, out)
}

// Get godoc
// @Summary Fetch a single solar pump application
// @Tags Applications
// @Produce json
// @Param Authorization header string true "Bearer access token"
// @Param id path string true "Application ID"
// @Success 200 {object} ApplicationResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	app, err := h.submissions.GetApplication(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: repository.ErrNotFound, Status: http.StatusNotFound, Message: "Application not found"},
		}, http.StatusInternalServerError, "Failed to fetch application")
		return
	}

	c.JSON(http.StatusOK, newApplicationResponse(*app))
}

// UpdateStatus godoc
// @Summary Move a solar pump application to a new review state
// @Tags Applications
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer access token"
// @Param id path string true "Application ID"
// @Param request body StatusUpdateRequest true "Target status"
// @Success 200 {object} ApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "Invalid status"))
		return
	}

	app, err := h.submissions.UpdateApplicationStatus(c.Request.Context(), c.Param("id"), domain.Status(req.Status))
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: usecase.ErrInvalidStatus, Status: http.StatusBadRequest, Message: "Invalid status"},
			{Err: repository.ErrNotFound, Status: http.StatusNotFound, Message: "Application not found"},
		}, http.StatusInternalServerError, "Failed to update status")
		return
	}

	c.JSON(http.StatusOK, newApplicationResponse(*app))
}
