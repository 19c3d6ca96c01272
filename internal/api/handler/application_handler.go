package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/strahovochka/insurance-system/internal/api/metrics"
	"github.com/strahovochka/insurance-system/internal/core/domain"
	"github.com/strahovochka/insurance-system/internal/core/ports"
)

// ApplicationHandler handles application listing, submission and the
// status transition.
type ApplicationHandler struct {
	apps ports.ApplicationService
}

func NewApplicationHandler(apps ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

type applicationsResponse struct {
	Applications []domain.Application `json:"applications"`
}

type createApplicationRequest struct {
	InsuranceTypeID  int64           `json:"insurance_type_id" validate:"required"`
	InsuranceSubtype string          `json:"insurance_subtype" validate:"required"`
	Details          domain.Document `json:"details" validate:"required"`
}

type createApplicationResponse struct {
	Message       string `json:"message"`
	ApplicationID int64  `json:"application_id"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// List returns the applications visible to the caller: a client sees their
// own, a manager sees assigned-or-unassigned, an admin sees everything.
//
// @Summary      List applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  applicationsResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/applications [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	apps, err := h.apps.List(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applicationsResponse{Applications: apps})
}

// Create submits a new application for the caller. The client id always
// comes from the session, never from the body.
//
// @Summary      Submit an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createApplicationRequest  true  "Application details"
// @Success      201   {object}  createApplicationResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/applications [post]
func (h *ApplicationHandler) Create(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req createApplicationRequest
	bindLenient(c, &req)
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.apps.Create(c.Request().Context(), sess, ports.CreateApplicationInput{
		InsuranceTypeID:  req.InsuranceTypeID,
		InsuranceSubtype: req.InsuranceSubtype,
		Details:          req.Details,
	})
	if err != nil {
		return err
	}
	metrics.ApplicationsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, createApplicationResponse{
		Message:       "application created",
		ApplicationID: id,
	})
}

// UpdateStatus transitions an application. Admin and manager only; the
// acting user is recorded as the processing manager.
//
// @Summary      Update application status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Application id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/applications/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid application id")
	}

	var req updateStatusRequest
	bindLenient(c, &req)
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status := domain.ApplicationStatus(req.Status)
	if err := h.apps.UpdateStatus(c.Request().Context(), sess, id, status); err != nil {
		return err
	}
	metrics.ApplicationStatusTotal.WithLabelValues(string(status)).Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "status updated"})
}
