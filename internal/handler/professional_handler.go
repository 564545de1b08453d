package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pulse/internal/service"
)

// ProfessionalHandler handles a rep's professional directory.
type ProfessionalHandler struct {
	professionalService service.ProfessionalService
}

// NewProfessionalHandler creates a new professional handler.
func NewProfessionalHandler(professionalService service.ProfessionalService) *ProfessionalHandler {
	return &ProfessionalHandler{professionalService: professionalService}
}

// AddProfessionalRequest represents a new contact. Only name and email are required.
type AddProfessionalRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
	Facility   string `json:"facility"`
	City       string `json:"city"`
	State      string `json:"state" validate:"omitempty,max=2"`
	Discipline string `json:"discipline"`
}

// Create godoc
// @Summary Add a professional to the caller's network
// @Tags professionals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddProfessionalRequest true "Professional"
// @Success 201 {object} model.Professional
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /professionals [post]
func (h *ProfessionalHandler) Create(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	var req AddProfessionalRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	pro, err := h.professionalService.Add(c.Request().Context(), who.ID, service.AddProfessionalInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Facility:   req.Facility,
		City:       req.City,
		State:      req.State,
		Discipline: req.Discipline,
	})
	if err != nil {
		return handleError(err)
	}
	return c.JSON(http.StatusCreated, pro)
}

// List godoc
// @Summary List the caller's professionals, newest first
// @Tags professionals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Professional
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /professionals [get]
func (h *ProfessionalHandler) List(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	pros, err := h.professionalService.List(c.Request().Context(), who.ID)
	if err != nil {
		return handleError(err)
	}
	return c.JSON(http.StatusOK, pros)
}
