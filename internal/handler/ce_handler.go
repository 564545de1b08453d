package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pulse/internal/service"
)

// CEHandler handles CE course sends.
type CEHandler struct {
	ceService service.CEService
}

// NewCEHandler creates a new CE handler.
func NewCEHandler(ceService service.CEService) *CEHandler {
	return &CEHandler{ceService: ceService}
}

// SendRequest represents a CE send. Missing fields are reported by the service as MISSING_FIELDS.
type SendRequest struct {
	ProfessionalID  string `json:"professionalId"`
	RepID           string `json:"repId"`
	CourseID        string `json:"courseId"`
	Discount        string `json:"discount" example:"100% Free"`
	PersonalMessage string `json:"personalMessage" validate:"max=2000"`
}

// CeSendRequest references an existing CE send.
type CeSendRequest struct {
	CeSendID string `json:"ceSendId"`
}

// Send godoc
// @Summary Send a CE course with a single-use coupon
// @Description Creates the store coupon, records the send and a touchpoint, then emails the professional.
// @Tags ce
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SendRequest true "Send"
// @Success 200 {object} service.SendResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /ce/send [post]
func (h *CEHandler) Send(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	var req SendRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	res, err := h.ceService.Send(c.Request().Context(), who.ID, service.SendInput{
		ProfessionalID:  req.ProfessionalID,
		RepID:           req.RepID,
		CourseID:        req.CourseID,
		Discount:        req.Discount,
		PersonalMessage: req.PersonalMessage,
	})
	if err != nil {
		return handleError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// MarkRedeemed godoc
// @Summary Mark a received course as redeemed
// @Tags ce
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CeSendRequest true "CE send"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /ce/mark-redeemed [post]
func (h *CEHandler) MarkRedeemed(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	var req CeSendRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	if err := h.ceService.MarkRedeemed(c.Request().Context(), who.ID, req.CeSendID); err != nil {
		return handleError(err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// MyCourses godoc
// @Summary List the courses sent to the caller
// @Tags ce
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.MyCourse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /ce/my-courses [get]
func (h *CEHandler) MyCourses(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	courses, err := h.ceService.MyCourses(c.Request().Context(), who.ID)
	if err != nil {
		return handleError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"list": courses})
}

// SendReminder godoc
// @Summary Email a reminder for an earlier send
// @Tags ce
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CeSendRequest true "CE send"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /ce/send-reminder [post]
func (h *CEHandler) SendReminder(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	var req CeSendRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	if err := h.ceService.SendReminder(c.Request().Context(), who.ID, req.CeSendID); err != nil {
		return handleError(err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// History godoc
// @Summary List the caller's sends, newest first
// @Tags ce
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.HistoryItem
// @Failure 401 {object} errors.ErrorResponse
// @Router /ce/history [get]
func (h *CEHandler) History(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	items, err := h.ceService.History(c.Request().Context(), who.ID)
	if err != nil {
		return handleError(err)
	}
	return c.JSON(http.StatusOK, items)
}
