package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pulse/internal/model"
	"pulse/internal/service"
)

// InviteHandler lets managers grow their organization.
type InviteHandler struct {
	inviteService service.InviteService
}

// NewInviteHandler creates a new invite handler.
func NewInviteHandler(inviteService service.InviteService) *InviteHandler {
	return &InviteHandler{inviteService: inviteService}
}

// CreateInviteRequest names the role the invitee will hold.
type CreateInviteRequest struct {
	Role string `json:"role" validate:"required,oneof=rep manager"`
}

// Create godoc
// @Summary Invite a rep or manager into the caller's organization
// @Description The returned code is passed as invite_code on signup. Codes are single use and expire after seven days.
// @Tags manager
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateInviteRequest true "Invite"
// @Success 201 {object} model.OrgInvite
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /manager/invites [post]
func (h *InviteHandler) Create(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	var req CreateInviteRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	invite, err := h.inviteService.Create(c.Request().Context(), who.ID, model.Role(req.Role))
	if err != nil {
		return handleError(err)
	}
	return c.JSON(http.StatusCreated, invite)
}
