package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pulse/internal/service"
)

// CouponHandler exposes direct coupon creation.
type CouponHandler struct {
	couponService service.CouponService
}

// NewCouponHandler creates a new coupon handler.
func NewCouponHandler(couponService service.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

// CreateCouponRequest represents a coupon to create in the store.
type CreateCouponRequest struct {
	Code         string  `json:"code"`
	Amount       string  `json:"amount"`
	DiscountType string  `json:"discountType" validate:"omitempty,oneof=percent fixed_cart fixed_product"`
	ProductIDs   []int64 `json:"productIds"`
	DateExpires  string  `json:"dateExpires" validate:"omitempty,datetime=2006-01-02"`
	UsageLimit   int     `json:"usageLimit" validate:"gte=0"`
	Description  string  `json:"description"`
}

// CouponResponse echoes the requested code with the store's coupon id.
type CouponResponse struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
}

// Create godoc
// @Summary Create a store coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCouponRequest true "Coupon"
// @Success 200 {object} CouponResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /coupons/create [post]
func (h *CouponHandler) Create(c echo.Context) error {
	var req CreateCouponRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	out, err := h.couponService.Create(c.Request().Context(), service.CreateCouponInput{
		Code:         req.Code,
		Amount:       req.Amount,
		DiscountType: req.DiscountType,
		ProductIDs:   req.ProductIDs,
		DateExpires:  req.DateExpires,
		UsageLimit:   req.UsageLimit,
		Description:  req.Description,
	})
	if err != nil {
		return handleError(err)
	}
	return c.JSON(http.StatusOK, CouponResponse{ID: out.ID, Code: req.Code})
}
