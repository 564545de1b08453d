package service

import (
	"context"
	"fmt"
	"strings"

	"pulse/internal/coupon"
	apperrors "pulse/internal/errors"
	"pulse/internal/metrics"
)

// CreateCouponInput mirrors the store coupon fields a caller may set directly.
type CreateCouponInput struct {
	Code         string
	Amount       string
	DiscountType string
	ProductIDs   []int64
	DateExpires  string
	UsageLimit   int
	Description  string
}

// CouponService exposes the store coupon gateway to trusted roles.
type CouponService interface {
	Create(ctx context.Context, in CreateCouponInput) (*coupon.Coupon, error)
}

type couponService struct {
	gateway coupon.Gateway
}

// NewCouponService creates a new coupon service.
func NewCouponService(gateway coupon.Gateway) CouponService {
	return &couponService{gateway: gateway}
}

func (s *couponService) Create(ctx context.Context, in CreateCouponInput) (*coupon.Coupon, error) {
	if strings.TrimSpace(in.Code) == "" || strings.TrimSpace(in.Amount) == "" {
		return nil, fmt.Errorf("%w: code, amount", apperrors.ErrMissingFields)
	}
	out, err := s.gateway.Create(ctx, coupon.Params{
		Code:         in.Code,
		Amount:       in.Amount,
		DiscountType: in.DiscountType,
		ProductIDs:   in.ProductIDs,
		DateExpires:  in.DateExpires,
		UsageLimit:   in.UsageLimit,
		Description:  in.Description,
	})
	if err != nil {
		recordCouponError(err)
		return nil, err
	}
	metrics.RecordCouponRequest("created")
	return out, nil
}
