package coupon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "pulse/internal/errors"
)

const couponsPath = "/wp-json/wc/v3/coupons"

// Defaults applied when Params leaves a field empty.
const (
	DefaultDiscountType = "percent"
	DefaultUsageLimit   = 1
	DefaultDescription  = "Pulse CE course"
)

// Params describes a coupon to create in the store.
type Params struct {
	Code         string
	Amount       string
	DiscountType string
	ProductIDs   []int64
	DateExpires  string
	UsageLimit   int
	Description  string
}

// Coupon is the store's answer to a successful create.
type Coupon struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
}

// Gateway creates coupons in the store.
type Gateway interface {
	Create(ctx context.Context, p Params) (*Coupon, error)
}

// Client talks to the WooCommerce REST API with Basic Auth.
type Client struct {
	baseURL    string
	key        string
	secret     string
	httpClient *http.Client
}

var _ Gateway = (*Client)(nil)

// NewClient creates a coupon client. Empty credentials are allowed; Create then fails fast.
func NewClient(baseURL, key, secret string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		key:        key,
		secret:     secret,
		httpClient: http.DefaultClient,
	}
}

type createRequest struct {
	Code          string  `json:"code"`
	Amount        string  `json:"amount"`
	DiscountType  string  `json:"discount_type"`
	DateExpires   *string `json:"date_expires"`
	ProductIDs    []int64 `json:"product_ids"`
	UsageLimit    int     `json:"usage_limit"`
	IndividualUse bool    `json:"individual_use"`
	Description   string  `json:"description"`
}

type errorBody struct {
	Message json.RawMessage `json:"message"`
	Code    string          `json:"code"`
}

// Create issues a single POST to the coupons endpoint. There are no retries.
func (c *Client) Create(ctx context.Context, p Params) (*Coupon, error) {
	if c.baseURL == "" || c.key == "" || c.secret == "" {
		return nil, apperrors.ErrCouponNotConfigured
	}

	body := createRequest{
		Code:          p.Code,
		Amount:        p.Amount,
		DiscountType:  p.DiscountType,
		ProductIDs:    p.ProductIDs,
		UsageLimit:    p.UsageLimit,
		IndividualUse: true,
		Description:   p.Description,
	}
	if body.DiscountType == "" {
		body.DiscountType = DefaultDiscountType
	}
	if body.ProductIDs == nil {
		body.ProductIDs = []int64{}
	}
	if body.UsageLimit == 0 {
		body.UsageLimit = DefaultUsageLimit
	}
	if body.Description == "" {
		body.Description = DefaultDescription
	}
	if p.DateExpires != "" {
		body.DateExpires = &p.DateExpires
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal coupon request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+couponsPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCouponGateway, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.key, c.secret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCouponGateway, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCouponGateway, errorMessage(raw, resp.StatusCode))
	}

	var out Coupon
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", apperrors.ErrCouponGateway, err)
	}
	return &out, nil
}

// errorMessage prefers the body's message (string or list), then its code, then the status text.
func errorMessage(raw []byte, status int) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		var s string
		if err := json.Unmarshal(body.Message, &s); err == nil && s != "" {
			return s
		}
		var parts []string
		if err := json.Unmarshal(body.Message, &parts); err == nil && len(parts) > 0 {
			return strings.Join(parts, " ")
		}
		if body.Code != "" {
			return body.Code
		}
	}
	return http.StatusText(status)
}
