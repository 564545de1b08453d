package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingFields is returned when a required request field is empty.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidDiscount is returned when a discount is outside the accepted set.
	ErrInvalidDiscount = errors.New("invalid discount")
	// ErrInvalidCourse is returned when a course id does not exist.
	ErrInvalidCourse = errors.New("invalid course")
	// ErrUnauthorized is returned when the caller is not who the request claims.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the caller may not act on the resource.
	ErrForbidden = errors.New("not authorized to perform this action")
	// ErrProfessionalNotFound covers both a missing professional and one owned by another rep.
	ErrProfessionalNotFound = errors.New("professional not found or not in your network")
	// ErrProfessionalExists is returned when the email is already in the rep's network.
	ErrProfessionalExists = errors.New("this professional is already in your network")
	// ErrCeSendNotFound is returned when a CE send does not exist or is not visible to the caller.
	ErrCeSendNotFound = errors.New("CE send not found")
	// ErrProfileNotFound is returned when the caller has no profile.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrCouponGateway is returned when the store rejects or fails a coupon request.
	ErrCouponGateway = errors.New("coupon gateway error")
	// ErrCouponNotConfigured is returned when store credentials are missing.
	ErrCouponNotConfigured = errors.New("WooCommerce credentials not configured")
	// ErrEmailDelivery is returned when a mandatory email could not be sent.
	ErrEmailDelivery = errors.New("email delivery failed")
	// ErrEmailNotVerified is returned by email-scoped endpoints until the caller proves the address.
	ErrEmailNotVerified = errors.New("email address not verified")
	// ErrInvalidVerifyToken is returned for an expired, forged or stale verification link.
	ErrInvalidVerifyToken = errors.New("invalid or expired verification token")
	// ErrInvalidInvite is returned for an unknown, used or expired organization invite.
	ErrInvalidInvite = errors.New("invalid or expired invite code")
	// ErrNoOrganization is returned when a manager has no organization to invite into.
	ErrNoOrganization = errors.New("profile has no organization")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
// Wrapped errors keep the full message so gateway details reach the caller.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FIELDS")
	case errors.Is(err, ErrInvalidDiscount):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DISCOUNT")
	case errors.Is(err, ErrInvalidCourse):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_COURSE")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrEmailNotVerified):
		return NewHTTPError(http.StatusForbidden, err.Error(), "EMAIL_NOT_VERIFIED")
	case errors.Is(err, ErrInvalidVerifyToken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_VERIFICATION_TOKEN")
	case errors.Is(err, ErrInvalidInvite):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_INVITE")
	case errors.Is(err, ErrNoOrganization):
		return NewHTTPError(http.StatusConflict, err.Error(), "NO_ORGANIZATION")
	case errors.Is(err, ErrProfessionalNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROFESSIONAL_NOT_FOUND")
	case errors.Is(err, ErrCeSendNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CE_SEND_NOT_FOUND")
	case errors.Is(err, ErrProfileNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROFILE_NOT_FOUND")
	case errors.Is(err, ErrProfessionalExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "PROFESSIONAL_EXISTS")
	case errors.Is(err, ErrCouponNotConfigured):
		return NewHTTPError(http.StatusServiceUnavailable, ErrCouponNotConfigured.Error(), "COUPON_NOT_CONFIGURED")
	case errors.Is(err, ErrCouponGateway):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "COUPON_GATEWAY_ERROR")
	case errors.Is(err, ErrEmailDelivery):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "EMAIL_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
