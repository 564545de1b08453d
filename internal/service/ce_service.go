package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pulse/internal/cache"
	"pulse/internal/coupon"
	apperrors "pulse/internal/errors"
	"pulse/internal/metrics"
	"pulse/internal/model"
	"pulse/internal/notify"
	"pulse/internal/repository"
)

// SendInput is a rep's request to send a CE course to a professional.
type SendInput struct {
	ProfessionalID  string
	RepID           string
	CourseID        string
	Discount        string
	PersonalMessage string
}

// SendResult is returned after the coupon and the send record exist.
type SendResult struct {
	Success    bool   `json:"success"`
	CouponCode string `json:"couponCode"`
}

// MyCourse is a CE send as seen by the professional who received it.
type MyCourse struct {
	ID          uuid.UUID  `json:"id"`
	CourseName  string     `json:"courseName"`
	CourseHours int        `json:"courseHours"`
	SentBy      string     `json:"sentBy"`
	SentAt      time.Time  `json:"sentAt"`
	ExpiryAt    time.Time  `json:"expiryAt"`
	RedeemURL   *string    `json:"redeemUrl"`
	RedeemedAt  *time.Time `json:"redeemedAt"`
}

// HistoryItem is a CE send as seen by the rep who made it.
type HistoryItem struct {
	ID               uuid.UUID  `json:"id"`
	ProfessionalID   uuid.UUID  `json:"professionalId"`
	ProfessionalName string     `json:"professionalName"`
	CourseName       string     `json:"courseName"`
	CourseHours      int        `json:"courseHours"`
	Discount         string     `json:"discount"`
	CouponCode       string     `json:"couponCode"`
	SentAt           time.Time  `json:"sentAt"`
	RedeemedAt       *time.Time `json:"redeemedAt"`
}

// CEService orchestrates CE sends and their follow-ups.
type CEService interface {
	Send(ctx context.Context, callerID uuid.UUID, in SendInput) (*SendResult, error)
	MarkRedeemed(ctx context.Context, callerID uuid.UUID, ceSendID string) error
	MyCourses(ctx context.Context, callerID uuid.UUID) ([]MyCourse, error)
	SendReminder(ctx context.Context, callerID uuid.UUID, ceSendID string) error
	History(ctx context.Context, repID uuid.UUID) ([]HistoryItem, error)
}

// CEDeps groups the collaborators of the CE service.
type CEDeps struct {
	Profiles      repository.ProfileRepository
	Professionals repository.ProfessionalRepository
	Courses       repository.CourseRepository
	Sends         repository.CeSendRepository
	Touchpoints   repository.TouchpointRepository
	Coupons       coupon.Gateway
	Mailer        notify.Mailer
	Cache         *cache.Client
	StoreURL      string
	Now           func() time.Time
}

type ceService struct {
	CEDeps
}

// NewCEService creates a new CE service.
func NewCEService(deps CEDeps) CEService {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &ceService{CEDeps: deps}
}

// Send runs the CE send flow. The coupon is created before anything is written, so a gateway
// failure leaves no rows behind. The touchpoint and the email are best effort.
func (s *ceService) Send(ctx context.Context, callerID uuid.UUID, in SendInput) (res *SendResult, err error) {
	start := time.Now()
	defer func() {
		status := "success"
		if err != nil {
			status = "failure"
		}
		metrics.RecordCeSendDuration(status, time.Since(start).Seconds())
	}()

	if in.ProfessionalID == "" || in.RepID == "" || in.CourseID == "" || in.Discount == "" {
		return nil, fmt.Errorf("%w: professionalId, repId, courseId, or discount", apperrors.ErrMissingFields)
	}
	discount := model.Discount(in.Discount)
	if !discount.Valid() {
		return nil, apperrors.ErrInvalidDiscount
	}
	repID, err := uuid.Parse(in.RepID)
	if err != nil || repID != callerID {
		return nil, apperrors.ErrUnauthorized
	}

	course, err := s.Courses.FindByID(ctx, in.CourseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrInvalidCourse
	}
	if err != nil {
		return nil, fmt.Errorf("find course: %w", err)
	}

	proID, err := uuid.Parse(in.ProfessionalID)
	if err != nil {
		return nil, apperrors.ErrProfessionalNotFound
	}
	pro, err := s.Professionals.FindByIDAndRep(ctx, proID, repID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find professional: %w", err)
	}

	rep, err := s.Profiles.FindByID(ctx, repID)
	if err != nil {
		log.Printf("[CE] rep profile %s not loaded, using default name: %v", repID, err)
	}

	now := s.Now()
	code, err := coupon.GenerateCode(rep.DisplayName(), now)
	if err != nil {
		return nil, err
	}
	expires := now.Add(model.CouponValidity)

	params := coupon.Params{
		Code:         code,
		Amount:       strconv.Itoa(discount.Percent()),
		DiscountType: coupon.DefaultDiscountType,
		DateExpires:  coupon.ExpiryDate(expires),
		UsageLimit:   1,
	}
	if course.ProductID != nil {
		params.ProductIDs = []int64{*course.ProductID}
	}
	created, err := s.Coupons.Create(ctx, params)
	if err != nil {
		recordCouponError(err)
		return nil, err
	}
	metrics.RecordCouponRequest("created")

	send := &model.CeSend{
		RepID:           repID,
		ProfessionalID:  pro.ID,
		CourseID:        course.ID,
		CourseName:      course.Name,
		CourseHours:     course.Hours,
		Discount:        discount,
		CouponCode:      code,
		CouponID:        created.ID,
		ProductID:       course.ProductID,
		PersonalMessage: optional(in.PersonalMessage),
		CreatedAt:       now,
	}
	if err := s.Sends.Create(ctx, send); err != nil {
		return nil, fmt.Errorf("insert ce send: %w", err)
	}

	tp := &model.Touchpoint{
		RepID:          repID,
		ProfessionalID: pro.ID,
		Type:           model.TouchpointCESend,
		Notes:          fmt.Sprintf("%s (%s)", course.Name, code),
		Points:         model.CESendPoints,
	}
	if err := s.Touchpoints.Create(ctx, tp); err != nil {
		log.Printf("[CE] touchpoint insert failed for send %s: %v", send.ID, err)
		metrics.RecordSoftFailure("touchpoint")
	}

	if err := s.deliver(ctx, notify.SendMessage, send, pro); err != nil {
		log.Printf("[CE] email for send %s failed: %v", send.ID, err)
		metrics.RecordSoftFailure("email")
	}

	s.invalidateStats(ctx, rep)

	return &SendResult{Success: true, CouponCode: code}, nil
}

func recordCouponError(err error) {
	if errors.Is(err, apperrors.ErrCouponNotConfigured) {
		metrics.RecordCouponRequest("not_configured")
		return
	}
	metrics.RecordCouponRequest("error")
}

// deliver renders a course email for send and hands it to the mailer.
func (s *ceService) deliver(ctx context.Context, render func(notify.CourseEmail) (notify.Message, error), send *model.CeSend, pro *model.Professional) error {
	data := notify.CourseEmail{
		To:               pro.Email,
		ProfessionalName: pro.Name,
		CourseName:       send.CourseName,
		CourseHours:      send.CourseHours,
		Discount:         string(send.Discount),
		CouponCode:       send.CouponCode,
		RedeemURL:        coupon.RedeemURL(s.StoreURL, send.ProductID, send.CouponCode),
	}
	if send.PersonalMessage != nil {
		data.PersonalMessage = *send.PersonalMessage
	}
	msg, err := render(data)
	if err != nil {
		return err
	}
	return s.Mailer.Send(ctx, msg)
}

func (s *ceService) invalidateStats(ctx context.Context, rep *model.Profile) {
	if rep == nil || rep.OrgID == nil {
		return
	}
	_ = s.Cache.Delete(ctx, cache.StatsKey(*rep.OrgID))
}

// verifiedEmail returns the stored email of the caller once it has been verified.
// Email-scoped endpoints go through it so a signup that merely claims an address sees nothing.
func (s *ceService) verifiedEmail(ctx context.Context, callerID uuid.UUID) (string, error) {
	profile, err := s.Profiles.FindByID(ctx, callerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperrors.ErrUnauthorized
	}
	if err != nil {
		return "", fmt.Errorf("find caller: %w", err)
	}
	if !profile.EmailVerified() {
		return "", apperrors.ErrEmailNotVerified
	}
	if strings.TrimSpace(profile.Email) == "" {
		return "", apperrors.ErrUnauthorized
	}
	return profile.Email, nil
}

// MarkRedeemed lets the receiving professional mark a send as redeemed.
// Repeated calls succeed and keep the first timestamp.
func (s *ceService) MarkRedeemed(ctx context.Context, callerID uuid.UUID, ceSendID string) error {
	if strings.TrimSpace(ceSendID) == "" {
		return fmt.Errorf("%w: ceSendId", apperrors.ErrMissingFields)
	}
	callerEmail, err := s.verifiedEmail(ctx, callerID)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(ceSendID)
	if err != nil {
		return apperrors.ErrCeSendNotFound
	}

	send, err := s.Sends.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrCeSendNotFound
	}
	if err != nil {
		return fmt.Errorf("find ce send: %w", err)
	}

	if send.Professional.ID == uuid.Nil || !strings.EqualFold(send.Professional.Email, callerEmail) {
		return apperrors.ErrForbidden
	}

	changed, err := s.Sends.MarkRedeemed(ctx, id, s.Now())
	if err != nil {
		return fmt.Errorf("mark redeemed: %w", err)
	}
	if changed {
		if rep, err := s.Profiles.FindByID(ctx, send.RepID); err == nil {
			s.invalidateStats(ctx, rep)
		}
	}
	return nil
}

// MyCourses lists the sends addressed to the caller's verified email, newest first.
func (s *ceService) MyCourses(ctx context.Context, callerID uuid.UUID) ([]MyCourse, error) {
	callerEmail, err := s.verifiedEmail(ctx, callerID)
	if err != nil {
		return nil, err
	}
	sends, err := s.Sends.ListForProfessionalEmail(ctx, callerEmail)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	list := make([]MyCourse, 0, len(sends))
	for i := range sends {
		send := &sends[i]
		item := MyCourse{
			ID:          send.ID,
			CourseName:  send.CourseName,
			CourseHours: send.CourseHours,
			SentBy:      repName(&send.Rep),
			SentAt:      send.CreatedAt,
			ExpiryAt:    send.ExpiresAt(),
			RedeemedAt:  send.RedeemedAt,
		}
		if send.ProductID != nil && *send.ProductID != 0 {
			u := coupon.RedeemURL(s.StoreURL, send.ProductID, send.CouponCode)
			item.RedeemURL = &u
		}
		list = append(list, item)
	}
	return list, nil
}

func repName(p *model.Profile) string {
	if p == nil || p.ID == uuid.Nil {
		return "Rep"
	}
	return p.DisplayName()
}

// SendReminder re-sends the course email for a send the caller made.
// Unlike the first email, a delivery failure here fails the request.
func (s *ceService) SendReminder(ctx context.Context, callerID uuid.UUID, ceSendID string) error {
	if strings.TrimSpace(ceSendID) == "" {
		return fmt.Errorf("%w: ceSendId", apperrors.ErrMissingFields)
	}
	id, err := uuid.Parse(ceSendID)
	if err != nil {
		return apperrors.ErrCeSendNotFound
	}

	send, err := s.Sends.FindByIDAndRep(ctx, id, callerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrCeSendNotFound
	}
	if err != nil {
		return fmt.Errorf("find ce send: %w", err)
	}

	pro, err := s.Professionals.FindByID(ctx, send.ProfessionalID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrProfessionalNotFound
	}
	if err != nil {
		return fmt.Errorf("find professional: %w", err)
	}

	if err := s.deliver(ctx, notify.ReminderMessage, send, pro); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrEmailDelivery, err)
	}
	return nil
}

// History lists the rep's sends, newest first.
func (s *ceService) History(ctx context.Context, repID uuid.UUID) ([]HistoryItem, error) {
	sends, err := s.Sends.ListByRep(ctx, repID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	items := make([]HistoryItem, 0, len(sends))
	for _, send := range sends {
		name := send.Professional.Name
		if name == "" {
			name = placeholder
		}
		items = append(items, HistoryItem{
			ID:               send.ID,
			ProfessionalID:   send.ProfessionalID,
			ProfessionalName: name,
			CourseName:       send.CourseName,
			CourseHours:      send.CourseHours,
			Discount:         string(send.Discount),
			CouponCode:       send.CouponCode,
			SentAt:           send.CreatedAt,
			RedeemedAt:       send.RedeemedAt,
		})
	}
	return items, nil
}
