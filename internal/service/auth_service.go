package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pulse/internal/auth"
	apperrors "pulse/internal/errors"
	"pulse/internal/model"
	"pulse/internal/notify"
	"pulse/internal/repository"
)

const bcryptCost = 10

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserAlreadyExists is returned when trying to register an existing user.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidRefreshToken is returned when refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// RegisterInput carries signup metadata. Role and AccountType are resolved once into a model.Role.
// Organization membership is never taken from the caller: an InviteCode joins the inviting
// organization with the invite's role, and a manager signing up without one opens a new organization.
type RegisterInput struct {
	Email       string
	Password    string
	FullName    string
	Role        string
	AccountType string
	InviteCode  string
}

// AuthService handles authentication operations.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.Profile, error)
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, profile *model.Profile, err error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	VerifyEmail(ctx context.Context, token string) (*model.Profile, error)
	ResendVerification(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	profileRepo repository.ProfileRepository
	jwtService  *auth.JWTService
	tokenStore  auth.TokenStoreInterface
	mailer      notify.Mailer
	verifyURL   string
	now         func() time.Time
}

// NewAuthService creates a new authentication service.
// verifyURL is the page that receives the ?token= of a verification link.
func NewAuthService(profileRepo repository.ProfileRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, mailer notify.Mailer, verifyURL string) AuthService {
	return &authService{
		profileRepo: profileRepo,
		jwtService:  jwtService,
		tokenStore:  tokenStore,
		mailer:      mailer,
		verifyURL:   verifyURL,
		now:         time.Now,
	}
}

// Register creates a new profile with hashed password.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.Profile, error) {
	email := strings.TrimSpace(in.Email)

	existing, err := s.profileRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check profile existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	profile := &model.Profile{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		FullName:     strings.TrimSpace(in.FullName),
		Role:         model.ResolveRole(in.Role, in.AccountType),
	}

	if code := strings.TrimSpace(in.InviteCode); code != "" {
		err = s.profileRepo.CreateWithInvite(ctx, profile, code, s.now())
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidInvite
		}
	} else {
		if profile.Role == model.RoleManager {
			orgID := uuid.New()
			profile.OrgID = &orgID
		}
		err = s.profileRepo.Create(ctx, profile)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	if err := s.sendVerification(ctx, profile); err != nil {
		log.Printf("[AUTH] verification email for %s failed: %v", profile.ID, err)
	}

	return profile, nil
}

func (s *authService) sendVerification(ctx context.Context, p *model.Profile) error {
	if s.mailer == nil {
		return errors.New("no mailer configured")
	}
	token, err := s.jwtService.GenerateVerifyToken(p)
	if err != nil {
		return fmt.Errorf("generate verify token: %w", err)
	}
	sep := "?"
	if strings.Contains(s.verifyURL, "?") {
		sep = "&"
	}
	msg, err := notify.VerificationMessage(notify.VerifyEmail{
		To:        p.Email,
		Name:      p.FullName,
		VerifyURL: s.verifyURL + sep + "token=" + url.QueryEscape(token),
	})
	if err != nil {
		return err
	}
	return s.mailer.Send(ctx, msg)
}

// VerifyEmail marks the profile behind a verification token as owning its email.
// The token must still match the profile's current email. Verifying twice is a no-op.
func (s *authService) VerifyEmail(ctx context.Context, token string) (*model.Profile, error) {
	claims, err := s.jwtService.ValidateTokenType(token, auth.TokenTypeVerify)
	if err != nil {
		return nil, apperrors.ErrInvalidVerifyToken
	}
	id, err := claims.ProfileID()
	if err != nil {
		return nil, apperrors.ErrInvalidVerifyToken
	}

	profile, err := s.profileRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrInvalidVerifyToken
	}
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	if !strings.EqualFold(profile.Email, claims.Email) {
		return nil, apperrors.ErrInvalidVerifyToken
	}
	if profile.EmailVerified() {
		return profile, nil
	}

	now := s.now()
	if err := s.profileRepo.MarkEmailVerified(ctx, id, now); err != nil {
		return nil, fmt.Errorf("mark email verified: %w", err)
	}
	profile.EmailVerifiedAt = &now
	return profile, nil
}

// ResendVerification mails a fresh verification link to an unverified caller.
func (s *authService) ResendVerification(ctx context.Context, id uuid.UUID) error {
	profile, err := s.Me(ctx, id)
	if err != nil {
		return err
	}
	if profile.EmailVerified() {
		return nil
	}
	if err := s.sendVerification(ctx, profile); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrEmailDelivery, err)
	}
	return nil
}

// Login authenticates a profile and returns access and refresh tokens.
func (s *authService) Login(ctx context.Context, email, password string) (accessToken, refreshToken string, profile *model.Profile, err error) {
	profile, err = s.profileRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	accessToken, err = s.jwtService.GenerateAccessToken(profile)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(profile)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate refresh token: %w", err)
	}

	data := auth.RefreshTokenData{UserID: profile.ID.String(), Email: profile.Email}
	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, data, auth.RefreshTokenExpiry); err != nil {
		return "", "", nil, fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, profile, nil
}

// RefreshToken validates a refresh token and returns a new access token.
// The profile is reloaded so the new token carries the current role.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error) {
	claims, err := s.jwtService.ValidateTokenType(refreshToken, auth.TokenTypeRefresh)
	if err != nil || claims.ID == "" {
		return "", ErrInvalidRefreshToken
	}

	stored, err := s.tokenStore.GetRefreshToken(ctx, claims.ID)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}
	if stored.UserID != claims.UserID || stored.Email != claims.Email {
		return "", ErrInvalidRefreshToken
	}

	id, err := claims.ProfileID()
	if err != nil {
		return "", ErrInvalidRefreshToken
	}
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	accessToken, err = s.jwtService.GenerateAccessToken(profile)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout invalidates a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return ErrInvalidRefreshToken
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}

// Me returns the caller's profile.
func (s *authService) Me(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return profile, nil
}
