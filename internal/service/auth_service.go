package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhijeet5642/propertyadded/internal/entity"
	"github.com/abhijeet5642/propertyadded/internal/repository"
	"github.com/abhijeet5642/propertyadded/internal/utils"

	"github.com/google/uuid"
)

const dummyPasswordHash = "$2a$10$CwTycUXWue0Thq9StjUM0uJ8yQbWc1x9uxw2sQ2sXUNx5x9xJ9F2S"

type AuthService struct {
	users repository.UserRepository
	otps  repository.OTPStore

	emailSender   EmailSender
	passwordHash  PasswordHasher
	sessionTokens SessionTokenIssuer
	clock         Clock
	config        AuthConfig
}

func NewAuthService(
	users repository.UserRepository,
	otps repository.OTPStore,
	emailSender EmailSender,
	passwordHash PasswordHasher,
	sessionTokens SessionTokenIssuer,
	clock Clock,
	config AuthConfig,
) *AuthService {
	return &AuthService{
		users:         users,
		otps:          otps,
		emailSender:   emailSender,
		passwordHash:  passwordHash,
		sessionTokens: sessionTokens,
		clock:         clock,
		config:        config,
	}
}

// Register creates an unverified user and emails a registration OTP. The
// user and the code are both durably written before the send is attempted;
// a failed send is surfaced but the registration is not rolled back.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) error {
	email := strings.TrimSpace(input.Email)
	if email == "" || strings.TrimSpace(input.Password) == "" || strings.TrimSpace(input.FullName) == "" {
		return ErrInvalidInput
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailAlreadyRegistered
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return err
	}

	user := &entity.User{
		FullName:    strings.TrimSpace(input.FullName),
		Email:       email,
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
		Password:    hash,
		Role:        entity.UserRoleUser,
		IsVerified:  false,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent registration for the same address loses the race
		// at the unique index and is a Conflict like any other duplicate.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailAlreadyRegistered
		}
		return err
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return err
	}
	if err := s.otps.Save(ctx, email, otp, s.otpTTL()); err != nil {
		return err
	}

	if err := s.emailSender.SendOTPEmail(ctx, email, otp); err != nil {
		return ErrEmailSendFailed
	}
	return nil
}

// VerifyOTP consumes a registration code. The user is marked verified before
// the code is deleted, so a crash in between leaves a verified user and a
// stale code that expires on its own.
func (s *AuthService) VerifyOTP(ctx context.Context, email string, otp string) error {
	email = strings.TrimSpace(email)
	otp = strings.TrimSpace(otp)
	if email == "" || otp == "" {
		return ErrInvalidInput
	}

	found, err := s.otps.Exists(ctx, email, otp)
	if err != nil {
		return err
	}
	if !found {
		return ErrInvalidOTP
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.users.MarkVerified(ctx, user.ID); err != nil {
		return err
	}
	_ = s.otps.Delete(ctx, email, otp)
	return nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Burn a compare so unknown-email and wrong-password cost the same.
		_ = s.passwordHash.Verify(dummyPasswordHash, input.Password)
		return nil, ErrInvalidCredentials
	}
	if !s.passwordHash.Verify(user.Password, input.Password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, ErrEmailNotVerified
	}

	token, ttl, err := s.sessionTokens.IssueSessionToken(user.ID.String(), string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		UserID:    user.ID.String(),
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      string(user.Role),
		Token:     token,
		ExpiresIn: int64(ttl.Seconds()),
	}, nil
}

// ForgotPassword acknowledges generically whether or not the email exists.
// For a known user it persists a hashed reset secret before mailing the raw
// secret; if the mail cannot be sent the reset window is closed again.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidInput
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	secret, err := utils.GenerateRandomToken(32)
	if err != nil {
		return err
	}
	tokenHash := utils.HashToken(secret)
	expiresAt := s.now().Add(s.resetTokenTTL())
	user.PasswordResetToken = &tokenHash
	user.PasswordResetExpires = &expiresAt
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", strings.TrimRight(s.config.FrontendBaseURL, "/"), secret)
	if err := s.emailSender.SendPasswordResetEmail(ctx, user.Email, resetURL); err != nil {
		user.PasswordResetToken = nil
		user.PasswordResetExpires = nil
		_ = s.users.Update(ctx, user)
		return ErrEmailSendFailed
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token string, newPassword string) error {
	if strings.TrimSpace(token) == "" {
		return ErrInvalidResetToken
	}

	user, err := s.users.FindByResetTokenHash(ctx, utils.HashToken(token), s.now())
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidResetToken
	}

	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}

	hash, err := s.passwordHash.Hash(newPassword)
	if err != nil {
		return err
	}
	user.Password = hash
	user.PasswordResetToken = nil
	user.PasswordResetExpires = nil
	return s.users.Update(ctx, user)
}

func (s *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]entity.User, error) {
	return s.users.List(ctx)
}

func (s *AuthService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.users.Delete(ctx, user.ID)
}

func (s *AuthService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}

func (s *AuthService) otpTTL() time.Duration {
	if s.config.OTPTTL > 0 {
		return s.config.OTPTTL
	}
	return 10 * time.Minute
}

func (s *AuthService) resetTokenTTL() time.Duration {
	if s.config.ResetTokenTTL > 0 {
		return s.config.ResetTokenTTL
	}
	return 10 * time.Minute
}
