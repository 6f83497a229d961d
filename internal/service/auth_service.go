package service

import (
	"context"
	"encoding/json"
	"time"

	"jobhunt/internal/entity"
	"jobhunt/internal/repository"
	"jobhunt/internal/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const dummyPasswordHash = "$2a$10$CwTycUXWue0Thq9StjUM0uJ8yQbWc1x9uxw2sQ2sXUNx5x9xJ9F2S"

type AuthService struct {
	users        repository.UserRepository
	securityLogs repository.SecurityLogRepository

	emailSender  EmailSender
	passwordHash PasswordHasher
	sessions     SessionTokenIssuer
	clock        Clock
	config       AuthConfig
}

func NewAuthService(
	users repository.UserRepository,
	securityLogs repository.SecurityLogRepository,
	emailSender EmailSender,
	passwordHash PasswordHasher,
	sessions SessionTokenIssuer,
	clock Clock,
	config AuthConfig,
) *AuthService {
	return &AuthService{
		users:        users,
		securityLogs: securityLogs,
		emailSender:  emailSender,
		passwordHash: passwordHash,
		sessions:     sessions,
		clock:        clock,
		config:       config,
	}
}

// Register creates an unverified account and mails out a verification link.
// The token state is committed before delivery is attempted, so a failed
// send leaves a resendable account behind.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) error {
	existing, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return err
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	}
	rawToken, err := s.issueVerificationToken(user)
	if err != nil {
		return err
	}
	if err := s.users.Create(ctx, user); err != nil {
		return err
	}

	return s.sendVerificationEmail(ctx, user, rawToken)
}

// VerifyEmail consumes an outstanding verification token. An unknown token
// and an expired one produce the same error.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.users.FindByVerificationToken(ctx, utils.HashToken(token), s.now())
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidToken
	}

	user.IsVerified = true
	user.ClearVerification()
	return s.users.Update(ctx, user)
}

// ResendVerification issues a fresh token, invalidating whatever was mailed
// out before. At most one token is live per account.
func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.IsVerified {
		return ErrAlreadyVerified
	}

	rawToken, err := s.issueVerificationToken(user)
	if err != nil {
		return err
	}
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	return s.sendVerificationEmail(ctx, user, rawToken)
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*SessionResult, error) {
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = s.passwordHash.Verify(dummyPasswordHash, input.Password)
		_ = s.logSecurity(ctx, nil, input.IPAddress, entity.LoginFailed, map[string]any{"email": input.Email})
		return nil, ErrInvalidCredentials
	}

	if !s.passwordHash.Verify(user.PasswordHash, input.Password) {
		_ = s.logSecurity(ctx, &user.ID, input.IPAddress, entity.LoginFailed, map[string]any{"email": input.Email})
		return nil, ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, ErrNotVerified
	}

	result, err := s.issueSession(user)
	if err != nil {
		return nil, err
	}

	_ = s.logSecurity(ctx, &user.ID, input.IPAddress, entity.LoginSuccess, nil)
	return result, nil
}

// GoogleLogin trusts the identity asserted by the client's Google sign-in.
// Unknown emails get a verified account with an unusable placeholder secret;
// existing accounts are reused as-is, password hash and all.
func (s *AuthService) GoogleLogin(ctx context.Context, input GoogleLoginInput) (*SessionResult, error) {
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	created := false
	if user == nil {
		placeholder, err := utils.GenerateRandomToken(32)
		if err != nil {
			return nil, err
		}
		hash, err := s.passwordHash.Hash(placeholder)
		if err != nil {
			return nil, err
		}
		user = &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hash,
			IsVerified:   true,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
		created = true
	}

	result, err := s.issueSession(user)
	if err != nil {
		return nil, err
	}

	_ = s.logSecurity(ctx, &user.ID, input.IPAddress, entity.FederatedLogin, map[string]any{"created": created})
	return result, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return s.users.FindByID(ctx, userID)
}

// SendPasswordResetOTP starts the recovery flow: a six digit code with a
// short expiry, overwriting any code from an earlier attempt.
func (s *AuthService) SendPasswordResetOTP(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return err
	}
	expires := s.now().Add(s.otpTTL())
	user.OTPCode = &otp
	user.OTPExpires = &expires
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	if s.emailSender == nil {
		return nil
	}
	return s.emailSender.SendPasswordResetOTP(ctx, user.Name, user.Email, otp)
}

// VerifyResetOTP is advisory: it lets the client confirm the code before
// showing the password form, and deliberately does not consume it.
func (s *AuthService) VerifyResetOTP(ctx context.Context, email, otp string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !s.otpValid(user, otp) {
		return ErrInvalidOTP
	}
	return nil
}

// ResetPassword re-validates the code, replaces the secret and clears the
// recovery state. This is the only step that consumes the code.
func (s *AuthService) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !s.otpValid(user, input.OTP) {
		return ErrInvalidOTP
	}
	if input.NewPassword != input.ConfirmPassword {
		return ErrPasswordMismatch
	}

	hash, err := s.passwordHash.Hash(input.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.ClearOTP()
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	_ = s.logSecurity(ctx, &user.ID, nil, entity.PasswordReset, nil)
	return nil
}

func (s *AuthService) issueSession(user *entity.User) (*SessionResult, error) {
	token, ttl, err := s.sessions.IssueSessionToken(user.ID.String())
	if err != nil {
		return nil, err
	}
	return &SessionResult{
		Token:     token,
		ExpiresIn: int64(ttl.Seconds()),
		User:      user,
	}, nil
}

func (s *AuthService) issueVerificationToken(user *entity.User) (string, error) {
	rawToken, err := utils.GenerateRandomToken(32)
	if err != nil {
		return "", err
	}
	tokenHash := utils.HashToken(rawToken)
	expires := s.now().Add(s.verificationTokenTTL())
	user.VerificationToken = &tokenHash
	user.VerificationTokenExpires = &expires
	return rawToken, nil
}

func (s *AuthService) sendVerificationEmail(ctx context.Context, user *entity.User, token string) error {
	if s.emailSender == nil {
		return nil
	}
	return s.emailSender.SendVerificationEmail(ctx, user.Name, user.Email, token)
}

func (s *AuthService) otpValid(user *entity.User, otp string) bool {
	if user.OTPCode == nil || user.OTPExpires == nil {
		return false
	}
	if *user.OTPCode != otp {
		return false
	}
	return s.now().Before(*user.OTPExpires)
}

func (s *AuthService) logSecurity(
	ctx context.Context,
	userID *uuid.UUID,
	ipAddress *string,
	action entity.SecurityAction,
	metadata map[string]any,
) error {
	if s.securityLogs == nil {
		return nil
	}
	var payload datatypes.JSON
	if metadata != nil {
		bytes, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		payload = datatypes.JSON(bytes)
	}

	log := &entity.SecurityLog{
		UserID:    userID,
		IPAddress: ipAddress,
		Action:    action,
		Metadata:  payload,
	}
	return s.securityLogs.Log(ctx, log)
}

func (s *AuthService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}

func (s *AuthService) verificationTokenTTL() time.Duration {
	if s.config.VerificationTokenTTL > 0 {
		return s.config.VerificationTokenTTL
	}
	return 24 * time.Hour
}

func (s *AuthService) otpTTL() time.Duration {
	if s.config.OTPTTL > 0 {
		return s.config.OTPTTL
	}
	return 10 * time.Minute
}
