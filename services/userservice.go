package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"taskboard/model"
)

// LastLoginLayout renders last-login times, e.g. "18 de October de 2026, 3:04:05 pm".
const LastLoginLayout = "2 de January de 2006, 3:04:05 pm"

const lastLoginPlaceholder = "Not available"

type RegisterInput struct {
	Username string `validate:"required"`
	Email    string `validate:"required,simpleemail"`
	Password string `validate:"required"`
}

var registerMessages = messages{
	"required":          "All fields are required",
	"Email.simpleemail": "Invalid email format",
}

type LoginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      model.User
}

// AuthService registers accounts and signs users in.
type AuthService struct {
	accounts AccountStore
	identity IdentityProvider
	tokens   *TokenIssuer
	log      zerolog.Logger
	now      func() time.Time
}

func NewAuthService(accounts AccountStore, identity IdentityProvider, tokens *TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{
		accounts: accounts,
		identity: identity,
		tokens:   tokens,
		log:      log,
		now:      time.Now,
	}
}

// Register creates the identity-provider account and then the users document.
// When the document cannot be written the identity account is deleted again.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, error) {
	if err := checkStruct(in, registerMessages, "Invalid registration data"); err != nil {
		return "", err
	}

	if _, err := s.accounts.FindAccountByEmail(ctx, in.Email); err == nil {
		return "", Conflict("Email is already registered")
	} else if !errors.Is(err, ErrNotFound) {
		return "", Internal(err)
	}

	hashedPassword, err := HashPassword(in.Password)
	if err != nil {
		return "", Internal(err)
	}

	uid, err := s.identity.CreateIdentity(ctx, in.Email, in.Password, in.Username)
	if err != nil {
		return "", storeErr(err, "", "Email is already registered")
	}

	user := &model.User{
		UserID:   uid,
		Email:    in.Email,
		Username: in.Username,
		Password: hashedPassword,
		Role:     model.RoleEmployee,
	}
	if err := s.accounts.CreateAccount(ctx, user); err != nil {
		s.rollbackIdentity(ctx, uid)
		return "", storeErr(err, "", "Email is already registered")
	}

	return uid, nil
}

func (s *AuthService) rollbackIdentity(ctx context.Context, uid string) {
	ctx = context.WithoutCancel(ctx)
	if err := s.identity.DeleteIdentity(ctx, uid); err != nil {
		s.log.Error().Err(err).Str("uid", uid).Msg("failed to delete identity after account write failure")
		return
	}
	s.log.Warn().Str("uid", uid).Msg("identity deleted after account write failure")
}

// Login verifies the stored password hash, records the login time and issues a token.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if err := checkStruct(in, messages{}, "Email and password are required"); err != nil {
		return nil, err
	}

	user, err := s.accounts.FindAccountByEmail(ctx, in.Email)
	if err != nil {
		return nil, storeErr(err, "Email not found", "")
	}

	if !CheckPassword(user.Password, in.Password) {
		return nil, Auth("Incorrect password")
	}

	now := s.now()
	if err := s.accounts.SetLastLogin(ctx, user.UserID, now); err != nil {
		return nil, Internal(err)
	}
	user.LastLogin = now
	user.LegacyLastLogin = ""

	token, expiresAt, err := s.tokens.CreateAccessToken(user)
	if err != nil {
		return nil, Internal(err)
	}

	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: *user}, nil
}

// FormatLastLogin renders the account's last login for responses.
func FormatLastLogin(user model.User) string {
	if !user.LastLogin.IsZero() {
		return user.LastLogin.In(time.Local).Format(LastLoginLayout)
	}
	if user.LegacyLastLogin != "" {
		return user.LegacyLastLogin
	}
	return lastLoginPlaceholder
}
