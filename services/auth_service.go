// File: /services/auth_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"sportsbuddy-api/models"
	"sportsbuddy-api/services/ports"
	"sportsbuddy-api/utils"
)

type AuthOptions struct {
	Secret   string
	TokenTTL time.Duration
	// AllowAdminSelfRegistration lets a registrant pick the admin role.
	AllowAdminSelfRegistration bool
}

// AuthService registers users and issues the identity tokens the event core trusts.
type AuthService struct {
	users ports.UserStore
	opts  AuthOptions
	now   Clock
	log   *slog.Logger
}

func NewAuthService(users ports.UserStore, opts AuthOptions, now Clock, log *slog.Logger) *AuthService {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = slog.Default()
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 7 * 24 * time.Hour
	}
	return &AuthService{users: users, opts: opts, now: now, log: log}
}

type RegisterInput struct {
	DisplayName     string
	Email           string
	Password        string
	Role            string
	SportsInterests []string
	AbilityLevel    string
	Location        string
}

type tokenClaims struct {
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Register creates a new account. Unknown roles are rejected.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.DisplayName = strings.TrimSpace(in.DisplayName)

	if in.DisplayName == "" {
		return nil, fmt.Errorf("%w: username is required", models.ErrValidation)
	}
	if !utils.IsValidEmail(in.Email) {
		return nil, fmt.Errorf("%w: invalid email address", models.ErrValidation)
	}
	if !utils.IsValidPassword(in.Password) {
		return nil, fmt.Errorf("%w: password must be at least 6 characters and use three of: upper case, lower case, digits, symbols", models.ErrValidation)
	}
	role, err := models.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}
	if role == models.RoleAdmin && !s.opts.AllowAdminSelfRegistration {
		return nil, fmt.Errorf("%w: the admin role cannot be self-assigned", models.ErrPermissionDenied)
	}

	return s.createUser(ctx, in, role)
}

// Login checks the password and returns a signed token with the user's role claim
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, models.ErrUserNotFound) {
		return "", nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, models.ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := s.now()
	claims := tokenClaims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.opts.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.opts.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies the token and returns the identity it carries.
// The role comes from the token alone.
func (s *AuthService) ParseToken(raw string) (*models.Identity, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(s.opts.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", models.ErrInvalidToken)
	}
	role, err := models.ParseRole(string(claims.Role))
	if err != nil || claims.Role == "" {
		return nil, fmt.Errorf("%w: bad role claim", models.ErrInvalidToken)
	}

	return &models.Identity{UID: claims.Subject, Email: claims.Email, Role: role}, nil
}

func (s *AuthService) Profile(ctx context.Context, uid string) (*models.User, error) {
	return s.users.GetByID(ctx, uid)
}

// EnsureAdmin creates the bootstrap administrator unless the email is already registered.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password, name string) error {
	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		if existing.Role != models.RoleAdmin {
			s.log.WarnContext(ctx, "bootstrap admin email belongs to a non-admin account", "email", email)
		}
		return nil
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return err
	}

	if name == "" {
		name = "Administrator"
	}
	_, err = s.createUser(ctx, RegisterInput{DisplayName: name, Email: email, Password: password}, models.RoleAdmin)
	if err != nil {
		return err
	}
	s.log.InfoContext(ctx, "bootstrap admin created", "email", email)
	return nil
}

// Helper functions

func (s *AuthService) createUser(ctx context.Context, in RegisterInput, role models.Role) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		DisplayName:     in.DisplayName,
		Email:           strings.ToLower(in.Email),
		Password:        string(hashed),
		Role:            role,
		SportsInterests: models.StringList(in.SportsInterests),
		AbilityLevel:    strings.TrimSpace(in.AbilityLevel),
		Location:        strings.TrimSpace(in.Location),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}
