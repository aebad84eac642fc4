package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sportsbuddy-api/models"
	"sportsbuddy-api/repositories"
	"sportsbuddy-api/services/ports/mocks"
)

func newAuthService(allowAdmin bool) *AuthService {
	return NewAuthService(repositories.NewMemoryUserRepository(fixedClock), AuthOptions{
		Secret:                     "test-secret",
		TokenTTL:                   time.Hour,
		AllowAdminSelfRegistration: allowAdmin,
	}, fixedClock, discardLogger())
}

func validInput() RegisterInput {
	return RegisterInput{
		DisplayName:     "Priya",
		Email:           "Priya@Example.com",
		Password:        "Secret123",
		SportsInterests: []string{"tennis"},
		AbilityLevel:    "intermediate",
		Location:        "Hyderabad",
	}
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc := newAuthService(false)
	ctx := context.Background()

	user, err := svc.Register(ctx, validInput())
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "Secret123", user.Password)

	token, loggedIn, err := svc.Login(ctx, "priya@example.com", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	identity, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, &models.Identity{UID: user.ID, Email: "priya@example.com", Role: models.RoleUser}, identity)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newAuthService(false)
	ctx := context.Background()

	_, err := svc.Register(ctx, validInput())
	require.NoError(t, err)
	_, err = svc.Register(ctx, validInput())

	assert.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestAuthService_Register_RoleRules(t *testing.T) {
	ctx := context.Background()

	in := validInput()
	in.Role = "moderator"
	_, err := newAuthService(true).Register(ctx, in)
	assert.ErrorIs(t, err, models.ErrValidation)

	in.Role = "admin"
	_, err = newAuthService(false).Register(ctx, in)
	assert.ErrorIs(t, err, models.ErrPermissionDenied)

	user, err := newAuthService(true).Register(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(false)
	ctx := context.Background()

	cases := map[string]func(*RegisterInput){
		"no name":       func(in *RegisterInput) { in.DisplayName = " " },
		"bad email":     func(in *RegisterInput) { in.Email = "not-an-email" },
		"weak password": func(in *RegisterInput) { in.Password = "abc" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validInput()
			mutate(&in)
			_, err := svc.Register(ctx, in)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestAuthService_Register_PasswordRuleMessage(t *testing.T) {
	svc := newAuthService(false)
	in := validInput()
	in.Password = "secretsecret"

	_, err := svc.Register(context.Background(), in)

	require.ErrorIs(t, err, models.ErrValidation)
	assert.Equal(t,
		"Password must be at least 6 characters and use three of: upper case, lower case, digits, symbols.",
		NoticeForError(err).Message)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthService(false)
	ctx := context.Background()
	_, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "priya@example.com", "wrong")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "Secret123")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	svc := newAuthService(false)
	user := &models.User{ID: "u1", Email: "u1@example.com", Role: models.RoleUser}

	token, err := svc.IssueToken(user)
	require.NoError(t, err)

	other := NewAuthService(repositories.NewMemoryUserRepository(nil), AuthOptions{Secret: "other"}, fixedClock, discardLogger())
	_, err = other.ParseToken(token)
	assert.ErrorIs(t, err, models.ErrInvalidToken)

	expired := NewAuthService(repositories.NewMemoryUserRepository(nil), AuthOptions{Secret: "test-secret"},
		func() time.Time { return testNow.Add(2 * time.Hour) }, discardLogger())
	_, err = expired.ParseToken(token)
	assert.ErrorIs(t, err, models.ErrInvalidToken)

	_, err = svc.ParseToken("garbage")
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestAuthService_ParseToken_UnknownRoleClaim(t *testing.T) {
	svc := newAuthService(false)
	claims := jwt.MapClaims{
		"sub":   "u1",
		"email": "u1@example.com",
		"role":  "superuser",
		"exp":   testNow.Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ParseToken(raw)

	assert.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	svc := newAuthService(false)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "root@example.com", "Root1234", ""))
	require.NoError(t, svc.EnsureAdmin(ctx, "root@example.com", "Root1234", ""))

	_, user, err := svc.Login(ctx, "root@example.com", "Root1234")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, "Administrator", user.DisplayName)
}

func TestAuthService_Login_StoreError(t *testing.T) {
	users := mocks.NewMockUserStore(t)
	svc := NewAuthService(users, AuthOptions{Secret: "s"}, fixedClock, discardLogger())

	users.EXPECT().GetByEmail(mock.Anything, "a@example.com").Return(nil, models.ErrPersistence)

	_, _, err := svc.Login(context.Background(), "a@example.com", "x")

	assert.ErrorIs(t, err, models.ErrPersistence)
}
