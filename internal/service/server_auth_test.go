package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/dsmirnov/cryptodiary/internal/logger"
	"github.com/dsmirnov/cryptodiary/internal/mock"
	"github.com/dsmirnov/cryptodiary/internal/store"
	"github.com/dsmirnov/cryptodiary/internal/utils"
	"github.com/dsmirnov/cryptodiary/models"
)

var testAuthConfig = AuthConfig{
	TokenIssuer:   "cryptodiary",
	TokenSignKey:  "test-sign-key",
	TokenDuration: time.Hour,
}

func newAuthFixture(t *testing.T) (*mock.MockUserRepository, AuthService) {
	t.Helper()
	users := mock.NewMockUserRepository(gomock.NewController(t))
	return users, NewAuthService(users, testAuthConfig, logger.Nop())
}

func bcryptHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_RegisterHashesPassword(t *testing.T) {
	users, auth := newAuthFixture(t)
	ctx := context.Background()

	users.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			// The plaintext password must not reach the store.
			assert.Empty(t, user.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("account-pw")))

			user.UserID = 7
			return user, nil
		})

	created, token, err := auth.Register(ctx, models.User{Email: "a@b.c", Password: "account-pw"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.UserID)
	assert.Equal(t, int64(7), token.UserID)

	parsed, err := utils.ValidateAndParseJWTToken(token.SignedString, testAuthConfig.TokenSignKey, testAuthConfig.TokenIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.UserID)
}

func TestAuthService_RegisterRejectsBlankCredentials(t *testing.T) {
	// No repository expectations: invalid input never reaches the store.
	_, auth := newAuthFixture(t)

	for name, user := range map[string]models.User{
		"empty email":      {Email: "", Password: "pw"},
		"blank email":      {Email: "   ", Password: "pw"},
		"empty password":   {Email: "a@b.c", Password: ""},
		"both empty":       {},
		"whitespace email": {Email: "\t\n", Password: "pw"},
	} {
		_, _, err := auth.Register(context.Background(), user)
		assert.ErrorIs(t, err, ErrInvalidCredentials, name)
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	users, auth := newAuthFixture(t)
	ctx := context.Background()

	users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyRegistered)

	_, _, err := auth.Register(ctx, models.User{Email: "a@b.c", Password: "pw"})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyRegistered)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	users, auth := newAuthFixture(t)
	ctx := context.Background()

	stored := models.User{UserID: 3, Email: "a@b.c", PasswordHash: bcryptHash(t, "account-pw")}
	users.EXPECT().FindUserByEmail(ctx, "a@b.c").Return(stored, nil)

	found, token, err := auth.Login(ctx, models.User{Email: " a@b.c ", Password: "account-pw"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), found.UserID)
	assert.Empty(t, found.Password)
	assert.Equal(t, int64(3), token.UserID)
	assert.NotEmpty(t, token.SignedString)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	users, auth := newAuthFixture(t)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "ghost@b.c").Return(models.User{}, store.ErrUserNotFound)

	_, _, err := auth.Login(ctx, models.User{Email: "ghost@b.c", Password: "pw"})

	// Same error as a bad password so the response does not reveal which
	// accounts exist.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	users, auth := newAuthFixture(t)
	ctx := context.Background()

	stored := models.User{UserID: 3, Email: "a@b.c", PasswordHash: bcryptHash(t, "account-pw")}
	users.EXPECT().FindUserByEmail(ctx, "a@b.c").Return(stored, nil)

	_, _, err := auth.Login(ctx, models.User{Email: "a@b.c", Password: "not-it"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// ── Token validation ─────────────────────────────────────────────────────────

func TestAuthService_ValidateToken(t *testing.T) {
	_, auth := newAuthFixture(t)

	token, err := utils.GenerateJWTToken(testAuthConfig.TokenIssuer, 42, testAuthConfig.TokenDuration, testAuthConfig.TokenSignKey)
	require.NoError(t, err)

	userID, err := auth.ValidateToken(token.SignedString)

	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestAuthService_ValidateTokenRejectsForgery(t *testing.T) {
	_, auth := newAuthFixture(t)

	forged, err := utils.GenerateJWTToken(testAuthConfig.TokenIssuer, 42, testAuthConfig.TokenDuration, "attacker-key")
	require.NoError(t, err)

	_, err = auth.ValidateToken(forged.SignedString)
	assert.Error(t, err)

	_, err = auth.ValidateToken("not-a-token")
	assert.Error(t, err)
}
