package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/dsmirnov/cryptodiary/internal/store"
	"github.com/dsmirnov/cryptodiary/internal/utils"
	"github.com/dsmirnov/cryptodiary/models"
)

// ── Register ─────────────────────────────────────────────────────────────────

func TestRegister(t *testing.T) {
	f := newHandlerFixture(t)

	f.users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 7
			return user, nil
		})

	resp, body := doRequest(t, f, http.MethodPost, "/api/auth/register", "",
		models.User{Email: "a@b.c", Password: "account-pw"})

	require.Equal(t, http.StatusOK, resp.StatusCode)

	tokenString, err := utils.ParseBearerToken(resp.Header.Get("Authorization"))
	require.NoError(t, err)
	token, err := utils.ValidateAndParseJWTToken(tokenString, testAuthConfig.TokenSignKey, testAuthConfig.TokenIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(7), token.UserID)

	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(body, &msg))
	assert.Equal(t, "Registration successful.", msg.Message)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newHandlerFixture(t)

	f.users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyRegistered)

	resp, body := doRequest(t, f, http.MethodPost, "/api/auth/register", "",
		models.User{Email: "a@b.c", Password: "account-pw"})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "Email address already registered.", errResp.Error)
}

func TestRegister_BlankCredentials(t *testing.T) {
	f := newHandlerFixture(t)

	resp, _ := doRequest(t, f, http.MethodPost, "/api/auth/register", "", models.User{})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin(t *testing.T) {
	f := newHandlerFixture(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("account-pw"), bcrypt.MinCost)
	require.NoError(t, err)
	f.users.EXPECT().
		FindUserByEmail(gomock.Any(), "a@b.c").
		Return(models.User{UserID: 3, Email: "a@b.c", PasswordHash: string(hash)}, nil)

	resp, body := doRequest(t, f, http.MethodPost, "/api/auth/login", "",
		models.User{Email: "a@b.c", Password: "account-pw"})

	require.Equal(t, http.StatusOK, resp.StatusCode)

	tokenString, err := utils.ParseBearerToken(resp.Header.Get("Authorization"))
	require.NoError(t, err)
	token, err := utils.ValidateAndParseJWTToken(tokenString, testAuthConfig.TokenSignKey, testAuthConfig.TokenIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(3), token.UserID)

	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(body, &msg))
	assert.Equal(t, "Login successful.", msg.Message)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newHandlerFixture(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("account-pw"), bcrypt.MinCost)
	require.NoError(t, err)
	f.users.EXPECT().
		FindUserByEmail(gomock.Any(), "a@b.c").
		Return(models.User{UserID: 3, Email: "a@b.c", PasswordHash: string(hash)}, nil)

	resp, body := doRequest(t, f, http.MethodPost, "/api/auth/login", "",
		models.User{Email: "a@b.c", Password: "not-it"})

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "Invalid email or password", errResp.Error)
}

func TestLogin_UnknownEmail(t *testing.T) {
	f := newHandlerFixture(t)

	f.users.EXPECT().
		FindUserByEmail(gomock.Any(), "ghost@b.c").
		Return(models.User{}, store.ErrUserNotFound)

	resp, _ := doRequest(t, f, http.MethodPost, "/api/auth/login", "",
		models.User{Email: "ghost@b.c", Password: "pw"})

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
