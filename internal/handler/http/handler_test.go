package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dsmirnov/cryptodiary/internal/logger"
	"github.com/dsmirnov/cryptodiary/internal/mock"
	"github.com/dsmirnov/cryptodiary/internal/service"
	"github.com/dsmirnov/cryptodiary/internal/utils"
)

var testAuthConfig = service.AuthConfig{
	TokenIssuer:   "cryptodiary",
	TokenSignKey:  "test-sign-key",
	TokenDuration: time.Hour,
}

type handlerFixture struct {
	entries *mock.MockEntryRepository
	users   *mock.MockUserRepository
	srv     *httptest.Server
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &handlerFixture{
		entries: mock.NewMockEntryRepository(ctrl),
		users:   mock.NewMockUserRepository(ctrl),
	}

	services := service.NewServices(f.entries, f.users, testAuthConfig, logger.Nop())
	h := NewHandler(services, logger.Nop())

	f.srv = httptest.NewServer(h.Init())
	t.Cleanup(f.srv.Close)
	return f
}

// bearer issues a valid Authorization header value for userID.
func bearer(t *testing.T, userID int64) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testAuthConfig.TokenIssuer, userID, testAuthConfig.TokenDuration, testAuthConfig.TokenSignKey)
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}

// doRequest issues a JSON request against the test server and returns the
// response with its body read out.
func doRequest(t *testing.T, f *handlerFixture, method, path, authHeader string, body any) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, f.srv.URL+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := f.srv.Client().Do(req)
	require.NoError(t, err)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	return resp, respBody
}
