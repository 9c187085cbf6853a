package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dsmirnov/cryptodiary/internal/logger"
	"github.com/dsmirnov/cryptodiary/models"
	"github.com/dsmirnov/cryptodiary/internal/utils"
)

// HTTPClientConfig holds the settings for the REST transport.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. The base URL is normalised (scheme defaulted to http,
// trailing slash trimmed); an error is returned if it cannot be parsed.
func NewHTTPServerAdapter(cfg HTTPClientConfig, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. On success the bearer token is read
// from the Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	return h.authRequest(ctx, user, "/api/auth/register", "register")
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	return h.authRequest(ctx, user, "/api/auth/login", "login")
}

func (h *httpServerAdapter) authRequest(ctx context.Context, user models.User, path, op string) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("%s parse bearer token: %w", op, err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("op", op).Msg("bearer token acquired")
	return models.Token{SignedString: token}, nil
}

// ListEntries implements [ServerAdapter].
func (h *httpServerAdapter) ListEntries(ctx context.Context) ([]models.Entry, error) {
	resp, err := h.authedRequest(ctx).Get("/api/entries")
	if err != nil {
		return nil, fmt.Errorf("list entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.Entry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode entry list: %w", err)
	}

	return entries, nil
}

// CreateEntry implements [ServerAdapter].
func (h *httpServerAdapter) CreateEntry(ctx context.Context, payload models.EntryPayload) (models.MessageResponse, error) {
	var result models.MessageResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&result).
		Post("/api/entries")
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("create entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return result, nil
}

// UpdateEntry implements [ServerAdapter].
func (h *httpServerAdapter) UpdateEntry(ctx context.Context, id string, payload models.EntryPayload) (models.MessageResponse, error) {
	var result models.MessageResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&result).
		Put("/api/entries/" + url.PathEscape(id))
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("update entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return result, nil
}

// DeleteEntry implements [ServerAdapter].
func (h *httpServerAdapter) DeleteEntry(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/entries/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete entry request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
