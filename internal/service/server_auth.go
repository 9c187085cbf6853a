package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dsmirnov/cryptodiary/internal/logger"
	"github.com/dsmirnov/cryptodiary/internal/store"
	"github.com/dsmirnov/cryptodiary/internal/utils"
	"github.com/dsmirnov/cryptodiary/models"
)

// AuthConfig holds the token issuing parameters for the server auth
// service.
type AuthConfig struct {
	TokenIssuer   string
	TokenSignKey  string
	TokenDuration time.Duration
}

// authService is the production implementation of [AuthService]. Account
// passwords are stored as bcrypt hashes; tokens are HMAC-signed JWTs.
type authService struct {
	users  store.UserRepository
	cfg    AuthConfig
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] over the user repository.
func NewAuthService(users store.UserRepository, cfg AuthConfig, log *logger.Logger) AuthService {
	return &authService{users: users, cfg: cfg, logger: log}
}

// Register implements [AuthService].
func (a *authService) Register(ctx context.Context, user models.User) (models.User, models.Token, error) {
	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" || user.Password == "" {
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	user.Password = ""

	created, err := a.users.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	token, err := a.issueToken(created.UserID)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	logger.FromContext(ctx).Info().Str("email", created.Email).Msg("account created")
	return created, token, nil
}

// Login implements [AuthService]. Unknown email and bad password collapse
// into one error so the response does not leak which accounts exist.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, models.Token, error) {
	found, err := a.users.FindUserByEmail(ctx, strings.TrimSpace(user.Email))
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(user.Password)); err != nil {
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.issueToken(found.UserID)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	found.Password = ""
	return found, token, nil
}

// ValidateToken implements [AuthService].
func (a *authService) ValidateToken(tokenString string) (int64, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.cfg.TokenSignKey, a.cfg.TokenIssuer)
	if err != nil {
		return 0, err
	}
	return token.UserID, nil
}

func (a *authService) issueToken(userID int64) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.cfg.TokenIssuer, userID, a.cfg.TokenDuration, a.cfg.TokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
