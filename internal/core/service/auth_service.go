package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
	"github.com/barbeariapub/dashboard-api/internal/core/ports"
)

// AuthService authenticates dashboard operators against the shared admin
// database. The stored password is expected to be plaintext (legacy data);
// bcrypt hashes are also accepted so accounts can be upgraded in place.
type AuthService struct {
	repo      ports.AuthRepository
	jwtSecret string
	tokenTTL  time.Duration
	// bootstrapUser/bootstrapPass form an optional config-provided credential
	// accepted without a database lookup. Empty user disables it.
	bootstrapUser string
	bootstrapPass string
	log           zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, jwtSecret string, tokenTTL time.Duration, bootstrapUser, bootstrapPass string, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:          repo,
		jwtSecret:     jwtSecret,
		tokenTTL:      tokenTTL,
		bootstrapUser: bootstrapUser,
		bootstrapPass: bootstrapPass,
		log:           log,
	}
}

// Login verifies the credentials and returns a signed session token plus the
// authenticated user. The token is empty when no JWT secret is configured.
func (s *AuthService) Login(ctx context.Context, userName, password string) (string, *domain.AdminUser, error) {
	if userName == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.bootstrapUser != "" && userName == s.bootstrapUser && password == s.bootstrapPass {
		s.log.Warn().Str("user", userName).Msg("login via bootstrap credential")
		user := &domain.AdminUser{UserName: userName}
		token, err := s.generateToken(user)
		return token, user, err
	}

	user, err := s.repo.FindByUserName(ctx, userName)
	if err != nil {
		return "", nil, err
	}

	if !passwordMatches(user.Pass, password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user", user.UserName).Msg("admin login")
	return token, user, nil
}

// passwordMatches compares the stored credential with the presented password.
// Stored values beginning with the bcrypt prefix are treated as hashes;
// anything else is legacy plaintext compared directly.
func passwordMatches(stored, presented string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
	}
	return stored == presented
}

func (s *AuthService) generateToken(user *domain.AdminUser) (string, error) {
	if s.jwtSecret == "" {
		return "", nil
	}

	claims := jwt.MapClaims{
		"username": user.UserName,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
