package auth

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"golang.org/x/crypto/bcrypt"

	"tikkeul/internal/domain"
	"tikkeul/internal/metrics"
	"tikkeul/internal/pkg/logger"
	"tikkeul/internal/ports"
)

// ErrInvalidCredentials is returned by Login for an unknown user or a wrong
// password. The two cases are not told apart.
var ErrInvalidCredentials = errors.New("invalid username or password")

// MsgInvalidCredentials is what a failed login shows.
const MsgInvalidCredentials = "Invalid username or password"

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	upperPattern    = regexp.MustCompile(`[A-Z]`)
	lowerPattern    = regexp.MustCompile(`[a-z]`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
	specialPattern  = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

type Service struct {
	users    ports.UserRepository
	key      []byte
	tokenTTL time.Duration
	clock    clockwork.Clock
	cost     int
}

type Option func(*Service)

func WithClock(c clockwork.Clock) Option { return func(s *Service) { s.clock = c } }

// WithBcryptCost overrides the hashing cost; tests use bcrypt.MinCost.
func WithBcryptCost(cost int) Option { return func(s *Service) { s.cost = cost } }

func New(users ports.UserRepository, key string, tokenTTL time.Duration, opts ...Option) *Service {
	s := &Service{
		users:    users,
		key:      []byte(key),
		tokenTTL: tokenTTL,
		clock:    clockwork.NewRealClock(),
		cost:     bcrypt.DefaultCost,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) CreateUser(ctx context.Context, username, password string) error {
	if err := validateUsername(username); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "invalid").Inc()
		return err
	}
	if err := validatePassword(password); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "invalid").Inc()
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return err
	}
	err = s.users.CreateUser(ctx, domain.User{Username: username, HashedPassword: string(hashed)})
	if errors.Is(err, domain.ErrConflict) {
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "conflict").Inc()
		return domain.Invalid("Username already exists")
	}
	if err != nil {
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("signup", "ok").Inc()
	logger.Infof(ctx, "user %s created", username)
	return nil
}

func validateUsername(username string) error {
	if len(username) < 5 {
		return domain.Invalid("Username must be at least 5 characters long")
	}
	if !usernamePattern.MatchString(username) {
		return domain.Invalid("Username can only contain letters, numbers, and underscores")
	}
	return nil
}

func validatePassword(password string) error {
	switch {
	case len(password) < 8:
		return domain.Invalid("Password must be at least 8 characters long")
	case !upperPattern.MatchString(password):
		return domain.Invalid("Password must contain at least one uppercase letter")
	case !lowerPattern.MatchString(password):
		return domain.Invalid("Password must contain at least one lowercase letter")
	case !digitPattern.MatchString(password):
		return domain.Invalid("Password must contain at least one number")
	case !specialPattern.MatchString(password):
		return domain.Invalid("Password must contain at least one special character")
	}
	return nil
}

// Login checks the password and issues a signed access token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetUser(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "rejected").Inc()
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)) != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "rejected").Inc()
		return "", ErrInvalidCredentials
	}

	now := s.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   u.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("login", "ok").Inc()
	return token, nil
}

// Authenticate validates a bearer token and returns its subject.
func (s *Service) Authenticate(_ context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", domain.ErrUnauthorized
	}
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil || claims.Subject == "" {
		return "", domain.ErrUnauthorized
	}
	return claims.Subject, nil
}
