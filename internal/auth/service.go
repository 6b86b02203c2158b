package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"carlot/database/models"
	"carlot/database/repo/sessions"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for a wrong password. Callers show one
// generic message regardless of the underlying cause.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNoSession is returned when the cookie is missing, unverifiable, or the
// session row is gone or expired.
var ErrNoSession = errors.New("no valid session")

// CookieName carries the signed session token.
const CookieName = "carlot_session"

// Service implements the two-state auth gate: anonymous <-> authenticated.
type Service struct {
	sessions      *sessions.Repository
	adminPassword string
	signingSecret []byte
	sessionTTL    time.Duration
	log           *zap.Logger
}

func NewService(repo *sessions.Repository, adminPassword, signingSecret string, ttl time.Duration, log *zap.Logger) *Service {
	return &Service{
		sessions:      repo,
		adminPassword: adminPassword,
		signingSecret: []byte(signingSecret),
		sessionTTL:    ttl,
		log:           log,
	}
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Login checks the submitted password against the configured admin secret
// and, on success, creates an authenticated session and returns the signed
// cookie token. The configured secret may be a bcrypt hash or plain text.
func (s *Service) Login(password string) (string, error) {
	if !s.passwordMatches(password) {
		return "", ErrInvalidCredentials
	}

	// Opportunistic sweep; login is rare enough that this is free.
	if n, err := s.sessions.DeleteExpired(time.Now()); err == nil && n > 0 {
		s.log.Debug("swept expired sessions", zap.Int64("count", n))
	}

	session, err := s.sessions.Create(s.sessionTTL)
	if err != nil {
		return "", err
	}

	token, err := s.signToken(session)
	if err != nil {
		// Keep the store consistent with what the client can prove.
		_ = s.sessions.Delete(session.ID)
		return "", err
	}
	return token, nil
}

// Verify resolves a cookie token to its live session. Expired sessions are
// deleted on sight.
func (s *Service) Verify(token string) (*models.Session, error) {
	sid, err := s.parseToken(token)
	if err != nil {
		return nil, ErrNoSession
	}

	session, err := s.sessions.Get(sid)
	if err != nil {
		return nil, ErrNoSession
	}
	if !session.Authenticated {
		return nil, ErrNoSession
	}
	if session.Expired(time.Now()) {
		_ = s.sessions.Delete(session.ID)
		return nil, ErrNoSession
	}
	return session, nil
}

// Logout destroys the session behind the cookie token, if any.
func (s *Service) Logout(token string) {
	sid, err := s.parseToken(token)
	if err != nil {
		return
	}
	if err := s.sessions.Delete(sid); err != nil {
		s.log.Warn("failed to delete session on logout", zap.Error(err))
	}
}

// CookieMaxAge returns the cookie lifetime in seconds.
func (s *Service) CookieMaxAge() int {
	return int(s.sessionTTL.Seconds())
}

func (s *Service) passwordMatches(password string) bool {
	if strings.HasPrefix(s.adminPassword, "$2a$") ||
		strings.HasPrefix(s.adminPassword, "$2b$") ||
		strings.HasPrefix(s.adminPassword, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(s.adminPassword), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.adminPassword), []byte(password)) == 1
}

func (s *Service) signToken(session *models.Session) (string, error) {
	claims := sessionClaims{
		SessionID: session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

func (s *Service) parseToken(token string) (string, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.signingSecret, nil
	})
	if err != nil || !parsed.Valid || claims.SessionID == "" {
		return "", ErrNoSession
	}
	return claims.SessionID, nil
}
