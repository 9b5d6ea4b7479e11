package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// Session is an authenticated administrator session.
type Session struct {
	ID        string
	Username  string
	ExpiresAt time.Time
}

// AuthService authenticates the single configured administrator and issues
// signed session tokens. Logged-out sessions are kept in a revocation list
// until their token would have expired anyway.
type AuthService struct {
	cfg          *config.Config
	passwordHash []byte
	now          func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewAuthService(cfg *config.Config) (*AuthService, error) {
	hash := []byte(cfg.AdminPasswordHash)
	if len(hash) == 0 {
		if cfg.AdminPassword == "" {
			return nil, errors.New("admin password is not configured")
		}
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("invalid ADMIN_PASSWORD_HASH: %w", err)
	}

	return &AuthService{
		cfg:          cfg,
		passwordHash: hash,
		now:          time.Now,
		revoked:      make(map[string]time.Time),
	}, nil
}

// WithClock replaces the clock used for issuing and validating sessions.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

func (s *AuthService) Login(username, password string) (string, *Session, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		return "", nil, ErrInvalidCredentials
	}

	session := &Session{
		ID:        uuid.New().String(),
		Username:  s.cfg.AdminUsername,
		ExpiresAt: s.now().Add(s.cfg.SessionTTL),
	}

	claims := jwt.MapClaims{
		"sub": session.Username,
		"jti": session.ID,
		"iat": s.now().Unix(),
		"exp": session.ExpiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, session, nil
}

// CheckSession validates a raw session token.
func (s *AuthService) CheckSession(raw string) (*Session, error) {
	token, err := s.parse(raw, false)
	if err != nil {
		return nil, ErrInvalidSession
	}
	return s.SessionFromToken(token)
}

// SessionFromToken converts an already verified token into a session,
// rejecting revoked ones.
func (s *AuthService) SessionFromToken(token *jwt.Token) (*Session, error) {
	session, err := sessionFromClaims(token)
	if err != nil {
		return nil, err
	}
	if s.isRevoked(session.ID) {
		return nil, ErrInvalidSession
	}
	return session, nil
}

// Logout revokes the session carried by raw. Expired tokens are accepted so
// a stale cookie can still be cleared.
func (s *AuthService) Logout(raw string) error {
	token, err := s.parse(raw, true)
	if err != nil {
		return ErrInvalidSession
	}
	session, err := sessionFromClaims(token)
	if err != nil {
		return err
	}
	s.Revoke(session)
	return nil
}

func (s *AuthService) Revoke(session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	s.revoked[session.ID] = session.ExpiresAt
}

// RevokedCount reports the number of sessions still held in the revocation list.
func (s *AuthService) RevokedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	return len(s.revoked)
}

func (s *AuthService) isRevoked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.revoked[id]
	return ok
}

func (s *AuthService) pruneLocked() {
	now := s.now()
	for id, exp := range s.revoked {
		if !exp.After(now) {
			delete(s.revoked, id)
		}
	}
}

func (s *AuthService) parse(raw string, allowExpired bool) (*jwt.Token, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	token, err := jwt.Parse(raw, func(*jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, opts...)
	if err != nil {
		if allowExpired && token != nil && errors.Is(err, jwt.ErrTokenExpired) {
			return token, nil
		}
		return nil, err
	}
	return token, nil
}

func sessionFromClaims(token *jwt.Token) (*Session, error) {
	if token == nil {
		return nil, ErrInvalidSession
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidSession
	}

	sub, _ := claims["sub"].(string)
	jti, _ := claims["jti"].(string)
	if sub == "" || jti == "" {
		return nil, ErrInvalidSession
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrInvalidSession
	}

	return &Session{ID: jti, Username: sub, ExpiresAt: exp.Time}, nil
}
