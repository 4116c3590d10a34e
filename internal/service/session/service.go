package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid session token")

// Service issues browsing-session ids and signs them for the session cookie.
type Service struct {
	secret []byte
}

func New(secret string) (*Service, error) {
	if len(secret) < 16 {
		return nil, errors.New("session secret must be at least 16 bytes")
	}
	return &Service{secret: []byte(secret)}, nil
}

// Issue returns a new session id and its signed cookie value.
func (s *Service) Issue() (sessionID, token string) {
	sessionID = uuid.NewString()
	return sessionID, s.Encode(sessionID)
}

// Encode produces "<id>.<base64url(hmac-sha256(id))>".
func (s *Service) Encode(sessionID string) string {
	return sessionID + "." + s.sign(sessionID)
}

// Decode verifies a cookie value and returns the session id it carries.
func (s *Service) Decode(token string) (string, error) {
	id, sig, ok := strings.Cut(token, ".")
	if !ok || id == "" || sig == "" || strings.Contains(sig, ".") {
		return "", ErrInvalidToken
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", ErrInvalidToken
	}
	if !hmac.Equal([]byte(s.sign(id)), []byte(sig)) {
		return "", ErrInvalidToken
	}
	return id, nil
}

func (s *Service) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
