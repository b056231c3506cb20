package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "admin:session:" // admin:session:{session_id} -> "1"
	sessionTTL       = 24 * time.Hour
)

// SessionStore keeps admin login sessions in Redis. A session is just a
// flag keyed by a random id; there is a single admin identity, the shared
// secret they logged in with.
type SessionStore struct {
	client *redis.Client
	secret string
}

// NewSessionStore creates a store. secret signs the cookie value so a
// fabricated session id is rejected without a Redis round-trip.
func NewSessionStore(client *redis.Client, secret string) *SessionStore {
	return &SessionStore{client: client, secret: secret}
}

// Create registers a new session and returns the signed cookie value.
func (s *SessionStore) Create(ctx context.Context) (string, error) {
	id := uuid.New().String()
	if err := s.client.Set(ctx, sessionKeyPrefix+id, "1", sessionTTL).Err(); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return s.sign(id), nil
}

// Valid reports whether cookie names a live session.
func (s *SessionStore) Valid(ctx context.Context, cookie string) (bool, error) {
	id, ok := s.verify(cookie)
	if !ok {
		return false, nil
	}

	err := s.client.Get(ctx, sessionKeyPrefix+id).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check session: %w", err)
	}
	return true, nil
}

// Destroy removes the session named by cookie, if any.
func (s *SessionStore) Destroy(ctx context.Context, cookie string) error {
	id, ok := s.verify(cookie)
	if !ok {
		return nil
	}
	if err := s.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

func (s *SessionStore) sign(id string) string {
	mac := hmac.New(sha256.New, []byte(s.secret))
	mac.Write([]byte(id))
	return id + "." + hex.EncodeToString(mac.Sum(nil))
}

func (s *SessionStore) verify(cookie string) (string, bool) {
	id, sig, found := strings.Cut(cookie, ".")
	if !found {
		return "", false
	}
	want, err := hex.DecodeString(sig)
	if err != nil {
		return "", false
	}
	mac := hmac.New(sha256.New, []byte(s.secret))
	mac.Write([]byte(id))
	if !hmac.Equal(mac.Sum(nil), want) {
		return "", false
	}
	return id, true
}
