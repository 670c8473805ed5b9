package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

const (
	snapshotKeyPrefix = "session:"
	rememberedKey     = "remembered"
)

// Shadow is the Redis-backed persistence mirror of session state. Each session
// is one JSON value under session:<id>, and the remembered-credential record
// is one JSON value under a single key, so a partial multi-key write can never
// leave the shadow inconsistent.
type Shadow struct {
	client      *redis.Client
	snapshotTTL time.Duration
	rememberTTL time.Duration
}

// NewShadow creates a Shadow wrapping the given Redis client. Zero TTLs fall
// back to a day for snapshots and a month for remembered credentials.
func NewShadow(client *redis.Client, snapshotTTL, rememberTTL time.Duration) *Shadow {
	if snapshotTTL <= 0 {
		snapshotTTL = 24 * time.Hour
	}
	if rememberTTL <= 0 {
		rememberTTL = 30 * 24 * time.Hour
	}
	return &Shadow{client: client, snapshotTTL: snapshotTTL, rememberTTL: rememberTTL}
}

func (s *Shadow) SaveSnapshot(ctx context.Context, snap ports.SessionSnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := s.client.Set(ctx, snapshotKey(snap.SessionID), payload, s.snapshotTTL).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *Shadow) LoadSnapshot(ctx context.Context, sessionID string) (*ports.SessionSnapshot, error) {
	payload, err := s.client.Get(ctx, snapshotKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snap ports.SessionSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

func (s *Shadow) DeleteSnapshot(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, snapshotKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

func (s *Shadow) SaveRemembered(ctx context.Context, rec ports.RememberedCredentials) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal remembered credentials: %w", err)
	}
	if err := s.client.Set(ctx, rememberedKey, payload, s.rememberTTL).Err(); err != nil {
		return fmt.Errorf("save remembered credentials: %w", err)
	}
	return nil
}

// LoadRemembered returns (nil, nil) when nothing is remembered.
func (s *Shadow) LoadRemembered(ctx context.Context) (*ports.RememberedCredentials, error) {
	payload, err := s.client.Get(ctx, rememberedKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load remembered credentials: %w", err)
	}

	var rec ports.RememberedCredentials
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("decode remembered credentials: %w", err)
	}
	return &rec, nil
}

func (s *Shadow) DeleteRemembered(ctx context.Context) error {
	if err := s.client.Del(ctx, rememberedKey).Err(); err != nil {
		return fmt.Errorf("delete remembered credentials: %w", err)
	}
	return nil
}

func snapshotKey(sessionID string) string {
	return snapshotKeyPrefix + sessionID
}
