package pgstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/notifykit/pkg/preferences"
)

// ProfileStore implements preferences.Store on PostgreSQL. Profiles are
// stored as one jsonb document per user and replaced wholesale on update,
// matching the whole-profile semantics of the preferences layer.
type ProfileStore struct {
	pool *pgxpool.Pool
}

// NewProfileStore creates a preference store on the given pool.
func NewProfileStore(pool *pgxpool.Pool) *ProfileStore {
	return &ProfileStore{pool: pool}
}

func (s *ProfileStore) Get(ctx context.Context, userID string) (preferences.Profile, error) {
	if userID == "" {
		return preferences.Profile{}, preferences.ErrUserIDRequired
	}

	var raw []byte
	err := s.pool.QueryRow(ctx, `
		SELECT profile FROM notification_preferences WHERE user_id = $1`, userID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Missing profile is not an error; routing falls back to the
			// conservative default.
			return preferences.Default(), nil
		}
		return preferences.Profile{}, fmt.Errorf("failed to load profile for user %s: %w", userID, err)
	}

	var p preferences.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return preferences.Profile{}, fmt.Errorf("failed to decode profile for user %s: %w", userID, err)
	}
	return p, nil
}

func (s *ProfileStore) Set(ctx context.Context, userID string, p preferences.Profile) error {
	if userID == "" {
		return preferences.ErrUserIDRequired
	}
	if err := p.Validate(); err != nil {
		return err
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode profile for user %s: %w", userID, err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO notification_preferences (user_id, profile, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE SET profile = EXCLUDED.profile, updated_at = now()`,
		userID, raw,
	)
	if err != nil {
		return fmt.Errorf("failed to store profile for user %s: %w", userID, err)
	}
	return nil
}
