// Package sessions keeps each browser session's state on the server and ties
// it to the browser with a signed cookie.
package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"todo-lists/app/models"
)

// Store persists session state for the lifetime of a session. Load reports
// ok=false for unknown or expired ids.
type Store interface {
	Load(ctx context.Context, id string) (state *models.Session, ok bool, err error)
	Save(ctx context.Context, id string, state *models.Session, expiresAt time.Time) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
	Close() error
}

func encodeState(state *models.Session) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	return data, nil
}

func decodeState(data []byte) (*models.Session, error) {
	state := models.NewSession()
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if state.Lists == nil {
		state.Lists = []*models.List{}
	}
	return state, nil
}
