package config

import (
	"context"
	"testing"
	"time"

	"todo-lists/app/models"
	"todo-lists/app/sessions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSessionStore(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		want    any
	}{
		{name: "should default to memory", backend: BackendMemory, want: &sessions.MemoryStore{}},
		{name: "should open sqlite", backend: BackendSQLite, want: &sessions.SQLiteStore{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Session.Backend = tt.backend
			cfg.SQLite.Path = ":memory:"

			store, err := CreateSessionStore(context.Background(), cfg)
			require.NoError(t, err)
			defer store.Close()
			assert.IsType(t, tt.want, store)

			ctx := context.Background()
			require.NoError(t, store.Save(ctx, "abc", models.NewSession(), time.Now().Add(time.Hour)))
			_, ok, err := store.Load(ctx, "abc")
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}
