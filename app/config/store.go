package config

import (
	"context"
	"fmt"

	"todo-lists/app/sessions"
)

// CreateSessionStore creates the session store selected by the configuration
func CreateSessionStore(ctx context.Context, config *Config) (sessions.Store, error) {
	switch config.Session.Backend {
	case BackendSQLite:
		store, err := sessions.NewSQLiteStore(config.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite session store: %w", err)
		}
		return store, nil
	case BackendNeo4j:
		driver, err := InitNeo4j(config.Neo4j)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize neo4j driver: %w", err)
		}
		store, err := sessions.NewNeo4jStore(ctx, driver)
		if err != nil {
			driver.Close(ctx)
			return nil, fmt.Errorf("failed to initialize neo4j session store: %w", err)
		}
		return store, nil
	default:
		return sessions.NewMemoryStore(), nil
	}
}
