package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"todo-lists/app/models"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Neo4jStore keeps each session as a (:Session {id, data, expires_at}) node.
type Neo4jStore struct {
	driver neo4j.DriverWithContext
}

// NewNeo4jStore checks connectivity and makes sure session ids are unique.
func NewNeo4jStore(ctx context.Context, driver neo4j.DriverWithContext) (*Neo4jStore, error) {
	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("connect to neo4j: %w", err)
	}

	session := driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx,
			"CREATE CONSTRAINT session_id IF NOT EXISTS FOR (s:Session) REQUIRE s.id IS UNIQUE",
			nil,
		)
		return nil, err
	})
	if err != nil {
		return nil, fmt.Errorf("create session constraint: %w", err)
	}
	return &Neo4jStore{driver: driver}, nil
}

func (s *Neo4jStore) Load(ctx context.Context, id string) (*models.Session, bool, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx,
			"MATCH (s:Session {id: $id}) RETURN s.data AS data, s.expires_at AS expires_at",
			map[string]any{"id": id},
		)
		if err != nil {
			return nil, err
		}
		if res.Next(ctx) {
			return res.Record(), nil
		}
		return nil, res.Err()
	})
	if err != nil {
		return nil, false, fmt.Errorf("load session: %w", err)
	}

	record, _ := result.(*neo4j.Record)
	if record == nil {
		return nil, false, nil
	}
	state, ok, err := stateFromRecord(record, time.Now())
	if err != nil || ok {
		return state, ok, err
	}
	return nil, false, s.Delete(ctx, id)
}

// stateFromRecord decodes a (data, expires_at) row. ok is false when the
// session has expired.
func stateFromRecord(record *neo4j.Record, now time.Time) (*models.Session, bool, error) {
	if len(record.Values) < 2 {
		return nil, false, errors.New("session record: missing fields")
	}
	data, ok := record.Values[0].(string)
	if !ok {
		return nil, false, fmt.Errorf("session record: data is %T", record.Values[0])
	}
	expiresAt, ok := record.Values[1].(int64)
	if !ok {
		return nil, false, fmt.Errorf("session record: expires_at is %T", record.Values[1])
	}
	if expiresAt <= now.Unix() {
		return nil, false, nil
	}

	state, err := decodeState([]byte(data))
	if err != nil {
		return nil, false, err
	}
	return state, true, nil
}

func (s *Neo4jStore) Save(ctx context.Context, id string, state *models.Session, expiresAt time.Time) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err = session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx,
			"MERGE (s:Session {id: $id}) "+
				"SET s.data = $data, s.expires_at = $expires_at",
			map[string]any{
				"id":         id,
				"data":       string(data),
				"expires_at": expiresAt.Unix(),
			},
		)
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *Neo4jStore) Delete(ctx context.Context, id string) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx,
			"MATCH (s:Session {id: $id}) DETACH DELETE s",
			map[string]any{"id": id},
		)
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *Neo4jStore) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	removed, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx,
			"MATCH (s:Session) WHERE s.expires_at <= $now "+
				"DETACH DELETE s "+
				"RETURN count(*) AS removed",
			map[string]any{"now": now.Unix()},
		)
		if err != nil {
			return nil, err
		}
		record, err := res.Single(ctx)
		if err != nil {
			return nil, err
		}
		return record.Values[0], nil
	})
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	n, _ := removed.(int64)
	return int(n), nil
}

// Close closes the underlying driver.
func (s *Neo4jStore) Close() error {
	return s.driver.Close(context.Background())
}
