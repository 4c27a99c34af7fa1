package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-lists/app/config"
)

func TestRootCommand_RejectsInvalidFlags(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--session-backend", "redis"})

	err := cmd.Execute()

	var cfgErr *config.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "session.backend", cfgErr.Field)
}

func TestRootCommand_Flags(t *testing.T) {
	cmd := newRootCommand()
	for _, name := range []string{"config", "addr", "session-backend", "session-ttl", "sqlite-path", "neo4j-uri", "log-level", "log-format"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
