package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServe_ReturnsErrorWhenDatabaseIsDown(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "1")
	t.Setenv("DB_CONNECT_RETRIES", "1")
	t.Setenv("DB_RETRY_INTERVAL", "10ms")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	cmd := serveCmd()
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.ErrorContains(t, err, "failed to connect to db after retries")
}

func TestMigrate_ReturnsErrorWhenDatabaseIsDown(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "1")
	t.Setenv("DB_CONNECT_RETRIES", "1")

	cmd := migrateCmd()
	cmd.SetArgs([]string{})

	assert.ErrorContains(t, cmd.Execute(), "failed to connect to database")
}
