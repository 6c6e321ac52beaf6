package database

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, IsPostgresDSN("postgres://u:p@localhost:5432/db"))
	assert.True(t, IsPostgresDSN("postgresql://localhost/db"))
	assert.False(t, IsPostgresDSN("mongodb+srv://cluster0.example.net"))
	assert.False(t, IsPostgresDSN(""))
}

func TestPingHandshaker_InvalidDSN(t *testing.T) {
	err := PingHandshaker{}.Handshake(context.Background(), "postgres://%zz")
	assert.Error(t, err)
}

func TestPingHandshaker_LiveDatabase(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	require.NoError(t, PingHandshaker{}.Handshake(context.Background(), dsn))

	db, err := NewPostgreSQLDB(context.Background(), dsn)
	require.NoError(t, err)
	defer db.Close()
	assert.NoError(t, PingHandshaker{DB: db}.Handshake(context.Background(), dsn))
}
