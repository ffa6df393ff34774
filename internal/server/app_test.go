package server

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.EndpointAddrGRPC = "127.0.0.1:0"
	cfg.LogLevel = "error"
	return cfg
}

func TestNewApp_InMemory(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)
	assert.Nil(t, app.db)
	assert.NotNil(t, app.authService)

	sess, err := app.authService.CreateAccount(context.Background(), "alice", "Alice", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
}

func TestNewApp_DBOpenError(t *testing.T) {
	orig := openDB
	openDB = func(context.Context, string) (*sql.DB, error) { return nil, errors.New("refused") }
	defer func() { openDB = orig }()

	cfg := testConfig()
	cfg.DatabaseDSN = "postgres://nowhere/db"

	_, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db init error: refused")
}

func TestRun_StopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestRun_BadAddress(t *testing.T) {
	cfg := testConfig()
	cfg.EndpointAddrGRPC = "127.0.0.1:99999"
	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)

	assert.Error(t, app.Run(context.Background()))
}
