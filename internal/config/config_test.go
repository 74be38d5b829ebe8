package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phygrid/engine/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAPIConfig_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
debug: true
server:
  port: 9090
database:
  host: db.internal
  user: engine
  password: secret
  dbname: phygrid
nats:
  url: nats://queue.internal:4222
  connection_name: engine-api
chain:
  signer_url: https://signer.internal
  contract_address: "0x1111111111111111111111111111111111111111"
transfer:
  code_ttl: 2h
`)

	cfg, err := config.LoadAPIConfig(path, t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "phygrid", cfg.Database.DBName)
	assert.Equal(t, "nats://queue.internal:4222", cfg.NATS.URL)
	assert.Equal(t, "https://signer.internal", cfg.Chain.SignerURL)
	assert.Equal(t, 2*time.Hour, cfg.Transfer.CodeTTL)

	// Unset keys fall back to defaults
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "ownership-reconciliation", cfg.Temporal.TaskQueue)
	assert.Equal(t, "OWNERSHIP_EVENTS", cfg.NATS.StreamName)
	assert.Equal(t, 2*time.Minute, cfg.Chain.MaxElapsedTime)
	assert.Equal(t, 168*time.Hour, cfg.Bid.BidTTL)
}

func TestLoadAPIConfig_EnvOverridesWithoutFile(t *testing.T) {
	t.Setenv("PHYGRID_DATABASE_HOST", "env-db.internal")
	t.Setenv("PHYGRID_SERVER_PORT", "7070")
	t.Setenv("PHYGRID_BID_BID_TTL", "72h")

	// Point the file at a directory with no config.yaml so only env applies
	path := writeConfigFile(t, "")
	cfg, err := config.LoadAPIConfig(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "env-db.internal", cfg.Database.Host)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 72*time.Hour, cfg.Bid.BidTTL)
}

func TestLoadReconcilerConfig_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
database:
  host: db.internal
  dbname: phygrid
`)

	cfg, err := config.LoadReconcilerConfig(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "localhost:7233", cfg.Temporal.HostPort)
	assert.Equal(t, "default", cfg.Temporal.Namespace)
	assert.Equal(t, 50, cfg.Temporal.MaxConcurrentActivityExecutionSize)
	assert.Equal(t, float64(50), cfg.Temporal.WorkerActivitiesPerSecond)
	assert.Equal(t, 10, cfg.NATS.MaxReconnects)
	assert.Equal(t, 2*time.Second, cfg.NATS.ReconnectWait)
}

func TestLoadSweeperConfig(t *testing.T) {
	path := writeConfigFile(t, `
database:
  host: db.internal
  dbname: phygrid
expiry_sweeper:
  interval: 30s
  batch_size: 50
  worker:
    pool_size: 4
`)

	cfg, err := config.LoadSweeperConfig(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.ExpirySweeper.Interval)
	assert.Equal(t, 50, cfg.ExpirySweeper.BatchSize)
	assert.Equal(t, 4, cfg.ExpirySweeper.Worker.WorkerPoolSize)
	assert.Equal(t, 100, cfg.ExpirySweeper.Worker.WorkerQueueSize)
	assert.Equal(t, 5, cfg.Database.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
}

func TestLoadSweeperConfig_RequiresDatabase(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing host",
			content: "database:\n  dbname: phygrid\n",
			wantErr: "database.host is required",
		},
		{
			name:    "missing dbname",
			content: "database:\n  host: db.internal\n",
			wantErr: "database.dbname is required",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfigFile(t, tc.content)
			_, err := config.LoadSweeperConfig(path, t.TempDir())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestDatabaseConfigDSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "engine",
		Password: "secret",
		DBName:   "phygrid",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=db.internal port=5432 user=engine password=secret dbname=phygrid sslmode=disable",
		cfg.DSN(),
	)
}
