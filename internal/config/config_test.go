package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigFile writes the content to a config.yaml in a temporary directory.
// An empty content yields the path of a file that does not exist.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	tmpDir := t.TempDir()
	if content == "" {
		return filepath.Join(tmpDir, "nonexistent.yaml")
	}

	configFile := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configFile, []byte(content), 0600)
	require.NoError(t, err)
	return configFile
}

func TestLoadEventBridgeConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *EventBridgeConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
  consumer_name: "test-bridge"
  ack_wait: "1m"
  max_deliver: 8
temporal:
  host_port: "temporal:7233"
  namespace: "aisle"
  learning_task_queue: "learning-test"
`,
			validate: func(t *testing.T, cfg *EventBridgeConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, "test-bridge", cfg.NATS.ConsumerName)
				assert.Equal(t, time.Minute, cfg.NATS.AckWait)
				assert.Equal(t, 8, cfg.NATS.MaxDeliver)
				assert.Equal(t, "temporal:7233", cfg.Temporal.HostPort)
				assert.Equal(t, "aisle", cfg.Temporal.Namespace)
				assert.Equal(t, "learning-test", cfg.Temporal.LearningTaskQueue)
			},
		},
		{
			name: "config with defaults",
			configFile: `
nats:
  url: "nats://localhost:4222"
`,
			validate: func(t *testing.T, cfg *EventBridgeConfig) {
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, 2*time.Second, cfg.NATS.ReconnectWait)
				assert.Equal(t, "TRIP_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "event-bridge", cfg.NATS.ConsumerName)
				assert.Equal(t, 30*time.Second, cfg.NATS.AckWait)
				assert.Equal(t, 5, cfg.NATS.MaxDeliver)
				assert.Equal(t, "localhost:7233", cfg.Temporal.HostPort)
				assert.Equal(t, "default", cfg.Temporal.Namespace)
				assert.Equal(t, "aisle-learning", cfg.Temporal.LearningTaskQueue)
			},
		},
		{
			name: "invalid yaml",
			configFile: `
				nats:
				  url: [
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadEventBridgeConfig(writeConfigFile(t, tt.configFile), t.TempDir())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadWorkerCoreConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *WorkerCoreConfig)
	}{
		{
			name: "valid config file",
			configFile: `
sentry_dsn: "https://sentry.example.com"
database:
  host: db
  port: 6543
  user: aisle
  password: secret
  dbname: aisle
  sslmode: require
temporal:
  learning_task_queue: "learning"
  max_concurrent_activity_execution_size: 20
  worker_activities_per_second: 12.5
redis:
  addr: "redis:6379"
  db: 2
  valid_sequence_ttl: "30m"
`,
			validate: func(t *testing.T, cfg *WorkerCoreConfig) {
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "db", cfg.Database.Host)
				assert.Equal(t, 6543, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "learning", cfg.Temporal.LearningTaskQueue)
				assert.Equal(t, 20, cfg.Temporal.MaxConcurrentActivityExecutionSize)
				assert.InDelta(t, 12.5, cfg.Temporal.WorkerActivitiesPerSecond, 1e-9)
				assert.Equal(t, "redis:6379", cfg.Redis.Addr)
				assert.Equal(t, 2, cfg.Redis.DB)
				assert.Equal(t, 30*time.Minute, cfg.Redis.ValidSequenceTTL)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: db
  dbname: aisle
`,
			validate: func(t *testing.T, cfg *WorkerCoreConfig) {
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "aisle-learning", cfg.Temporal.LearningTaskQueue)
				assert.Equal(t, 50, cfg.Temporal.MaxConcurrentActivityExecutionSize)
				assert.Equal(t, 10, cfg.Temporal.MaxConcurrentActivityTaskPollers)
				assert.Equal(t, 10*time.Minute, cfg.Redis.ValidSequenceTTL)
				assert.Empty(t, cfg.Redis.Addr)
			},
		},
		{
			name: "invalid port",
			configFile: `
database:
  host: db
  port: invalid
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadWorkerCoreConfig(writeConfigFile(t, tt.configFile), t.TempDir())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 5
database:
  host: primary
  read_host: replica
  read_port: 5433
  user: aisle
  password: secret
  dbname: aisle
auth:
  jwt_public_key: "-----BEGIN PUBLIC KEY-----"
  api_keys:
    - key-1
    - key-2
rate_limit:
  enabled: false
  requests_per_minute: 120
  burst: 20
ordering:
  parallelism: 4
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 5, cfg.Server.ReadTimeout)
				assert.Equal(t, "replica", cfg.Database.ReadHost)
				assert.Equal(t, 5433, cfg.Database.ReadPort)
				assert.Equal(t, "-----BEGIN PUBLIC KEY-----", cfg.Auth.JWTPublicKey)
				assert.Equal(t, []string{"key-1", "key-2"}, cfg.Auth.APIKeys)
				assert.False(t, cfg.RateLimit.Enabled)
				assert.Equal(t, 120, cfg.RateLimit.RequestsPerMinute)
				assert.Equal(t, 20, cfg.RateLimit.Burst)
				assert.Equal(t, 4, cfg.Ordering.Parallelism)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: primary
  dbname: aisle
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 120, cfg.Server.IdleTimeout)
				assert.Equal(t, "TRIP_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "aisle-api", cfg.NATS.ConnectionName)
				assert.True(t, cfg.RateLimit.Enabled)
				assert.Equal(t, 600, cfg.RateLimit.RequestsPerMinute)
				assert.Equal(t, 100, cfg.RateLimit.Burst)
				assert.Equal(t, "aisle:limiter:", cfg.RateLimit.RedisKeyPrefix)
				assert.True(t, cfg.RateLimit.EnableLocalFallback)
				assert.InDelta(t, 0.5, cfg.RateLimit.LocalFallbackMultiplier, 1e-9)
				assert.Equal(t, 8, cfg.Ordering.Parallelism)
				assert.Empty(t, cfg.Database.ReadHost)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadAPIConfig(writeConfigFile(t, tt.configFile), t.TempDir())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadSweeperConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *SweeperConfig)
	}{
		{
			name: "valid config file",
			configFile: `
database:
  host: db
  dbname: aisle
learning_sweeper:
  batch_size: 50
  grace_period: "1h"
  interval: "30s"
  worker:
    pool_size: 4
    queue_size: 16
`,
			validate: func(t *testing.T, cfg *SweeperConfig) {
				assert.Equal(t, 50, cfg.LearningSweeper.BatchSize)
				assert.Equal(t, time.Hour, cfg.LearningSweeper.GracePeriod)
				assert.Equal(t, 30*time.Second, cfg.LearningSweeper.Interval)
				assert.Equal(t, 4, cfg.LearningSweeper.Worker.WorkerPoolSize)
				assert.Equal(t, 16, cfg.LearningSweeper.Worker.WorkerQueueSize)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: db
  dbname: aisle
`,
			validate: func(t *testing.T, cfg *SweeperConfig) {
				assert.Equal(t, 5, cfg.Database.MaxOpenConns)
				assert.Equal(t, 2, cfg.Database.MaxIdleConns)
				assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
				assert.Equal(t, 10*time.Minute, cfg.Database.ConnMaxIdleTime)
				assert.Equal(t, 100, cfg.LearningSweeper.BatchSize)
				assert.Equal(t, 15*time.Minute, cfg.LearningSweeper.GracePeriod)
				assert.Equal(t, 5*time.Minute, cfg.LearningSweeper.Interval)
				assert.Equal(t, 10, cfg.LearningSweeper.Worker.WorkerPoolSize)
				assert.Equal(t, "aisle-learning", cfg.Temporal.LearningTaskQueue)
			},
		},
		{
			name: "missing database host",
			configFile: `
database:
  dbname: aisle
`,
			expectError: true,
		},
		{
			name: "missing database name",
			configFile: `
database:
  host: db
`,
			expectError: true,
		},
		{
			name:        "missing config file",
			configFile:  "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadSweeperConfig(writeConfigFile(t, tt.configFile), t.TempDir())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestDatabaseConfig_ReadDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "primary",
		Port:     5432,
		ReadHost: "replica",
		User:     "aisle",
		Password: "secret",
		DBName:   "aisle",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=replica port=5432 user=aisle password=secret dbname=aisle sslmode=disable", cfg.ReadDSN())

	cfg.ReadPort = 6432
	assert.Equal(t, "host=replica port=6432 user=aisle password=secret dbname=aisle sslmode=disable", cfg.ReadDSN())
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// Viper uses the AISLE_ prefix
	envFile := filepath.Join(envDir, ".env")
	envContent := `AISLE_DEBUG=true
AISLE_DATABASE_HOST=env-host
AISLE_DATABASE_PORT=3306
AISLE_DATABASE_USER=env-user
AISLE_REDIS_ADDR=env-redis:6379
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)

	// godotenv sets process environment variables, clear them for the other tests
	t.Cleanup(func() {
		for _, key := range []string{"AISLE_DEBUG", "AISLE_DATABASE_HOST", "AISLE_DATABASE_PORT", "AISLE_DATABASE_USER", "AISLE_REDIS_ADDR"} {
			_ = os.Unsetenv(key)
		}
	})

	// Per-service local files override the shared ones
	serviceEnvFile := filepath.Join(envDir, ".env.api.local")
	err = os.WriteFile(serviceEnvFile, []byte("AISLE_DATABASE_USER=api-user\n"), 0600)
	require.NoError(t, err)

	configPath := writeConfigFile(t, `
debug: false
database:
  host: file-host
  port: 5432
  user: file-user
  dbname: file-db
`)

	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "api-user", cfg.Database.User)
	assert.Equal(t, "file-db", cfg.Database.DBName)
	assert.Equal(t, "env-redis:6379", cfg.Redis.Addr)
}
