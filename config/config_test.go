package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
http:
  port: 9090
  timeouts:
    readTimeout: 10s
identity:
  provider: local
storage:
  driver: postgres
postgres:
  dsn: postgres://localhost/supermall
  replicas: ["postgres://replica-1/supermall"]
  slowQueryThreshold: 500ms
blob:
  bucketUrl: mem://
pubsub:
  provider: google
  pushAudience: https://worker.mall.test/push
secretKey:
  access: a
  refresh: r
`

func TestLoadWithEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("BLOB_BUCKETURL", "file:///tmp/media")
	t.Setenv("HTTP_CORSALLOWORIGINS", "https://mall.test,https://admin.mall.test")

	cfg, err := LoadWithEnv[Config]("config", mustRel(t, dir))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, []string{"postgres://replica-1/supermall"}, cfg.Postgres.Replicas)
	assert.Equal(t, "file:///tmp/media", cfg.Blob.BucketURL)
	assert.Equal(t, []string{"https://mall.test", "https://admin.mall.test"}, cfg.HTTP.CORSAllowOrigins)
	assert.Equal(t, 500*time.Millisecond, cfg.Postgres.SlowQueryThreshold)
	assert.Equal(t, "https://worker.mall.test/push", cfg.PubSub.PushAudience)
}

func TestShippedConfigUsesFirestoreEmulator(t *testing.T) {
	cfg, err := LoadWithEnv[Config]("config", ".")
	require.NoError(t, err)
	applyDefaults(cfg)

	assert.Equal(t, StorageDriverFirestore, cfg.Storage.Driver)
	assert.Equal(t, "localhost:8081", cfg.Firebase.Emulator.FirestoreHost)
	assert.NoError(t, cfg.Validate())
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", mustRel(t, t.TempDir()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, IdentityProviderFirebase, cfg.Identity.Provider)
	assert.Equal(t, StorageDriverFirestore, cfg.Storage.Driver)
	assert.EqualValues(t, defaultMaxUploadSize, cfg.Blob.MaxUploadSize)
	assert.Equal(t, defaultAuditBufferSize, cfg.Audit.BufferSize)
	assert.Equal(t, defaultAuditWriteTimeout, cfg.Audit.WriteTimeout)
	assert.Equal(t, defaultWorkerPort, cfg.Worker.Port)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{
			Storage:  &StorageConfig{Driver: StorageDriverPostgres},
			Identity: &IdentityConfig{Provider: IdentityProviderLocal},
			Postgres: &PostgresConfig{DSN: "postgres://localhost/supermall"},
			Blob:     &BlobConfig{BucketURL: "mem://"},
		}
		cfg.SecretKey.Access = "a"
		cfg.SecretKey.Refresh = "r"

		return cfg
	}

	testCases := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "postgres without dsn", mutate: func(cfg *Config) { cfg.Postgres.DSN = "" }, wantErr: "postgres.dsn"},
		{name: "firestore without project", mutate: func(cfg *Config) { cfg.Storage.Driver = StorageDriverFirestore }, wantErr: "firebase.projectId"},
		{name: "unknown driver", mutate: func(cfg *Config) { cfg.Storage.Driver = "mysql" }, wantErr: "unknown storage driver"},
		{
			name: "firebase identity without api key",
			mutate: func(cfg *Config) {
				cfg.Identity.Provider = IdentityProviderFirebase
				cfg.Firebase = &FirebaseConfig{ProjectID: "mall"}
			},
			wantErr: "firebase.apiKey",
		},
		{name: "local identity without secrets", mutate: func(cfg *Config) { cfg.SecretKey.Refresh = "" }, wantErr: "secretKey"},
		{name: "missing bucket", mutate: func(cfg *Config) { cfg.Blob.BucketURL = "" }, wantErr: "blob.bucketUrl"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

// mustRel returns dir relative to the working directory, as LoadWithEnv joins search paths onto it.
func mustRel(t *testing.T, dir string) string {
	t.Helper()

	pwd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(pwd, dir)
	require.NoError(t, err)

	return rel
}
