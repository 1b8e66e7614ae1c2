package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("BACKFILL_DEFAULT_NUM", "")
	t.Setenv("AWS_ENDPOINT", "")

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "movie_data.db", cfg.Database.Path)
	assert.Equal(t, 10, cfg.Backfill.DefaultNum)
	assert.Equal(t, "https://www.omdbapi.com/", cfg.OMDb.BaseURL)
	assert.False(t, cfg.MinIO.Enabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_QUERY_TIMEOUT", "3s")
	t.Setenv("BACKFILL_DEFAULT_NUM", "25")
	t.Setenv("AWS_USE_SSL", "false")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 25, cfg.Backfill.DefaultNum)
	assert.False(t, cfg.MinIO.UseSSL)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Contains(t, cfg.GetDSN(), "dbname=watchlog")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: "unsupported DB_DRIVER"},
		{name: "missing omdb key", mutate: func(c *Config) { c.OMDb.APIKey = "" }, wantErr: "OMDB_API_KEY"},
		{name: "partial minio", mutate: func(c *Config) { c.MinIO.Endpoint = "localhost:9000" }, wantErr: "AWS_ACCESS_KEY_ID"},
		{name: "bad backfill default", mutate: func(c *Config) { c.Backfill.DefaultNum = 0 }, wantErr: "BACKFILL_DEFAULT_NUM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Database: DatabaseConfig{Driver: DriverSQLite, Path: "test.db"},
				OMDb:     OMDbConfig{APIKey: "key"},
				Backfill: BackfillConfig{DefaultNum: 10},
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
