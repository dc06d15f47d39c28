package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "app:\n  name: test\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.App.Port)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, 30*24*time.Hour, cfg.Session.MaxAge())
	assert.Equal(t, 15*time.Minute, cfg.Session.PruneInterval())
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL())
	assert.Equal(t, "news", cfg.Elasticsearch.NewsIndex())
	assert.Equal(t, "brasileirao.news.events", cfg.Kafka.NewsEventsTopic())
	assert.Same(t, cfg, Get())
}

func TestLoadRejectsDefaultSecretInRelease(t *testing.T) {
	path := writeConfig(t, "app:\n  mode: release\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SESSION_SECRET", "from-env")
	path := writeConfig(t, "app:\n  mode: release\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Session.Secret)
}

func TestDSNIncludesConnectTimeout(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "n", SSLMode: "disable", ConnectTimeout: 2}
	assert.Contains(t, d.DSN(), "connect_timeout=2")
}
