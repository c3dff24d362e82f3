package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDSNPrefersExplicitValue(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env-host/corgi_quest")

	dsn := resolveDSN("postgres://config-host/corgi_quest")
	assert.Equal(t, "postgres://config-host/corgi_quest", dsn)
}

func TestResolveDSNFallsBackToEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env-host/corgi_quest")

	dsn := resolveDSN("")
	assert.Equal(t, "postgres://env-host/corgi_quest", dsn)
}

func TestResolveDSNBuildsFromComponents(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "corgi")
	t.Setenv("DB_PASS", "hunter2")
	t.Setenv("DB_NAME", "corgi_quest")
	t.Setenv("DB_PORT", "5433")

	dsn := resolveDSN("")
	assert.Equal(t, "host=db.internal user=corgi password=hunter2 dbname=corgi_quest port=5433 sslmode=disable", dsn)
}
