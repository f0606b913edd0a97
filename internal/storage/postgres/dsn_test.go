package postgres

import (
	"testing"

	"github.com/GoSim-25-26J-441/c4model-api/config"
	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{Host: "db", Port: 5432, User: "c4", Password: "secret", Name: "c4model"}
	assert.Equal(t, "host=db port=5432 user=c4 password=secret dbname=c4model sslmode=disable", DSN(cfg))

	cfg.SSLMode = "require"
	assert.Contains(t, DSN(cfg), "sslmode=require")
}

func TestDriverName(t *testing.T) {
	assert.Equal(t, "postgres", DriverName(&config.DatabaseConfig{}))
	assert.Equal(t, "postgres", DriverName(&config.DatabaseConfig{Driver: "postgres"}))
	assert.Equal(t, "pgx", DriverName(&config.DatabaseConfig{Driver: "pgx"}))
}
