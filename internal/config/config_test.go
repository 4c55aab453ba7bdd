package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:                     "8000",
		Env:                      "development",
		DBDriver:                 DriverSQLite,
		DBMaxOpenConns:           25,
		DBMaxIdleConns:           5,
		DBConnMaxLifetimeMinutes: 5,
		RateLimitWritesPerMinute: 60,
		TracingSampleRatio:       1,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"missing port", func(c *Config) { c.Port = "" }, true},
		{"unknown driver", func(c *Config) { c.DBDriver = "mysql" }, true},
		{"postgres driver", func(c *Config) { c.DBDriver = DriverPostgres }, false},
		{"zero open conns", func(c *Config) { c.DBMaxOpenConns = 0 }, true},
		{"zero rate limit", func(c *Config) { c.RateLimitWritesPerMinute = 0 }, true},
		{"sample ratio too high", func(c *Config) { c.TracingSampleRatio = 1.5 }, true},
		{"production postgres default password", func(c *Config) {
			c.Env = "production"
			c.DBDriver = DriverPostgres
			c.DBPassword = "password"
		}, true},
		{"production postgres explicit dsn", func(c *Config) {
			c.Env = "production"
			c.DBDriver = DriverPostgres
			c.DBDSN = "postgres://app:secret@db/posts"
		}, false},
		{"production sqlite", func(c *Config) { c.Env = "prod" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	c := validConfig()
	assert.Equal(t, "./test.db", c.DSN())

	c.DBDSN = ":memory:"
	assert.Equal(t, ":memory:", c.DSN())

	c = validConfig()
	c.DBDriver = DriverPostgres
	c.DBHost = "db"
	c.DBPort = "5432"
	c.DBUser = "app"
	c.DBPassword = "secret"
	c.DBName = "posts"
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=posts sslmode=disable", c.DSN())
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer viper.Reset()
	t.Setenv("APP_ENV", "test")

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", c.Port)
	assert.Equal(t, DriverSQLite, c.DBDriver)
	assert.Equal(t, "*", c.AllowedOrigins)
	assert.Equal(t, 60, c.RateLimitWritesPerMinute)
	assert.False(t, c.TracingEnabled)
}

func TestLoadConfig_EnvOverridesAndNormalization(t *testing.T) {
	defer viper.Reset()
	t.Setenv("APP_ENV", "test")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "  Postgres ")
	t.Setenv("DB_SSLMODE", "  DISABLE  ")

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, DriverPostgres, c.DBDriver)
	assert.Equal(t, "disable", c.DBSSLMode)
}
