package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("set default option", func(t *testing.T) {
		c := NewConfig()

		require.Equal(t, "localhost:8080", c.ListenAddr, "default listen address not set")
		require.Equal(t, "info", c.LogLevel, "default log level not set")
		require.Equal(t, "production", c.Environment, "default environment not set")
		require.Equal(t, []string{"*"}, c.AllowOrigins, "any origin allowed by default")
		require.False(t, c.SeedDemoData, "demo data should be off by default")
	})

	t.Run("load env", func(t *testing.T) {
		c := NewConfig()
		getenv := func(key string) string {
			switch key {
			case "RUN_ADDRESS":
				return "localhost:9000"
			case "LOG_LEVEL":
				return "debug"
			case "ENVIRONMENT":
				return "development"
			case "CORS_ALLOW_ORIGINS":
				return "http://localhost:3000, https://bank.example.com,"
			case "SEED_DEMO_DATA":
				return "true"
			default:
				return ""
			}
		}

		err := c.LoadEnv(getenv)

		require.NoError(t, err)
		require.Equal(t, "localhost:9000", c.ListenAddr)
		require.Equal(t, "debug", c.LogLevel)
		require.Equal(t, "development", c.Environment)
		require.Equal(t, []string{"http://localhost:3000", "https://bank.example.com"}, c.AllowOrigins)
		require.True(t, c.SeedDemoData)
	})

	t.Run("load env invalid bool", func(t *testing.T) {
		c := NewConfig()

		err := c.LoadEnv(func(key string) string {
			if key == "SEED_DEMO_DATA" {
				return "sometimes"
			}
			return ""
		})

		require.Error(t, err)
		require.Contains(t, err.Error(), "SEED_DEMO_DATA")
	})

	t.Run("load dot env", func(t *testing.T) {
		dir := t.TempDir()
		err := os.WriteFile(filepath.Join(dir, ".env"), []byte("RUN_ADDRESS=localhost:7000\nLOG_LEVEL=warn\n"), 0o600)
		require.NoError(t, err)
		c := NewConfig()

		err = c.LoadDotEnv(func() (string, error) { return dir, nil })

		require.NoError(t, err)
		require.Equal(t, "localhost:7000", c.ListenAddr)
		require.Equal(t, "warn", c.LogLevel)
	})

	t.Run("missing dot env ok", func(t *testing.T) {
		c := NewConfig()

		err := c.LoadDotEnv(func() (string, error) { return t.TempDir(), nil })

		require.NoError(t, err)
		require.Equal(t, "localhost:8080", c.ListenAddr)
	})

	t.Run("parse flags", func(t *testing.T) {
		t.Run("valid flags", func(t *testing.T) {
			tests := []struct {
				name  string
				flags []string
			}{
				{
					name: "short",
					flags: []string{
						"-a", "localhost:9000",
						"-l", "debug",
						"-e", "dev",
						"-o", "http://localhost:3000",
						"--seed",
					},
				},
				{
					name: "long",
					flags: []string{
						"--address", "localhost:9000",
						"--log-level", "debug",
						"--environment", "dev",
						"--cors-origins", "http://localhost:3000",
						"--seed=true",
					},
				},
			}

			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					c := NewConfig()

					err := c.ParseFlags(tt.flags)

					require.NoError(t, err, "correct flags must pursed without error")
					require.Equal(t, "localhost:9000", c.ListenAddr)
					require.Equal(t, "debug", c.LogLevel)
					require.Equal(t, "dev", c.Environment)
					require.Equal(t, []string{"http://localhost:3000"}, c.AllowOrigins)
					require.True(t, c.SeedDemoData)
				})
			}
		})

		t.Run("invalid flags", func(t *testing.T) {
			c := NewConfig()

			err := c.ParseFlags([]string{
				"--invalid-flag", "value",
			})

			require.Error(t, err, "invalid flag should return an error")
		})
	})
}
