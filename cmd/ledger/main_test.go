package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/juanchoclasses/CursorWorkshop/internal/testutil"
)

func noEnv(string) string { return "" }

func Test_run(t *testing.T) {
	getwd := func() (string, error) { return t.TempDir(), nil }

	t.Run("stop with signal", func(t *testing.T) {
		port, err := testutil.RandomPort()
		require.NoError(t, err, "failed to get random port to start server")
		listenAddr := fmt.Sprintf("localhost:%d", port)

		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond) // Half Second
		t.Cleanup(cancel)

		err = run(ctx, noEnv, getwd, []string{
			"--address", listenAddr,
			"--log-level", "debug",
			"--seed",
		})

		require.NoError(t, err, "on correct stop should not return error")
	})

	t.Run("serves seeded demo data", func(t *testing.T) {
		port, err := testutil.RandomPort()
		require.NoError(t, err)
		listenAddr := fmt.Sprintf("localhost:%d", port)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- run(ctx, noEnv, getwd, []string{"--address", listenAddr, "--seed"})
		}()

		var body []byte
		require.Eventually(t, func() bool {
			resp, err := http.Get("http://" + listenAddr + "/api/accounts?teamId=demo-team")
			if err != nil {
				return false
			}
			defer resp.Body.Close() // nolint:errcheck
			body, err = io.ReadAll(resp.Body)
			return err == nil && resp.StatusCode == http.StatusOK
		}, 2*time.Second, 20*time.Millisecond, "server should start")

		require.Contains(t, string(body), "John Doe")
		require.Contains(t, string(body), "Jane Smith")

		cancel()
		require.NoError(t, <-done)
	})

	t.Run("stop with srv error", func(t *testing.T) {
		// Occupy the port so server can't listen on it
		ln, err := net.Listen("tcp", "127.0.0.1:")
		require.NoError(t, err)
		defer ln.Close() // nolint:errcheck

		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond) // Half Second
		t.Cleanup(cancel)

		err = run(ctx, noEnv, getwd, []string{
			"--address", ln.Addr().String(),
		})

		require.Error(t, err, "busy port must fail the run")
	})

	t.Run("invalid config", func(t *testing.T) {
		err := run(t.Context(), noEnv, getwd, []string{"--environment", "staging"})

		require.Error(t, err, "unknown environment must fail")
	})
}
