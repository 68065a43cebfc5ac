package main

import (
	"context"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/debtflow-backend/internal/adapter/repository/memory"
	"github.com/simaogato/debtflow-backend/internal/config"
	"github.com/simaogato/debtflow-backend/internal/domain"
	applog "github.com/simaogato/debtflow-backend/internal/log"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// trackStorage replaces the storage opener with a memory repository and reports
// whether its closer ran
func trackStorage(t *testing.T) *bool {
	t.Helper()
	closed := new(bool)
	original := openStorage
	openStorage = func(context.Context, *config.Config, *applog.Logger) (domain.DebtRepository, io.Closer, error) {
		return memory.NewDebtRepository(), closerFunc(func() error {
			*closed = true
			return nil
		}), nil
	}
	t.Cleanup(func() { openStorage = original })
	return closed
}

func setServerEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATA_BACKEND", config.BackendMemory)
	t.Setenv("GRPC_ADDR", "127.0.0.1:0")
	t.Setenv("API_TOKEN", "test-token")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("SEED_FILE", "")
}

func TestRun_InvalidConfig(t *testing.T) {
	setServerEnv(t)
	t.Setenv("DATA_BACKEND", "mongodb")
	closed := trackStorage(t)

	err := run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid data backend")
	assert.False(t, *closed, "storage is never opened for an invalid config")
}

func TestRun_ClosesStorageWhenSeedingFails(t *testing.T) {
	setServerEnv(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{name: "missing file"},
		{name: "malformed file", content: "[[debt]]\nname = \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "seed.toml")
			if tt.content != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))
			} else {
				path = filepath.Join(dir, "missing.toml")
			}
			t.Setenv("SEED_FILE", path)
			closed := trackStorage(t)

			err := run()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to seed debts")
			assert.True(t, *closed, "storage should be closed before run returns")
		})
	}
}

func TestRun_ClosesStorageWhenListenFails(t *testing.T) {
	setServerEnv(t)

	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()
	t.Setenv("GRPC_ADDR", busy.Addr().String())
	closed := trackStorage(t)

	err = run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
	assert.True(t, *closed, "storage should be closed before run returns")
}
