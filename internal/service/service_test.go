package service

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/dnlmlszl/realtime-dms-backend/internal/auth"
	"github.com/dnlmlszl/realtime-dms-backend/internal/storage"
	"github.com/dnlmlszl/realtime-dms-backend/internal/storage/sqlite"
)

// newTestStore creates a throwaway SQLite store backed by a temp file.
func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestUserService(t *testing.T, store storage.Store) *UserService {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewUserService(store, auth.NewPasswordAuthenticator(store), auth.NewJWTManager("test-secret-key", time.Hour), logger)
}
