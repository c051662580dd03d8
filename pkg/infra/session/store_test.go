package session_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/leetvault/leetvault/pkg/domain/model"
	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/leetvault/leetvault/pkg/infra/session"
	"github.com/leetvault/leetvault/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestFileStore(t *testing.T) {
	ctx := logging.CtxWithTime(context.Background(), func() time.Time {
		return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	})

	t.Run("load without file is not signed in", func(t *testing.T) {
		store := session.New(filepath.Join(t.TempDir(), "session.yaml"))
		_, err := store.Load(ctx)
		gt.True(t, errors.Is(err, types.ErrNotSignedIn))
	})

	t.Run("save then load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "session.yaml")
		store := session.New(path)

		gt.NoError(t, store.Save(ctx, &model.Identity{
			Subject: "1234567890",
			Email:   "Alice@Example.com",
		}))

		info := gt.R1(os.Stat(path)).NoError(t)
		gt.V(t, info.Mode().Perm()).Equal(os.FileMode(0o600))

		raw := string(gt.R1(os.ReadFile(path)).NoError(t))
		gt.True(t, strings.Contains(raw, "signed_in_at: 2024-06-01T09:00:00Z"))

		identity := gt.R1(store.Load(ctx)).NoError(t)
		gt.V(t, identity.Subject).Equal("1234567890")
		gt.V(t, identity.Email).Equal("alice@example.com")

		entries := gt.R1(os.ReadDir(filepath.Dir(path))).NoError(t)
		gt.V(t, len(entries)).Equal(1)
	})

	t.Run("save rejects invalid identity", func(t *testing.T) {
		store := session.New(filepath.Join(t.TempDir(), "session.yaml"))
		err := store.Save(ctx, &model.Identity{Email: "alice@example.com"})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("corrupted identity is not signed in", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.yaml")
		gt.NoError(t, os.WriteFile(path, []byte("version: 1\nidentity:\n  email: alice@example.com\n"), 0o600))

		_, err := session.New(path).Load(ctx)
		gt.True(t, errors.Is(err, types.ErrNotSignedIn))
	})

	t.Run("unknown version is not signed in", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.yaml")
		gt.NoError(t, os.WriteFile(path, []byte("version: 9\nidentity:\n  subject: x\n  email: a@b.c\n"), 0o600))

		_, err := session.New(path).Load(ctx)
		gt.True(t, errors.Is(err, types.ErrNotSignedIn))
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.yaml")
		store := session.New(path)
		gt.NoError(t, store.Save(ctx, &model.Identity{Subject: "s", Email: "a@b.c"}))
		gt.NoError(t, store.Delete(ctx))
		gt.NoError(t, store.Delete(ctx))

		_, err := store.Load(ctx)
		gt.True(t, errors.Is(err, types.ErrNotSignedIn))
	})
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path := gt.R1(session.DefaultPath()).NoError(t)
	gt.V(t, path).Equal(filepath.Join("/tmp/xdg", "leetvault", "session.yaml"))
}
