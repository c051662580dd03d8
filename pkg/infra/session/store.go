package session

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/leetvault/leetvault/pkg/domain/interfaces"
	"github.com/leetvault/leetvault/pkg/domain/model"
	"github.com/leetvault/leetvault/pkg/domain/types"
	"github.com/leetvault/leetvault/pkg/utils/logging"
	"github.com/leetvault/leetvault/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

const fileVersion = 1

// FileStore persists the signed-in identity as a YAML file readable only by the user.
type FileStore struct {
	path string
}

var _ interfaces.IdentityStore = (*FileStore)(nil)

type sessionFile struct {
	Version  int            `yaml:"version"`
	Identity model.Identity `yaml:"identity"`
	SignedIn time.Time      `yaml:"signed_in_at"`
}

func New(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns $XDG_CONFIG_HOME/leetvault/session.yaml, falling back to ~/.config.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "leetvault", "session.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", goerr.Wrap(err, "failed to find home directory")
	}
	return filepath.Join(home, ".config", "leetvault", "session.yaml"), nil
}

func (x *FileStore) Path() string { return x.path }

func (x *FileStore) Load(ctx context.Context) (*model.Identity, error) {
	raw, err := os.ReadFile(filepath.Clean(x.path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(types.ErrNotSignedIn, "no session file", goerr.V("path", x.path))
		}
		return nil, goerr.Wrap(err, "failed to read session file", goerr.V("path", x.path))
	}

	var file sessionFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse session file", goerr.V("path", x.path))
	}
	if file.Version != fileVersion {
		return nil, goerr.Wrap(types.ErrNotSignedIn, "unsupported session file version",
			goerr.V("path", x.path),
			goerr.V("version", file.Version),
		)
	}
	if err := file.Identity.Validate(); err != nil {
		return nil, goerr.Wrap(types.ErrNotSignedIn, "session file has no valid identity",
			goerr.V("path", x.path),
			goerr.V("cause", err),
		)
	}

	identity := file.Identity
	identity.Email = identity.Email.Normalize()
	return &identity, nil
}

// Save writes the identity atomically; a crash never leaves a truncated file.
func (x *FileStore) Save(ctx context.Context, identity *model.Identity) error {
	if err := identity.Validate(); err != nil {
		return err
	}

	raw, err := yaml.Marshal(&sessionFile{
		Version:  fileVersion,
		Identity: *identity,
		SignedIn: logging.CtxTime(ctx).UTC(),
	})
	if err != nil {
		return goerr.Wrap(err, "failed to encode session file")
	}

	dir := filepath.Dir(x.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return goerr.Wrap(err, "failed to create session directory", goerr.V("dir", dir))
	}

	tmp, err := os.CreateTemp(dir, ".session-*.yaml")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary session file", goerr.V("dir", dir))
	}
	committed := false
	defer func() {
		if !committed {
			safe.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(raw); err != nil {
		safe.Close(tmp)
		return goerr.Wrap(err, "failed to write session file", goerr.V("path", tmp.Name()))
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to close session file", goerr.V("path", tmp.Name()))
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return goerr.Wrap(err, "failed to restrict session file", goerr.V("path", tmp.Name()))
	}
	if err := os.Rename(tmp.Name(), x.path); err != nil {
		return goerr.Wrap(err, "failed to replace session file", goerr.V("path", x.path))
	}
	committed = true

	return nil
}

// Delete removes the session. Removing a missing session is not an error.
func (x *FileStore) Delete(ctx context.Context) error {
	if err := os.Remove(x.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return goerr.Wrap(err, "failed to remove session file", goerr.V("path", x.path))
	}
	return nil
}
