package users

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/userkeep/internal/common"
	"github.com/dmitrijs2005/userkeep/internal/filex"
	"github.com/dmitrijs2005/userkeep/internal/models"
	"github.com/viant/afs"
)

const fileMode = 0o600

// JSONRepository keeps the UserStore in a JSON file accessed through afs.
type JSONRepository struct {
	fs   afs.Service
	path string
}

// NewJSONRepository returns a repository bound to path. Relative paths are
// resolved against the working directory at construction time.
func NewJSONRepository(path string) (*JSONRepository, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve %s: %w", common.ErrStorageUnavailable, path, err)
	}
	return &JSONRepository{fs: afs.New(), path: abs}, nil
}

// Path returns the absolute location of the store file.
func (r *JSONRepository) Path() string {
	return r.path
}

func (r *JSONRepository) Load(ctx context.Context) (models.UserStore, error) {
	exists, err := r.fs.Exists(ctx, r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %w", common.ErrStorageUnavailable, r.path, err)
	}
	if !exists {
		return models.UserStore{}, nil
	}

	data, err := r.fs.DownloadWithURL(ctx, r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", common.ErrStorageUnavailable, r.path, err)
	}

	store := models.UserStore{}
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", common.ErrStorageCorrupt, r.path, err)
	}
	// a literal "null" decodes without error into a nil map
	if store == nil {
		return nil, fmt.Errorf("%w: decode %s: document is null", common.ErrStorageCorrupt, r.path)
	}
	return store, nil
}

func (r *JSONRepository) Save(ctx context.Context, store models.UserStore) error {
	if store == nil {
		store = models.UserStore{}
	}

	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", common.ErrStorageUnavailable, err)
	}

	if _, err := filex.EnsureParentDir(r.path); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
	}

	if err := r.fs.Upload(ctx, r.path, fileMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: write %s: %w", common.ErrStorageUnavailable, r.path, err)
	}
	return nil
}
