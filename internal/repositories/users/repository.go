// Package users persists the UserStore as a single JSON document.
//
// The whole document is read on Load and rewritten on Save; there is no
// partial update, no locking and no atomic rename. A missing file is an empty
// store. A file that exists but cannot be decoded is reported as
// common.ErrStorageCorrupt and is never treated as empty.
package users

import (
	"context"

	"github.com/dmitrijs2005/userkeep/internal/models"
)

type Repository interface {
	Load(ctx context.Context) (models.UserStore, error)
	Save(ctx context.Context, store models.UserStore) error
}
