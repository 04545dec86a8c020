package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/userkeep/internal/common"
	"github.com/dmitrijs2005/userkeep/internal/cryptox"
	"github.com/dmitrijs2005/userkeep/internal/logging"
	"github.com/dmitrijs2005/userkeep/internal/models"
	"github.com/dmitrijs2005/userkeep/internal/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func setupRepo(t *testing.T) (*users.JSONRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test_user_data.json")
	repo, err := users.NewJSONRepository(path)
	require.NoError(t, err)
	return repo, path
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

// countingPrompt returns a prompt yielding password and a pointer to its
// call counter.
func countingPrompt(password string) (PasswordPrompt, *int) {
	calls := 0
	return func() ([]byte, error) {
		calls++
		return []byte(password), nil
	}, &calls
}

// ---- fake repository ----

type fakeRepo struct {
	store   models.UserStore
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeRepo) Load(context.Context) (models.UserStore, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	out := models.UserStore{}
	for k, v := range f.store {
		out[k] = v
	}
	return out, nil
}

func (f *fakeRepo) Save(_ context.Context, s models.UserStore) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.store = s
	return nil
}

// ---- Register ----

func TestRegister_NewUserPersistsSaltedHash(t *testing.T) {
	repo, _ := setupRepo(t)
	s := NewAuthService(repo, logging.Discard())
	ctx := context.Background()

	prompt, calls := countingPrompt("secret")
	out, err := s.Register(ctx, "alice", prompt)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRegistered, out)
	assert.Equal(t, 1, *calls)

	store, err := repo.Load(ctx)
	require.NoError(t, err)
	rec, ok := store["alice"]
	require.True(t, ok)
	assert.Len(t, rec.Salt, cryptox.SaltLength)
	assert.Equal(t, cryptox.HashPassword([]byte("secret"), rec.Salt), rec.PasswordHash)
}

func TestRegister_ExistingUserLeavesStoreUnchanged(t *testing.T) {
	repo, path := setupRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, models.UserStore{
		"user1": {Salt: "s", PasswordHash: "h"},
	}))
	before := readFile(t, path)

	s := NewAuthService(repo, logging.Discard())
	prompt, calls := countingPrompt("whatever")

	out, err := s.Register(ctx, "user1", prompt)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUserExists, out)
	assert.Equal(t, "User already exists. Please choose a different username.", out.Message())
	assert.Zero(t, *calls, "password must not be requested for an existing user")
	assert.Equal(t, before, readFile(t, path))
}

func TestRegister_SaltsAreNotReused(t *testing.T) {
	repo, _ := setupRepo(t)
	s := NewAuthService(repo, logging.Discard())
	ctx := context.Background()

	for _, name := range []string{"a", "b"} {
		prompt, _ := countingPrompt("same-password")
		out, err := s.Register(ctx, name, prompt)
		require.NoError(t, err)
		require.Equal(t, OutcomeRegistered, out)
	}

	store, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, store["a"].Salt, store["b"].Salt)
	assert.NotEqual(t, store["a"].PasswordHash, store["b"].PasswordHash)
}

func TestRegister_TrimsUsername(t *testing.T) {
	f := &fakeRepo{}
	s := NewAuthService(f, logging.Discard())
	prompt, _ := countingPrompt("pw")

	out, err := s.Register(context.Background(), "  bob \n", prompt)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRegistered, out)
	assert.True(t, f.store.Has("bob"))
}

func TestRegister_EmptyUsername(t *testing.T) {
	f := &fakeRepo{}
	s := NewAuthService(f, logging.Discard())
	prompt, calls := countingPrompt("pw")

	out, err := s.Register(context.Background(), "   ", prompt)
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, OutcomeNone, out)
	assert.Zero(t, *calls)
	assert.Zero(t, f.saves)
}

func TestRegister_PromptError(t *testing.T) {
	f := &fakeRepo{}
	s := NewAuthService(f, logging.Discard())

	boom := errors.New("tty gone")
	_, err := s.Register(context.Background(), "bob", func() ([]byte, error) { return nil, boom })
	require.ErrorIs(t, err, boom)
	assert.Zero(t, f.saves)
}

func TestRegister_WipesPassword(t *testing.T) {
	f := &fakeRepo{}
	s := NewAuthService(f, logging.Discard())

	pw := []byte("secret")
	_, err := s.Register(context.Background(), "bob", func() ([]byte, error) { return pw, nil })
	require.NoError(t, err)
	assert.Equal(t, make([]byte, len(pw)), pw)
}

func TestRegister_SaltError(t *testing.T) {
	f := &fakeRepo{}
	s := &authService{repo: f, logger: logging.Discard(), salt: func() (string, error) {
		return "", errors.New("no entropy")
	}}
	prompt, _ := countingPrompt("pw")

	_, err := s.Register(context.Background(), "bob", prompt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate salt")
	assert.Zero(t, f.saves)
}

func TestRegister_StorageFaults(t *testing.T) {
	tests := []struct {
		name string
		repo *fakeRepo
		want error
	}{
		{name: "load corrupt", repo: &fakeRepo{loadErr: common.ErrStorageCorrupt}, want: common.ErrStorageCorrupt},
		{name: "load unavailable", repo: &fakeRepo{loadErr: common.ErrStorageUnavailable}, want: common.ErrStorageUnavailable},
		{name: "save unavailable", repo: &fakeRepo{saveErr: common.ErrStorageUnavailable}, want: common.ErrStorageUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewAuthService(tt.repo, logging.Discard())
			prompt, _ := countingPrompt("pw")

			out, err := s.Register(context.Background(), "bob", prompt)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, OutcomeNone, out)
		})
	}
}

func TestRegister_CorruptFileIsNotOverwritten(t *testing.T) {
	repo, path := setupRepo(t)
	require.NoError(t, os.WriteFile(path, []byte(`{ broken`), 0o600))

	s := NewAuthService(repo, logging.Discard())
	prompt, calls := countingPrompt("pw")

	_, err := s.Register(context.Background(), "bob", prompt)
	require.ErrorIs(t, err, common.ErrStorageCorrupt)
	assert.Zero(t, *calls)
	assert.Equal(t, []byte(`{ broken`), readFile(t, path))
}

// ---- Login ----

func TestLogin_UnknownUser(t *testing.T) {
	repo, path := setupRepo(t)
	s := NewAuthService(repo, logging.Discard())
	prompt, calls := countingPrompt("pw")

	out, err := s.Login(context.Background(), "Asthorias", prompt)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUserNotFound, out)
	assert.Equal(t, "User does not exist. Please register first.", out.Message())
	assert.Zero(t, *calls)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "login must not create the store")
}

func TestLogin_UnknownUserIsIdempotent(t *testing.T) {
	repo, path := setupRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, models.UserStore{"user1": {Salt: "s", PasswordHash: "h"}}))
	before := readFile(t, path)

	s := NewAuthService(repo, logging.Discard())
	prompt, _ := countingPrompt("pw")

	first, err := s.Login(ctx, "Asthorias", prompt)
	require.NoError(t, err)
	second, err := s.Login(ctx, "Asthorias", prompt)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Message(), second.Message())
	assert.Equal(t, before, readFile(t, path))
}

func TestRegisterThenLogin(t *testing.T) {
	repo, _ := setupRepo(t)
	s := NewAuthService(repo, logging.Discard())
	ctx := context.Background()

	prompt, _ := countingPrompt("correct horse")
	out, err := s.Register(ctx, "carol", prompt)
	require.NoError(t, err)
	require.Equal(t, OutcomeRegistered, out)

	good, calls := countingPrompt("correct horse")
	out, err = s.Login(ctx, "carol", good)
	require.NoError(t, err)
	assert.Equal(t, OutcomeLoggedIn, out)
	assert.Equal(t, 1, *calls)

	bad, _ := countingPrompt("battery staple")
	out, err = s.Login(ctx, "carol", bad)
	require.NoError(t, err)
	assert.Equal(t, OutcomeWrongPassword, out)
	assert.Equal(t, "Incorrect password.", out.Message())
}

func TestLogin_PromptError(t *testing.T) {
	f := &fakeRepo{store: models.UserStore{"bob": {Salt: "s", PasswordHash: "h"}}}
	s := NewAuthService(f, logging.Discard())

	boom := errors.New("eof")
	out, err := s.Login(context.Background(), "bob", func() ([]byte, error) { return nil, boom })
	require.ErrorIs(t, err, boom)
	assert.Equal(t, OutcomeNone, out)
}

func TestLogin_LoadFault(t *testing.T) {
	f := &fakeRepo{loadErr: common.ErrStorageCorrupt}
	s := NewAuthService(f, logging.Discard())
	prompt, calls := countingPrompt("pw")

	_, err := s.Login(context.Background(), "bob", prompt)
	require.ErrorIs(t, err, common.ErrStorageCorrupt)
	assert.Zero(t, *calls)
}

func TestLogin_DoesNotSave(t *testing.T) {
	f := &fakeRepo{store: models.UserStore{
		"bob": {Salt: "s", PasswordHash: cryptox.HashPassword([]byte("pw"), "s")},
	}}
	s := NewAuthService(f, logging.Discard())
	prompt, _ := countingPrompt("pw")

	out, err := s.Login(context.Background(), "bob", prompt)
	require.NoError(t, err)
	assert.Equal(t, OutcomeLoggedIn, out)
	assert.Zero(t, f.saves)
}
