package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sakuraclothing/store-cli/internal/platform/logger"
	"github.com/sakuraclothing/store-cli/internal/platform/storage"
	"github.com/sakuraclothing/store-cli/internal/user/domain"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserConflict = errors.New("username already exists")

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Create(ctx context.Context, acct domain.Account) error
}

// jsonUserRepository menyimpan akun sebagai objek JSON ber-key username.
// Tidak ada jalur penghapusan akun.
type jsonUserRepository struct {
	path  string
	users map[string]domain.Account
}

// NewJSONUserRepository memuat file users; jika belum ada, file dibuat berisi
// akun seed (admin default) supaya sistem baru langsung bisa dipakai.
func NewJSONUserRepository(path string, seed domain.Account) (UserRepository, error) {
	r := &jsonUserRepository{path: path, users: map[string]domain.Account{}}

	err := storage.Load(path, &r.users)
	switch {
	case errors.Is(err, storage.ErrNotExist):
		r.users[seed.Username] = seed
		if err := storage.Save(path, r.users); err != nil {
			return nil, fmt.Errorf("seed users: %w", err)
		}
		logger.Info("users file %s not found, seeded default %q account", path, seed.Username)
	case err != nil:
		return nil, err
	}
	return r, nil
}

func (r *jsonUserRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	acct, ok := r.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	acct.Username = username
	return &acct, nil
}

func (r *jsonUserRepository) List(ctx context.Context) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(r.users))
	for username, acct := range r.users {
		acct.Username = username
		out = append(out, acct)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *jsonUserRepository) Create(ctx context.Context, acct domain.Account) error {
	if _, exists := r.users[acct.Username]; exists {
		return ErrUserConflict
	}
	r.users[acct.Username] = acct

	if err := storage.Save(r.path, r.users); err != nil {
		// Jangan biarkan state memori mengaku sukses kalau disk gagal.
		delete(r.users, acct.Username)
		logger.Error("Create: failed to persist users", err)
		return err
	}
	return nil
}
