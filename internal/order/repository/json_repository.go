package repository

import (
	"context"
	"errors"

	"github.com/sakuraclothing/store-cli/internal/order/domain"
	"github.com/sakuraclothing/store-cli/internal/platform/logger"
	"github.com/sakuraclothing/store-cli/internal/platform/storage"
)

type HistoryRepository interface {
	// List membaca seluruh history. File yang hilang atau tidak bisa
	// di-parse diperlakukan sebagai history kosong, bukan error.
	List(ctx context.Context) ([]domain.PurchaseRecord, error)
	Append(ctx context.Context, rec domain.PurchaseRecord) error
	ReplaceAll(ctx context.Context, recs []domain.PurchaseRecord) error
}

type jsonHistoryRepository struct {
	path string
}

func NewJSONHistoryRepository(path string) HistoryRepository {
	return &jsonHistoryRepository{path: path}
}

func (r *jsonHistoryRepository) List(ctx context.Context) ([]domain.PurchaseRecord, error) {
	var recs []domain.PurchaseRecord
	err := r.load(&recs)
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *jsonHistoryRepository) load(recs *[]domain.PurchaseRecord) error {
	err := storage.Load(r.path, recs)
	switch {
	case errors.Is(err, storage.ErrNotExist):
		*recs = []domain.PurchaseRecord{}
	case err != nil:
		// History rusak dianggap belum ada data, sesi tidak boleh gagal
		// gara-gara file ini.
		logger.Warn("history file %s unreadable, treating as empty: %v", r.path, err)
		*recs = []domain.PurchaseRecord{}
	}
	return nil
}

func (r *jsonHistoryRepository) Append(ctx context.Context, rec domain.PurchaseRecord) error {
	var recs []domain.PurchaseRecord
	if err := r.load(&recs); err != nil {
		return err
	}
	recs = append(recs, rec)
	return storage.Save(r.path, recs)
}

func (r *jsonHistoryRepository) ReplaceAll(ctx context.Context, recs []domain.PurchaseRecord) error {
	return storage.Save(r.path, recs)
}
