package repository

import (
	"time"

	"github.com/avc-dev/shorturls/internal/model"
)

type Store interface {
	Insert(key model.Code, entry model.URLEntry) error
	Get(key model.Code) (model.URLEntry, error)
	Contains(key model.Code) bool
	RecordClick(key model.Code, click model.ClickRecord) error
	Sweep(now time.Time) int
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

// IsCodeUnique проверяет, свободен ли код
func (r Repository) IsCodeUnique(code model.Code) bool {
	return !r.underlying.Contains(code)
}

// DeleteExpired удаляет записи, срок действия которых истек до now
func (r Repository) DeleteExpired(now time.Time) int {
	return r.underlying.Sweep(now)
}
