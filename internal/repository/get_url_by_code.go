package repository

import (
	"fmt"

	"github.com/avc-dev/shorturls/internal/model"
)

func (r Repository) GetURLByCode(code model.Code) (model.URLEntry, error) {
	entry, err := r.underlying.Get(code)

	if err != nil {
		return model.URLEntry{}, fmt.Errorf("failed to get URL by code: %w", err)
	}

	return entry, nil
}
