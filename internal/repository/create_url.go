package repository

import (
	"fmt"

	"github.com/avc-dev/shorturls/internal/model"
)

func (r Repository) CreateURL(entry model.URLEntry) error {
	if err := r.underlying.Insert(entry.Code, entry); err != nil {
		return fmt.Errorf("failed to create URL: %w", err)
	}

	return nil
}
