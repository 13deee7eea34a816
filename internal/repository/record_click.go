package repository

import (
	"fmt"

	"github.com/avc-dev/shorturls/internal/model"
)

func (r Repository) RecordClick(code model.Code, click model.ClickRecord) error {
	if err := r.underlying.RecordClick(code, click); err != nil {
		return fmt.Errorf("failed to record click: %w", err)
	}

	return nil
}
