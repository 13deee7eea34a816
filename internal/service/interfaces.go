package service

import (
	"time"

	"github.com/avc-dev/shorturls/internal/model"
)

//go:generate mockery --name URLRepository

// URLRepository определяет методы для работы с хранилищем URL
type URLRepository interface {
	// CreateURL сохраняет запись в хранилище
	// Возвращает ошибку если код уже существует или произошла ошибка при сохранении
	CreateURL(entry model.URLEntry) error
	// IsCodeUnique возвращает true если код свободен
	IsCodeUnique(code model.Code) bool
}

//go:generate mockery --name Generator

// Generator генерирует кандидатов в короткие коды
type Generator interface {
	GenerateCode() model.Code
}

// ClickRecorder сохраняет клик по короткой ссылке
type ClickRecorder interface {
	RecordClick(code model.Code, click model.ClickRecord) error
}

// ExpiredURLCleaner удаляет просроченные записи
type ExpiredURLCleaner interface {
	DeleteExpired(now time.Time) int
}
