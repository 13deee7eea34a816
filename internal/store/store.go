package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avc-dev/shorturls/internal/model"
)

var (
	ErrNotFound      = errors.New("key not found")
	ErrAlreadyExists = errors.New("key already exists")
)

// URLMap представляет маппинг коротких кодов на записи
type URLMap = map[model.Code]*model.URLEntry

// Store потокобезопасное in-memory хранилище записей о коротких ссылках.
// Хранилище единолично владеет записями: наружу отдаются только копии.
type Store struct {
	store URLMap
	mutex sync.RWMutex

	// clickDataLimit ограничивает длину ClickData у одной записи, 0 - без ограничения
	clickDataLimit int
}

// NewStore создает пустое хранилище
func NewStore(clickDataLimit int) *Store {
	if clickDataLimit < 0 {
		clickDataLimit = 0
	}

	return &Store{
		store:          make(URLMap),
		clickDataLimit: clickDataLimit,
	}
}

// Insert добавляет запись. Проверка и вставка выполняются под одной блокировкой,
// поэтому из конкурентных вставок одного кода успешна ровно одна.
func (s *Store) Insert(key model.Code, entry model.URLEntry) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.store[key]; exists {
		return fmt.Errorf("key %s: %w", key, ErrAlreadyExists)
	}

	stored := entry.Clone()
	stored.Code = key
	s.store[key] = &stored

	return nil
}

// Get возвращает копию записи без проверки срока действия
func (s *Store) Get(key model.Code) (model.URLEntry, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, ok := s.store[key]
	if !ok {
		return model.URLEntry{}, fmt.Errorf("key %s: %w", key, ErrNotFound)
	}

	return entry.Clone(), nil
}

// Contains проверяет, занят ли код
func (s *Store) Contains(key model.Code) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, ok := s.store[key]
	return ok
}

// RecordClick увеличивает счетчик переходов и добавляет запись о клике
func (s *Store) RecordClick(key model.Code, click model.ClickRecord) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry, ok := s.store[key]
	if !ok {
		return fmt.Errorf("key %s: %w", key, ErrNotFound)
	}

	entry.Clicks++
	entry.ClickData = append(entry.ClickData, click)

	if s.clickDataLimit > 0 && len(entry.ClickData) > s.clickDataLimit {
		// Сдвигаем в новый срез, чтобы не держать старый массив целиком
		trimmed := make([]model.ClickRecord, s.clickDataLimit)
		copy(trimmed, entry.ClickData[len(entry.ClickData)-s.clickDataLimit:])
		entry.ClickData = trimmed
	}

	return nil
}

// Sweep удаляет записи с ExpiresAt < now и возвращает количество удаленных.
// Блокировка на запись удерживается только на время удаления одной записи.
func (s *Store) Sweep(now time.Time) int {
	s.mutex.RLock()
	expired := make([]model.Code, 0)
	for code, entry := range s.store {
		if entry.ExpiresAt.Before(now) {
			expired = append(expired, code)
		}
	}
	s.mutex.RUnlock()

	removed := 0
	for _, code := range expired {
		if s.removeIfExpired(code, now) {
			removed++
		}
	}

	return removed
}

func (s *Store) removeIfExpired(code model.Code, now time.Time) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Код мог быть удален и занят заново между проходами
	entry, ok := s.store[code]
	if !ok || !entry.ExpiresAt.Before(now) {
		return false
	}

	delete(s.store, code)
	return true
}

// Len возвращает количество записей в хранилище
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.store)
}
