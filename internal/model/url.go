package model

import "time"

// TimeLayout формат временных меток в ответах API (ISO-8601, UTC, миллисекунды)
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

type Code string

type URL string

func (U URL) String() string {
	return string(U)
}

// ClickRecord описывает один переход по короткой ссылке
type ClickRecord struct {
	Timestamp time.Time
	Source    string
	Location  string
}

// URLEntry представляет запись о сокращённом URL в хранилище
type URLEntry struct {
	ID          string
	OriginalURL URL
	Code        Code
	CreatedAt   time.Time
	ExpiresAt   time.Time
	Clicks      int64
	ClickData   []ClickRecord
}

// IsExpired сообщает, истёк ли срок действия записи на момент now
func (e URLEntry) IsExpired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}

// Clone возвращает копию записи, не разделяющую ClickData с оригиналом
func (e URLEntry) Clone() URLEntry {
	clone := e
	if e.ClickData != nil {
		clone.ClickData = make([]ClickRecord, len(e.ClickData))
		copy(clone.ClickData, e.ClickData)
	}
	return clone
}

// ClickContext содержит данные запроса, нужные для аналитики перехода
type ClickContext struct {
	Referrer  string
	UserAgent string
}

// CreateRequest входные данные для создания короткой ссылки
type CreateRequest struct {
	URL       string
	Validity  *int
	Shortcode string
}

// CreateResult результат создания короткой ссылки
type CreateResult struct {
	ShortLink string
	Expiry    time.Time
}

