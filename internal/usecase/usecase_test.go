package usecase

import (
	"sync"
	"time"

	"github.com/avc-dev/shorturls/internal/config"
	"github.com/avc-dev/shorturls/internal/model"
	"github.com/avc-dev/shorturls/internal/repository"
	"github.com/avc-dev/shorturls/internal/service"
	"github.com/avc-dev/shorturls/internal/store"
	"go.uber.org/zap"
)

type trackedClick struct {
	code  model.Code
	click model.ClickRecord
}

// fakeTracker запоминает клики вместо асинхронной записи
type fakeTracker struct {
	mu     sync.Mutex
	clicks []trackedClick
	reject bool
}

func (f *fakeTracker) Track(code model.Code, click model.ClickRecord) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.reject {
		return false
	}
	f.clicks = append(f.clicks, trackedClick{code: code, click: click})
	return true
}

func (f *fakeTracker) tracked() []trackedClick {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]trackedClick(nil), f.clicks...)
}

type testEnv struct {
	usecase *URLUsecase
	store   *store.Store
	tracker *fakeTracker
	now     time.Time
}

// newTestEnv собирает usecase на настоящих хранилище и сервисе с фиксированным временем
func newTestEnv() *testEnv {
	cfg := config.NewDefaultConfig()
	st := store.NewStore(cfg.Click.DataLimit)
	repo := repository.New(st)
	tracker := &fakeTracker{}
	uc := NewURLUsecase(repo, service.NewURLService(repo, cfg, zap.NewNop()), tracker, cfg, zap.NewNop())

	env := &testEnv{
		usecase: uc,
		store:   st,
		tracker: tracker,
		now:     time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	uc.now = func() time.Time { return env.now }
	uc.newID = func() string { return "00000000-0000-4000-8000-000000000001" }

	return env
}

func intPtr(v int) *int {
	return &v
}
