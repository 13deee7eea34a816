package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/avc-dev/shorturls/internal/model"
	"github.com/avc-dev/shorturls/internal/repository"
	"github.com/avc-dev/shorturls/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type funcCleaner func(now time.Time) int

func (f funcCleaner) DeleteExpired(now time.Time) int {
	return f(now)
}

func TestExpirySweeper_Sweep(t *testing.T) {
	// Arrange
	st := store.NewStore(0)
	repo := repository.New(st)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreateURL(model.URLEntry{Code: "old001", ExpiresAt: now.Add(-time.Second)}))
	require.NoError(t, repo.CreateURL(model.URLEntry{Code: "new001", ExpiresAt: now.Add(time.Minute)}))

	sweeper := NewExpirySweeper(repo, time.Hour, zap.NewNop())
	sweeper.now = func() time.Time { return now }

	// Act
	removed, ok := sweeper.Sweep()

	// Assert
	assert.True(t, ok)
	assert.Equal(t, 1, removed)
	assert.False(t, st.Contains("old001"))
	assert.True(t, st.Contains("new001"))
}

func TestExpirySweeper_RecoversFromPanic(t *testing.T) {
	// Arrange
	var calls atomic.Int32
	cleaner := funcCleaner(func(time.Time) int {
		if calls.Add(1) == 1 {
			panic("storage exploded")
		}
		return 2
	})
	sweeper := NewExpirySweeper(cleaner, time.Hour, zap.NewNop())

	// Act
	firstRemoved, firstOK := sweeper.Sweep()
	secondRemoved, secondOK := sweeper.Sweep()

	// Assert
	assert.False(t, firstOK)
	assert.Equal(t, 0, firstRemoved)
	assert.True(t, secondOK)
	assert.Equal(t, 2, secondRemoved)
}

func TestExpirySweeper_RunTicksUntilCancelled(t *testing.T) {
	// Arrange
	var calls atomic.Int32
	cleaner := funcCleaner(func(time.Time) int {
		if calls.Add(1) == 1 {
			panic("first tick fails")
		}
		return 0
	})
	sweeper := NewExpirySweeper(cleaner, 5*time.Millisecond, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		sweeper.Run(ctx)
	}()

	// Act & Assert
	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}
