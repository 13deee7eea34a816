package usecase

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/avc-dev/shorturls/internal/config"
	"github.com/avc-dev/shorturls/internal/mocks"
	"github.com/avc-dev/shorturls/internal/model"
	"github.com/avc-dev/shorturls/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var shortcodePattern = regexp.MustCompile(`^[A-Za-z0-9]{3,10}$`)

func TestCreateShortURL_Success(t *testing.T) {
	tests := []struct {
		name         string
		req          model.CreateRequest
		wantValidity time.Duration
		wantCode     string
	}{
		{
			name:         "Default validity",
			req:          model.CreateRequest{URL: "https://example.com/x"},
			wantValidity: 30 * time.Minute,
		},
		{
			name:         "Explicit validity",
			req:          model.CreateRequest{URL: "https://example.com/x", Validity: intPtr(30)},
			wantValidity: 30 * time.Minute,
		},
		{
			name:         "Minimum validity",
			req:          model.CreateRequest{URL: "https://example.com/path?q=1", Validity: intPtr(1)},
			wantValidity: time.Minute,
		},
		{
			name:         "Maximum validity",
			req:          model.CreateRequest{URL: "http://example.com", Validity: intPtr(525600)},
			wantValidity: 525600 * time.Minute,
		},
		{
			name:         "Custom shortcode",
			req:          model.CreateRequest{URL: "https://example.com/x", Validity: intPtr(30), Shortcode: "test123"},
			wantValidity: 30 * time.Minute,
			wantCode:     "test123",
		},
		{
			name:         "URL with surrounding spaces",
			req:          model.CreateRequest{URL: "  https://example.com/путь  "},
			wantValidity: 30 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			env := newTestEnv()

			// Act
			result, err := env.usecase.CreateShortURL(tt.req)

			// Assert
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(result.ShortLink, "http://localhost:5000/"), result.ShortLink)

			code := strings.TrimPrefix(result.ShortLink, "http://localhost:5000/")
			assert.True(t, shortcodePattern.MatchString(code), "Code: %s", code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, code)
			} else {
				assert.Len(t, code, service.CodeLength)
			}
			assert.Equal(t, env.now.Add(tt.wantValidity), result.Expiry)

			// Ссылка сразу же разрешается в исходный URL
			original, err := env.usecase.ResolveURL(code, model.ClickContext{})
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.req.URL), original)

			entry, err := env.store.Get(model.Code(code))
			require.NoError(t, err)
			assert.Equal(t, "00000000-0000-4000-8000-000000000001", entry.ID)
			assert.Equal(t, env.now, entry.CreatedAt)
			assert.True(t, entry.ExpiresAt.After(entry.CreatedAt))
		})
	}
}

func TestCreateShortURL_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     model.CreateRequest
		wantErr error
	}{
		{name: "Empty URL", req: model.CreateRequest{URL: "   "}, wantErr: ErrEmptyURL},
		{name: "Not a URL", req: model.CreateRequest{URL: "not-a-url"}, wantErr: ErrInvalidURL},
		{name: "Missing scheme", req: model.CreateRequest{URL: "example.com/path"}, wantErr: ErrInvalidURL},
		{name: "Missing host", req: model.CreateRequest{URL: "https://"}, wantErr: ErrInvalidURL},
		{name: "Broken escape", req: model.CreateRequest{URL: "https://example.com/%zz"}, wantErr: ErrInvalidURL},
		{name: "Zero validity", req: model.CreateRequest{URL: "https://example.com", Validity: intPtr(0)}, wantErr: ErrInvalidValidity},
		{name: "Negative validity", req: model.CreateRequest{URL: "https://example.com", Validity: intPtr(-5)}, wantErr: ErrInvalidValidity},
		{name: "Validity over a year", req: model.CreateRequest{URL: "https://example.com", Validity: intPtr(525601)}, wantErr: ErrInvalidValidity},
		{name: "Shortcode too short", req: model.CreateRequest{URL: "https://example.com", Shortcode: "ab"}, wantErr: ErrInvalidShortcode},
		{name: "Shortcode too long", req: model.CreateRequest{URL: "https://example.com", Shortcode: "abcdefghijk"}, wantErr: ErrInvalidShortcode},
		{name: "Shortcode with dash", req: model.CreateRequest{URL: "https://example.com", Shortcode: "my-code"}, wantErr: ErrInvalidShortcode},
		{name: "Shortcode with underscore", req: model.CreateRequest{URL: "https://example.com", Shortcode: "my_code"}, wantErr: ErrInvalidShortcode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			env := newTestEnv()

			// Act
			result, err := env.usecase.CreateShortURL(tt.req)

			// Assert
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Empty(t, result.ShortLink)
			assert.Equal(t, 0, env.store.Len(), "Validation errors must not touch the store")
		})
	}
}

func TestCreateShortURL_ShortcodeConflict(t *testing.T) {
	// Arrange
	env := newTestEnv()
	_, err := env.usecase.CreateShortURL(model.CreateRequest{URL: "https://example.com/x", Validity: intPtr(30), Shortcode: "test123"})
	require.NoError(t, err)

	// Act
	_, err = env.usecase.CreateShortURL(model.CreateRequest{URL: "https://example.com/y", Validity: intPtr(30), Shortcode: "test123"})

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShortcodeConflict))

	original, err := env.usecase.ResolveURL("test123", model.ClickContext{})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/x", original)
}

func TestCreateShortURL_ReservedShortcode(t *testing.T) {
	env := newTestEnv()

	_, err := env.usecase.CreateShortURL(model.CreateRequest{URL: "https://example.com", Shortcode: "health"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShortcodeConflict))
}

func TestCreateShortURL_ConcurrentSameShortcode(t *testing.T) {
	// Arrange
	env := newTestEnv()
	numGoroutines := 50
	results := make(chan error, numGoroutines)
	wg := sync.WaitGroup{}
	wg.Add(numGoroutines)

	// Act
	for i := 0; i < numGoroutines; i++ {
		go func(index int) {
			defer wg.Done()
			_, err := env.usecase.CreateShortURL(model.CreateRequest{
				URL:       fmt.Sprintf("https://example.com/%d", index),
				Shortcode: "race123",
			})
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	// Assert
	successes, conflicts := 0, 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrShortcodeConflict):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, numGoroutines-1, conflicts)
}

func TestCreateShortURL_ServiceErrors(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantErr     error
		wantWrapped error
	}{
		{
			name:        "Generator exhausted",
			serviceErr:  fmt.Errorf("failed to generate unique code after 10 attempts: %w", service.ErrMaxRetriesExceeded),
			wantErr:     ErrServiceUnavailable,
			wantWrapped: service.ErrMaxRetriesExceeded,
		},
		{
			name:        "Code taken",
			serviceErr:  fmt.Errorf("code abc: %w", service.ErrCodeTaken),
			wantErr:     ErrShortcodeConflict,
			wantWrapped: service.ErrCodeTaken,
		},
		{
			name:        "Unexpected failure",
			serviceErr:  assert.AnError,
			wantErr:     ErrServiceUnavailable,
			wantWrapped: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockService := mocks.NewMockURLService(t)
			mockService.EXPECT().
				CreateShortURL(mock.Anything, mock.Anything).
				Return(model.Code(""), tt.serviceErr).
				Once()

			uc := NewURLUsecase(nil, mockService, &fakeTracker{}, config.NewDefaultConfig(), zap.NewNop())

			// Act
			_, err := uc.CreateShortURL(model.CreateRequest{URL: "https://example.com"})

			// Assert
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.True(t, errors.Is(err, tt.wantWrapped))
		})
	}
}

func TestCreateShortURL_PassesEntryToService(t *testing.T) {
	// Arrange
	mockService := mocks.NewMockURLService(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mockService.EXPECT().
		CreateShortURL(mock.Anything, model.Code("custom1")).
		Run(func(entry model.URLEntry, customCode model.Code) {
			assert.Equal(t, model.URL("https://example.com/x"), entry.OriginalURL)
			assert.Equal(t, now, entry.CreatedAt)
			assert.Equal(t, now.Add(45*time.Minute), entry.ExpiresAt)
			assert.Equal(t, int64(0), entry.Clicks)
			assert.NotEmpty(t, entry.ID)
		}).
		Return(model.Code("custom1"), nil).
		Once()

	cfg := config.NewDefaultConfig()
	cfg.BaseURL = "https://sho.rt"
	uc := NewURLUsecase(nil, mockService, &fakeTracker{}, cfg, zap.NewNop())
	uc.now = func() time.Time { return now }

	// Act
	result, err := uc.CreateShortURL(model.CreateRequest{URL: "https://example.com/x", Validity: intPtr(45), Shortcode: "custom1"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://sho.rt/custom1", result.ShortLink)
	assert.Equal(t, now.Add(45*time.Minute), result.Expiry)
}
