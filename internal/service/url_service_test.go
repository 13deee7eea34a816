package service

import (
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/avc-dev/shorturls/internal/config"
	"github.com/avc-dev/shorturls/internal/mocks"
	"github.com/avc-dev/shorturls/internal/model"
	"github.com/avc-dev/shorturls/internal/repository"
	"github.com/avc-dev/shorturls/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var shortcodePattern = regexp.MustCompile(`^[A-Za-z0-9]{3,10}$`)

func testEntry() model.URLEntry {
	now := time.Now().UTC()
	return model.URLEntry{
		ID:          "test-id",
		OriginalURL: "https://example.com",
		CreatedAt:   now,
		ExpiresAt:   now.Add(30 * time.Minute),
	}
}

// TestCreateShortURL_Generated проверяет успешное создание со сгенерированным кодом
func TestCreateShortURL_Generated(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewMockURLRepository(t)
	mockGenerator := mocks.NewMockGenerator(t)
	expectedCode := model.Code("abc123")

	mockGenerator.EXPECT().
		GenerateCode().
		Return(expectedCode).
		Once()

	mockRepo.EXPECT().
		IsCodeUnique(expectedCode).
		Return(true).
		Once()

	mockRepo.EXPECT().
		CreateURL(mock.MatchedBy(func(e model.URLEntry) bool {
			return e.Code == expectedCode && e.OriginalURL == "https://example.com"
		})).
		Return(nil).
		Once()

	service := NewURLService(mockRepo, config.NewDefaultConfig(), zap.NewNop())
	service.codeGenerator = mockGenerator

	// Act
	code, err := service.CreateShortURL(testEntry(), "")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expectedCode, code)
}

// TestCreateShortURL_RetriesAfterInsertRace проверяет повтор при проигранной гонке вставки
func TestCreateShortURL_RetriesAfterInsertRace(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewMockURLRepository(t)
	mockGenerator := mocks.NewMockGenerator(t)

	mockGenerator.EXPECT().GenerateCode().Return(model.Code("first1")).Once()
	mockGenerator.EXPECT().GenerateCode().Return(model.Code("second")).Once()
	mockRepo.EXPECT().IsCodeUnique(mock.Anything).Return(true).Twice()

	// Первый код успели занять между проверкой и вставкой
	mockRepo.EXPECT().
		CreateURL(mock.MatchedBy(func(e model.URLEntry) bool { return e.Code == "first1" })).
		Return(fmt.Errorf("failed to create URL: %w", store.ErrAlreadyExists)).
		Once()
	mockRepo.EXPECT().
		CreateURL(mock.MatchedBy(func(e model.URLEntry) bool { return e.Code == "second" })).
		Return(nil).
		Once()

	service := NewURLService(mockRepo, config.NewDefaultConfig(), zap.NewNop())
	service.codeGenerator = mockGenerator

	// Act
	code, err := service.CreateShortURL(testEntry(), "")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, model.Code("second"), code)
}

// TestCreateShortURL_RepositoryError проверяет проброс неожиданной ошибки хранилища
func TestCreateShortURL_RepositoryError(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewMockURLRepository(t)
	mockGenerator := mocks.NewMockGenerator(t)

	mockGenerator.EXPECT().GenerateCode().Return(model.Code("abc123")).Once()
	mockRepo.EXPECT().IsCodeUnique(model.Code("abc123")).Return(true).Once()
	mockRepo.EXPECT().CreateURL(mock.Anything).Return(assert.AnError).Once()

	service := NewURLService(mockRepo, config.NewDefaultConfig(), zap.NewNop())
	service.codeGenerator = mockGenerator

	// Act
	code, err := service.CreateShortURL(testEntry(), "")

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, assert.AnError))
	assert.Empty(t, code)
}

// TestCreateShortURL_CustomCode проверяет пользовательские коды
func TestCreateShortURL_CustomCode(t *testing.T) {
	tests := []struct {
		name      string
		code      model.Code
		repoErr   error
		callsRepo bool
		wantErr   error
	}{
		{
			name:      "Free custom code",
			code:      "test123",
			callsRepo: true,
		},
		{
			name:      "Taken custom code",
			code:      "test123",
			repoErr:   fmt.Errorf("failed to create URL: %w", store.ErrAlreadyExists),
			callsRepo: true,
			wantErr:   ErrCodeTaken,
		},
		{
			name:      "Storage failure",
			code:      "test123",
			repoErr:   assert.AnError,
			callsRepo: true,
			wantErr:   assert.AnError,
		},
		{
			name:    "Reserved health route",
			code:    "health",
			wantErr: ErrCodeTaken,
		},
		{
			name:    "Reserved shorturls route",
			code:    "shorturls",
			wantErr: ErrCodeTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockRepo := mocks.NewMockURLRepository(t)
			if tt.callsRepo {
				mockRepo.EXPECT().
					CreateURL(mock.MatchedBy(func(e model.URLEntry) bool { return e.Code == tt.code })).
					Return(tt.repoErr).
					Once()
			}

			// Генератор не должен вызываться для пользовательского кода
			mockGenerator := mocks.NewMockGenerator(t)
			service := NewURLService(mockRepo, config.NewDefaultConfig(), zap.NewNop())
			service.codeGenerator = mockGenerator

			// Act
			code, err := service.CreateShortURL(testEntry(), tt.code)

			// Assert
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Empty(t, code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.code, code)
		})
	}
}

// TestGenerateUnique_SuccessAfterRetries проверяет успех после нескольких коллизий
func TestGenerateUnique_SuccessAfterRetries(t *testing.T) {
	tests := []struct {
		name       string
		collisions int
	}{
		{name: "Success on first attempt", collisions: 0},
		{name: "Success on second attempt", collisions: 1},
		{name: "Success on last attempt", collisions: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockRepo := mocks.NewMockURLRepository(t)
			mockGenerator := mocks.NewMockGenerator(t)

			if tt.collisions > 0 {
				mockGenerator.EXPECT().GenerateCode().Return(model.Code("taken1")).Times(tt.collisions)
				mockRepo.EXPECT().IsCodeUnique(model.Code("taken1")).Return(false).Times(tt.collisions)
			}
			mockGenerator.EXPECT().GenerateCode().Return(model.Code("free01")).Once()
			mockRepo.EXPECT().IsCodeUnique(model.Code("free01")).Return(true).Once()

			service := NewURLService(mockRepo, config.NewDefaultConfig(), zap.NewNop())
			service.codeGenerator = mockGenerator

			// Act
			code, err := service.GenerateUnique()

			// Assert
			require.NoError(t, err)
			assert.Equal(t, model.Code("free01"), code)
		})
	}
}

// TestGenerateUnique_MaxRetriesExceeded проверяет исчерпание попыток
func TestGenerateUnique_MaxRetriesExceeded(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewMockURLRepository(t)
	mockGenerator := mocks.NewMockGenerator(t)
	cfg := config.NewDefaultConfig()
	cfg.Retry.MaxAttempts = 5

	mockGenerator.EXPECT().GenerateCode().Return(model.Code("taken1")).Times(5)
	mockRepo.EXPECT().IsCodeUnique(model.Code("taken1")).Return(false).Times(5)

	service := NewURLService(mockRepo, cfg, zap.NewNop())
	service.codeGenerator = mockGenerator

	// Act
	code, err := service.GenerateUnique()

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMaxRetriesExceeded))
	assert.Contains(t, err.Error(), "5 attempts")
	assert.Empty(t, code)
}

// TestGenerateUnique_SkipsReservedCodes проверяет, что служебные слова не выдаются как коды
func TestGenerateUnique_SkipsReservedCodes(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewMockURLRepository(t)
	mockGenerator := mocks.NewMockGenerator(t)

	mockGenerator.EXPECT().GenerateCode().Return(model.Code("health")).Once()
	mockGenerator.EXPECT().GenerateCode().Return(model.Code("Abc123")).Once()
	mockRepo.EXPECT().IsCodeUnique(model.Code("Abc123")).Return(true).Once()

	service := NewURLService(mockRepo, config.NewDefaultConfig(), zap.NewNop())
	service.codeGenerator = mockGenerator

	// Act
	code, err := service.GenerateUnique()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, model.Code("Abc123"), code)
}

// TestCreateShortURL_WithRealStore проверяет уникальность кодов на настоящем хранилище
func TestCreateShortURL_WithRealStore(t *testing.T) {
	// Arrange
	repo := repository.New(store.NewStore(0))
	service := NewURLService(repo, config.NewDefaultConfig(), zap.NewNop())
	numURLs := 500
	seen := make(map[model.Code]bool, numURLs)

	// Act & Assert
	for i := 0; i < numURLs; i++ {
		code, err := service.CreateShortURL(testEntry(), "")
		require.NoError(t, err)
		assert.Len(t, string(code), CodeLength)
		assert.True(t, shortcodePattern.MatchString(string(code)), "Code: %s", code)
		assert.False(t, seen[code], "Duplicate code: %s", code)
		seen[code] = true
	}
}

// TestCreateShortURL_LogsCollisions проверяет, что коллизии кодов попадают в лог сервиса
func TestCreateShortURL_LogsCollisions(t *testing.T) {
	// Arrange
	core, logs := observer.New(zapcore.DebugLevel)
	repo := repository.New(store.NewStore(0))
	service := NewURLService(repo, config.NewDefaultConfig(), zap.New(core).With(zap.String("package", "service")))

	_, err := service.CreateShortURL(testEntry(), "taken1")
	require.NoError(t, err)

	// Act
	_, err = service.CreateShortURL(testEntry(), "taken1")
	generated, genErr := service.CreateShortURL(testEntry(), "")

	// Assert
	require.True(t, errors.Is(err, ErrCodeTaken))
	require.NoError(t, genErr)

	collisions := logs.FilterMessage("custom shortcode collision").All()
	require.Len(t, collisions, 1)
	assert.Equal(t, zapcore.WarnLevel, collisions[0].Level)
	assert.Equal(t, "taken1", collisions[0].ContextMap()["code"])
	assert.Equal(t, "service", collisions[0].ContextMap()["package"])

	created := logs.FilterMessage("generated shortcode").All()
	require.Len(t, created, 1)
	assert.Equal(t, string(generated), created[0].ContextMap()["code"])
}

// TestGenerateUnique_LogsExhaustion проверяет запись об исчерпании попыток
func TestGenerateUnique_LogsExhaustion(t *testing.T) {
	// Arrange
	core, logs := observer.New(zapcore.DebugLevel)
	mockRepo := mocks.NewMockURLRepository(t)
	mockGenerator := mocks.NewMockGenerator(t)
	cfg := config.NewDefaultConfig()
	cfg.Retry.MaxAttempts = 2

	mockGenerator.EXPECT().GenerateCode().Return(model.Code("taken1")).Times(2)
	mockRepo.EXPECT().IsCodeUnique(model.Code("taken1")).Return(false).Times(2)

	service := NewURLService(mockRepo, cfg, zap.New(core))
	service.codeGenerator = mockGenerator

	// Act
	_, err := service.GenerateUnique()

	// Assert
	require.Error(t, err)
	assert.Equal(t, 2, logs.FilterMessage("shortcode collision").Len())
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}
