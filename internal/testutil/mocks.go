package testutil

import (
	"datelabel/internal/domain"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) GetLocale(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) SetLocale(userID int64, locale string) error {
	args := m.Called(userID, locale)
	return args.Error(0)
}

// MockLookupRepository is a mock for LookupRepository
type MockLookupRepository struct {
	mock.Mock
}

func (m *MockLookupRepository) SaveLookup(userID int64, date time.Time) error {
	args := m.Called(userID, date)
	return args.Error(0)
}

func (m *MockLookupRepository) GetRecentLookups(userID int64, limit, offset int) ([]domain.Lookup, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lookup), args.Error(1)
}

func (m *MockLookupRepository) GetTotalLookupsCount(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockLookupRepository) CleanOldLookups(days int) error {
	args := m.Called(days)
	return args.Error(0)
}

// MockTranslationRepository is a mock for TranslationRepository
type MockTranslationRepository struct {
	mock.Mock
}

func (m *MockTranslationRepository) ListTranslations() ([]domain.Translation, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Translation), args.Error(1)
}
