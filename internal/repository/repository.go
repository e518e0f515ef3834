package repository

import (
	"time"

	"datelabel/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	EnsureUserExists(userID int64) error
	GetLocale(userID int64) (string, error)
	SetLocale(userID int64, locale string) error
}

// LookupRepository defines lookup history operations
type LookupRepository interface {
	SaveLookup(userID int64, date time.Time) error
	GetRecentLookups(userID int64, limit, offset int) ([]domain.Lookup, error)
	GetTotalLookupsCount(userID int64) (int, error)
	CleanOldLookups(days int) error
}

// TranslationRepository defines translation override operations
type TranslationRepository interface {
	ListTranslations() ([]domain.Translation, error)
}
