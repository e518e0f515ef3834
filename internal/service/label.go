package service

import (
	"errors"
	"fmt"
	"strings"

	"datelabel/internal/dateformat"
	"datelabel/internal/domain"
	"datelabel/internal/repository"
	"datelabel/internal/translation"

	"go.uber.org/zap"
)

var (
	// ErrInvalidDate is returned when the input is not a calendar date
	ErrInvalidDate = errors.New("invalid date")
	// ErrUnknownLocale is returned when the catalog has no such locale
	ErrUnknownLocale = errors.New("unknown locale")
)

// LabelService turns user input into relative date labels
type LabelService struct {
	formatter  *dateformat.Formatter
	catalog    *translation.Catalog
	userRepo   repository.UserRepository
	lookupRepo repository.LookupRepository
	logger     *zap.Logger
}

// NewLabelService creates a new label service
func NewLabelService(
	formatter *dateformat.Formatter,
	catalog *translation.Catalog,
	userRepo repository.UserRepository,
	lookupRepo repository.LookupRepository,
	logger *zap.Logger,
) *LabelService {
	return &LabelService{
		formatter:  formatter,
		catalog:    catalog,
		userRepo:   userRepo,
		lookupRepo: lookupRepo,
		logger:     logger,
	}
}

// Label validates input, labels it in the user's locale and records the lookup
func (s *LabelService) Label(userID int64, input string) (domain.Label, error) {
	input = strings.TrimSpace(input)
	if !dateformat.IsValid(input) {
		return domain.Label{}, ErrInvalidDate
	}

	locale, err := s.Locale(userID)
	if err != nil {
		return domain.Label{}, err
	}

	date := dateformat.Parse(input)
	label, err := s.describe(date, locale)
	if err != nil {
		return domain.Label{}, err
	}

	// History is best effort, the label is still useful without it
	if err := s.lookupRepo.SaveLookup(userID, date.Time()); err != nil {
		s.logger.Warn("Failed to save lookup",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("date", date.String()),
		)
	}

	return label, nil
}

// Locale returns the user's locale or the catalog default
func (s *LabelService) Locale(userID int64) (string, error) {
	locale, err := s.userRepo.GetLocale(userID)
	if err != nil {
		return "", fmt.Errorf("failed to get locale: %w", err)
	}
	if resolved, ok := s.catalog.Resolve(locale); ok {
		return resolved, nil
	}
	return s.catalog.DefaultLocale(), nil
}

// SetLocale stores the user's locale after checking the catalog knows it
func (s *LabelService) SetLocale(userID int64, locale string) error {
	resolved, ok := s.catalog.Resolve(locale)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	locale = resolved
	return s.userRepo.SetLocale(userID, locale)
}

// Locales lists the locales a user can pick
func (s *LabelService) Locales() []string {
	return s.catalog.Locales()
}

// EnsureUserExists creates user record if doesn't exist
func (s *LabelService) EnsureUserExists(userID int64) error {
	return s.userRepo.EnsureUserExists(userID)
}

func (s *LabelService) describe(date dateformat.CalendarDate, locale string) (domain.Label, error) {
	desc, ok := s.formatter.Describe(date, s.catalog.Translator(locale))
	if !ok {
		return domain.Label{}, ErrInvalidDate
	}
	return domain.Label{
		Date: date,
		Text: desc.Text,
		Kind: desc.Kind,
		Days: desc.Days,
	}, nil
}
