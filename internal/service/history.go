package service

import (
	"datelabel/internal/domain"
	"datelabel/internal/repository"
)

// HistoryService lists previously looked-up dates with fresh labels
type HistoryService struct {
	lookupRepo repository.LookupRepository
	labels     *LabelService
	pageSize   int
}

// NewHistoryService creates a new history service
func NewHistoryService(lookupRepo repository.LookupRepository, labels *LabelService, pageSize int) *HistoryService {
	if pageSize < 1 {
		pageSize = 7
	}
	return &HistoryService{
		lookupRepo: lookupRepo,
		labels:     labels,
		pageSize:   pageSize,
	}
}

// GetHistory returns a page of lookups relabelled against the current date
func (s *HistoryService) GetHistory(userID int64, page int) ([]domain.Label, int, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * s.pageSize
	lookups, err := s.lookupRepo.GetRecentLookups(userID, s.pageSize, offset)
	if err != nil {
		return nil, 0, err
	}

	// Calculate total pages
	total, err := s.lookupRepo.GetTotalLookupsCount(userID)
	if err != nil {
		return nil, 0, err
	}

	totalPages := (total + s.pageSize - 1) / s.pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	locale, err := s.labels.Locale(userID)
	if err != nil {
		return nil, 0, err
	}

	labels := make([]domain.Label, 0, len(lookups))
	for _, l := range lookups {
		label, err := s.labels.describe(l.CalendarDate(), locale)
		if err != nil {
			continue
		}
		labels = append(labels, label)
	}

	return labels, totalPages, nil
}
