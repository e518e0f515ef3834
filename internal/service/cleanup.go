package service

import (
	"datelabel/internal/repository"

	"go.uber.org/zap"
)

// CleanupService removes expired lookup history
type CleanupService struct {
	lookupRepo    repository.LookupRepository
	retentionDays int
	logger        *zap.Logger
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(lookupRepo repository.LookupRepository, retentionDays int, logger *zap.Logger) *CleanupService {
	return &CleanupService{
		lookupRepo:    lookupRepo,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// CleanupOldData removes lookups older than the retention window
func (s *CleanupService) CleanupOldData() error {
	s.logger.Info("Starting cleanup of old lookups", zap.Int("retention_days", s.retentionDays))

	err := s.lookupRepo.CleanOldLookups(s.retentionDays)
	if err != nil {
		s.logger.Error("Failed to cleanup old lookups", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}
