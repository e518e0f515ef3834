package service

import (
	"fmt"

	"datelabel/internal/repository"
	"datelabel/internal/translation"

	"go.uber.org/zap"
)

// LoadTranslations merges stored message overrides into the catalog
func LoadTranslations(repo repository.TranslationRepository, catalog *translation.Catalog, logger *zap.Logger) error {
	translations, err := repo.ListTranslations()
	if err != nil {
		return fmt.Errorf("failed to list translations: %w", err)
	}

	loaded := 0
	for _, tr := range translations {
		if err := catalog.Set(tr.Locale, tr.Key, tr.Value); err != nil {
			logger.Warn("Skipping translation override",
				zap.Error(err),
				zap.String("locale", tr.Locale),
				zap.String("key", tr.Key),
			)
			continue
		}
		loaded++
	}

	logger.Info("Translations loaded",
		zap.Int("overrides", loaded),
		zap.Strings("locales", catalog.Locales()),
	)
	return nil
}
