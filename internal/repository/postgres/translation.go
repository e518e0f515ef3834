package postgres

import (
	"database/sql"

	"datelabel/internal/domain"
)

// TranslationRepo implements repository.TranslationRepository
type TranslationRepo struct {
	db *sql.DB
}

// NewTranslationRepo creates a new translation repository
func NewTranslationRepo(db *sql.DB) *TranslationRepo {
	return &TranslationRepo{db: db}
}

// ListTranslations returns all message overrides
func (r *TranslationRepo) ListTranslations() ([]domain.Translation, error) {
	query := `
		SELECT locale, key, value
		FROM translations
		ORDER BY locale, key
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var translations []domain.Translation
	for rows.Next() {
		var tr domain.Translation
		if err := rows.Scan(&tr.Locale, &tr.Key, &tr.Value); err != nil {
			return nil, err
		}
		translations = append(translations, tr)
	}

	return translations, rows.Err()
}
