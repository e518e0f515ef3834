package postgres

import (
	"database/sql"
	"time"

	"datelabel/internal/domain"
)

// LookupRepo implements repository.LookupRepository
type LookupRepo struct {
	db *sql.DB
}

// NewLookupRepo creates a new lookup repository
func NewLookupRepo(db *sql.DB) *LookupRepo {
	return &LookupRepo{db: db}
}

// SaveLookup records that the user asked about a date
func (r *LookupRepo) SaveLookup(userID int64, date time.Time) error {
	query := `
		INSERT INTO lookups (user_id, date)
		VALUES ($1, $2)
	`
	_, err := r.db.Exec(query, userID, date.UTC())
	return err
}

// GetRecentLookups returns distinct looked-up dates, most recently asked first
func (r *LookupRepo) GetRecentLookups(userID int64, limit, offset int) ([]domain.Lookup, error) {
	query := `
		SELECT MAX(id) AS id, user_id, date, MAX(created_at) AS last_asked
		FROM lookups
		WHERE user_id = $1
		GROUP BY user_id, date
		ORDER BY last_asked DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []domain.Lookup
	for rows.Next() {
		var l domain.Lookup
		if err := rows.Scan(&l.ID, &l.UserID, &l.Date, &l.CreatedAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}

	return lookups, rows.Err()
}

// GetTotalLookupsCount returns the number of distinct looked-up dates
func (r *LookupRepo) GetTotalLookupsCount(userID int64) (int, error) {
	query := `
		SELECT COUNT(DISTINCT date)
		FROM lookups
		WHERE user_id = $1
	`

	var count int
	err := r.db.QueryRow(query, userID).Scan(&count)
	return count, err
}

// CleanOldLookups deletes lookups older than specified days
func (r *LookupRepo) CleanOldLookups(days int) error {
	query := `
		DELETE FROM lookups
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`
	_, err := r.db.Exec(query, days)
	return err
}
