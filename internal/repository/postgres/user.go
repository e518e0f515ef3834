package postgres

import (
	"database/sql"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureUserExists creates user if not exists
func (r *UserRepo) EnsureUserExists(userID int64) error {
	query := `
		INSERT INTO users (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// GetLocale returns the user's preferred locale, empty if none is stored
func (r *UserRepo) GetLocale(userID int64) (string, error) {
	var locale sql.NullString
	query := `SELECT locale FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&locale)

	if err == sql.ErrNoRows {
		// User doesn't exist yet
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return locale.String, nil
}

// SetLocale stores the user's preferred locale
func (r *UserRepo) SetLocale(userID int64, locale string) error {
	query := `
		INSERT INTO users (user_id, locale)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET locale = EXCLUDED.locale
	`
	_, err := r.db.Exec(query, userID, locale)
	return err
}
