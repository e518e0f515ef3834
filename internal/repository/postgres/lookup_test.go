package postgres

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestLookupRepo_SaveLookup(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewLookupRepo(db)

	userID := int64(123)
	date := time.Date(2020, 11, 29, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO lookups").
		WithArgs(userID, date).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SaveLookup(userID, date)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLookupRepo_GetRecentLookups(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewLookupRepo(db)

	userID := int64(123)
	limit := 7
	offset := 0

	first := time.Date(2020, 11, 29, 0, 0, 0, 0, time.UTC)
	second := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	asked := time.Date(2020, 12, 1, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "user_id", "date", "last_asked"}).
		AddRow(5, userID, first, asked).
		AddRow(3, userID, second, asked.Add(-time.Hour))

	mock.ExpectQuery("SELECT MAX\\(id\\) AS id, user_id, date, MAX\\(created_at\\) AS last_asked FROM lookups").
		WithArgs(userID, limit, offset).
		WillReturnRows(rows)

	lookups, err := repo.GetRecentLookups(userID, limit, offset)

	assert.NoError(t, err)
	assert.Len(t, lookups, 2)
	assert.Equal(t, 5, lookups[0].ID)
	assert.Equal(t, "2020-11-29", lookups[0].DateString())
	assert.Equal(t, "2020-01-01", lookups[1].DateString())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLookupRepo_GetRecentLookups_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewLookupRepo(db)

	mock.ExpectQuery("SELECT MAX\\(id\\)").
		WithArgs(int64(123), 7, 7).
		WillReturnError(fmt.Errorf("db error"))

	lookups, err := repo.GetRecentLookups(123, 7, 7)

	assert.Error(t, err)
	assert.Nil(t, lookups)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLookupRepo_GetTotalLookupsCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewLookupRepo(db)

	userID := int64(123)

	mock.ExpectQuery("SELECT COUNT\\(DISTINCT date\\) FROM lookups").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.GetTotalLookupsCount(userID)

	assert.NoError(t, err)
	assert.Equal(t, 12, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLookupRepo_CleanOldLookups(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewLookupRepo(db)

	mock.ExpectExec("DELETE FROM lookups").
		WithArgs(60).
		WillReturnResult(sqlmock.NewResult(0, 4))

	err = repo.CleanOldLookups(60)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
