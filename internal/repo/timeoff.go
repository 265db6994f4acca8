package repo

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"team-calendar/internal/domain/models"
)

type TimeOffRepo struct {
	storage *sqlx.DB
}

func NewTimeOffRepo(storage *sqlx.DB) *TimeOffRepo {
	return &TimeOffRepo{storage: storage}
}

func (r *TimeOffRepo) ListEntries() ([]models.TimeOffEntry, error) {
	const op = "repo.timeoff.ListEntries"

	query := `
		SELECT id, member_id, type, start_date, end_date, notes
		FROM time_off_entries
		ORDER BY start_date DESC
	`

	entries := make([]models.TimeOffEntry, 0)
	err := r.storage.Select(&entries, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return entries, nil
}

// CreateEntry assigns the next id as max(id)+1 and inserts, with the same
// unguarded two-statement pattern as member creation. Fields the caller
// never sent arrive as nil and are stored as NULL.
func (r *TimeOffRepo) CreateEntry(entry models.TimeOffEntry) (models.TimeOffEntry, error) {
	const op = "repo.timeoff.CreateEntry"

	var nextID int
	err := r.storage.Get(&nextID, `SELECT COALESCE(MAX(id), 0) + 1 FROM time_off_entries`)
	if err != nil {
		return models.TimeOffEntry{}, fmt.Errorf("%s: failed to compute next id: %w", op, err)
	}

	query := `
		INSERT INTO time_off_entries (id, member_id, type, start_date, end_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = r.storage.Exec(query, nextID, entry.MemberID, entry.Type, entry.StartDate, entry.EndDate, entry.Notes)
	if err != nil {
		return models.TimeOffEntry{}, fmt.Errorf("%s: %w", op, err)
	}

	entry.ID = nextID
	return entry, nil
}

func (r *TimeOffRepo) DeleteEntry(id int) error {
	const op = "repo.timeoff.DeleteEntry"

	_, err := r.storage.Exec(`DELETE FROM time_off_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
