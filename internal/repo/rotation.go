package repo

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"team-calendar/internal/apperrors"
)

// scheduleName is the fixed key of the singleton rotation row.
const scheduleName = "primary"

type RotationRepo struct {
	storage *sqlx.DB
}

func NewRotationRepo(storage *sqlx.DB) *RotationRepo {
	return &RotationRepo{storage: storage}
}

func (r *RotationRepo) GetRotation() (json.RawMessage, error) {
	const op = "repo.rotation.GetRotation"

	query := `SELECT rotation_data FROM on_call_rotations WHERE schedule_name = $1`

	var data json.RawMessage
	err := r.storage.Get(&data, query, scheduleName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.ErrRotationNotSet)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return data, nil
}

// SaveRotation replaces the singleton payload wholesale. Last writer wins.
func (r *RotationRepo) SaveRotation(data json.RawMessage) error {
	const op = "repo.rotation.SaveRotation"

	query := `
		INSERT INTO on_call_rotations (schedule_name, rotation_data)
		VALUES ($1, $2)
		ON CONFLICT (schedule_name)
		DO UPDATE SET rotation_data = EXCLUDED.rotation_data
	`

	// lib/pq sends []byte as bytea, so the payload goes over as text and
	// is coerced to jsonb by the insert target.
	_, err := r.storage.Exec(query, scheduleName, string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
