package repo

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"team-calendar/internal/domain/models"
)

type MemberRepo struct {
	storage *sqlx.DB
}

func NewMemberRepo(storage *sqlx.DB) *MemberRepo {
	return &MemberRepo{storage: storage}
}

func (r *MemberRepo) ListMembers() ([]models.TeamMember, error) {
	const op = "repo.member.ListMembers"

	query := `SELECT id, name FROM team_members ORDER BY name ASC`

	members := make([]models.TeamMember, 0)
	err := r.storage.Select(&members, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return members, nil
}

// CreateMember assigns the next id as max(id)+1 and inserts. The read and
// the insert are two statements with no locking between them, so two
// concurrent creations can be assigned the same id.
func (r *MemberRepo) CreateMember(name string) (models.TeamMember, error) {
	const op = "repo.member.CreateMember"

	var nextID int
	err := r.storage.Get(&nextID, `SELECT COALESCE(MAX(id), 0) + 1 FROM team_members`)
	if err != nil {
		return models.TeamMember{}, fmt.Errorf("%s: failed to compute next id: %w", op, err)
	}

	_, err = r.storage.Exec(`INSERT INTO team_members (id, name) VALUES ($1, $2)`, nextID, name)
	if err != nil {
		return models.TeamMember{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.TeamMember{ID: nextID, Name: name}, nil
}

// DeleteMember removes the member and all time-off entries referencing it.
// Deleting an id that does not exist is a no-op, not an error.
func (r *MemberRepo) DeleteMember(id int) error {
	const op = "repo.member.DeleteMember"

	tx, err := r.storage.Beginx()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM time_off_entries WHERE member_id = $1`, id); err != nil {
		return fmt.Errorf("%s: failed to delete time-off entries: %w", op, err)
	}

	if _, err := tx.Exec(`DELETE FROM team_members WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%s: failed to delete member: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}

	return nil
}
