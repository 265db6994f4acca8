package models

// TimeOffEntry mirrors what the client sent: fields omitted on creation
// stay NULL in the store and marshal back as null.
type TimeOffEntry struct {
	ID        int     `db:"id" json:"id"`
	MemberID  *int    `db:"member_id" json:"memberId"`
	Type      *string `db:"type" json:"type"`
	StartDate *string `db:"start_date" json:"startDate"`
	EndDate   *string `db:"end_date" json:"endDate"`
	Notes     *string `db:"notes" json:"notes"`
}
