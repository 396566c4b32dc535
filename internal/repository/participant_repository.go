package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/deepaksx/rawabi-workshop-app/internal/models"
)

// ParticipantRepository handles the per-session roster.
type ParticipantRepository struct {
	db *sqlx.DB
}

// NewParticipantRepository constructs the repository.
func NewParticipantRepository(db *sqlx.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

const participantColumns = `id, session_id, name, role, company, email, is_present, created_at`

// ListBySession returns a session's roster ordered by name.
func (r *ParticipantRepository) ListBySession(ctx context.Context, sessionID int64) ([]models.Participant, error) {
	query := fmt.Sprintf(`SELECT %s FROM workshop_participants WHERE session_id = $1 ORDER BY name`, participantColumns)
	var participants []models.Participant
	if err := r.db.SelectContext(ctx, &participants, query, sessionID); err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return participants, nil
}

// Insert adds a roster entry, present by default.
func (r *ParticipantRepository) Insert(ctx context.Context, p *models.Participant) (*models.Participant, error) {
	query := fmt.Sprintf(`INSERT INTO workshop_participants
		(session_id, name, role, company, email, is_present)
	VALUES ($1, $2, $3, $4, $5, true)
	RETURNING %s`, participantColumns)
	var stored models.Participant
	err := r.db.GetContext(ctx, &stored, query, p.SessionID, p.Name, p.Role, p.Company, p.Email)
	if err != nil {
		return nil, fmt.Errorf("insert participant: %w", err)
	}
	return &stored, nil
}

// Update applies a partial update. Nil patch fields retain the stored value.
// Returns sql.ErrNoRows when the id is absent.
func (r *ParticipantRepository) Update(ctx context.Context, id int64, patch models.ParticipantPatch) (*models.Participant, error) {
	query := fmt.Sprintf(`UPDATE workshop_participants SET
		name       = COALESCE($2, name),
		role       = COALESCE($3, role),
		company    = COALESCE($4, company),
		email      = COALESCE($5, email),
		is_present = COALESCE($6, is_present)
	WHERE id = $1
	RETURNING %s`, participantColumns)
	var stored models.Participant
	err := r.db.GetContext(ctx, &stored, query, id, patch.Name, patch.Role, patch.Company, patch.Email, patch.IsPresent)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// Delete removes a roster entry. Deleting an absent id is not an error.
func (r *ParticipantRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM workshop_participants WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	return nil
}

// SetPresence toggles attendance. Returns sql.ErrNoRows when the id is absent.
func (r *ParticipantRepository) SetPresence(ctx context.Context, id int64, isPresent bool) (*models.Participant, error) {
	query := fmt.Sprintf(`UPDATE workshop_participants SET is_present = $2 WHERE id = $1 RETURNING %s`, participantColumns)
	var stored models.Participant
	if err := r.db.GetContext(ctx, &stored, query, id, isPresent); err != nil {
		return nil, err
	}
	return &stored, nil
}
