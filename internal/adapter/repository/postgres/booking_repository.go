package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/srgjo27/epic_events/internal/core/domain"
)

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// CreateBookingRequest inserts one booking request. The database assigns the
// id and timestamps, which are copied back into req.
func (r *BookingRepository) CreateBookingRequest(ctx context.Context, req *domain.BookingRequest) error {
	query := `
	INSERT INTO booking_requests
		(name, email, phone, date, event_type, requirements, selected_games, number_of_people, time_slot)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		req.Name,
		req.Email,
		req.Phone,
		req.Date,
		string(req.EventType),
		nullString(req.Requirements),
		pq.Array(gameIDs(req.SelectedGameIDs)),
		nullInt(req.NumberOfPeople),
		nullString(req.TimeSlot),
	).Scan(&req.ID, &req.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert booking request: %w", err)
	}

	return nil
}

// MarkNotified records that staff have been told about a booking request.
func (r *BookingRepository) MarkNotified(ctx context.Context, id uuid.UUID) error {
	query := `
	UPDATE booking_requests
	SET email_sent = TRUE, updated_at = NOW()
	WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark booking request %s notified: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("booking request %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func gameIDs(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}

	return out
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}

func nullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: int64(*n), Valid: true}
}
