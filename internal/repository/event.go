package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/domain"
)

const eventColumns = `id, title, description, category, date_time, venue,
					  max_participants, current_participants, fee, image_url,
					  is_active, created_by, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, category, date_time, venue,
				max_participants, current_participants, fee, image_url, is_active,
				created_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Category, e.DateTime, e.Venue,
		e.MaxParticipants, e.CurrentParticipants, e.Fee, e.ImageURL, e.IsActive,
		e.CreatedBy, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	e.CreatedAt = now
	e.UpdatedAt = now
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = scanEvent(row.Scan, &e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	query := `SELECT e.id, e.title, e.description, e.category, e.date_time, e.venue,
					 e.max_participants, e.current_participants, e.fee, e.image_url,
					 e.is_active, e.created_by, e.created_at, e.updated_at,
					 p.name, p.college
			  FROM events e
			  LEFT JOIN profiles p ON p.id = e.created_by
			  WHERE e.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event details: %w", err)
	}

	var d domain.EventDetails
	var creatorName, creatorCollege sql.NullString
	if err = row.Scan(
		&d.Event.ID, &d.Event.Title, &d.Event.Description, &d.Event.Category,
		&d.Event.DateTime, &d.Event.Venue,
		&d.Event.MaxParticipants, &d.Event.CurrentParticipants,
		&d.Event.Fee, &d.Event.ImageURL,
		&d.Event.IsActive, &d.Event.CreatedBy,
		&d.Event.CreatedAt, &d.Event.UpdatedAt,
		&creatorName, &creatorCollege,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event details: %w", err)
	}

	if creatorName.Valid {
		d.Creator = &domain.CreatorBrief{
			Name:    creatorName.String,
			College: creatorCollege.String,
		}
	}

	return &d, nil
}

func (r *EventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE is_active = true`
	args := []any{}

	if filter.Category != "" && filter.Category != "all" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	query += " ORDER BY date_time ASC"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = scanEvent(rows.Scan, &e); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

// Update собирает SET только из явно переданных полей; произвольные
// ключи из тела запроса сюда не попадают.
func (r *EventRepository) Update(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error) {
	sets := []string{"updated_at = now()"}
	args := []any{id}

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.Title != nil {
		addSet("title", *input.Title)
	}
	if input.Description != nil {
		addSet("description", *input.Description)
	}
	if input.Category != nil {
		addSet("category", *input.Category)
	}
	if input.DateTime != nil {
		addSet("date_time", *input.DateTime)
	}
	if input.Venue != nil {
		addSet("venue", *input.Venue)
	}
	if input.MaxParticipants != nil {
		addSet("max_participants", *input.MaxParticipants)
	}
	if input.Fee != nil {
		addSet("fee", *input.Fee)
	}
	if input.ImageURL != nil {
		addSet("image_url", *input.ImageURL)
	}
	if input.IsActive != nil {
		addSet("is_active", *input.IsActive)
	}

	query := `UPDATE events SET ` + strings.Join(sets, ", ") +
		` WHERE id = $1 RETURNING ` + eventColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	var e domain.Event
	if err = scanEvent(row.Scan, &e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE events SET is_active = false, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("deactivate event: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deactivate rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// DeactivatePast гасит события, дата которых уже прошла.
func (r *EventRepository) DeactivatePast(ctx context.Context) ([]*domain.Event, error) {
	query := `UPDATE events
			  SET is_active = false, updated_at = now()
			  WHERE is_active = true AND date_time < now()
			  RETURNING ` + eventColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("deactivate past events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = scanEvent(rows.Scan, &e); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

func scanEvent(scan func(dest ...any) error, e *domain.Event) error {
	return scan(
		&e.ID, &e.Title, &e.Description, &e.Category, &e.DateTime, &e.Venue,
		&e.MaxParticipants, &e.CurrentParticipants, &e.Fee, &e.ImageURL,
		&e.IsActive, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
}
