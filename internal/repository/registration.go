package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/domain"
)

const uniqueViolation = "23505"

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Условный инкремент: срабатывает только пока счётчик ниже лимита,
	// поэтому гонка за последнее место закрывается на стороне базы.
	incQuery := `UPDATE events
				 SET current_participants = current_participants + 1, updated_at = now()
				 WHERE id = $1
				   AND is_active = true
				   AND (max_participants IS NULL OR current_participants < max_participants)`
	res, err := tx.ExecContext(ctx, incQuery, reg.EventID)
	if err != nil {
		return fmt.Errorf("increment participants: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("increment rows affected: %w", err)
	}
	if affected == 0 {
		// Выясняем причину: событие отсутствует, неактивно или заполнено.
		var isActive bool
		checkQuery := `SELECT is_active FROM events WHERE id = $1`
		if err = tx.QueryRowContext(ctx, checkQuery, reg.EventID).Scan(&isActive); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrEventNotFound
			}
			return fmt.Errorf("check event: %w", err)
		}
		if !isActive {
			return domain.ErrEventNotActive
		}
		return domain.ErrEventFull
	}

	query := `INSERT INTO registrations (id, user_id, event_id, status, payment_status, transaction_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = tx.ExecContext(
		ctx, query, reg.ID, reg.UserID, reg.EventID,
		reg.Status, reg.PaymentStatus, reg.TransactionID, reg.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	return tx.Commit()
}

func (r *RegistrationRepository) GetActiveByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	query := `SELECT id, user_id, event_id, status, payment_status, transaction_id, created_at
			  FROM registrations
			  WHERE event_id = $1 AND user_id = $2 AND status = $3
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID, domain.RegistrationStatusRegistered)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	var reg domain.Registration
	if err = row.Scan(
		&reg.ID, &reg.UserID, &reg.EventID,
		&reg.Status, &reg.PaymentStatus, &reg.TransactionID, &reg.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return &reg, nil
}

// GetByIDForUser фильтрует по владельцу прямо в запросе: чужая
// регистрация неотличима от несуществующей.
func (r *RegistrationRepository) GetByIDForUser(ctx context.Context, id, userID string) (*domain.RegistrationWithEvent, error) {
	query := `SELECT r.id, r.user_id, r.event_id, r.status, r.payment_status, r.transaction_id, r.created_at,
					 e.id, e.title, e.description, e.category, e.date_time, e.venue,
					 e.max_participants, e.current_participants, e.fee, e.image_url,
					 e.is_active, e.created_by, e.created_at, e.updated_at
			  FROM registrations r
			  JOIN events e ON e.id = r.event_id
			  WHERE r.id = $1 AND r.user_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	var rw domain.RegistrationWithEvent
	if err = scanRegistrationWithEvent(row.Scan, &rw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return &rw, nil
}

func (r *RegistrationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.RegistrationWithEvent, error) {
	query := `SELECT r.id, r.user_id, r.event_id, r.status, r.payment_status, r.transaction_id, r.created_at,
					 e.id, e.title, e.description, e.category, e.date_time, e.venue,
					 e.max_participants, e.current_participants, e.fee, e.image_url,
					 e.is_active, e.created_by, e.created_at, e.updated_at
			  FROM registrations r
			  JOIN events e ON e.id = r.event_id
			  WHERE r.user_id = $1
			  ORDER BY r.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.RegistrationWithEvent
	for rows.Next() {
		var rw domain.RegistrationWithEvent
		if err = scanRegistrationWithEvent(rows.Scan, &rw); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, &rw)
	}

	return res, rows.Err()
}

func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.RegistrationWithProfile, error) {
	query := `SELECT r.id, r.user_id, r.event_id, r.status, r.payment_status, r.transaction_id, r.created_at,
					 p.id, p.name, p.email, p.phone, p.college, p.role, p.created_at, p.updated_at
			  FROM registrations r
			  JOIN profiles p ON p.id = r.user_id
			  WHERE r.event_id = $1
			  ORDER BY r.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations by event: %w", err)
	}
	defer rows.Close()

	var res []*domain.RegistrationWithProfile
	for rows.Next() {
		var rp domain.RegistrationWithProfile
		if err = rows.Scan(
			&rp.ID, &rp.UserID, &rp.EventID,
			&rp.Status, &rp.PaymentStatus, &rp.TransactionID, &rp.CreatedAt,
			&rp.Participant.ID, &rp.Participant.Name, &rp.Participant.Email,
			&rp.Participant.Phone, &rp.Participant.College, &rp.Participant.Role,
			&rp.Participant.CreatedAt, &rp.Participant.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan registration with profile: %w", err)
		}
		res = append(res, &rp)
	}

	return res, rows.Err()
}

// Cancel переводит запись в cancelled и возвращает место событию
// в одной транзакции. Запись остаётся в истории.
func (r *RegistrationRepository) Cancel(ctx context.Context, id, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE registrations
			  SET status = $3
			  WHERE id = $1 AND user_id = $2 AND status = $4`
	res, err := tx.ExecContext(
		ctx, query, id, userID,
		domain.RegistrationStatusCancelled, domain.RegistrationStatusRegistered,
	)
	if err != nil {
		return fmt.Errorf("cancel registration: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancel rows affected: %w", err)
	}
	if affected == 0 {
		var status domain.RegistrationStatus
		checkQuery := `SELECT status FROM registrations WHERE id = $1 AND user_id = $2`
		if err = tx.QueryRowContext(ctx, checkQuery, id, userID).Scan(&status); err != nil {
			return domain.ErrRegistrationNotFound
		}
		return domain.ErrRegistrationNotActive
	}

	decQuery := `UPDATE events e
				 SET current_participants = GREATEST(current_participants - 1, 0), updated_at = now()
				 FROM registrations r
				 WHERE r.id = $1 AND e.id = r.event_id`
	if _, err = tx.ExecContext(ctx, decQuery, id); err != nil {
		return fmt.Errorf("decrement participants: %w", err)
	}

	return tx.Commit()
}

func (r *RegistrationRepository) UpdatePayment(ctx context.Context, id, userID string, status domain.PaymentStatus, transactionID *string) (*domain.Registration, error) {
	query := `UPDATE registrations
			  SET payment_status = $3, transaction_id = $4
			  WHERE id = $1 AND user_id = $2
			  RETURNING id, user_id, event_id, status, payment_status, transaction_id, created_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, userID, status, transactionID)
	if err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}

	var reg domain.Registration
	if err = row.Scan(
		&reg.ID, &reg.UserID, &reg.EventID,
		&reg.Status, &reg.PaymentStatus, &reg.TransactionID, &reg.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return &reg, nil
}

func scanRegistrationWithEvent(scan func(dest ...any) error, rw *domain.RegistrationWithEvent) error {
	return scan(
		&rw.ID, &rw.UserID, &rw.EventID,
		&rw.Status, &rw.PaymentStatus, &rw.TransactionID, &rw.CreatedAt,
		&rw.Event.ID, &rw.Event.Title, &rw.Event.Description, &rw.Event.Category,
		&rw.Event.DateTime, &rw.Event.Venue,
		&rw.Event.MaxParticipants, &rw.Event.CurrentParticipants,
		&rw.Event.Fee, &rw.Event.ImageURL,
		&rw.Event.IsActive, &rw.Event.CreatedBy,
		&rw.Event.CreatedAt, &rw.Event.UpdatedAt,
	)
}
