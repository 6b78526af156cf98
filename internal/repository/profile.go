package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/domain"
)

const profileColumns = `id, name, email, phone, college, role, created_at, updated_at`

type ProfileRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewProfileRepo(db *dbpg.DB) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (id, name, email, phone, college, role, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.Name, p.Email, p.Phone, p.College, p.Role, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrProfileExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}

	p.CreatedAt = now
	p.UpdatedAt = now
	return nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var p domain.Profile
	if err = row.Scan(
		&p.ID, &p.Name, &p.Email, &p.Phone, &p.College, &p.Role,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}

	return &p, nil
}

func (r *ProfileRepository) Update(ctx context.Context, id string, input domain.UpdateProfileInput) (*domain.Profile, error) {
	sets := []string{"updated_at = now()"}
	args := []any{id}

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.Name != nil {
		addSet("name", *input.Name)
	}
	if input.Phone != nil {
		addSet("phone", *input.Phone)
	}
	if input.College != nil {
		addSet("college", *input.College)
	}

	query := `UPDATE profiles SET ` + strings.Join(sets, ", ") +
		` WHERE id = $1 RETURNING ` + profileColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	var p domain.Profile
	if err = row.Scan(
		&p.ID, &p.Name, &p.Email, &p.Phone, &p.College, &p.Role,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}

	return &p, nil
}
