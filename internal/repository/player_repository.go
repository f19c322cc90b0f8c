package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/study-planner/internal/models"
)

type PlayerRepository interface {
	GetOrCreate(ctx context.Context, candidate *models.Player) (*models.Player, error)
	GetByID(ctx context.Context, id string) (*models.Player, error)
	GetByName(ctx context.Context, name string) (*models.Player, error)
	IncrementCounter(ctx context.Context, id string, outcome models.Outcome) error
	Count(ctx context.Context) (int, error)
}

type playerRepository struct {
	*SQLRepository
}

func NewPlayerRepository(db *sql.DB, driver string, logger zerolog.Logger) PlayerRepository {
	return &playerRepository{
		SQLRepository: NewSQLRepository(db, driver, logger),
	}
}

const playerColumns = `id, name, wins, losses, ties, created_at`

// GetOrCreate вставляет candidate, если имени ещё нет, и возвращает строку из базы.
// Уникальность имени держит ограничение UNIQUE, поэтому второй вызов с тем же
// именем вернёт первую запись.
func (r *playerRepository) GetOrCreate(ctx context.Context, candidate *models.Player) (*models.Player, error) {
	query := `
		INSERT INTO players (` + playerColumns + `)
		VALUES (?, ?, 0, 0, 0, ?)
		ON CONFLICT (name) DO NOTHING
	`

	if _, err := r.exec(ctx, query, candidate.ID, candidate.Name, toMillis(candidate.CreatedAt)); err != nil {
		return nil, err
	}

	return r.GetByName(ctx, candidate.Name)
}

func (r *playerRepository) GetByID(ctx context.Context, id string) (*models.Player, error) {
	return r.getOne(ctx, `SELECT `+playerColumns+` FROM players WHERE id = ?`, id)
}

func (r *playerRepository) GetByName(ctx context.Context, name string) (*models.Player, error) {
	return r.getOne(ctx, `SELECT `+playerColumns+` FROM players WHERE name = ?`, name)
}

// IncrementCounter увеличивает ровно один счётчик атомарным UPDATE.
func (r *playerRepository) IncrementCounter(ctx context.Context, id string, outcome models.Outcome) error {
	var column string
	switch outcome {
	case models.OutcomeWin:
		column = "wins"
	case models.OutcomeLose:
		column = "losses"
	case models.OutcomeTie:
		column = "ties"
	default:
		return fmt.Errorf("unknown outcome %q", outcome)
	}

	query := `UPDATE players SET ` + column + ` = ` + column + ` + 1 WHERE id = ?`
	return r.execOne(ctx, query, id)
}

func (r *playerRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.queryRow(ctx, `SELECT COUNT(*) FROM players`).Scan(&count)
	return count, err
}

func (r *playerRepository) getOne(ctx context.Context, query string, arg any) (*models.Player, error) {
	var (
		p         models.Player
		createdAt int64
	)

	err := r.queryRow(ctx, query, arg).Scan(&p.ID, &p.Name, &p.Wins, &p.Losses, &p.Ties, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.CreatedAt = fromMillis(createdAt)

	return &p, nil
}
