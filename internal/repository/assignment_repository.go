package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/study-planner/internal/models"
)

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *models.Assignment) error
	GetByID(ctx context.Context, id string) (*models.Assignment, error)
	GetAll(ctx context.Context) ([]models.Assignment, error)
	ToggleCompleted(ctx context.Context, id string) (*models.Assignment, error)
	Delete(ctx context.Context, id string) error
}

type assignmentRepository struct {
	*SQLRepository
}

func NewAssignmentRepository(db *sql.DB, driver string, logger zerolog.Logger) AssignmentRepository {
	return &assignmentRepository{
		SQLRepository: NewSQLRepository(db, driver, logger),
	}
}

const assignmentColumns = `id, homework, class_name, professor, due_date, difficulty, completed, created_at`

func (r *assignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	query := `
		INSERT INTO assignments (id, homework, class_name, professor, due_date, difficulty, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.exec(ctx, query,
		assignment.ID,
		assignment.Homework,
		assignment.ClassName,
		assignment.Professor,
		assignment.DueDate.Format(models.DueDateLayout),
		string(assignment.Difficulty),
		assignment.Completed,
		toMillis(assignment.CreatedAt),
	)

	return err
}

func (r *assignmentRepository) GetByID(ctx context.Context, id string) (*models.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = ?`

	assignment, err := scanAssignment(r.queryRow(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return assignment, nil
}

func (r *assignmentRepository) GetAll(ctx context.Context) ([]models.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments ORDER BY id`

	rows, err := r.query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []models.Assignment
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, *assignment)
	}

	return assignments, rows.Err()
}

// ToggleCompleted переворачивает флаг одним UPDATE и возвращает новое состояние.
func (r *assignmentRepository) ToggleCompleted(ctx context.Context, id string) (*models.Assignment, error) {
	query := `UPDATE assignments SET completed = NOT completed WHERE id = ?`

	if err := r.execOne(ctx, query, id); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *assignmentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM assignments WHERE id = ?`
	return r.execOne(ctx, query, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssignment(row rowScanner) (*models.Assignment, error) {
	var (
		a          models.Assignment
		dueDate    string
		difficulty string
		createdAt  int64
	)

	err := row.Scan(
		&a.ID,
		&a.Homework,
		&a.ClassName,
		&a.Professor,
		&dueDate,
		&difficulty,
		&a.Completed,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	a.DueDate, err = time.Parse(models.DueDateLayout, dueDate)
	if err != nil {
		return nil, fmt.Errorf("assignment %s has malformed due date %q: %w", a.ID, dueDate, err)
	}
	a.Difficulty = models.Difficulty(difficulty)
	a.CreatedAt = fromMillis(createdAt)

	return &a, nil
}
