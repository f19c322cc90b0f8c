package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/study-planner/internal/models"
)

type NoteRepository interface {
	Create(ctx context.Context, note *models.HomeworkNote) error
	GetAll(ctx context.Context) ([]models.HomeworkNote, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type noteRepository struct {
	*SQLRepository
}

func NewNoteRepository(db *sql.DB, driver string, logger zerolog.Logger) NoteRepository {
	return &noteRepository{
		SQLRepository: NewSQLRepository(db, driver, logger),
	}
}

func (r *noteRepository) Create(ctx context.Context, note *models.HomeworkNote) error {
	query := `INSERT INTO homework_notes (id, day, text, created_at) VALUES (?, ?, ?, ?)`

	_, err := r.exec(ctx, query,
		note.ID,
		string(note.Day),
		note.Text,
		toMillis(note.CreatedAt),
	)

	return err
}

// GetAll возвращает заметки от новых к старым.
func (r *noteRepository) GetAll(ctx context.Context) ([]models.HomeworkNote, error) {
	query := `SELECT id, day, text, created_at FROM homework_notes ORDER BY created_at DESC, id DESC`

	rows, err := r.query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.HomeworkNote
	for rows.Next() {
		var (
			note      models.HomeworkNote
			day       string
			createdAt int64
		)
		if err := rows.Scan(&note.ID, &day, &note.Text, &createdAt); err != nil {
			return nil, err
		}
		note.Day = models.Weekday(day)
		note.CreatedAt = fromMillis(createdAt)
		notes = append(notes, note)
	}

	return notes, rows.Err()
}

func (r *noteRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.exec(ctx, `DELETE FROM homework_notes WHERE created_at < ?`, toMillis(cutoff))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
