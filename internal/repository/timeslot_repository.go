package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/study-planner/internal/models"
)

type TimeSlotRepository interface {
	Create(ctx context.Context, slot *models.TimeSlot) error
	GetByID(ctx context.Context, id string) (*models.TimeSlot, error)
	GetAll(ctx context.Context) ([]models.TimeSlot, error)
	Update(ctx context.Context, id string, fields map[string]string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type timeSlotRepository struct {
	*SQLRepository
}

func NewTimeSlotRepository(db *sql.DB, driver string, logger zerolog.Logger) TimeSlotRepository {
	return &timeSlotRepository{
		SQLRepository: NewSQLRepository(db, driver, logger),
	}
}

// slotColumns сопоставляет ключи запроса с колонками; всё остальное отбрасывается.
var slotColumns = map[string]string{
	models.SlotFieldTime:      "time_label",
	models.SlotFieldMonday:    "monday",
	models.SlotFieldTuesday:   "tuesday",
	models.SlotFieldWednesday: "wednesday",
	models.SlotFieldThursday:  "thursday",
	models.SlotFieldFriday:    "friday",
	models.SlotFieldSaturday:  "saturday",
	models.SlotFieldSunday:    "sunday",
}

const timeSlotColumns = `id, time_label, monday, tuesday, wednesday, thursday, friday, saturday, sunday, created_at`

func (r *timeSlotRepository) Create(ctx context.Context, slot *models.TimeSlot) error {
	query := `
		INSERT INTO time_slots (` + timeSlotColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.exec(ctx, query,
		slot.ID,
		slot.TimeLabel,
		slot.Monday,
		slot.Tuesday,
		slot.Wednesday,
		slot.Thursday,
		slot.Friday,
		slot.Saturday,
		slot.Sunday,
		toMillis(slot.CreatedAt),
	)

	return err
}

func (r *timeSlotRepository) GetByID(ctx context.Context, id string) (*models.TimeSlot, error) {
	query := `SELECT ` + timeSlotColumns + ` FROM time_slots WHERE id = ?`

	slot, err := scanTimeSlot(r.queryRow(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return slot, nil
}

func (r *timeSlotRepository) GetAll(ctx context.Context) ([]models.TimeSlot, error) {
	query := `SELECT ` + timeSlotColumns + ` FROM time_slots ORDER BY id`

	rows, err := r.query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []models.TimeSlot
	for rows.Next() {
		slot, err := scanTimeSlot(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, *slot)
	}

	return slots, rows.Err()
}

// Update перезаписывает только переданные поля. Неизвестные ключи игнорируются;
// если известных нет, проверяется только существование строки.
func (r *timeSlotRepository) Update(ctx context.Context, id string, fields map[string]string) error {
	var (
		sets []string
		args []any
	)
	for _, field := range models.SlotFields {
		value, ok := fields[field]
		if !ok {
			continue
		}
		sets = append(sets, slotColumns[field]+" = ?")
		args = append(args, value)
	}

	if len(sets) == 0 {
		_, err := r.GetByID(ctx, id)
		return err
	}

	query := `UPDATE time_slots SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	args = append(args, id)

	return r.execOne(ctx, query, args...)
}

func (r *timeSlotRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM time_slots WHERE id = ?`
	return r.execOne(ctx, query, id)
}

func (r *timeSlotRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.queryRow(ctx, `SELECT COUNT(*) FROM time_slots`).Scan(&count)
	return count, err
}

func scanTimeSlot(row rowScanner) (*models.TimeSlot, error) {
	var (
		s         models.TimeSlot
		createdAt int64
	)

	err := row.Scan(
		&s.ID,
		&s.TimeLabel,
		&s.Monday,
		&s.Tuesday,
		&s.Wednesday,
		&s.Thursday,
		&s.Friday,
		&s.Saturday,
		&s.Sunday,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	s.CreatedAt = fromMillis(createdAt)

	return &s, nil
}
