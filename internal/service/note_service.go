package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/study-planner/internal/models"
	"github.com/RubachokBoss/study-planner/internal/repository"
)

const DefaultNoteRetention = 7 * 24 * time.Hour

type NoteService interface {
	Sweep(ctx context.Context) (int64, error)
	AddNote(ctx context.Context, req *models.AddNoteRequest) (*models.HomeworkNote, error)
	GroupedNotes(ctx context.Context) ([]models.NoteGroup, error)
}

type noteService struct {
	noteRepo  repository.NoteRepository
	retention time.Duration
	now       func() time.Time
	logger    zerolog.Logger
}

// NewNoteService; now == nil означает time.Now.
func NewNoteService(
	noteRepo repository.NoteRepository,
	retention time.Duration,
	now func() time.Time,
	logger zerolog.Logger,
) NoteService {
	if now == nil {
		now = time.Now
	}
	if retention <= 0 {
		retention = DefaultNoteRetention
	}

	return &noteService{
		noteRepo:  noteRepo,
		retention: retention,
		now:       now,
		logger:    logger,
	}
}

// Sweep удаляет заметки старше срока хранения. Граница строгая: заметка ровно
// на границе остаётся.
func (s *noteService) Sweep(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.retention)

	removed, err := s.noteRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep notes: %w", err)
	}

	if removed > 0 {
		s.logger.Info().
			Int64("removed", removed).
			Time("cutoff", cutoff).
			Msg("Expired homework notes removed")
	}

	return removed, nil
}

func (s *noteService) AddNote(ctx context.Context, req *models.AddNoteRequest) (*models.HomeworkNote, error) {
	day := models.NormalizeWeekday(req.Day)
	req.Day = string(day)

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	note := &models.HomeworkNote{
		ID:        id,
		Day:       day,
		Text:      req.Text,
		CreatedAt: s.now(),
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	s.logger.Info().
		Str("note_id", note.ID).
		Str("day", string(note.Day)).
		Msg("Homework note added")

	return note, nil
}

// GroupedNotes группирует заметки по дню. Порядок групп - по самой свежей
// заметке, внутри группы новые сверху.
func (s *noteService) GroupedNotes(ctx context.Context) ([]models.NoteGroup, error) {
	notes, err := s.noteRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get notes: %w", err)
	}

	var groups []models.NoteGroup
	index := make(map[models.Weekday]int)
	for _, note := range notes {
		i, ok := index[note.Day]
		if !ok {
			i = len(groups)
			index[note.Day] = i
			groups = append(groups, models.NoteGroup{Day: note.Day})
		}
		groups[i].Notes = append(groups[i].Notes, note)
	}

	return groups, nil
}
