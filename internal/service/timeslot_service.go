package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/study-planner/internal/models"
	"github.com/RubachokBoss/study-planner/internal/repository"
)

// DefaultTimeLabels - строки расписания, которые создаются в пустой базе.
var DefaultTimeLabels = []string{"8:00 AM", "10:00 AM", "1:00 PM"}

type TimeSlotService interface {
	SeedDefaults(ctx context.Context) error
	GetAllTimeSlots(ctx context.Context) ([]models.TimeSlot, error)
	AddTimeSlot(ctx context.Context) (*models.TimeSlot, error)
	UpdateTimeSlot(ctx context.Context, id string, req models.UpdateTimeSlotRequest) error
	DeleteTimeSlot(ctx context.Context, id string) error
}

type timeSlotService struct {
	timeSlotRepo repository.TimeSlotRepository
	logger       zerolog.Logger
}

func NewTimeSlotService(timeSlotRepo repository.TimeSlotRepository, logger zerolog.Logger) TimeSlotService {
	return &timeSlotService{
		timeSlotRepo: timeSlotRepo,
		logger:       logger,
	}
}

func (s *timeSlotService) SeedDefaults(ctx context.Context) error {
	count, err := s.timeSlotRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count time slots: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, label := range DefaultTimeLabels {
		if _, err := s.create(ctx, label); err != nil {
			return err
		}
	}

	s.logger.Info().Int("rows", len(DefaultTimeLabels)).Msg("Seeded default timetable")
	return nil
}

func (s *timeSlotService) GetAllTimeSlots(ctx context.Context) ([]models.TimeSlot, error) {
	slots, err := s.timeSlotRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get time slots: %w", err)
	}
	return slots, nil
}

// AddTimeSlot добавляет пустую строку в конец расписания.
func (s *timeSlotService) AddTimeSlot(ctx context.Context) (*models.TimeSlot, error) {
	slot, err := s.create(ctx, "")
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("time_slot_id", slot.ID).Msg("Time slot added")
	return slot, nil
}

func (s *timeSlotService) UpdateTimeSlot(ctx context.Context, id string, req models.UpdateTimeSlotRequest) error {
	if err := s.timeSlotRepo.Update(ctx, id, req); err != nil {
		return wrapNotFound("time slot", id, err)
	}

	s.logger.Debug().
		Str("time_slot_id", id).
		Int("fields", len(req)).
		Msg("Time slot updated")

	return nil
}

func (s *timeSlotService) DeleteTimeSlot(ctx context.Context, id string) error {
	if err := s.timeSlotRepo.Delete(ctx, id); err != nil {
		return wrapNotFound("time slot", id, err)
	}

	s.logger.Info().Str("time_slot_id", id).Msg("Time slot deleted")
	return nil
}

func (s *timeSlotService) create(ctx context.Context, label string) (*models.TimeSlot, error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}

	slot := &models.TimeSlot{
		ID:        id,
		TimeLabel: label,
		CreatedAt: time.Now(),
	}

	if err := s.timeSlotRepo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("failed to create time slot: %w", err)
	}

	return slot, nil
}
