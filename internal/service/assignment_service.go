package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/study-planner/internal/models"
	"github.com/RubachokBoss/study-planner/internal/repository"
	"github.com/RubachokBoss/study-planner/internal/service/integration"
)

type AssignmentService interface {
	CreateAssignment(ctx context.Context, req *models.CreateAssignmentRequest) (*models.Assignment, error)
	GetAllAssignments(ctx context.Context) ([]models.Assignment, error)
	ToggleCompletion(ctx context.Context, id string) (*models.Assignment, error)
	DeleteAssignment(ctx context.Context, id string) error
	Overview(ctx context.Context) (*models.HomeworkOverview, error)
}

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	timeSlotRepo   repository.TimeSlotRepository
	publisher      integration.EventPublisher
	logger         zerolog.Logger
}

func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	timeSlotRepo repository.TimeSlotRepository,
	publisher integration.EventPublisher,
	logger zerolog.Logger,
) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		timeSlotRepo:   timeSlotRepo,
		publisher:      publisher,
		logger:         logger,
	}
}

func (s *assignmentService) CreateAssignment(ctx context.Context, req *models.CreateAssignmentRequest) (*models.Assignment, error) {
	difficulty := models.NormalizeDifficulty(req.Difficulty)
	req.Difficulty = string(difficulty)

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// Кривая дата не валидируется отдельно и уходит наверх как обычная ошибка.
	dueDate, err := time.Parse(models.DueDateLayout, req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse due date: %w", err)
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	assignment := &models.Assignment{
		ID:         id,
		Homework:   req.Homework,
		ClassName:  req.Class,
		Professor:  req.Professor,
		DueDate:    dueDate,
		Difficulty: difficulty,
		CreatedAt:  time.Now(),
	}

	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	s.logger.Info().
		Str("assignment_id", assignment.ID).
		Str("class", assignment.ClassName).
		Str("difficulty", string(assignment.Difficulty)).
		Msg("Assignment created")

	publishEvent(ctx, s.publisher, s.logger, models.EventAssignmentCreated, &models.AssignmentEvent{
		AssignmentID: assignment.ID,
		Difficulty:   assignment.Difficulty,
		Timestamp:    assignment.CreatedAt.Unix(),
	})

	return assignment, nil
}

func (s *assignmentService) GetAllAssignments(ctx context.Context) ([]models.Assignment, error) {
	assignments, err := s.assignmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}
	return assignments, nil
}

func (s *assignmentService) ToggleCompletion(ctx context.Context, id string) (*models.Assignment, error) {
	assignment, err := s.assignmentRepo.ToggleCompleted(ctx, id)
	if err != nil {
		return nil, wrapNotFound("assignment", id, err)
	}

	s.logger.Info().
		Str("assignment_id", id).
		Bool("completed", assignment.Completed).
		Msg("Assignment completion toggled")

	publishEvent(ctx, s.publisher, s.logger, models.EventAssignmentToggled, &models.AssignmentEvent{
		AssignmentID: id,
		Difficulty:   assignment.Difficulty,
		Completed:    assignment.Completed,
		Timestamp:    time.Now().Unix(),
	})

	return assignment, nil
}

func (s *assignmentService) DeleteAssignment(ctx context.Context, id string) error {
	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		return wrapNotFound("assignment", id, err)
	}

	s.logger.Info().Str("assignment_id", id).Msg("Assignment deleted")

	publishEvent(ctx, s.publisher, s.logger, models.EventAssignmentDeleted, &models.AssignmentEvent{
		AssignmentID: id,
		Timestamp:    time.Now().Unix(),
	})

	return nil
}

// Overview собирает всё для страницы /homework; предупреждение считается заново
// на каждый запрос и нигде не хранится.
func (s *assignmentService) Overview(ctx context.Context) (*models.HomeworkOverview, error) {
	assignments, err := s.GetAllAssignments(ctx)
	if err != nil {
		return nil, err
	}

	slots, err := s.timeSlotRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get time slots: %w", err)
	}

	return &models.HomeworkOverview{
		Assignments: assignments,
		TimeSlots:   slots,
		Alert:       EvaluateWorkload(assignments),
	}, nil
}
