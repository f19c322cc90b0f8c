package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/study-planner/internal/models"
	"github.com/RubachokBoss/study-planner/internal/repository"
	"github.com/RubachokBoss/study-planner/internal/service/integration"
)

type GameService interface {
	Play(ctx context.Context, req *models.PlayRequest) (*models.GameRound, error)
}

type gameService struct {
	playerRepo repository.PlayerRepository
	publisher  integration.EventPublisher
	pick       func() models.Choice
	logger     zerolog.Logger
}

// NewGameService; pick == nil означает RandomChoice.
func NewGameService(
	playerRepo repository.PlayerRepository,
	publisher integration.EventPublisher,
	pick func() models.Choice,
	logger zerolog.Logger,
) GameService {
	if pick == nil {
		pick = RandomChoice
	}

	return &gameService{
		playerRepo: playerRepo,
		publisher:  publisher,
		pick:       pick,
		logger:     logger,
	}
}

func RandomChoice() models.Choice {
	return models.Choices[rand.IntN(len(models.Choices))]
}

// Resolve returns the round outcome from the player's point of view.
func Resolve(player, opponent models.Choice) models.Outcome {
	switch {
	case player == opponent:
		return models.OutcomeTie
	case player.Beats(opponent):
		return models.OutcomeWin
	default:
		return models.OutcomeLose
	}
}

func (s *gameService) Play(ctx context.Context, req *models.PlayRequest) (*models.GameRound, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Choice = strings.TrimSpace(req.Choice)

	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	player, err := s.playerRepo.GetOrCreate(ctx, &models.Player{
		ID:        id,
		Name:      req.Name,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}

	choice := models.Choice(req.Choice)
	opponent := s.pick()
	outcome := Resolve(choice, opponent)

	playerID := player.ID
	if err := s.playerRepo.IncrementCounter(ctx, playerID, outcome); err != nil {
		return nil, wrapNotFound("player", playerID, err)
	}

	player, err = s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, wrapNotFound("player", playerID, err)
	}

	s.logger.Info().
		Str("player", player.Name).
		Str("choice", string(choice)).
		Str("opponent", string(opponent)).
		Str("outcome", string(outcome)).
		Msg("Game round played")

	publishEvent(ctx, s.publisher, s.logger, models.EventGamePlayed, &models.GamePlayedEvent{
		PlayerID:  player.ID,
		Name:      player.Name,
		Outcome:   outcome,
		Timestamp: time.Now().Unix(),
	})

	return &models.GameRound{
		PlayerChoice:   choice,
		OpponentChoice: opponent,
		Outcome:        outcome,
		Player:         *player,
	}, nil
}
