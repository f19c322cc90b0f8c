package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/study-planner/internal/models"
	"github.com/RubachokBoss/study-planner/internal/repository"
	"github.com/RubachokBoss/study-planner/internal/service/integration"
)

var validate = validator.New()

// validateRequest сводит ошибки validator к ErrMissingField (нет обязательного
// поля) или ErrInvalidValue (значение вне допустимых).
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return fmt.Errorf("%w: %s", models.ErrMissingField, fe.Field())
		}
	}

	fe := verrs[0]
	return fmt.Errorf("%w: %s=%v", models.ErrInvalidValue, fe.Field(), fe.Value())
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id.String(), nil
}

func wrapNotFound(entity, id string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%s %s: %w", entity, id, models.ErrNotFound)
	}
	return fmt.Errorf("%s %s: %w", entity, id, err)
}

func publishEvent(ctx context.Context, publisher integration.EventPublisher, logger zerolog.Logger, routingKey string, event any) {
	if err := publisher.Publish(ctx, routingKey, event); err != nil {
		logger.Warn().Err(err).Str("routing_key", routingKey).Msg("Failed to publish event")
	}
}
