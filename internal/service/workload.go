package service

import "github.com/RubachokBoss/study-planner/internal/models"

const (
	MaxOpenHard   = 3
	MaxOpenMedium = 12
)

const workloadAlertMessage = "You have too many hard or medium assignments pending. Finish some before taking on more."

// EvaluateWorkload считает незавершённые Hard и Medium задания и возвращает
// предупреждение, если любого из них больше порога. Без предупреждения - nil.
func EvaluateWorkload(assignments []models.Assignment) *models.WorkloadAlert {
	var hard, medium int
	for _, a := range assignments {
		if a.Completed {
			continue
		}
		switch a.Difficulty {
		case models.DifficultyHard:
			hard++
		case models.DifficultyMedium:
			medium++
		}
	}

	if hard <= MaxOpenHard && medium <= MaxOpenMedium {
		return nil
	}

	return &models.WorkloadAlert{
		Message:    workloadAlertMessage,
		OpenHard:   hard,
		OpenMedium: medium,
	}
}
