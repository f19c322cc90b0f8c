package models

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DueDateLayout - формат поля dueDate в форме.
const DueDateLayout = "2006-01-02"

type Difficulty string

const (
	DifficultyLow    Difficulty = "Low"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

var Difficulties = []Difficulty{DifficultyLow, DifficultyMedium, DifficultyHard}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyLow, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// NormalizeDifficulty приводит "  hard " к "Hard". Значения вне перечисления
// возвращаются как есть и не проходят Valid.
func NormalizeDifficulty(raw string) Difficulty {
	return Difficulty(titleCase(raw))
}

type Assignment struct {
	ID         string     `json:"id" db:"id"`
	Homework   string     `json:"homework" db:"homework"`
	ClassName  string     `json:"class_name" db:"class_name"`
	Professor  string     `json:"professor" db:"professor"`
	DueDate    time.Time  `json:"due_date" db:"due_date"`
	Difficulty Difficulty `json:"difficulty" db:"difficulty"`
	Completed  bool       `json:"completed" db:"completed"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

func titleCase(raw string) string {
	return cases.Title(language.English).String(strings.TrimSpace(raw))
}
