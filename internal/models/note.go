package models

import "time"

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (d Weekday) Valid() bool {
	for _, w := range Weekdays {
		if d == w {
			return true
		}
	}
	return false
}

func NormalizeWeekday(raw string) Weekday {
	return Weekday(titleCase(raw))
}

type HomeworkNote struct {
	ID        string    `json:"id" db:"id"`
	Day       Weekday   `json:"day" db:"day"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NoteGroup - заметки одного дня, новые сверху.
type NoteGroup struct {
	Day   Weekday
	Notes []HomeworkNote
}
