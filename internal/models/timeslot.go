package models

import "time"

// Ключи, которые принимает /update-timeslot/{id}.
const (
	SlotFieldTime      = "time"
	SlotFieldMonday    = "monday"
	SlotFieldTuesday   = "tuesday"
	SlotFieldWednesday = "wednesday"
	SlotFieldThursday  = "thursday"
	SlotFieldFriday    = "friday"
	SlotFieldSaturday  = "saturday"
	SlotFieldSunday    = "sunday"
)

var SlotFields = []string{
	SlotFieldTime,
	SlotFieldMonday,
	SlotFieldTuesday,
	SlotFieldWednesday,
	SlotFieldThursday,
	SlotFieldFriday,
	SlotFieldSaturday,
	SlotFieldSunday,
}

type TimeSlot struct {
	ID        string    `json:"id" db:"id"`
	TimeLabel string    `json:"time" db:"time_label"`
	Monday    string    `json:"monday" db:"monday"`
	Tuesday   string    `json:"tuesday" db:"tuesday"`
	Wednesday string    `json:"wednesday" db:"wednesday"`
	Thursday  string    `json:"thursday" db:"thursday"`
	Friday    string    `json:"friday" db:"friday"`
	Saturday  string    `json:"saturday" db:"saturday"`
	Sunday    string    `json:"sunday" db:"sunday"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SlotCell - одна редактируемая ячейка строки расписания.
type SlotCell struct {
	Field string
	Value string
}

// Cells возвращает ячейки строки в порядке SlotFields: время, затем дни с понедельника.
func (s TimeSlot) Cells() []SlotCell {
	cells := make([]SlotCell, 0, len(SlotFields))
	for _, name := range SlotFields {
		value, _ := s.Field(name)
		cells = append(cells, SlotCell{Field: name, Value: value})
	}
	return cells
}

// Field returns the value stored under one of SlotFields.
func (s TimeSlot) Field(name string) (string, bool) {
	switch name {
	case SlotFieldTime:
		return s.TimeLabel, true
	case SlotFieldMonday:
		return s.Monday, true
	case SlotFieldTuesday:
		return s.Tuesday, true
	case SlotFieldWednesday:
		return s.Wednesday, true
	case SlotFieldThursday:
		return s.Thursday, true
	case SlotFieldFriday:
		return s.Friday, true
	case SlotFieldSaturday:
		return s.Saturday, true
	case SlotFieldSunday:
		return s.Sunday, true
	}
	return "", false
}
