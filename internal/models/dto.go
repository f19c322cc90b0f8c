package models

// Data Transfer Objects

type CreateAssignmentRequest struct {
	Homework   string `validate:"required,max=1000"`
	Class      string `validate:"required,max=255"`
	Professor  string `validate:"required,max=255"`
	DueDate    string `validate:"required"`
	Difficulty string `validate:"required,oneof=Low Medium Hard"`
}

type AddNoteRequest struct {
	Day  string `validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Text string `validate:"required"`
}

type PlayRequest struct {
	Name   string `validate:"required,max=100"`
	Choice string `validate:"required,oneof=rock paper scissors"`
}

// UpdateTimeSlotRequest - тело /update-timeslot/{id}: поле -> значение.
type UpdateTimeSlotRequest map[string]string

type WorkloadAlert struct {
	Message    string `json:"message"`
	OpenHard   int    `json:"open_hard"`
	OpenMedium int    `json:"open_medium"`
}

type HomeworkOverview struct {
	Assignments []Assignment   `json:"assignments"`
	TimeSlots   []TimeSlot     `json:"time_slots"`
	Alert       *WorkloadAlert `json:"alert,omitempty"`
}
