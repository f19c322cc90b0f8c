package models

const (
	EventAssignmentCreated = "assignment.created"
	EventAssignmentToggled = "assignment.toggled"
	EventAssignmentDeleted = "assignment.deleted"
	EventGamePlayed        = "game.played"
)

type AssignmentEvent struct {
	AssignmentID string     `json:"assignment_id"`
	Difficulty   Difficulty `json:"difficulty,omitempty"`
	Completed    bool       `json:"completed"`
	Timestamp    int64      `json:"timestamp"`
}

type GamePlayedEvent struct {
	PlayerID  string  `json:"player_id"`
	Name      string  `json:"name"`
	Outcome   Outcome `json:"outcome"`
	Timestamp int64   `json:"timestamp"`
}
