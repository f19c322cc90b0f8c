package models

import "time"

type Choice string

const (
	Rock     Choice = "rock"
	Paper    Choice = "paper"
	Scissors Choice = "scissors"
)

var Choices = []Choice{Rock, Paper, Scissors}

func (c Choice) Valid() bool {
	switch c {
	case Rock, Paper, Scissors:
		return true
	}
	return false
}

// Beats reports whether c wins against other.
func (c Choice) Beats(other Choice) bool {
	switch c {
	case Rock:
		return other == Scissors
	case Scissors:
		return other == Paper
	case Paper:
		return other == Rock
	}
	return false
}

type Outcome string

const (
	OutcomeTie  Outcome = "Tie"
	OutcomeWin  Outcome = "You Win!"
	OutcomeLose Outcome = "You Lose!"
)

type Player struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Wins      int       `json:"wins" db:"wins"`
	Losses    int       `json:"losses" db:"losses"`
	Ties      int       `json:"ties" db:"ties"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (p Player) Games() int {
	return p.Wins + p.Losses + p.Ties
}

type GameRound struct {
	PlayerChoice   Choice  `json:"player_choice"`
	OpponentChoice Choice  `json:"opponent_choice"`
	Outcome        Outcome `json:"outcome"`
	Player         Player  `json:"player"`
}
