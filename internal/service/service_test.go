package service

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/study-planner/internal/config"
	"github.com/RubachokBoss/study-planner/internal/repository"
	"github.com/RubachokBoss/study-planner/internal/service/integration"
	"github.com/RubachokBoss/study-planner/internal/testutil"
)

type fixture struct {
	assignments repository.AssignmentRepository
	slots       repository.TimeSlotRepository
	notes       repository.NoteRepository
	players     repository.PlayerRepository
	events      *integration.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewSQLiteDB(t)
	log := zerolog.Nop()

	return &fixture{
		assignments: repository.NewAssignmentRepository(db, config.DriverSQLite, log),
		slots:       repository.NewTimeSlotRepository(db, config.DriverSQLite, log),
		notes:       repository.NewNoteRepository(db, config.DriverSQLite, log),
		players:     repository.NewPlayerRepository(db, config.DriverSQLite, log),
		events:      &integration.Recorder{},
	}
}
