package httpd

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/study-planner/internal/service"
)

// Pinger проверяет доступность хранилища для /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	assignmentService service.AssignmentService
	timeSlotService   service.TimeSlotService
	noteService       service.NoteService
	gameService       service.GameService
	db                Pinger
	pages             *Renderer
	logger            zerolog.Logger
}

func NewHandler(
	assignmentService service.AssignmentService,
	timeSlotService service.TimeSlotService,
	noteService service.NoteService,
	gameService service.GameService,
	db Pinger,
	pages *Renderer,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		assignmentService: assignmentService,
		timeSlotService:   timeSlotService,
		noteService:       noteService,
		gameService:       gameService,
		db:                db,
		pages:             pages,
		logger:            logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.HealthCheck)

	router.Get("/", h.Home)
	router.Get("/random", h.Random)

	router.Get("/homework", h.Homework)
	router.Post("/add_assignment", h.AddAssignment)
	router.Post("/toggle-completion/{id}", h.ToggleCompletion)
	router.Post("/delete-assignment/{id}", h.DeleteAssignment)

	router.Post("/add_timeslot", h.AddTimeSlot)
	router.Post("/update-timeslot/{id}", h.UpdateTimeSlot)
	router.Post("/delete-timeslot/{id}", h.DeleteTimeSlot)

	router.Get("/homework-old", h.HomeworkOld)
	router.Post("/homework-old", h.HomeworkOld)

	router.Get("/rps", h.RPS)
	router.Post("/rps", h.RPS)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "study-planner",
		"timestamp": time.Now().UTC(),
	}

	if err := h.db.Ping(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("Database ping failed")
		status = http.StatusServiceUnavailable
		response["status"] = "degraded"
		response["database"] = err.Error()
	}

	writeJSON(w, status, response)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error":   http.StatusText(status),
		"message": message,
	})
}

func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusFound)
}
