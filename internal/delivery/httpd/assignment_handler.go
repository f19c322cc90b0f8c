package httpd

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RubachokBoss/study-planner/internal/models"
)

type homeworkPage struct {
	*models.HomeworkOverview
	Difficulties []models.Difficulty
	Weekdays     []models.Weekday
}

func (h *Handler) Homework(w http.ResponseWriter, r *http.Request) {
	overview, err := h.assignmentService.Overview(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to load homework overview")
		writeError(w, http.StatusInternalServerError, "Failed to load homework")
		return
	}

	h.render(w, pageHomework, homeworkPage{
		HomeworkOverview: overview,
		Difficulties:     models.Difficulties,
		Weekdays:         models.Weekdays,
	})
}

func (h *Handler) AddAssignment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form body")
		return
	}

	req := models.CreateAssignmentRequest{
		Homework:   r.PostForm.Get("homework"),
		Class:      r.PostForm.Get("hwClass"),
		Professor:  r.PostForm.Get("professor"),
		DueDate:    r.PostForm.Get("dueDate"),
		Difficulty: r.PostForm.Get("difficulty"),
	}

	_, err := h.assignmentService.CreateAssignment(r.Context(), &req)
	switch {
	case err == nil, errors.Is(err, models.ErrMissingField):
		// незаполненная форма молча пропускается
		redirect(w, r, "/homework")
	default:
		h.handleServiceError(w, err)
	}
}

func (h *Handler) ToggleCompletion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.assignmentService.ToggleCompletion(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeNoContent(w)
}

func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.assignmentService.DeleteAssignment(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidValue):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error().Err(err).Msg("Service error")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
