package httpd

import (
	"errors"
	"net/http"

	"github.com/RubachokBoss/study-planner/internal/models"
)

type homeworkOldPage struct {
	Groups   []models.NoteGroup
	Weekdays []models.Weekday
}

// HomeworkOld обслуживает GET и POST /homework-old. Просроченные заметки
// удаляются до любого другого действия, в том числе при простом просмотре.
func (h *Handler) HomeworkOld(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := h.noteService.Sweep(ctx); err != nil {
		h.handleServiceError(w, err)
		return
	}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid form body")
			return
		}

		req := models.AddNoteRequest{
			Day:  r.PostForm.Get("day"),
			Text: r.PostForm.Get("text"),
		}
		_, err := h.noteService.AddNote(ctx, &req)
		switch {
		case err == nil:
		case errors.Is(err, models.ErrMissingField), errors.Is(err, models.ErrInvalidValue):
			h.logger.Debug().Err(err).Msg("Homework note skipped")
		default:
			h.handleServiceError(w, err)
			return
		}

		redirect(w, r, "/homework-old")
		return
	}

	groups, err := h.noteService.GroupedNotes(ctx)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.render(w, pageHomeworkOld, homeworkOldPage{
		Groups:   groups,
		Weekdays: models.Weekdays,
	})
}
