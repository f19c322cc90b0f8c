package httpd

import (
	"errors"
	"net/http"

	"github.com/RubachokBoss/study-planner/internal/models"
)

type rpsPage struct {
	Round   *models.GameRound
	Choices []models.Choice
}

func (h *Handler) RPS(w http.ResponseWriter, r *http.Request) {
	page := rpsPage{Choices: models.Choices}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			redirect(w, r, "/rps")
			return
		}

		req := models.PlayRequest{
			Name:   r.PostForm.Get("name"),
			Choice: r.PostForm.Get("choice"),
		}
		round, err := h.gameService.Play(r.Context(), &req)
		if errors.Is(err, models.ErrInvalidInput) {
			redirect(w, r, "/rps")
			return
		}
		if err != nil {
			h.handleServiceError(w, err)
			return
		}
		page.Round = round
	}

	h.render(w, pageRPS, page)
}
