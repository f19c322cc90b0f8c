package httpd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/RubachokBoss/study-planner/internal/models"
)

func (h *Handler) AddTimeSlot(w http.ResponseWriter, r *http.Request) {
	if _, err := h.timeSlotService.AddTimeSlot(r.Context()); err != nil {
		h.handleServiceError(w, err)
		return
	}

	redirect(w, r, "/homework")
}

func (h *Handler) UpdateTimeSlot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, err := decodeTimeSlotUpdate(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.timeSlotService.UpdateTimeSlot(r.Context(), id, req); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeNoContent(w)
}

func (h *Handler) DeleteTimeSlot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.timeSlotService.DeleteTimeSlot(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeNoContent(w)
}

// decodeTimeSlotUpdate оставляет только известные поля; прочие ключи
// отбрасываются независимо от типа значения.
func decodeTimeSlotUpdate(body io.Reader) (models.UpdateTimeSlotRequest, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return nil, err
	}

	req := make(models.UpdateTimeSlotRequest, len(raw))
	for key, value := range raw {
		if !slices.Contains(models.SlotFields, key) {
			continue
		}
		text, err := cellText(value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		req[key] = text
	}
	return req, nil
}

func cellText(value json.RawMessage) (string, error) {
	value = bytes.TrimSpace(value)
	switch {
	case bytes.Equal(value, []byte("null")):
		return "", nil
	case len(value) > 0 && value[0] == '"':
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return "", err
		}
		return s, nil
	case len(value) > 0 && (value[0] == '{' || value[0] == '['):
		return "", fmt.Errorf("expected a scalar, got %s", value)
	default:
		return string(value), nil
	}
}
