package httpd

import "net/http"

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, pageHome, nil)
}

func (h *Handler) Random(w http.ResponseWriter, r *http.Request) {
	h.render(w, pageRandom, nil)
}
