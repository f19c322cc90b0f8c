package httpd

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/RubachokBoss/study-planner/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	pageHome        = "home.html"
	pageHomework    = "homework.html"
	pageHomeworkOld = "homework_old.html"
	pageRPS         = "rps.html"
	pageRandom      = "random.html"
)

// errPartialWrite: заголовки уже отправлены, ответ менять поздно.
var errPartialWrite = errors.New("page partially written")

var pageNames = []string{pageHome, pageHomework, pageHomeworkOld, pageRPS, pageRandom}

var templateFuncs = template.FuncMap{
	"date": func(t time.Time) string { return t.Format(models.DueDateLayout) },
	"when": func(t time.Time) string { return t.Local().Format("Mon Jan 2 15:04") },
}

// Renderer держит по шаблону на страницу, каждый собран вместе с base.html.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(templatesFS, "templates/base.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// Render пишет страницу целиком или ничего: шаблон выполняется в буфер.
func (rd *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	tmpl, ok := rd.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %s: %v", errPartialWrite, name, err)
	}
	return nil
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	if err := h.pages.Render(w, http.StatusOK, name, data); err != nil {
		h.logger.Error().Err(err).Str("page", name).Msg("Failed to render page")
		if !errors.Is(err, errPartialWrite) {
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
	}
}
