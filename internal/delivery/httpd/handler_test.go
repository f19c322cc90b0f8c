package httpd

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/study-planner/internal/config"
	"github.com/RubachokBoss/study-planner/internal/models"
	"github.com/RubachokBoss/study-planner/internal/repository"
	"github.com/RubachokBoss/study-planner/internal/service"
	"github.com/RubachokBoss/study-planner/internal/service/integration"
	"github.com/RubachokBoss/study-planner/internal/testutil"
)

type testServer struct {
	router      http.Handler
	assignments repository.AssignmentRepository
	slots       repository.TimeSlotRepository
	notes       repository.NoteRepository
	players     repository.PlayerRepository
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func newTestServer(t *testing.T, pinger Pinger) *testServer {
	t.Helper()

	db := testutil.NewSQLiteDB(t)
	log := zerolog.Nop()
	publisher := &integration.Recorder{}

	ts := &testServer{
		assignments: repository.NewAssignmentRepository(db, config.DriverSQLite, log),
		slots:       repository.NewTimeSlotRepository(db, config.DriverSQLite, log),
		notes:       repository.NewNoteRepository(db, config.DriverSQLite, log),
		players:     repository.NewPlayerRepository(db, config.DriverSQLite, log),
	}
	if pinger == nil {
		pinger = repository.NewSQLRepository(db, config.DriverSQLite, log)
	}

	pages, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	handler := NewHandler(
		service.NewAssignmentService(ts.assignments, ts.slots, publisher, log),
		service.NewTimeSlotService(ts.slots, log),
		service.NewNoteService(ts.notes, service.DefaultNoteRetention, nil, log),
		service.NewGameService(ts.players, publisher, func() models.Choice { return models.Scissors }, log),
		pinger,
		pages,
		log,
	)

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	ts.router = router

	return ts
}

func (ts *testServer) do(t *testing.T, method, target string, body string, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) postForm(t *testing.T, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	return ts.do(t, http.MethodPost, target, form.Encode(), "application/x-www-form-urlencoded")
}

func assignmentForm(difficulty string) url.Values {
	return url.Values{
		"homework":   {"Essay draft"},
		"hwClass":    {"English"},
		"professor":  {"Prof. Lind"},
		"dueDate":    {"2026-11-05"},
		"difficulty": {difficulty},
	}
}

func TestStaticPages(t *testing.T) {
	ts := newTestServer(t, nil)

	for _, path := range []string{"/", "/random", "/homework", "/homework-old", "/rps"} {
		rec := ts.do(t, http.MethodGet, path, "", "")
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d", path, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("GET %s content type = %q", path, ct)
		}
	}
}

func TestAddAssignment(t *testing.T) {
	ts := newTestServer(t, nil)
	ctx := context.Background()

	rec := ts.postForm(t, "/add_assignment", assignmentForm("hard"))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/homework" {
		t.Fatalf("add = %d %q", rec.Code, rec.Header().Get("Location"))
	}

	missing := assignmentForm("Low")
	missing.Del("hwClass")
	rec = ts.postForm(t, "/add_assignment", missing)
	if rec.Code != http.StatusFound {
		t.Errorf("missing field should redirect, got %d", rec.Code)
	}

	rec = ts.postForm(t, "/add_assignment", assignmentForm("Impossible"))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad difficulty = %d, want 400", rec.Code)
	}

	badDate := assignmentForm("Low")
	badDate.Set("dueDate", "next friday")
	rec = ts.postForm(t, "/add_assignment", badDate)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("malformed date = %d, want 500", rec.Code)
	}

	all, err := ts.assignments.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 1 || all[0].Difficulty != models.DifficultyHard {
		t.Fatalf("unexpected assignments %+v", all)
	}
}

func TestToggleAndDeleteAssignment(t *testing.T) {
	ts := newTestServer(t, nil)
	ctx := context.Background()

	ts.postForm(t, "/add_assignment", assignmentForm("Medium"))
	all, err := ts.assignments.GetAll(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("GetAll = %d, %v", len(all), err)
	}
	id := all[0].ID

	rec := ts.do(t, http.MethodPost, "/toggle-completion/"+id, "", "")
	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Errorf("toggle = %d body %q", rec.Code, rec.Body.String())
	}
	got, _ := ts.assignments.GetByID(ctx, id)
	if !got.Completed {
		t.Error("assignment not completed after toggle")
	}

	if rec := ts.do(t, http.MethodPost, "/toggle-completion/unknown", "", ""); rec.Code != http.StatusNotFound {
		t.Errorf("toggle unknown = %d, want 404", rec.Code)
	}

	rec = ts.do(t, http.MethodPost, "/delete-assignment/"+id, "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete = %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body["success"] != true {
		t.Errorf("delete body = %s (%v)", rec.Body.String(), err)
	}

	if rec := ts.do(t, http.MethodPost, "/delete-assignment/"+id, "", ""); rec.Code != http.StatusNotFound {
		t.Errorf("second delete = %d, want 404", rec.Code)
	}
}

func TestHomeworkShowsAlert(t *testing.T) {
	ts := newTestServer(t, nil)

	for i := 0; i < 3; i++ {
		ts.postForm(t, "/add_assignment", assignmentForm("Hard"))
	}
	rec := ts.do(t, http.MethodGet, "/homework", "", "")
	if strings.Contains(rec.Body.String(), `role="alert"`) {
		t.Fatal("three hard assignments should not raise the alert")
	}

	ts.postForm(t, "/add_assignment", assignmentForm("Hard"))
	rec = ts.do(t, http.MethodGet, "/homework", "", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `role="alert"`) {
		t.Errorf("expected alert on /homework, got %d", rec.Code)
	}
}

func TestTimeSlotRoutes(t *testing.T) {
	ts := newTestServer(t, nil)
	ctx := context.Background()

	rec := ts.do(t, http.MethodPost, "/add_timeslot", "", "")
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/homework" {
		t.Fatalf("add_timeslot = %d %q", rec.Code, rec.Header().Get("Location"))
	}
	slots, err := ts.slots.GetAll(ctx)
	if err != nil || len(slots) != 1 {
		t.Fatalf("slots = %d, %v", len(slots), err)
	}
	id := slots[0].ID

	rec = ts.do(t, http.MethodPost, "/update-timeslot/"+id, `{"monday":"Math","row":3}`, "application/json")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("update = %d %s", rec.Code, rec.Body.String())
	}
	got, _ := ts.slots.GetByID(ctx, id)
	if got.Monday != "Math" || got.TimeLabel != "" {
		t.Errorf("unexpected slot %+v", got)
	}

	rec = ts.do(t, http.MethodPost, "/update-timeslot/"+id, `{"tuesday":"Physics","row":3,"meta":{"a":[1]}}`, "application/json")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("update with extra keys = %d %s", rec.Code, rec.Body.String())
	}
	got, _ = ts.slots.GetByID(ctx, id)
	if got.Monday != "Math" || got.Tuesday != "Physics" {
		t.Errorf("extra keys: unexpected slot %+v", got)
	}
	if page := ts.do(t, http.MethodGet, "/homework", "", "").Body.String(); !strings.Contains(page, `name="tuesday" value="Physics"`) {
		t.Error("timetable cell not rendered")
	}

	rec = ts.do(t, http.MethodPost, "/update-timeslot/"+id, `{"time":830,"monday":null}`, "application/json")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("update with scalars = %d %s", rec.Code, rec.Body.String())
	}
	got, _ = ts.slots.GetByID(ctx, id)
	if got.TimeLabel != "830" || got.Monday != "" || got.Tuesday != "Physics" {
		t.Errorf("scalars: unexpected slot %+v", got)
	}

	if rec := ts.do(t, http.MethodPost, "/update-timeslot/"+id, `{"monday":["a"]}`, "application/json"); rec.Code != http.StatusBadRequest {
		t.Errorf("array cell = %d, want 400", rec.Code)
	}
	if rec := ts.do(t, http.MethodPost, "/update-timeslot/"+id, `{"monday":`, "application/json"); rec.Code != http.StatusBadRequest {
		t.Errorf("malformed json = %d, want 400", rec.Code)
	}
	if rec := ts.do(t, http.MethodPost, "/update-timeslot/unknown", `{"monday":"x"}`, "application/json"); rec.Code != http.StatusNotFound {
		t.Errorf("update unknown = %d, want 404", rec.Code)
	}

	if rec := ts.do(t, http.MethodPost, "/delete-timeslot/"+id, "", ""); rec.Code != http.StatusNoContent {
		t.Errorf("delete = %d", rec.Code)
	}
	if rec := ts.do(t, http.MethodPost, "/delete-timeslot/"+id, "", ""); rec.Code != http.StatusNotFound {
		t.Errorf("second delete = %d, want 404", rec.Code)
	}
}

func TestHomeworkOld(t *testing.T) {
	ts := newTestServer(t, nil)
	ctx := context.Background()

	rec := ts.postForm(t, "/homework-old", url.Values{"day": {"wednesday"}, "text": {"Bring lab coat"}})
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/homework-old" {
		t.Fatalf("post note = %d %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = ts.postForm(t, "/homework-old", url.Values{"day": {"Wednesday"}})
	if rec.Code != http.StatusFound {
		t.Errorf("note without text = %d, want redirect", rec.Code)
	}

	notes, err := ts.notes.GetAll(ctx)
	if err != nil || len(notes) != 1 || notes[0].Day != models.Wednesday {
		t.Fatalf("notes = %+v, %v", notes, err)
	}

	rec = ts.do(t, http.MethodGet, "/homework-old", "", "")
	if !strings.Contains(rec.Body.String(), "Bring lab coat") {
		t.Error("note missing from listing")
	}
}

func TestRPS(t *testing.T) {
	ts := newTestServer(t, nil)
	ctx := context.Background()

	rec := ts.postForm(t, "/rps", url.Values{"name": {"kai"}, "choice": {"lizard"}})
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/rps" {
		t.Fatalf("invalid choice = %d %q", rec.Code, rec.Header().Get("Location"))
	}
	if n, _ := ts.players.Count(ctx); n != 0 {
		t.Fatalf("invalid round created %d players", n)
	}

	rec = ts.postForm(t, "/rps", url.Values{"name": {"kai"}, "choice": {"Rock"}})
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/rps" {
		t.Fatalf("capitalised choice = %d %q", rec.Code, rec.Header().Get("Location"))
	}
	if n, _ := ts.players.Count(ctx); n != 0 {
		t.Fatalf("capitalised choice created %d players", n)
	}

	rec = ts.postForm(t, "/rps", url.Values{"name": {"kai"}, "choice": {"rock"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("play = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "in 1 games") {
		t.Error("game count missing from page")
	}
	if !strings.Contains(rec.Body.String(), "You Win!") {
		t.Errorf("expected win, body: %s", rec.Body.String())
	}

	player, err := ts.players.GetByName(ctx, "kai")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if player.Wins != 1 {
		t.Errorf("wins = %d, want 1", player.Wins)
	}
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t, nil)
	if rec := ts.do(t, http.MethodGet, "/health", "", ""); rec.Code != http.StatusOK {
		t.Errorf("health = %d", rec.Code)
	}

	down := newTestServer(t, stubPinger{err: errors.New("disk gone")})
	rec := down.do(t, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusServiceUnavailable || !strings.Contains(rec.Body.String(), "degraded") {
		t.Errorf("degraded health = %d %s", rec.Code, rec.Body.String())
	}
}

type failingWriter struct {
	header      http.Header
	statusCalls int
}

func (w *failingWriter) Header() http.Header { return w.header }

func (w *failingWriter) WriteHeader(int) { w.statusCalls++ }

func (w *failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestRenderDoesNotRewriteStatusAfterFailedWrite(t *testing.T) {
	pages, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	h := &Handler{pages: pages, logger: zerolog.Nop()}

	w := &failingWriter{header: http.Header{}}
	h.render(w, pageHome, nil)

	if w.statusCalls != 1 {
		t.Errorf("WriteHeader called %d times, want 1", w.statusCalls)
	}
}
