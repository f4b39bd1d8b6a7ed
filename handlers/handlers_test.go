package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gymdesk/gymapi"
	"gymdesk/handlers"
	"gymdesk/routes"
	"gymdesk/schedule"
	"gymdesk/session"

	"github.com/gin-gonic/gin"
)

// fakeRemote is the gym API the dashboard proxies during the tests.
type fakeRemote struct {
	mux        *http.ServeMux
	token      string
	usersCalls int
	rejectAll  bool
}

func newFakeRemote() *fakeRemote {
	f := &fakeRemote{mux: http.NewServeMux(), token: "tok-1"}

	f.mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token": f.token,
			"user": map[string]any{
				"id": 7, "name": "Dana", "lastname": "Ruiz", "email": body.Email,
				"gym":  map[string]any{"id": 3, "name": "Iron Works"},
				"role": map[string]any{"id": 2, "name": "Admin"},
			},
		})
	})

	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if f.rejectAll || r.Header.Get("Authorization") != "Bearer "+f.token {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"message": "Token expired"})
				return
			}
			next(w, r)
		}
	}

	f.mux.HandleFunc("/users/gym/3/3", authed(func(w http.ResponseWriter, r *http.Request) {
		f.usersCalls++
		json.NewEncoder(w).Encode(map[string]any{
			"users": []map[string]any{{"id": 21, "name": "Leo", "lastname": "Mora"}},
			"total": 1, "page": 1, "limit": 20,
		})
	}))

	f.mux.HandleFunc("/classes/onWeek/gym/3", authed(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("offset") == "-1" {
			// Empty weeks come back with a null classes array.
			w.Write([]byte(`{"classes": null, "week_start": "2024-06-03", "week_end": "2024-06-09"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"classes": []map[string]any{
				{
					"id": 1, "date": "2024-06-10", "time": "9:00:00", "day_of_week": "monday",
					"capacity": 10, "enrolled": 4, "vacancy": 6,
					"discipline": map[string]any{"id": 5, "name": "Yoga"},
				},
				{
					"id": 2, "date": "2024-06-12", "time": "18:30:00", "day_of_week": "Wednesday",
					"capacity": 12, "enrolled": 12, "vacancy": 0,
					"discipline": map[string]any{"id": 6, "name": "Crossfit"},
				},
				{
					"id": 3, "date": "2024-06-12", "time": "7:15:00", "day_of_week": "Wednesday",
					"capacity": 8, "enrolled": 1, "vacancy": 7,
					"discipline": map[string]any{"id": 5, "name": "Yoga"},
				},
			},
			"week_start": "2024-06-10", "week_end": "2024-06-16",
		})
	}))

	return f
}

func newDashboard(t *testing.T, remote *fakeRemote) (*gin.Engine, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(remote.mux)
	t.Cleanup(srv.Close)

	api := gymapi.NewClient(srv.URL)
	sessions := session.NewManager(api, session.NewMemoryTokenStore(), nil)
	weeks := schedule.NewCalculator(func() time.Time {
		return time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)
	})

	r := gin.New()
	routes.RegisterRoutes(r, handlers.NewViewSet(api, sessions, weeks), sessions)
	return r, sessions
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		json.Unmarshal(w.Body.Bytes(), &out)
	}
	return w, out
}

func login(t *testing.T, r *gin.Engine) {
	t.Helper()
	w, _ := doJSON(t, r, http.MethodPost, "/login", `{"email":"dana@gym.test","password":"secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestLoginRendersProfileAndRedirect(t *testing.T) {
	r, sessions := newDashboard(t, newFakeRemote())

	w, out := doJSON(t, r, http.MethodPost, "/login", `{"email":"dana@gym.test","password":"secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if out["redirect"] != "/dashboard" {
		t.Errorf("redirect = %v, want /dashboard", out["redirect"])
	}
	if !sessions.Authenticated() {
		t.Error("session not established by login")
	}
}

func TestLoginFailureSurfacesServerMessage(t *testing.T) {
	r, sessions := newDashboard(t, newFakeRemote())

	w, out := doJSON(t, r, http.MethodPost, "/login", `{"email":"dana@gym.test","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if out["message"] != "Invalid credentials" {
		t.Errorf("message = %v, want the server's message verbatim", out["message"])
	}
	if sessions.Authenticated() {
		t.Error("failed login established a session")
	}
}

func TestGuardedRouteRedirectsWhenLoggedOut(t *testing.T) {
	r, _ := newDashboard(t, newFakeRemote())

	w, _ := doJSON(t, r, http.MethodGet, "/users", "")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}

func TestListUsersProxiesThePagedListing(t *testing.T) {
	remote := newFakeRemote()
	r, _ := newDashboard(t, remote)
	login(t, r)

	w, out := doJSON(t, r, http.MethodGet, "/users?page=1&limit=20", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if out["total"] != float64(1) {
		t.Errorf("total = %v, want 1", out["total"])
	}
	users, ok := out["users"].([]any)
	if !ok || len(users) != 1 {
		t.Fatalf("users = %v, want one entry", out["users"])
	}
}

func TestRemoteAuthRejectionInvalidatesSession(t *testing.T) {
	remote := newFakeRemote()
	r, sessions := newDashboard(t, remote)
	login(t, r)

	remote.rejectAll = true

	w, out := doJSON(t, r, http.MethodGet, "/users", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if msg, _ := out["message"].(string); !strings.Contains(msg, "session has expired") {
		t.Errorf("message = %v, want the session-expired message", out["message"])
	}
	if sessions.Authenticated() {
		t.Error("session survived a remote 401")
	}

	// The very next navigation hits the guard and redirects.
	w, _ = doJSON(t, r, http.MethodGet, "/users", "")
	if w.Code != http.StatusSeeOther {
		t.Errorf("followup status = %d, want redirect to login", w.Code)
	}
}

func TestAgendaGroupsClassesByDay(t *testing.T) {
	r, _ := newDashboard(t, newFakeRemote())
	login(t, r)

	w, out := doJSON(t, r, http.MethodGet, "/agenda", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	days, ok := out["days"].([]any)
	if !ok || len(days) != 7 {
		t.Fatalf("days = %v, want seven columns", out["days"])
	}

	monday := days[0].(map[string]any)
	if monday["label"] != "Monday" || monday["date"] != "2024-06-10" {
		t.Errorf("monday column = %v", monday)
	}
	if got := len(monday["classes"].([]any)); got != 1 {
		t.Errorf("monday has %d classes, want 1 (case-insensitive day match)", got)
	}

	wednesday := days[2].(map[string]any)
	classes := wednesday["classes"].([]any)
	if len(classes) != 2 {
		t.Fatalf("wednesday has %d classes, want 2", len(classes))
	}
	first := classes[0].(map[string]any)
	if first["time"] != "18:30" && first["time"] != "07:15" {
		t.Errorf("class time = %v, want an HH:MM label", first["time"])
	}

	tuesday := days[1].(map[string]any)
	if got := len(tuesday["classes"].([]any)); got != 0 {
		t.Errorf("tuesday has %d classes, want an empty column", got)
	}

	if title, _ := out["title"].(string); !strings.Contains(title, "Week of Monday, 10 June") {
		t.Errorf("title = %q", title)
	}
}

func TestAgendaToleratesNullClasses(t *testing.T) {
	r, _ := newDashboard(t, newFakeRemote())
	login(t, r)

	w, out := doJSON(t, r, http.MethodGet, "/agenda?offset=-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if out["offset"] != float64(-1) {
		t.Errorf("offset = %v, want -1", out["offset"])
	}
	days := out["days"].([]any)
	for i, d := range days {
		col := d.(map[string]any)
		if got := len(col["classes"].([]any)); got != 0 {
			t.Errorf("day %d has %d classes, want 0", i, got)
		}
	}
}
