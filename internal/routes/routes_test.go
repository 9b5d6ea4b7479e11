package routes_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/config"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/routes"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/services"
)

var fixedNow = time.UnixMilli(1700000000123)

type testEnv struct {
	app  *fiber.App
	cfg  *config.Config
	auth *services.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		AppEnv:            "test",
		JWTSecret:         "test-secret",
		SessionTTL:        time.Hour,
		SessionCookie:     "sifter_session",
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
	}
	auth, err := services.NewAuthService(cfg)
	require.NoError(t, err)
	provider := services.NewMockDataProvider(nil).WithClock(func() time.Time { return fixedNow })

	registry := prometheus.NewRegistry()
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Use(middleware.NewMetrics("sifter_test", registry).Handler())
	routes.Setup(app, cfg, auth, registry, routes.Handlers{
		Auth:   handlers.NewAuthHandler(auth, cfg),
		Pages:  handlers.NewPageHandler(provider),
		Data:   handlers.NewDataHandler(provider),
		Health: handlers.NewHealthHandler(nil),
	})

	return &testEnv{app: app, cfg: cfg, auth: auth}
}

func (e *testEnv) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func (e *testEnv) login(t *testing.T) *http.Cookie {
	t.Helper()
	resp, _ := e.do(t, loginRequest("admin", "s3cret"))
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == e.cfg.SessionCookie && c.Value != "" {
			return c
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}

func loginRequest(username, password string) *http.Request {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func withCookie(req *http.Request, c *http.Cookie) *http.Request {
	req.AddCookie(c)
	return req
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestEmergencyLogout_WithoutSession(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, httptest.NewRequest(http.MethodGet, "/emergency-logout", nil))

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Emergency Logout")
	assert.NotContains(t, body, `class="appbar"`)
	assert.NotContains(t, body, `nav class="menu"`)
	assert.Contains(t, resp.Header.Get("Set-Cookie"), "sifter_session=;")
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
}

func TestEmergencyLogout_GarbageCookie(t *testing.T) {
	env := newTestEnv(t)
	req := withCookie(httptest.NewRequest(http.MethodGet, "/emergency-logout", nil),
		&http.Cookie{Name: "sifter_session", Value: "not-a-token"})

	resp, body := env.do(t, req)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Emergency Logout")
	assert.Contains(t, resp.Header.Get("Set-Cookie"), "sifter_session=;")
}

func TestEmergencyLogout_RevokesSession(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	resp, body := env.do(t, withCookie(httptest.NewRequest(http.MethodGet, "/emergency-logout", nil), cookie))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotContains(t, body, "Sifter Admin Dashboard")

	resp, _ = env.do(t, withCookie(httptest.NewRequest(http.MethodGet, "/", nil), cookie))
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, 1, env.auth.RevokedCount())
}

func TestPages_RedirectWithoutSession(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/", "/users", "/chatRooms", "/reports"} {
		resp, _ := env.do(t, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode, path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), path)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, loginRequest("admin", "wrong"))

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "Invalid username or password")
	assert.Empty(t, resp.Header.Get("Set-Cookie"))
}

func TestLogin_SetsHTTPOnlyCookie(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.do(t, loginRequest("admin", "s3cret"))

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestDashboard(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	resp, body := env.do(t, withCookie(httptest.NewRequest(http.MethodGet, "/", nil), cookie))

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "<h6>Sifter Admin Panel</h6>")
	assert.Contains(t, body, "Sifter Admin Dashboard")
	assert.Contains(t, body, "1,247")
	assert.Contains(t, body, "Quick Actions")
}

func TestResourcePages(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	tests := []struct {
		path string
		want []string
	}{
		{"/users", []string{"john_doe", "jane_smith", "mailto:john@example.com"}},
		{"/chatRooms", []string{"Coffee Shop", "Study Group", "SF Bay Area"}},
		{"/reports", []string{"inappropriate", "spam", "resolved"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := env.do(t, withCookie(httptest.NewRequest(http.MethodGet, tt.path, nil), cookie))
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
			for _, want := range tt.want {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestResourcePage_Unknown(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	resp, body := env.do(t, withCookie(httptest.NewRequest(http.MethodGet, "/widgets", nil), cookie))

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "<h6>Sifter Admin Panel</h6>")
	assert.Contains(t, body, "<title>Not Found | Sifter Admin Panel</title>")
	assert.Contains(t, body, "There is no page for &quot;widgets&quot;.")
	assert.NotContains(t, body, `"error":true`)
}

func TestLogout_RevokesAndRedirects(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	resp, _ := env.do(t, withCookie(httptest.NewRequest(http.MethodPost, "/logout", nil), cookie))
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.Contains(t, resp.Header.Get("Set-Cookie"), "sifter_session=;")

	resp, _ = env.do(t, withCookie(httptest.NewRequest(http.MethodGet, "/users", nil), cookie))
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
}

func TestAPI_RequiresSession(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":true,"message":"Unauthorized: invalid or expired session"}`, body)
}

func TestAPI_BearerToken(t *testing.T) {
	env := newTestEnv(t)
	token, _, err := env.auth.Login("admin", "s3cret")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, body := env.do(t, req)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "john_doe")
}

func TestAPI_Operations(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	tests := []struct {
		name   string
		req    *http.Request
		status int
		want   string
	}{
		{
			name:   "get list",
			req:    httptest.NewRequest(http.MethodGet, "/api/chatRooms", nil),
			status: fiber.StatusOK,
			want: `{"data":[
				{"id":"1","name":"Coffee Shop","creator":"john_doe","memberCount":5,"location":"SF Bay Area"},
				{"id":"2","name":"Study Group","creator":"jane_smith","memberCount":8,"location":"NYC"}
			],"total":2}`,
		},
		{
			name:   "get list unknown resource",
			req:    httptest.NewRequest(http.MethodGet, "/api/widgets", nil),
			status: fiber.StatusOK,
			want:   `{"data":[],"total":0}`,
		},
		{
			name:   "get one",
			req:    httptest.NewRequest(http.MethodGet, "/api/users/42", nil),
			status: fiber.StatusOK,
			want:   `{"data":{"id":"42","name":"Mock users"}}`,
		},
		{
			name:   "get many",
			req:    httptest.NewRequest(http.MethodGet, "/api/reports/many?ids=1,2", nil),
			status: fiber.StatusOK,
			want:   `{"data":[{"id":"1","name":"Mock reports 1"},{"id":"2","name":"Mock reports 2"}]}`,
		},
		{
			name:   "get many reference",
			req:    httptest.NewRequest(http.MethodGet, "/api/reports/reference?target=userId&id=1", nil),
			status: fiber.StatusOK,
			want:   `{"data":[],"total":0}`,
		},
		{
			name:   "create",
			req:    jsonRequest(http.MethodPost, "/api/users", `{"username":"new_user"}`),
			status: fiber.StatusCreated,
			want:   `{"data":{"id":"1700000000123","username":"new_user"}}`,
		},
		{
			name:   "update",
			req:    jsonRequest(http.MethodPut, "/api/users/7", `{"id":"ignored","status":"banned"}`),
			status: fiber.StatusOK,
			want:   `{"data":{"id":"7","status":"banned"}}`,
		},
		{
			name:   "update many",
			req:    jsonRequest(http.MethodPut, "/api/users", `{"ids":["1","2"],"data":{"status":"active"}}`),
			status: fiber.StatusOK,
			want:   `{"data":["1","2"]}`,
		},
		{
			name:   "delete",
			req:    httptest.NewRequest(http.MethodDelete, "/api/reports/9", nil),
			status: fiber.StatusOK,
			want:   `{"data":{"id":"9"}}`,
		},
		{
			name:   "delete many body",
			req:    jsonRequest(http.MethodDelete, "/api/reports", `{"ids":["3","4"]}`),
			status: fiber.StatusOK,
			want:   `{"data":["3","4"]}`,
		},
		{
			name:   "delete many query",
			req:    httptest.NewRequest(http.MethodDelete, "/api/reports?ids=5,6", nil),
			status: fiber.StatusOK,
			want:   `{"data":["5","6"]}`,
		},
		{
			name:   "malformed json",
			req:    jsonRequest(http.MethodPost, "/api/users", `{"username":`),
			status: fiber.StatusBadRequest,
			want:   `{"error":true,"message":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := env.do(t, withCookie(tt.req, cookie))
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.JSONEq(t, tt.want, body)
		})
	}
}

func TestAPI_CreateDoesNotPersist(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	resp, _ := env.do(t, withCookie(jsonRequest(http.MethodPost, "/api/users", `{"username":"ghost"}`), cookie))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	_, body := env.do(t, withCookie(httptest.NewRequest(http.MethodGet, "/api/users", nil), cookie))

	var list struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	assert.Equal(t, 2, list.Total)
	assert.NotContains(t, body, "ghost")
}

func TestHealth_Public(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var health map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &health))
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, float64(3), health["resource_count"])
	assert.NotContains(t, health, "db")
}

func TestMetrics_Exposed(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, httptest.NewRequest(http.MethodGet, "/login", nil))

	resp, body := env.do(t, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `sifter_test_http_requests_total{code="200",method="GET",route="/login"} 1`)
}
