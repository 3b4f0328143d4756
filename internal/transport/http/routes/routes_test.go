package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zaptest"

	"github.com/spyojana/subsidy-portal/internal/core/domain"
	"github.com/spyojana/subsidy-portal/internal/infra/config"
	"github.com/spyojana/subsidy-portal/internal/infra/security"
	"github.com/spyojana/subsidy-portal/internal/repository"
	httproutes "github.com/spyojana/subsidy-portal/internal/transport/http/routes"
	"github.com/spyojana/subsidy-portal/internal/usecase"
)

type memUserRepo struct {
	users map[string]domain.User
}

func (r *memUserRepo) Create(_ context.Context, user domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if user, ok := r.users[id]; ok {
		u := user
		return &u, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	user, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	user.PasswordHash = hash
	r.users[id] = user
	return nil
}

func (r *memUserRepo) UpdateEmail(_ context.Context, id, email string) error {
	user, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	user.Email = email
	r.users[id] = user
	return nil
}

type memApplicationRepo struct {
	apps map[string]domain.Application
}

func (r *memApplicationRepo) Create(_ context.Context, app domain.Application) error {
	r.apps[app.ID] = app
	return nil
}

func (r *memApplicationRepo) GetByID(_ context.Context, id string) (*domain.Application, error) {
	if app, ok := r.apps[id]; ok {
		a := app
		return &a, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memApplicationRepo) List(_ context.Context) ([]domain.Application, error) {
	apps := make([]domain.Application, 0, len(r.apps))
	for _, app := range r.apps {
		apps = append(apps, app)
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].CreatedAt.After(apps[j].CreatedAt) })
	return apps, nil
}

func (r *memApplicationRepo) UpdateStatus(_ context.Context, id string, status domain.Status) (*domain.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	app.Status = status
	r.apps[id] = app
	return &app, nil
}

type memPumpRepo struct {
	apps map[string]domain.PumpApplication
}

func (r *memPumpRepo) Create(_ context.Context, app domain.PumpApplication) error {
	r.apps[app.ID] = app
	return nil
}

func (r *memPumpRepo) GetByID(_ context.Context, id string) (*domain.PumpApplication, error) {
	if app, ok := r.apps[id]; ok {
		a := app
		return &a, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memPumpRepo) List(_ context.Context) ([]domain.PumpApplication, error) {
	apps := make([]domain.PumpApplication, 0, len(r.apps))
	for _, app := range r.apps {
		apps = append(apps, app)
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].CreatedAt.After(apps[j].CreatedAt) })
	return apps, nil
}

func (r *memPumpRepo) UpdateStatus(_ context.Context, id string, status domain.Status) (*domain.PumpApplication, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	app.Status = status
	r.apps[id] = app
	return &app, nil
}

type testEnv struct {
	router *gin.Engine
	users  *memUserRepo
	admin  domain.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zaptest.NewLogger(t)

	hash, err := security.HashPassword("admin123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	admin := domain.User{
		ID:           "admin-1",
		Email:        "admin@spyojana.com",
		PasswordHash: hash,
		Name:         "Admin User",
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}

	users := &memUserRepo{users: map[string]domain.User{admin.ID: admin}}
	apps := &memApplicationRepo{apps: make(map[string]domain.Application)}
	pumps := &memPumpRepo{apps: make(map[string]domain.PumpApplication)}

	tokens, err := security.NewTokenManager("routes-test-secret", "subsidy-portal", time.Hour)
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}

	authSvc, err := usecase.NewAuthService(users, tokens, log)
	if err != nil {
		t.Fatalf("auth service: %v", err)
	}
	subSvc, err := usecase.NewSubmissionService(apps, pumps, log)
	if err != nil {
		t.Fatalf("submission service: %v", err)
	}
	setSvc, err := usecase.NewSettingsService(users, log)
	if err != nil {
		t.Fatalf("settings service: %v", err)
	}

	cfg := &config.AppConfig{
		App:  config.AppSettings{Env: "test"},
		CORS: config.CORSSettings{AllowedOrigins: []string{"*"}},
	}

	router := httproutes.Register(httproutes.Dependencies{
		Config: cfg,
		Logger: log,
		Services: httproutes.ServiceSet{
			Auth:        authSvc,
			Submissions: subSvc,
			Settings:    setSvc,
		},
	})

	return &testEnv{router: router, users: users, admin: admin}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "admin@spyojana.com",
		"password": "admin123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("login returned empty token")
	}
	return resp.Token
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return resp.Error
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode health response: %v", err)
	}
	if resp.Status != "OK" {
		t.Fatalf("expected status OK, got %q", resp.Status)
	}
	if resp.Timestamp.IsZero() {
		t.Fatal("expected non-zero timestamp")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/metrics", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "admin@spyojana.com",
		"password": "nope",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if msg := decodeError(t, w); msg != "Invalid email or password" {
		t.Fatalf("unexpected error message %q", msg)
	}
}

func TestLoginRejectsMissingFields(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "admin@spyojana.com"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if msg := decodeError(t, w); msg != "Email and password are required" {
		t.Fatalf("unexpected error message %q", msg)
	}
}

func TestAdminEndpointsRequireToken(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/applications"},
		{http.MethodGet, "/api/applications/some-id"},
		{http.MethodPatch, "/api/applications/some-id/status"},
		{http.MethodGet, "/api/pump-applications"},
		{http.MethodGet, "/api/pump-applications/some-id"},
		{http.MethodPatch, "/api/pump-applications/some-id/status"},
		{http.MethodPut, "/api/settings/password"},
		{http.MethodPut, "/api/settings/email"},
	}

	for _, tc := range cases {
		w := env.do(t, tc.method, tc.path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 without token, got %d", tc.method, tc.path, w.Code)
		}
	}
}

func TestAdminEndpointsRejectGarbageToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/applications", "not-a-jwt", nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for invalid token, got %d", w.Code)
	}
	if msg := decodeError(t, w); msg != "Invalid token" {
		t.Fatalf("unexpected error message %q", msg)
	}
}

func TestApplicationLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	// Public submission requires no token.
	w := env.do(t, http.MethodPost, "/api/applications", "", map[string]string{
		"fullName":     "Ramesh Kumar",
		"fatherName":   "Suresh Kumar",
		"village":      "Rampur",
		"district":     "Varanasi",
		"state":        "Uttar Pradesh",
		"mobile":       "9876543210",
		"aadharNumber": "123456789012",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	var created struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created response: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Message != "Application submitted successfully" {
		t.Fatalf("unexpected message %q", created.Message)
	}

	w = env.do(t, http.MethodGet, "/api/applications", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var listed []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID || listed[0].Status != "PENDING" {
		t.Fatalf("unexpected list payload: %+v", listed)
	}

	w = env.do(t, http.MethodPatch, "/api/applications/"+created.ID+"/status", token, map[string]string{"status": "APPROVED"})
	if w.Code != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodGet, "/api/applications/"+created.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}
	var fetched struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if fetched.Status != "APPROVED" {
		t.Fatalf("expected APPROVED, got %q", fetched.Status)
	}
}

func TestApplicationValidationMessagesOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/applications", "", map[string]string{
		"fullName":     "Ramesh Kumar",
		"fatherName":   "Suresh Kumar",
		"village":      "Rampur",
		"district":     "Varanasi",
		"state":        "Uttar Pradesh",
		"mobile":       "12345",
		"aadharNumber": "123456789012",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if msg := decodeError(t, w); msg != "Invalid mobile number format" {
		t.Fatalf("unexpected error message %q", msg)
	}
}

func TestPumpApplicationLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	w := env.do(t, http.MethodPost, "/api/pump-applications", "", map[string]string{
		"name":      "Sita Devi",
		"email":     "sita@example.com",
		"phone":     "9123456780",
		"address":   "12 Canal Road",
		"city":      "Patna",
		"pin":       "800001",
		"pumpPower": "5HP",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	var created struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created response: %v", err)
	}
	if created.Message != "Pump application submitted successfully" {
		t.Fatalf("unexpected message %q", created.Message)
	}

	w = env.do(t, http.MethodPatch, "/api/pump-applications/"+created.ID+"/status", token, map[string]string{"status": "archived"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", w.Code)
	}
	if msg := decodeError(t, w); msg != "Invalid status" {
		t.Fatalf("unexpected error message %q", msg)
	}

	w = env.do(t, http.MethodGet, "/api/pump-applications/missing-id", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if msg := decodeError(t, w); msg != "Pump application not found" {
		t.Fatalf("unexpected error message %q", msg)
	}
}

func TestSettingsPasswordChangeOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	w := env.do(t, http.MethodPut, "/api/settings/password", token, map[string]string{
		"currentPassword": "wrong",
		"newPassword":     "longenough",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong current password, got %d", w.Code)
	}
	if msg := decodeError(t, w); msg != "Current password is incorrect" {
		t.Fatalf("unexpected error message %q", msg)
	}

	w = env.do(t, http.MethodPut, "/api/settings/password", token, map[string]string{
		"currentPassword": "admin123",
		"newPassword":     "longenough",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	// Old password no longer works; the new one does.
	w = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "admin@spyojana.com",
		"password": "admin123",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected old password rejected, got %d", w.Code)
	}

	w = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "admin@spyojana.com",
		"password": "longenough",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected new password accepted, got %d", w.Code)
	}
}

func TestSettingsEmailConflictOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	hash, err := security.HashPassword("other-pass")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	env.users.users["admin-2"] = domain.User{
		ID:           "admin-2",
		Email:        "ops@spyojana.com",
		PasswordHash: hash,
		Name:         "Ops User",
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}

	w := env.do(t, http.MethodPut, "/api/settings/email", token, map[string]string{
		"password": "admin123",
		"newEmail": "ops@spyojana.com",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d (%s)", w.Code, w.Body.String())
	}
	if msg := decodeError(t, w); msg != "Email already in use" {
		t.Fatalf("unexpected error message %q", msg)
	}

	w = env.do(t, http.MethodPut, "/api/settings/email", token, map[string]string{
		"password": "admin123",
		"newEmail": "portal@spyojana.com",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if env.users.users["admin-1"].Email != "portal@spyojana.com" {
		t.Fatalf("email not persisted, got %q", env.users.users["admin-1"].Email)
	}
}
