package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tripnest/vacations-api/internal/api/middleware"
	"github.com/tripnest/vacations-api/internal/core/domain"
	"github.com/tripnest/vacations-api/internal/core/ports"
)

type stubAuthService struct {
	registered *ports.RegisterInput
	user       *domain.User
	login      *ports.LoginResult
	err        error
}

func (s *stubAuthService) Register(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
	s.registered = &in
	return s.user, s.err
}

func (s *stubAuthService) Login(context.Context, string, string) (*ports.LoginResult, error) {
	return s.login, s.err
}

func (s *stubAuthService) Profile(context.Context, int64) (*domain.User, error) {
	return s.user, s.err
}

func jsonContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{login: &ports.LoginResult{
		User: domain.User{
			ID:        5,
			FirstName: "Dana",
			LastName:  "Levi",
			Email:     "dana@example.com",
			Role:      domain.RoleMember,
		},
		Token: "signed-token",
	}}
	h := NewAuthHandler(svc)

	c, rec := jsonContext(t, http.MethodPost, "/auth/login", `{"email":"dana@example.com","password":"hunter2"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.UserID != 5 || resp.Token != "signed-token" || resp.Role != domain.RoleMember {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatal("login response must not mention passwords")
	}
}

func TestAuthHandler_Login_BadPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := []struct {
		name string
		body string
	}{
		{"broken json", `{"email":`},
		{"missing password", `{"email":"dana@example.com"}`},
		{"bad email", `{"email":"not-an-email","password":"hunter2"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := jsonContext(t, http.MethodPost, "/auth/login", tc.body)
			err := h.Login(c)
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{user: &domain.User{
		ID:    7,
		Email: "dana@example.com",
		Role:  domain.RoleMember,
	}}
	h := NewAuthHandler(svc)

	body := `{"first_name":"Dana","last_name":"Levi","email":"dana@example.com","password":"hunter2"}`
	c, rec := jsonContext(t, http.MethodPost, "/users", body)
	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.registered == nil || svc.registered.Email != "dana@example.com" {
		t.Fatalf("service did not receive the input: %+v", svc.registered)
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	body := `{"first_name":"Dana","last_name":"Levi","email":"dana@example.com","password":"abc"}`
	c, _ := jsonContext(t, http.MethodPost, "/users", body)
	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Verify(t *testing.T) {
	svc := &stubAuthService{user: &domain.User{ID: 5, Email: "dana@example.com", Role: domain.RoleAdmin}}
	h := NewAuthHandler(svc)

	c, rec := jsonContext(t, http.MethodGet, "/auth/verify", "")
	c.Set(middleware.CtxUserID, int64(5))
	c.Set(middleware.CtxRole, domain.RoleAdmin)

	if err := h.Verify(c); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Verify_WithoutGateIdentity(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := jsonContext(t, http.MethodGet, "/auth/verify", "")
	err := h.Verify(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without gate identity, got %v", err)
	}
}
