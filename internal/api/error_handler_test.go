package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tripnest/vacations-api/internal/api/handler"
	"github.com/tripnest/vacations-api/internal/core/domain"
	"github.com/tripnest/vacations-api/internal/core/service"
	"github.com/tripnest/vacations-api/internal/token"
)

// render runs an error through the central handler and captures the response.
func render(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, rec.Body.String())
	}
	return rec, body
}

func TestErrorHandler_DomainErrorCodes(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrMissingToken, http.StatusUnauthorized},
		{domain.ErrExpiredToken, http.StatusUnauthorized},
		{domain.ErrInvalidSignature, http.StatusUnauthorized},
		{domain.ErrInsufficientRole, http.StatusForbidden},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrVacationNotFound, http.StatusNotFound},
		{domain.ErrEmailExists, http.StatusConflict},
		{domain.ErrInvalidDuration, http.StatusBadRequest},
	}
	for _, tc := range cases {
		rec, body := render(t, tc.err)
		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if body["error"] == "" {
			t.Errorf("%v: empty error message", tc.err)
		}
	}

	// Matching is errors.Is, never message text.
	rec, _ := render(t, errors.New("login: "+domain.ErrUserNotFound.Error()))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("string match must not count as a sentinel, got %d", rec.Code)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	rec, body := render(t, errors.New("dial tcp 10.0.0.3:27017: i/o timeout"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal details leaked: %v", body["error"])
	}
}

func TestErrorHandler_BannedEnvelope(t *testing.T) {
	until := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	err := &domain.BannedError{Ban: domain.Ban{
		ID:      3,
		UserID:  5,
		Reason:  "payment fraud",
		UntilAt: until,
	}}

	rec, body := render(t, err)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if body["banned"] != true {
		t.Fatalf("expected banned flag, got %v", body)
	}
	info, ok := body["info"].(map[string]any)
	if !ok {
		t.Fatalf("expected ban info object, got %v", body["info"])
	}
	if info["reason"] != "payment fraud" {
		t.Fatalf("expected reason in info, got %v", info)
	}
	if !strings.Contains(body["error"].(string), "2026-09-10") {
		t.Fatalf("expected expiry date in message, got %v", body["error"])
	}
}

func TestErrorHandler_EchoErrorPassthrough(t *testing.T) {
	rec, body := render(t, echo.NewHTTPError(http.StatusForbidden, "insufficient role"))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if body["error"] != "insufficient role" {
		t.Fatalf("unexpected message: %v", body["error"])
	}
}

// loginUserRepo is a one-account store for the end-to-end payload test.
type loginUserRepo struct {
	user domain.User
}

func (r *loginUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if email != r.user.Email {
		return nil, domain.ErrUserNotFound
	}
	clone := r.user
	return &clone, nil
}

func (r *loginUserRepo) Create(context.Context, *domain.User) (*domain.User, error) {
	return nil, errors.New("not implemented")
}
func (r *loginUserRepo) FindByID(context.Context, int64) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (r *loginUserRepo) List(context.Context) ([]*domain.User, error) { return nil, nil }
func (r *loginUserRepo) Update(context.Context, *domain.User) error   { return nil }
func (r *loginUserRepo) Delete(context.Context, int64) error          { return nil }
func (r *loginUserRepo) EmailExists(context.Context, string) (bool, error) {
	return false, nil
}

type noBans struct{}

func (noBans) Ban(context.Context, int64, string, int) (*domain.Ban, error) {
	return nil, errors.New("not implemented")
}
func (noBans) IsBanned(context.Context, int64) (bool, *domain.Ban, error) {
	return false, nil, nil
}
func (noBans) ActiveBans(context.Context, int64) ([]domain.Ban, error) { return nil, nil }
func (noBans) Unban(context.Context, int64) (int64, error)             { return 0, nil }

// A wrong password and an unknown email must produce byte-identical
// responses, or the login endpoint doubles as an email oracle.
func TestLogin_FailurePayloadsAreByteIdentical(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := &loginUserRepo{user: domain.User{
		ID:           5,
		Email:        "dana@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleMember,
	}}
	auth := service.NewAuthService(repo, noBans{}, token.NewIssuer("secret", time.Hour), nil, zerolog.Nop())

	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.POST("/auth/login", handler.NewAuthHandler(auth).Login)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	wrongPw := post(`{"email":"dana@example.com","password":"wrong"}`)
	unknown := post(`{"email":"nobody@example.com","password":"hunter2"}`)

	if wrongPw.Code != http.StatusUnauthorized || unknown.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrongPw.Code, unknown.Code)
	}
	if wrongPw.Body.String() != unknown.Body.String() {
		t.Fatalf("payloads differ:\n%s\n%s", wrongPw.Body.String(), unknown.Body.String())
	}
}
