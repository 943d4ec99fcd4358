package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/metinatakli/cinex/api"
	"github.com/metinatakli/cinex/internal/domain"
	"github.com/metinatakli/cinex/internal/validator"
)

const testJWTSecret = "test-secret"

var (
	testCustomer = domain.Actor{UserID: 5, Role: domain.RoleCustomer}
	testAdmin    = domain.Actor{UserID: 1, Role: domain.RoleAdmin}
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		config:         Config{Env: "test", JWT: JWTConfig{Secret: testJWTSecret}},
		validator:      validator.NewValidator(),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessionManager: scs.New(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func signToken(t *testing.T, actor domain.Actor, secret string, expiresIn time.Duration) string {
	t.Helper()

	claims := identityClaims{
		Role: string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(actor.UserID),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}

	return token
}

func bearer(t *testing.T, actor domain.Actor) map[string]string {
	return map[string]string{"Authorization": "Bearer " + signToken(t, actor, testJWTSecret, time.Hour)}
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader

	switch v := body.(type) {
	case nil:
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

// serve runs the request through the full router with the given headers.
func serve(t *testing.T, app *Application, method, url string, body any, headers map[string]string) *httptest.ResponseRecorder {
	w, r := executeRequest(t, method, url, body)

	for k, v := range headers {
		r.Header.Set(k, v)
	}

	app.Routes().ServeHTTP(w, r)

	return w
}

type errorBody struct {
	Kind             string                `json:"kind"`
	Message          string                `json:"message"`
	Seat             string                `json:"seat"`
	Conflict         *api.Interval         `json:"conflict"`
	ValidationErrors []api.ValidationError `json:"validationErrors"`
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	t.Helper()

	if w.Code != tt.wantStatus {
		t.Errorf("Status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
	}

	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	var resp errorBody
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if len(resp.ValidationErrors) > 0 {
		for _, vErr := range resp.ValidationErrors {
			if vErr.Issue == tt.wantErrMessage {
				return
			}
		}

		t.Errorf("Expected validation error message '%s' not found in %+v", tt.wantErrMessage, resp.ValidationErrors)
		return
	}

	if tt.wantErrMessage != "" && resp.Message != tt.wantErrMessage {
		t.Errorf("Error message = %v, want %v", resp.Message, tt.wantErrMessage)
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var resp errorBody
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	return resp
}

func ptr[T any](v T) *T {
	return &v
}
