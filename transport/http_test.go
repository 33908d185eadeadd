package transport_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authapp "github.com/gotrabandhus/gotrabandhus/application/auth"
	profileapp "github.com/gotrabandhus/gotrabandhus/application/profile"
	"github.com/gotrabandhus/gotrabandhus/cmd/config"
	redisrepo "github.com/gotrabandhus/gotrabandhus/repository/redis"
	userrepo "github.com/gotrabandhus/gotrabandhus/repository/user"
	"github.com/gotrabandhus/gotrabandhus/transport"
	"golang.org/x/crypto/bcrypt"
)

// newTestServer wires the full router against the in-memory store, with no
// Redis client configured (every cache call degrades to a miss) and no event
// publisher.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     "transport-test-secret",
			JWTExpiration: time.Hour,
			BcryptCost:    bcrypt.MinCost,
		},
		Redis: config.RedisConfig{
			CacheTTL: time.Minute,
		},
	}

	userRepo := userrepo.NewMemoryUserRepository()
	redisRepo := redisrepo.NewRepository()

	authApp := authapp.NewAuthApp(cfg, userRepo, redisRepo, nil)
	profileApp := profileapp.NewProfileApp(cfg, userRepo, redisRepo, nil)

	return transport.NewTransport(authApp, profileApp)
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	decoded := map[string]interface{}{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response body %q: %v", rec.Body.String(), err)
		}
	}
	return rec, decoded
}

func registerAsha(t *testing.T, h http.Handler) string {
	t.Helper()

	rec, body := doJSON(t, h, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"firstName": "Asha",
		"lastName":  "Rao",
		"nickname":  "ash",
		"email":     "Asha@x.com",
		"password":  "secret1",
		"phone":     "123",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body = %s", rec.Code, rec.Body.String())
	}

	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("register response has no token")
	}
	return token
}

func TestRegisterFlow(t *testing.T) {
	h := newTestServer(t)

	rec, body := doJSON(t, h, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"firstName": "Asha",
		"lastName":  "Rao",
		"nickname":  "ash",
		"email":     "Asha@x.com",
		"password":  "secret1",
		"phone":     "123",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want 201; body = %s", rec.Code, rec.Body.String())
	}
	if body["redirectTo"] != "/profile" {
		t.Fatalf("register redirectTo = %v, want /profile", body["redirectTo"])
	}

	user, _ := body["user"].(map[string]interface{})
	if user == nil {
		t.Fatalf("register response has no user: %s", rec.Body.String())
	}
	if user["email"] != "asha@x.com" {
		t.Fatalf("stored email = %v, want asha@x.com", user["email"])
	}
	if user["profileCompleted"] != false {
		t.Fatalf("profileCompleted = %v, want false", user["profileCompleted"])
	}
	if _, leaked := user["password"]; leaked {
		t.Fatal("register response leaks the password field")
	}

	// Same email with different letter case is a duplicate
	rec, _ = doJSON(t, h, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"firstName": "Asha",
		"lastName":  "Rao",
		"nickname":  "ash2",
		"email":     "ASHA@X.COM",
		"password":  "secret1",
		"phone":     "456",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register status = %d, want 400", rec.Code)
	}

	// Short password is rejected before any write
	rec, _ = doJSON(t, h, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"firstName": "Ravi",
		"lastName":  "Rao",
		"nickname":  "rv",
		"email":     "ravi@x.com",
		"password":  "short",
		"phone":     "789",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("short-password register status = %d, want 400", rec.Code)
	}
}

func TestLoginFlow(t *testing.T) {
	h := newTestServer(t)
	registerAsha(t, h)

	// Incomplete profile routes to /profile
	rec, body := doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "asha@x.com",
		"password": "secret1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if body["redirectTo"] != "/profile" {
		t.Fatalf("login redirectTo = %v, want /profile", body["redirectTo"])
	}

	// Wrong password and unknown email answer with the identical shape
	recWrongPw, bodyWrongPw := doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "asha@x.com",
		"password": "wrongpw",
	})
	recUnknown, bodyUnknown := doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "nobody@x.com",
		"password": "secret1",
	})
	if recWrongPw.Code != http.StatusUnauthorized || recUnknown.Code != http.StatusUnauthorized {
		t.Fatalf("login failure statuses = %d, %d, want 401, 401", recWrongPw.Code, recUnknown.Code)
	}
	if bodyWrongPw["error"] != bodyUnknown["error"] || bodyWrongPw["code"] != bodyUnknown["code"] {
		t.Fatalf("login failures differ: %s vs %s", recWrongPw.Body.String(), recUnknown.Body.String())
	}
}

func TestAuthMiddleware(t *testing.T) {
	h := newTestServer(t)
	token := registerAsha(t, h)

	tests := []struct {
		name   string
		token  string
		header string
		want   int
	}{
		{name: "missing header", want: http.StatusUnauthorized},
		{name: "malformed header", header: "Token abc", want: http.StatusUnauthorized},
		{name: "garbage token", token: "not.a.jwt", want: http.StatusUnauthorized},
		{name: "valid token", token: token, want: http.StatusOK},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			} else if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d; body = %s", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestProfileCompletionGate(t *testing.T) {
	h := newTestServer(t)
	token := registerAsha(t, h)

	// Incomplete profile: dashboard is gated with a redirect hint
	rec, body := doJSON(t, h, http.MethodGet, "/api/user/dashboard", token, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("dashboard status = %d, want 403; body = %s", rec.Code, rec.Body.String())
	}
	if body["redirectTo"] != "/profile" {
		t.Fatalf("dashboard redirectTo = %v, want /profile", body["redirectTo"])
	}

	rec, body = doJSON(t, h, http.MethodGet, "/api/user/profile/check-completion", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("check-completion status = %d", rec.Code)
	}
	if body["isComplete"] != false || body["redirectTo"] != "/profile" {
		t.Fatalf("check-completion = %s, want incomplete with /profile redirect", rec.Body.String())
	}

	// Complete the profile
	rec, body = doJSON(t, h, http.MethodPut, "/api/user/profile", token, map[string]interface{}{
		"currentCity":     "Pune",
		"currentState":    "MH",
		"currentCountry":  "IN",
		"gotra":           "G1",
		"pravara":         "P1",
		"community":       "C1",
		"primaryLanguage": "Marathi",
		"gender":          "female",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("profile update status = %d, body = %s", rec.Code, rec.Body.String())
	}
	profile, _ := body["profile"].(map[string]interface{})
	if profile == nil || profile["profileCompleted"] != true {
		t.Fatalf("profile update response = %s, want profileCompleted true", rec.Body.String())
	}
	if body["redirectTo"] != "/dashboard" {
		t.Fatalf("profile update redirectTo = %v, want /dashboard", body["redirectTo"])
	}

	// Gate opens
	rec, _ = doJSON(t, h, http.MethodGet, "/api/user/dashboard", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard after completion status = %d, want 200; body = %s", rec.Code, rec.Body.String())
	}

	rec, body = doJSON(t, h, http.MethodGet, "/api/user/profile/check-completion", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("check-completion status = %d", rec.Code)
	}
	if body["isComplete"] != true {
		t.Fatalf("check-completion = %s, want complete", rec.Body.String())
	}
	if _, present := body["redirectTo"]; present && body["redirectTo"] != nil {
		t.Fatalf("check-completion redirectTo = %v, want null", body["redirectTo"])
	}
}

// A client-supplied profileCompleted flag must be ignored: only the
// evaluator writes that field.
func TestProfileCompletedIsNotClientSettable(t *testing.T) {
	h := newTestServer(t)
	token := registerAsha(t, h)

	rec, body := doJSON(t, h, http.MethodPut, "/api/user/profile", token, map[string]interface{}{
		"bio":              "just a bio",
		"profileCompleted": true,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("profile update status = %d, body = %s", rec.Code, rec.Body.String())
	}
	profile, _ := body["profile"].(map[string]interface{})
	if profile == nil || profile["profileCompleted"] != false {
		t.Fatalf("profile update response = %s, want profileCompleted false", rec.Body.String())
	}

	rec, _ = doJSON(t, h, http.MethodGet, "/api/user/dashboard", token, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("dashboard status = %d, want 403", rec.Code)
	}
}

func TestGetProfileAndMe(t *testing.T) {
	h := newTestServer(t)
	token := registerAsha(t, h)

	rec, body := doJSON(t, h, http.MethodGet, "/api/auth/me", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("me status = %d", rec.Code)
	}
	user, _ := body["user"].(map[string]interface{})
	if user == nil || user["email"] != "asha@x.com" {
		t.Fatalf("me response = %s, want asha@x.com", rec.Body.String())
	}

	rec, body = doJSON(t, h, http.MethodGet, "/api/user/profile", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile status = %d", rec.Code)
	}
	profile, _ := body["profile"].(map[string]interface{})
	if profile == nil || profile["nickname"] != "ash" {
		t.Fatalf("profile response = %s, want nickname ash", rec.Body.String())
	}
	if _, leaked := profile["password"]; leaked {
		t.Fatal("profile response leaks the password field")
	}
}
