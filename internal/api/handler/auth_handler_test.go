package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/martijn/chirp/internal/api/dto"
)

func TestSignupValidation(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{
			name:           "valid signup",
			body:           dto.SignupRequest{Username: "alice", Password: "secret1"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing username",
			body:           map[string]string{"password": "secret1"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing password",
			body:           map[string]string{"username": "alice"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "username too short",
			body:           dto.SignupRequest{Username: "al", Password: "secret1"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "username too long",
			body:           dto.SignupRequest{Username: strings.Repeat("a", 51), Password: "secret1"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "username at max length",
			body:           dto.SignupRequest{Username: strings.Repeat("a", 50), Password: "secret1"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "password too short",
			body:           dto.SignupRequest{Username: "alice", Password: "five5"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t)
			defer env.cleanup()

			w := env.makeRequest(t, http.MethodPost, "/auth/signup", tt.body, "")

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d\nBody: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestSignupReturnsPublicFieldsOnly(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	w := env.makeRequest(t, http.MethodPost, "/auth/signup", dto.SignupRequest{
		Username: "alice",
		Password: "secret1",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d\nBody: %s", w.Code, w.Body.String())
	}

	var raw map[string]map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	user := raw["user"]
	if user["username"] != "alice" {
		t.Errorf("expected username alice, got %v", user["username"])
	}
	if user["id"] == nil {
		t.Error("expected user id in response")
	}
	if user["created_at"] == nil {
		t.Error("expected created_at in response")
	}
	for _, key := range []string{"password", "password_hash"} {
		if _, ok := user[key]; ok {
			t.Errorf("response must not contain %q", key)
		}
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	env.signupUser(t, "alice", "secret1")

	// Same username fails regardless of password
	w := env.makeRequest(t, http.MethodPost, "/auth/signup", dto.SignupRequest{
		Username: "alice",
		Password: "different-password",
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for duplicate username, got %d", w.Code)
	}

	errResp := parseErrorResponse(t, w)
	if errResp.Error != "username already exists" {
		t.Errorf("unexpected error message: %q", errResp.Error)
	}
}

func TestLoginAfterSignup(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	created := env.signupUser(t, "alice", "secret1")

	token, user := env.loginUser(t, "alice", "secret1")
	if token == "" {
		t.Fatal("expected a token")
	}
	if user.ID != created.ID {
		t.Errorf("expected user id %d, got %d", created.ID, user.ID)
	}
	if user.Username != "alice" {
		t.Errorf("expected username alice, got %s", user.Username)
	}

	// The decoded claims must match the account
	claims, err := env.authService.ValidateToken(token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("expected claim username alice, got %s", claims.Username)
	}
	if claims.UserID != created.ID {
		t.Errorf("expected claim userId %d, got %d", created.ID, claims.UserID)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatal("expected exp and iat claims")
	}
	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if lifetime != 24*time.Hour {
		t.Errorf("expected 24h token lifetime, got %v", lifetime)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	env.signupUser(t, "alice", "secret1")

	// Wrong password
	wrongPassword := env.makeRequest(t, http.MethodPost, "/auth/login", dto.LoginRequest{
		Username: "alice",
		Password: "wrong-password",
	}, "")
	if wrongPassword.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for wrong password, got %d", wrongPassword.Code)
	}

	// Unknown user
	unknownUser := env.makeRequest(t, http.MethodPost, "/auth/login", dto.LoginRequest{
		Username: "nobody",
		Password: "secret1",
	}, "")
	if unknownUser.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for unknown user, got %d", unknownUser.Code)
	}

	// Identical messages so usernames cannot be enumerated
	wrongPasswordErr := parseErrorResponse(t, wrongPassword)
	unknownUserErr := parseErrorResponse(t, unknownUser)
	if wrongPasswordErr.Error != unknownUserErr.Error {
		t.Errorf("error messages differ: %q vs %q", wrongPasswordErr.Error, unknownUserErr.Error)
	}
}

func TestUsernameIsCaseSensitive(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	env.signupUser(t, "alice", "secret1")

	// A different casing is a different account
	w := env.makeRequest(t, http.MethodPost, "/auth/signup", dto.SignupRequest{
		Username: "Alice",
		Password: "secret1",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for differently-cased username, got %d", w.Code)
	}

	// Login with the stored casing only
	wrongCase := env.makeRequest(t, http.MethodPost, "/auth/login", dto.LoginRequest{
		Username: "ALICE",
		Password: "secret1",
	}, "")
	if wrongCase.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for wrong-cased username, got %d", wrongCase.Code)
	}
}
