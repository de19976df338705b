package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/martijn/chirp/internal/api/dto"
	"github.com/martijn/chirp/internal/api/middleware"
	"github.com/martijn/chirp/internal/core/service"
	"github.com/martijn/chirp/internal/infrastructure/sqlite"
)

const testJWTSecret = "test-secret-key"

// testEnv holds all test dependencies
type testEnv struct {
	db          *sqlite.DB
	router      *gin.Engine
	authService *service.AuthService
}

// setupTestEnv creates a test environment with an in-memory SQLite database
// and the full route table, auth middleware included.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	// A single connection keeps the in-memory database shared across queries
	db.SetMaxOpenConns(1)

	userRepo := sqlite.NewUserRepository(db)
	postRepo := sqlite.NewPostRepository(db)

	authService := service.NewAuthService(userRepo, testJWTSecret, "HS256")
	postService := service.NewPostService(postRepo, userRepo)

	authHandler := NewAuthHandler(authService)
	postHandler := NewPostHandler(postService)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	auth := router.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
	}

	posts := router.Group("/posts")
	posts.Use(middleware.AuthMiddleware(authService))
	{
		posts.GET("", postHandler.ListPosts)
		posts.POST("", postHandler.CreatePost)
		posts.PUT("/:id", postHandler.UpdatePost)
		posts.DELETE("/:id", postHandler.DeletePost)
	}

	return &testEnv{
		db:          db,
		router:      router,
		authService: authService,
	}
}

// cleanup closes the test database
func (env *testEnv) cleanup() {
	if env.db != nil {
		env.db.Close()
	}
}

// makeRequest performs a request with an optional JSON body and bearer token
func (env *testEnv) makeRequest(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// signupUser registers a user and returns its public fields
func (env *testEnv) signupUser(t *testing.T, username, password string) dto.UserResponse {
	t.Helper()

	w := env.makeRequest(t, http.MethodPost, "/auth/signup", dto.SignupRequest{
		Username: username,
		Password: password,
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("signup for %q failed with status %d: %s", username, w.Code, w.Body.String())
	}

	var resp dto.SignupResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse signup response: %v\nBody: %s", err, w.Body.String())
	}
	return resp.User
}

// loginUser logs in and returns the bearer token and user
func (env *testEnv) loginUser(t *testing.T, username, password string) (string, dto.UserResponse) {
	t.Helper()

	w := env.makeRequest(t, http.MethodPost, "/auth/login", dto.LoginRequest{
		Username: username,
		Password: password,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login for %q failed with status %d: %s", username, w.Code, w.Body.String())
	}

	var resp dto.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse login response: %v\nBody: %s", err, w.Body.String())
	}
	return resp.Token, resp.User
}

// registerAndLogin is the common signup-then-login shortcut
func (env *testEnv) registerAndLogin(t *testing.T, username, password string) (string, dto.UserResponse) {
	t.Helper()

	env.signupUser(t, username, password)
	return env.loginUser(t, username, password)
}

// createPost creates a post for the given token and returns it
func (env *testEnv) createPost(t *testing.T, token, content string) dto.PostResponse {
	t.Helper()

	w := env.makeRequest(t, http.MethodPost, "/posts", dto.CreatePostRequest{Content: content}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create post failed with status %d: %s", w.Code, w.Body.String())
	}
	return parsePostEnvelope(t, w).Post
}

func parsePostEnvelope(t *testing.T, w *httptest.ResponseRecorder) dto.PostEnvelope {
	t.Helper()

	var resp dto.PostEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse post response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

func parsePostList(t *testing.T, w *httptest.ResponseRecorder) dto.PostListResponse {
	t.Helper()

	var resp dto.PostListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse post list response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

func parseErrorResponse(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}
