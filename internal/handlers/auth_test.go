package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/family-task-api/internal/database/databasetest"
	"github.com/yukikurage/family-task-api/internal/dto"
	"github.com/yukikurage/family-task-api/internal/repository"
	"github.com/yukikurage/family-task-api/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type authTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	pool := databasetest.Open(t)

	workspaces := services.NewWorkspaceService(repository.NewWorkspaceRepository(pool.DB))
	authService := services.NewAuthService(
		repository.NewUserRepository(pool.DB),
		workspaces,
		services.NewPasswordHasher(bcrypt.MinCost),
		services.AuthOptions{PasscodeLength: 6},
	)
	handler := NewAuthHandler(authService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/signup", handler.Signup)
	r.POST("/login", handler.Login)

	return authTestEnv{
		db:          pool.DB,
		router:      r,
		authService: authService,
	}
}

func (env authTestEnv) post(t *testing.T, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.post(t, "/signup", map[string]string{
		"username": "newuser",
		"email":    "newuser@example.com",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.SignupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotZero(t, response.UserID)
	require.NotEmpty(t, response.WorkspaceCode)
	require.Len(t, response.Passcode, 6)
	require.NotContains(t, w.Body.String(), "supersecret")
}

func TestAuthHandler_SignupDuplicate(t *testing.T) {
	env := setupAuthTestEnv(t)

	first := env.post(t, "/signup", map[string]string{"username": "alice", "email": "alice@example.com", "password": "pw"})
	require.Equal(t, http.StatusCreated, first.Code)

	w := env.post(t, "/signup", map[string]string{"username": "alice", "email": "other@example.com", "password": "pw"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"CONFLICT"`)

	w = env.post(t, "/signup", map[string]string{"username": "alice2", "email": "alice@example.com", "password": "pw"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"CONFLICT"`)
}

func TestAuthHandler_SignupValidation(t *testing.T) {
	env := setupAuthTestEnv(t)

	tests := []struct {
		name    string
		payload map[string]string
	}{
		{"missing email", map[string]string{"username": "a", "password": "pw"}},
		{"missing password", map[string]string{"username": "a", "email": "a@example.com"}},
		{"invalid role", map[string]string{"username": "a", "email": "a@example.com", "password": "pw", "role": "admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.post(t, "/signup", tt.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"code":"INVALID_INPUT"`)
		})
	}
}

func TestAuthHandler_SignupWrongPasscode(t *testing.T) {
	env := setupAuthTestEnv(t)

	owner, err := env.authService.Signup(context.Background(), services.SignupInput{Username: "alice", Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)

	w := env.post(t, "/signup", map[string]string{
		"username":       "bob",
		"email":          "bob@example.com",
		"password":       "pw",
		"workspace_code": owner.WorkspaceCode,
		"passcode":       "NOPE00",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"INVALID_PASSCODE"`)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	signup, err := env.authService.Signup(context.Background(), services.SignupInput{
		Username: "existing",
		Email:    "existing@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	w := env.post(t, "/login", map[string]string{"username": "existing", "password": "supersecret"})
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, signup.UserID, response.UserID)
	require.Equal(t, signup.WorkspaceCode, response.WorkspaceCode)
	require.Equal(t, signup.Passcode, response.Passcode)
	require.Equal(t, "member", string(response.Role))
}

func TestAuthHandler_LoginFailures(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Signup(context.Background(), services.SignupInput{Username: "existing", Email: "existing@example.com", Password: "supersecret"})
	require.NoError(t, err)

	w := env.post(t, "/login", map[string]string{"username": "ghost", "password": "supersecret"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.post(t, "/login", map[string]string{"username": "existing", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"INVALID_CREDENTIALS"`)

	w = env.post(t, "/login", map[string]string{"username": "existing"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
