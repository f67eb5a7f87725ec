package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/family-task-api/internal/config"
	"github.com/yukikurage/family-task-api/internal/database/databasetest"
	"github.com/yukikurage/family-task-api/internal/dto"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		AppHost:            "127.0.0.1",
		AppPort:            "0",
		GinMode:            "test",
		ShutdownTimeout:    2 * time.Second,
		BCryptCost:         bcrypt.MinCost,
		PasscodeLength:     6,
		CORSAllowedOrigins: []string{"*"},
	}
}

type client struct {
	t       *testing.T
	handler http.Handler
}

func (c client) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(c.t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestEndToEnd_FamilyScenario(t *testing.T) {
	pool := databasetest.Open(t)
	srv := New(testConfig(), pool, databasetest.DiscardLogger())
	c := client{t: t, handler: srv.Handler()}

	w := c.do(http.MethodPost, "/signup", map[string]string{
		"username": "alice", "email": "alice@example.com", "password": "alice-pw", "role": "owner",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	alice := decode[dto.SignupResponse](t, w)

	w = c.do(http.MethodPost, "/signup", map[string]string{
		"username": "bob", "email": "bob@example.com", "password": "bob-pw", "workspace_code": alice.WorkspaceCode,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	bob := decode[dto.SignupResponse](t, w)
	assert.Equal(t, alice.WorkspaceCode, bob.WorkspaceCode)

	w = c.do(http.MethodPost, "/login", map[string]string{"username": "bob", "password": "bob-pw"})
	require.Equal(t, http.StatusOK, w.Code)
	login := decode[dto.LoginResponse](t, w)
	assert.Equal(t, alice.WorkspaceCode, login.WorkspaceCode)

	w = c.do(http.MethodPost, "/tasks", map[string]interface{}{
		"workspace_code": alice.WorkspaceCode,
		"task_name":      "Clean kitchen",
		"assigned_by":    alice.UserID,
		"assigned_to":    bob.UserID,
		"due_date":       "2030-06-01T18:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[dto.TaskCreatedResponse](t, w)

	w = c.do(http.MethodGet, "/tasks/"+alice.WorkspaceCode, nil)
	require.Equal(t, http.StatusOK, w.Code)
	tasks := decode[[]dto.TaskDTO](t, w)
	require.Len(t, tasks, 1)
	assert.Equal(t, created.TaskID, tasks[0].ID)
	assert.False(t, tasks[0].Completed)
	assert.Equal(t, "alice", *tasks[0].AssignedBy.Username)
	assert.Equal(t, "bob", *tasks[0].AssignedTo.Username)

	w = c.do(http.MethodPut, fmt.Sprintf("/tasks/complete/%d", created.TaskID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/tasks/"+alice.WorkspaceCode, nil)
	tasks = decode[[]dto.TaskDTO](t, w)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Completed)

	w = c.do(http.MethodGet, "/workspaces/"+alice.WorkspaceCode+"/members", nil)
	require.Equal(t, http.StatusOK, w.Code)
	members := decode[[]dto.WorkspaceMemberDTO](t, w)
	require.Len(t, members, 2)
	assert.Equal(t, "owner", string(members[0].Role))
}

func TestLegacyRoutes(t *testing.T) {
	pool := databasetest.Open(t)
	c := client{t: t, handler: New(testConfig(), pool, databasetest.DiscardLogger()).Handler()}

	w := c.do(http.MethodPost, "/add_task", map[string]interface{}{
		"workspace_code": "family",
		"task_name":      "Water plants",
		"assigned_by":    1,
		"assigned_to":    2,
		"due_date":       "2030-06-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Task added successfully")
	created := decode[dto.TaskCreatedResponse](t, w)

	w = c.do(http.MethodGet, "/get_tasks/family", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.TaskDTO](t, w), 1)

	w = c.do(http.MethodPut, fmt.Sprintf("/complete_task/%d", created.TaskID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Task marked complete"}`, w.Body.String())

	w = c.do(http.MethodPut, "/complete_task/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOutOfRangeIDs(t *testing.T) {
	pool := databasetest.Open(t)
	c := client{t: t, handler: New(testConfig(), pool, databasetest.DiscardLogger()).Handler()}

	w := c.do(http.MethodPut, "/tasks/complete/18446744073709551615", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = c.do(http.MethodPut, "/complete_task/18446744073709551615", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = c.do(http.MethodPost, "/tasks", map[string]interface{}{
		"workspace_code": "family",
		"task_name":      "Water plants",
		"assigned_by":    uint64(math.MaxUint64),
		"assigned_to":    1,
		"due_date":       "2030-06-01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_INPUT")
}

func TestHealthAndRateLimit(t *testing.T) {
	pool := databasetest.Open(t)
	cfg := testConfig()
	cfg.RateLimitEnabled = true
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1
	c := client{t: t, handler: New(cfg, pool, databasetest.DiscardLogger()).Handler()}

	for i := 0; i < 3; i++ {
		w := c.do(http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","message":"API and Database are healthy"}`, w.Body.String())
	}

	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/tasks/family", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, c.do(http.MethodGet, "/tasks/family", nil).Code)
}

func TestServer_RunShutsDownOnCancel(t *testing.T) {
	pool := databasetest.Open(t)
	srv := New(testConfig(), pool, databasetest.DiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunReportsListenError(t *testing.T) {
	pool := databasetest.Open(t)
	cfg := testConfig()
	cfg.AppPort = "not-a-port"

	err := New(cfg, pool, databasetest.DiscardLogger()).Run(context.Background())
	assert.Error(t, err)
}
