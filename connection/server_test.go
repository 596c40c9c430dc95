package connection

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"taskboard/repository"
	"taskboard/services"
)

type testAPI struct {
	router http.Handler
	mem    *repository.Memory
}

func newTestAPI(t *testing.T, authRequired bool) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := repository.NewMemory()
	tokens := services.NewTokenIssuer("test-secret", 0)
	log := zerolog.New(io.Discard)
	router := NewRouter(Deps{
		Auth:         services.NewAuthService(mem, mem, tokens, log),
		Tasks:        services.NewTaskService(mem),
		Groups:       services.NewGroupService(mem),
		Accounts:     services.NewAccountService(mem),
		Tokens:       tokens,
		Log:          log,
		AuthRequired: authRequired,
	})
	return &testAPI{router: router, mem: mem}
}

func (a *testAPI) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	decode(t, w, &body)
	return body.Message
}

// signUpAndLogin registers an account and returns its uid and access token.
func (a *testAPI) signUpAndLogin(t *testing.T, email string) (string, string) {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/register", gin.H{"username": "ana", "email": email, "password": "s3cret"}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var reg struct {
		UID string `json:"uid"`
	}
	decode(t, w, &reg)

	w = a.do(t, http.MethodPost, "/api/login", gin.H{"email": email, "password": "s3cret"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login struct {
		Token string `json:"token"`
	}
	decode(t, w, &login)
	return reg.UID, login.Token
}

func (a *testAPI) createTask(t *testing.T, userID, name string) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/task", gin.H{
		"category":    "Urgent",
		"deadline":    "2026-11-05T14:30:00.000Z",
		"description": "write it",
		"nameTask":    name,
		"status":      "Pending",
		"userId":      userID,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var body struct {
		ID string `json:"id"`
	}
	decode(t, w, &body)
	return body.ID
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t, false)
	w := api.do(t, http.MethodGet, "/", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Api is running!", message(t, w))
}

func TestRegisterAndLogin(t *testing.T) {
	api := newTestAPI(t, false)
	uid, token := api.signUpAndLogin(t, "ana@example.com")
	assert.NotEmpty(t, uid)
	assert.NotEmpty(t, token)

	w := api.do(t, http.MethodPost, "/api/register", gin.H{"username": "x", "email": "ana@example.com", "password": "p"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email is already registered", message(t, w))

	w = api.do(t, http.MethodPost, "/api/register", gin.H{"username": "x", "email": "bad-email", "password": "p"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid email format", message(t, w))

	w = api.do(t, http.MethodPost, "/api/login", gin.H{"email": "nobody@example.com", "password": "p"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(t, http.MethodPost, "/api/login", gin.H{"email": "ana@example.com", "password": "wrong"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(t, http.MethodPost, "/api/login", gin.H{"email": "ana@example.com", "password": "s3cret"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Message string `json:"message"`
		User    struct {
			DocID     string `json:"docId"`
			Rol       string `json:"rol"`
			LastLogin string `json:"last_login"`
		} `json:"user"`
	}
	decode(t, w, &login)
	assert.Equal(t, "Login successful", login.Message)
	assert.Equal(t, uid, login.User.DocID)
	assert.Equal(t, "Employee", login.User.Rol)
	assert.Contains(t, login.User.LastLogin, " de ")
}

func TestSession(t *testing.T) {
	api := newTestAPI(t, false)
	uid, token := api.signUpAndLogin(t, "ana@example.com")

	w := api.do(t, http.MethodGet, "/api/session", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(t, http.MethodGet, "/api/session", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(t, http.MethodGet, "/api/session", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var session struct {
		UID       string `json:"uid"`
		Email     string `json:"email"`
		ExpiresAt string `json:"expiresAt"`
	}
	decode(t, w, &session)
	assert.Equal(t, uid, session.UID)
	assert.Equal(t, "ana@example.com", session.Email)
	_, err := time.Parse(time.RFC3339, session.ExpiresAt)
	assert.NoError(t, err)
}

func TestAuthRequired(t *testing.T) {
	api := newTestAPI(t, true)
	uid, token := api.signUpAndLogin(t, "ana@example.com")

	w := api.do(t, http.MethodGet, "/api/tasks?userId="+uid, nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(t, http.MethodGet, "/api/tasks?userId="+uid, nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteGroupUsesTokenAccount(t *testing.T) {
	api := newTestAPI(t, true)
	owner, ownerToken := api.signUpAndLogin(t, "ana@example.com")
	_, otherToken := api.signUpAndLogin(t, "bob@example.com")

	w := api.do(t, http.MethodPost, "/api/groups", gin.H{
		"created_by": owner, "description": "team", "members": []string{owner}, "name": "Alpha",
	}, ownerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var group struct {
		ID string `json:"id"`
	}
	decode(t, w, &group)

	w = api.do(t, http.MethodDelete, "/api/groups/"+group.ID+"?userId="+owner, nil, otherToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(t, http.MethodDelete, "/api/groups/"+group.ID+"?userId=someone-else", nil, ownerToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTaskEndpoints(t *testing.T) {
	api := newTestAPI(t, false)

	t.Run("invalid deadline stores nothing", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/api/task", gin.H{
			"category": "Urgent", "deadline": "not-a-date", "description": "d",
			"nameTask": "n", "status": "Pending", "userId": "u1",
		}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid deadline format", message(t, w))

		w = api.do(t, http.MethodGet, "/api/tasks?userId=u1", nil, "")
		assert.Equal(t, "[]", w.Body.String())
	})

	id := api.createTask(t, "u1", "report")

	t.Run("duplicate name for the same user", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/api/task", gin.H{
			"category": "Small", "deadline": "2026-11-05", "description": "d",
			"nameTask": "report", "status": "Pending", "userId": "u1",
		}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list renders ISO timestamps", func(t *testing.T) {
		w := api.do(t, http.MethodGet, "/api/tasks?userId=u1", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var tasks []struct {
			ID        string  `json:"id"`
			Deadline  string  `json:"deadline"`
			GroupName *string `json:"groupName"`
		}
		decode(t, w, &tasks)
		require.Len(t, tasks, 1)
		assert.Equal(t, id, tasks[0].ID)
		assert.Equal(t, "2026-11-05T14:30:00.000Z", tasks[0].Deadline)
		assert.Nil(t, tasks[0].GroupName)
	})

	t.Run("status changes", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/api/task/complete", gin.H{"taskId": id}, "")
		assert.Equal(t, http.StatusOK, w.Code)
		w = api.do(t, http.MethodPost, "/api/task/pending", gin.H{"taskId": "missing"}, "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = api.do(t, http.MethodPut, "/api/tareas/"+id, gin.H{"status": "In-progress"}, "")
		assert.Equal(t, http.StatusOK, w.Code)
		stored, err := api.mem.GetTask(t.Context(), id)
		require.NoError(t, err)
		assert.Equal(t, "In progress", stored.Status)

		w = api.do(t, http.MethodPut, "/api/tareas/"+id, gin.H{"status": "Archived"}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		w = api.do(t, http.MethodPut, "/api/tareas/missing", gin.H{"status": "Done"}, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("edit", func(t *testing.T) {
		w := api.do(t, http.MethodPatch, "/api/task/edit", gin.H{"taskId": id, "status": "Archived"}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		w = api.do(t, http.MethodPatch, "/api/task/edit", gin.H{"taskId": id}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		w = api.do(t, http.MethodPatch, "/api/task/edit", gin.H{"taskId": id, "nameTask": "renamed"}, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		w := api.do(t, http.MethodDelete, "/api/task/delete", gin.H{"taskId": id}, "")
		assert.Equal(t, http.StatusOK, w.Code)
		w = api.do(t, http.MethodDelete, "/api/task/delete", gin.H{"taskId": id}, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGroupEndpoints(t *testing.T) {
	api := newTestAPI(t, false)

	w := api.do(t, http.MethodPost, "/api/groups", gin.H{
		"created_by": "u1", "description": "team", "members": "u2", "name": "Alpha",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "members must be an array", message(t, w))

	w = api.do(t, http.MethodPost, "/api/groups", gin.H{
		"created_by": "u1", "description": "team", "members": []string{"u2"}, "name": "Alpha",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var group struct {
		ID        string   `json:"id"`
		Members   []string `json:"members"`
		CreatedAt string   `json:"created_at"`
	}
	decode(t, w, &group)
	assert.NotEmpty(t, group.ID)
	assert.NotEmpty(t, group.CreatedAt)

	w = api.do(t, http.MethodGet, "/api/groups?userId=u1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = api.do(t, http.MethodGet, "/api/misgrupos?userId=u1", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = api.do(t, http.MethodGet, "/api/misgrupos?userId=u2", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodPut, "/api/groups/"+group.ID, gin.H{"name": "Beta", "description": "d", "members": []string{"u3"}}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = api.do(t, http.MethodPut, "/api/groups/missing", gin.H{"name": "Beta", "description": "d", "members": []string{"u3"}}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(t, http.MethodDelete, "/api/groups/"+group.ID, nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = api.do(t, http.MethodDelete, "/api/groups/"+group.ID+"?userId=u2", nil, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = api.do(t, http.MethodDelete, "/api/groups/"+group.ID+"?userId=u1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = api.do(t, http.MethodDelete, "/api/groups/"+group.ID+"?userId=u1", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserEndpoints(t *testing.T) {
	api := newTestAPI(t, false)

	w := api.do(t, http.MethodGet, "/api/usuarios", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	uid, _ := api.signUpAndLogin(t, "ana@example.com")

	w = api.do(t, http.MethodGet, "/api/usuarios", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var users []struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Rol   string `json:"rol"`
	}
	decode(t, w, &users)
	require.Len(t, users, 1)
	assert.Equal(t, uid, users[0].ID)

	w = api.do(t, http.MethodPut, "/api/usuarios/"+uid, gin.H{"email": "ana@corp.com", "username": "ana", "rol": "Manager"}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = api.do(t, http.MethodPut, "/api/usuarios/missing", gin.H{"email": "a@b.co", "username": "a", "rol": "r"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(t, http.MethodGet, "/api/usuarios/export", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Accounts")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ana@corp.com", rows[1][1])
	assert.Equal(t, "Manager", rows[1][3])
}
