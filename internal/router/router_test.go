package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/todo-api/internal/constants"
	"github.com/yukikurage/todo-api/internal/database"
	"github.com/yukikurage/todo-api/internal/dto"
	"github.com/yukikurage/todo-api/internal/repository"
	"github.com/yukikurage/todo-api/internal/utils"
)

// APITestSuite drives the full HTTP surface against a store backend
type APITestSuite struct {
	suite.Suite
	newRepo func() repository.UserRepository
	handler http.Handler
}

func TestAPI_MemoryStore(t *testing.T) {
	suite.Run(t, &APITestSuite{newRepo: repository.NewMemoryUserRepository})
}

func TestAPI_SQLiteStore(t *testing.T) {
	s := &APITestSuite{}
	s.newRepo = func() repository.UserRepository {
		db, err := database.Connect("file::memory:", zerolog.Nop())
		s.Require().NoError(err)
		s.T().Cleanup(func() {
			_ = database.Close(db)
		})
		s.Require().NoError(database.Migrate(db, zerolog.Nop()))
		return repository.NewUserRepository(db)
	}
	suite.Run(t, s)
}

func (suite *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.handler = New(suite.newRepo(), Options{Logger: zerolog.Nop()})
}

func (suite *APITestSuite) do(method, path, username string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if username != "" {
		req.Header.Set(constants.HeaderUsername, username)
	}

	w := httptest.NewRecorder()
	suite.handler.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) decode(w *httptest.ResponseRecorder, v interface{}) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (suite *APITestSuite) errorCode(w *httptest.ResponseRecorder) string {
	var body map[string]interface{}
	suite.decode(w, &body)
	code, _ := body["code"].(string)
	return code
}

func (suite *APITestSuite) createUser(name, username string) dto.UserDTO {
	w := suite.do(http.MethodPost, "/users", "", map[string]string{"name": name, "username": username})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var user dto.UserDTO
	suite.decode(w, &user)
	return user
}

func (suite *APITestSuite) createTodo(username, title string) dto.TodoDTO {
	w := suite.do(http.MethodPost, "/todos", username, map[string]string{"title": title, "deadline": "2030-01-01"})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var todo dto.TodoDTO
	suite.decode(w, &todo)
	return todo
}

func (suite *APITestSuite) listTodos(username string) []dto.TodoDTO {
	w := suite.do(http.MethodGet, "/todos", username, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var todos []dto.TodoDTO
	suite.decode(w, &todos)
	return todos
}

func (suite *APITestSuite) TestEndToEndScenario() {
	user := suite.createUser("A", "a")
	suite.True(utils.IsUUIDv4(user.ID))
	suite.False(user.Pro)
	suite.NotNil(user.Todos)
	suite.Empty(user.Todos)

	todo := suite.createTodo("a", "t")
	suite.False(todo.Done)

	w := suite.do(http.MethodPatch, "/todos/"+todo.ID+"/done", "a", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var done dto.TodoDTO
	suite.decode(w, &done)
	suite.True(done.Done)

	w = suite.do(http.MethodDelete, "/todos/"+todo.ID, "a", nil)
	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.Bytes())

	w = suite.do(http.MethodGet, "/todos", "a", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *APITestSuite) TestDuplicateUsername() {
	suite.createUser("A", "a")

	w := suite.do(http.MethodPost, "/users", "", map[string]string{"name": "B", "username": "a"})
	suite.Equal(http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	suite.decode(w, &body)
	suite.Equal("Username already exists", body["error"])

	w = suite.do(http.MethodGet, "/health", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decode(w, &body)
	suite.Equal(float64(1), body["users"])
}

func (suite *APITestSuite) TestGetUser() {
	user := suite.createUser("A", "a")
	suite.createTodo("a", "t")

	w := suite.do(http.MethodGet, "/users/"+user.ID, "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var got dto.UserDTO
	suite.decode(w, &got)
	suite.Equal(user.ID, got.ID)
	suite.Len(got.Todos, 1)

	missing := utils.NewID()
	w = suite.do(http.MethodGet, "/users/"+missing, "", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	var body map[string]interface{}
	suite.decode(w, &body)
	suite.Contains(body["error"], missing)
}

func (suite *APITestSuite) TestUpgradeToPro_OnlyOnce() {
	user := suite.createUser("A", "a")

	w := suite.do(http.MethodPatch, "/users/"+user.ID+"/pro", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var upgraded dto.UserDTO
	suite.decode(w, &upgraded)
	suite.True(upgraded.Pro)

	w = suite.do(http.MethodPatch, "/users/"+user.ID+"/pro", "", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("INVALID_OPERATION", suite.errorCode(w))

	w = suite.do(http.MethodPatch, "/users/"+utils.NewID()+"/pro", "", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestFreeTierQuota() {
	suite.createUser("A", "a")

	for i := 1; i <= 10; i++ {
		suite.createTodo("a", fmt.Sprintf("todo %d", i))
	}

	w := suite.do(http.MethodPost, "/todos", "a", map[string]string{"title": "eleventh", "deadline": "2030-01-01"})
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("QUOTA_EXCEEDED", suite.errorCode(w))
	suite.Len(suite.listTodos("a"), 10)
}

func (suite *APITestSuite) TestProUserHasNoQuota() {
	user := suite.createUser("A", "a")
	w := suite.do(http.MethodPatch, "/users/"+user.ID+"/pro", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	for i := 1; i <= 11; i++ {
		suite.createTodo("a", fmt.Sprintf("todo %d", i))
	}
	suite.Len(suite.listTodos("a"), 11)
}

func (suite *APITestSuite) TestListTodos_HeaderErrors() {
	w := suite.do(http.MethodGet, "/todos", "", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/todos", "ghost", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestCreateTodo_HeaderErrors() {
	body := map[string]string{"title": "t", "deadline": "2030-01-01"}

	w := suite.do(http.MethodPost, "/todos", "", body)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/todos", "ghost", body)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestTodoIDValidation() {
	suite.createUser("A", "a")

	w := suite.do(http.MethodPut, "/todos/not-a-uuid", "a", map[string]string{"title": "t", "deadline": "2030-01-01"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("INVALID_FORMAT", suite.errorCode(w))

	w = suite.do(http.MethodPatch, "/todos/123e4567-e89b-12d3-a456-426614174000/done", "a", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPatch, "/todos/"+utils.NewID()+"/done", "a", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	// unknown user wins over a malformed id
	w = suite.do(http.MethodPatch, "/todos/not-a-uuid/done", "ghost", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("NOT_FOUND", suite.errorCode(w))
}

func (suite *APITestSuite) TestTodosAreScopedToOwner() {
	suite.createUser("A", "a")
	suite.createUser("B", "b")
	todo := suite.createTodo("a", "mine")

	w := suite.do(http.MethodPatch, "/todos/"+todo.ID+"/done", "b", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodDelete, "/todos/"+todo.ID, "b", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	suite.Len(suite.listTodos("a"), 1)
	suite.Empty(suite.listTodos("b"))
}

func (suite *APITestSuite) TestUpdateTodo_KeepsIdentityFields() {
	suite.createUser("A", "a")
	before := suite.createTodo("a", "before")
	w := suite.do(http.MethodPatch, "/todos/"+before.ID+"/done", "a", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodPut, "/todos/"+before.ID, "a", map[string]string{"title": "after", "deadline": "2031-12-31T08:00:00Z"})
	suite.Require().Equal(http.StatusOK, w.Code)

	todos := suite.listTodos("a")
	suite.Require().Len(todos, 1)
	after := todos[0]
	suite.Equal(before.ID, after.ID)
	suite.Equal("after", after.Title)
	suite.Equal("2031-12-31T08:00:00Z", after.Deadline.UTC().Format("2006-01-02T15:04:05Z07:00"))
	suite.True(after.Done)
	suite.True(before.CreatedAt.Equal(after.CreatedAt))
}

func (suite *APITestSuite) TestUpdateTodo_InvalidBody() {
	suite.createUser("A", "a")
	todo := suite.createTodo("a", "t")

	w := suite.do(http.MethodPut, "/todos/"+todo.ID, "a", map[string]string{"title": "t"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("INVALID_INPUT", suite.errorCode(w))
}

func (suite *APITestSuite) TestDeleteTwice() {
	suite.createUser("A", "a")
	keep := suite.createTodo("a", "keep")
	drop := suite.createTodo("a", "drop")

	w := suite.do(http.MethodDelete, "/todos/"+drop.ID, "a", nil)
	suite.Require().Equal(http.StatusNoContent, w.Code)

	todos := suite.listTodos("a")
	suite.Require().Len(todos, 1)
	suite.Equal(keep.ID, todos[0].ID)

	w = suite.do(http.MethodDelete, "/todos/"+drop.ID, "a", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/todos", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", constants.HeaderUsername)

	w := httptest.NewRecorder()
	suite.handler.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
}
