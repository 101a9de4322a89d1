package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"blog_api/internal/models"
	"blog_api/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      uint
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	principal     models.Principal
	parseErr      error

	lastSignUp      service.SignUpParams
	lastGenUsername string
	lastGenPassword string
	lastParseToken  string
}

func (m *mockAuth) SignUp(_ context.Context, p service.SignUpParams) (uint, error) {
	m.lastSignUp = p
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (models.Principal, error) {
	m.lastParseToken = token
	return m.principal, m.parseErr
}

type mockBlog struct {
	listResp  []models.Post
	listErr   error
	getResp   models.Post
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	lastCaller models.Principal
	lastID     uint
	lastParams service.PostParams
	calls      int
}

func (m *mockBlog) List(_ context.Context, caller models.Principal) ([]models.Post, error) {
	m.calls++
	m.lastCaller = caller
	return m.listResp, m.listErr
}
func (m *mockBlog) Get(_ context.Context, id uint) (models.Post, error) {
	m.calls++
	m.lastID = id
	return m.getResp, m.getErr
}
func (m *mockBlog) Create(_ context.Context, caller models.Principal, p service.PostParams) (models.Post, error) {
	m.calls++
	m.lastCaller = caller
	m.lastParams = p
	return models.Post{ID: 1, Title: p.Title, Content: p.Content, OwnerID: caller.ID}, m.createErr
}
func (m *mockBlog) Update(_ context.Context, caller models.Principal, id uint, p service.PostParams) error {
	m.calls++
	m.lastCaller = caller
	m.lastID = id
	m.lastParams = p
	return m.updateErr
}
func (m *mockBlog) Delete(_ context.Context, caller models.Principal, id uint) error {
	m.calls++
	m.lastCaller = caller
	m.lastID = id
	return m.deleteErr
}

type mockUsers struct {
	user        models.User
	meErr       error
	passwordErr error
	phoneErr    error

	lastCurrent string
	lastNext    string
	lastPhone   string
}

func (m *mockUsers) Me(_ context.Context, _ models.Principal) (models.User, error) {
	return m.user, m.meErr
}
func (m *mockUsers) ChangePassword(_ context.Context, _ models.Principal, current, next string) error {
	m.lastCurrent = current
	m.lastNext = next
	return m.passwordErr
}
func (m *mockUsers) ChangePhoneNumber(_ context.Context, _ models.Principal, phone string) error {
	m.lastPhone = phone
	return m.phoneErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// do sends one request through r and returns the recorder.
func do(t *testing.T, r http.Handler, method, path string, body io.Reader, hdr http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vv := range hdr {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
