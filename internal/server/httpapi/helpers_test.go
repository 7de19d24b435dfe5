package httpapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/projecthub/internal/logging"
	"github.com/dmitrijs2005/projecthub/internal/server/auth"
	"github.com/dmitrijs2005/projecthub/internal/server/models"
)

const testSecret = "test-secret"

type fakeUserService struct {
	registerOut *models.User
	registerErr error

	loginOut string
	loginErr error
}

func (f *fakeUserService) Register(ctx context.Context, email, name, password string) (*models.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registerOut, nil
}

func (f *fakeUserService) Login(ctx context.Context, email, password string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.loginOut, nil
}

type fakeProjectService struct {
	createOut *models.ProjectSummary
	createErr error

	getOut    *models.Project
	getErr    error
	getCalled bool

	listOut []*models.Project
	listErr error

	updateOut *models.ProjectSummary
	updateErr error

	deleteErr    error
	deleteCalled bool

	taskOut    *models.ProjectSummary
	taskErr    error
	taskCalled bool
}

func (f *fakeProjectService) CreateProject(ctx context.Context, title, description string) (*models.ProjectSummary, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeProjectService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	f.getCalled = true
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeProjectService) ListProjects(ctx context.Context) ([]*models.Project, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeProjectService) UpdateProject(ctx context.Context, id, title, description string) (*models.ProjectSummary, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeProjectService) DeleteProject(ctx context.Context, id string) error {
	f.deleteCalled = true
	return f.deleteErr
}

func (f *fakeProjectService) CreateTask(ctx context.Context, title, description, projectID string) (*models.ProjectSummary, error) {
	f.taskCalled = true
	if f.taskErr != nil {
		return nil, f.taskErr
	}
	return f.taskOut, nil
}

func newTestServer(t *testing.T, us UserService, ps ProjectService) *Server {
	t.Helper()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewServer(":0", logger, us, ps, testSecret)
}

func bearerToken(t *testing.T) string {
	t.Helper()
	tok, err := auth.GenerateToken("u-1", "a@b.co", "A", []byte(testSecret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	return tok
}

func doRequest(t *testing.T, s *Server, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)
	return rec
}

func newAuthHeaderRequest(t *testing.T, header string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/auth/verify", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	return req
}

func serve(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)
	return rec
}
