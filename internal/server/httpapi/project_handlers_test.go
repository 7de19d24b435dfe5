package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/projecthub/internal/server/models"
)

const validProjectID = "3e3c2f6e-9f5a-4bdb-8f1c-1a2b3c4d5e6f"

func TestCreateProject_Success(t *testing.T) {
	ps := &fakeProjectService{
		createOut: &models.ProjectSummary{ID: validProjectID, Title: "Relaunch", TaskIDs: []string{}},
	}
	s := newTestServer(t, &fakeUserService{}, ps)

	rec := doRequest(t, s, http.MethodPost, "/api/projects",
		`{"title":"Relaunch","description":"new site"}`, bearerToken(t))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ProjectSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Relaunch", resp.Title)
	assert.Empty(t, resp.TaskIDs)
}

func TestListProjects_ExpandedTasks(t *testing.T) {
	now := time.Now()
	ps := &fakeProjectService{
		listOut: []*models.Project{
			{
				ID:    validProjectID,
				Title: "Relaunch",
				Tasks: []*models.Task{
					{ID: "11111111-1111-4111-8111-111111111111", Title: "Design", ProjectID: validProjectID, CreatedAt: now},
				},
				CreatedAt: now,
			},
		},
	}
	s := newTestServer(t, &fakeUserService{}, ps)

	rec := doRequest(t, s, http.MethodGet, "/api/projects", "", bearerToken(t))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []*models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	require.Len(t, resp[0].Tasks, 1)
	assert.Equal(t, "Design", resp[0].Tasks[0].Title)
	assert.Equal(t, validProjectID, resp[0].Tasks[0].ProjectID)
}

func TestGetProject_MalformedID(t *testing.T) {
	ps := &fakeProjectService{}
	s := newTestServer(t, &fakeUserService{}, ps)

	rec := doRequest(t, s, http.MethodGet, "/api/projects/not-a-uuid", "", bearerToken(t))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Specified id is not valid", decodeMessage(t, rec.Body.Bytes()))
	assert.False(t, ps.getCalled, "no store query may run for a malformed id")
}

func TestGetProject_AbsentIsNullBody(t *testing.T) {
	ps := &fakeProjectService{}
	s := newTestServer(t, &fakeUserService{}, ps)

	rec := doRequest(t, s, http.MethodGet, "/api/projects/"+validProjectID, "", bearerToken(t))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestUpdateProject_MalformedID(t *testing.T) {
	s := newTestServer(t, &fakeUserService{}, &fakeProjectService{})

	rec := doRequest(t, s, http.MethodPut, "/api/projects/42",
		`{"title":"T","description":"D"}`, bearerToken(t))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Specified id is not valid", decodeMessage(t, rec.Body.Bytes()))
}

func TestUpdateProject_Success(t *testing.T) {
	ps := &fakeProjectService{
		updateOut: &models.ProjectSummary{ID: validProjectID, Title: "New", TaskIDs: []string{"t-1"}},
	}
	s := newTestServer(t, &fakeUserService{}, ps)

	rec := doRequest(t, s, http.MethodPut, "/api/projects/"+validProjectID,
		`{"title":"New","description":""}`, bearerToken(t))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ProjectSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "New", resp.Title)
	assert.Equal(t, []string{"t-1"}, resp.TaskIDs)
}

func TestDeleteProject_NoContent(t *testing.T) {
	ps := &fakeProjectService{}
	s := newTestServer(t, &fakeUserService{}, ps)

	rec := doRequest(t, s, http.MethodDelete, "/api/projects/"+validProjectID, "", bearerToken(t))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.True(t, ps.deleteCalled)
}

func TestDeleteProject_MalformedID(t *testing.T) {
	ps := &fakeProjectService{}
	s := newTestServer(t, &fakeUserService{}, ps)

	rec := doRequest(t, s, http.MethodDelete, "/api/projects/oops", "", bearerToken(t))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, ps.deleteCalled)
}

func TestCreateTask_Success(t *testing.T) {
	ps := &fakeProjectService{
		taskOut: &models.ProjectSummary{ID: validProjectID, Title: "Relaunch", TaskIDs: []string{"t-1"}},
	}
	s := newTestServer(t, &fakeUserService{}, ps)

	rec := doRequest(t, s, http.MethodPost, "/api/tasks",
		`{"title":"Design","description":"wireframes","projectId":"`+validProjectID+`"}`, bearerToken(t))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.ProjectSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"t-1"}, resp.TaskIDs)
}

func TestCreateTask_MalformedProjectID(t *testing.T) {
	ps := &fakeProjectService{}
	s := newTestServer(t, &fakeUserService{}, ps)

	rec := doRequest(t, s, http.MethodPost, "/api/tasks",
		`{"title":"Design","description":"","projectId":"nope"}`, bearerToken(t))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Specified id is not valid", decodeMessage(t, rec.Body.Bytes()))
	assert.False(t, ps.taskCalled)
}

func TestCreateProject_ServiceErrorIsForwarded(t *testing.T) {
	ps := &fakeProjectService{createErr: errors.New("db down")}
	s := newTestServer(t, &fakeUserService{}, ps)

	rec := doRequest(t, s, http.MethodPost, "/api/projects",
		`{"title":"T","description":""}`, bearerToken(t))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeMessage(t, rec.Body.Bytes()))
}

func TestHealth_NoAuthRequired(t *testing.T) {
	s := newTestServer(t, &fakeUserService{}, &fakeProjectService{})

	rec := doRequest(t, s, http.MethodGet, "/health", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "OK")
}
