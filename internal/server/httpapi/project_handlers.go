package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

type projectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ProjectID   string `json:"projectId"`
}

// validID reports whether id is a well-formed identity reference. Handlers
// reject malformed ids before any store query runs.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := s.projects.CreateProject(r.Context(), req.Title, req.Description)
	if err != nil {
		s.forwardError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	list, err := s.projects.ListProjects(r.Context())
	if err != nil {
		s.forwardError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("projectId")
	if !validID(projectID) {
		writeMessage(w, http.StatusBadRequest, "Specified id is not valid")
		return
	}

	// An absent project is served as a 200 with a null body; absence is
	// the caller's condition to detect.
	p, err := s.projects.GetProject(r.Context(), projectID)
	if err != nil {
		s.forwardError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("projectId")
	if !validID(projectID) {
		writeMessage(w, http.StatusBadRequest, "Specified id is not valid")
		return
	}

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := s.projects.UpdateProject(r.Context(), projectID, req.Title, req.Description)
	if err != nil {
		s.forwardError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("projectId")
	if !validID(projectID) {
		writeMessage(w, http.StatusBadRequest, "Specified id is not valid")
		return
	}

	if err := s.projects.DeleteProject(r.Context(), projectID); err != nil {
		s.forwardError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !validID(req.ProjectID) {
		writeMessage(w, http.StatusBadRequest, "Specified id is not valid")
		return
	}

	p, err := s.projects.CreateTask(r.Context(), req.Title, req.Description, req.ProjectID)
	if err != nil {
		s.forwardError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, p)
}
