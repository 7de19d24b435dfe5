package httpapi

import (
	"encoding/json"
	"net/http"
)

// messageBody is the error envelope every failure response uses.
type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, messageBody{Message: message})
}

// forwardError is the single translation point for failures the handlers
// do not classify themselves: everything that reaches it becomes a 500.
func (s *Server) forwardError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), err.Error(), "method", r.Method, "path", r.URL.Path)
	writeMessage(w, http.StatusInternalServerError, "Internal server error")
}
