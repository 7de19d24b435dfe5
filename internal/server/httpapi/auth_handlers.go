package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"github.com/dmitrijs2005/projecthub/internal/common"
)

// emailRegex requires local@domain.tld with a TLD segment of at least two
// characters.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

type signupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type signupResponse struct {
	User signupUser `json:"user"`
}

// signupUser is the created identity minus the password hash.
type signupUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	ID    string `json:"id"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" || req.Name == "" {
		writeMessage(w, http.StatusBadRequest, "Provide email, name, password")
		return
	}

	if !emailRegex.MatchString(req.Email) {
		writeMessage(w, http.StatusBadRequest, "Provide a valid email address")
		return
	}

	user, err := s.users.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			writeMessage(w, http.StatusBadRequest, "User already exists")
			return
		}
		s.forwardError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "email", user.Email)

	writeJSON(w, http.StatusCreated, signupResponse{
		User: signupUser{Email: user.Email, Name: user.Name, ID: user.ID},
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AuthToken string `json:"authToken"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Provide email and password")
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			// Unknown account. Kept as 401 while a wrong password is a 400;
			// clients depend on the asymmetry.
			writeMessage(w, http.StatusUnauthorized, "User not found")
		case errors.Is(err, common.ErrorInvalidLoginPassword):
			writeMessage(w, http.StatusBadRequest, "Unable to authorize the user")
		default:
			s.forwardError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{AuthToken: token})
}

// handleVerify echoes the decoded claims back; clients use it to confirm a
// stored token is still valid.
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	writeJSON(w, http.StatusOK, claims)
}
