package fakeapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type generateRequest struct {
	Transcript string `json:"transcript"`
	Format     string `json:"format"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := s.store.register(c.Email, []byte(c.Password))
	switch {
	case errors.Is(err, errMissingAuthData):
		writeMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	case errors.Is(err, errUserExists):
		writeMessage(w, http.StatusBadRequest, "User already exists")
		return
	case err != nil:
		writeMessage(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	s.log.Info(r.Context(), "account registered", "id", a.id, "owner", a.isOwner)
	s.issueToken(w, r, a)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := s.store.login(c.Email, []byte(c.Password))
	switch {
	case errors.Is(err, errMissingAuthData):
		writeMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	case err != nil:
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	s.issueToken(w, r, a)
}

func (s *Server) issueToken(w http.ResponseWriter, r *http.Request, a *account) {
	token, err := GenerateToken(a.id, a.isAdmin, a.isOwner, s.secret, s.ttl)
	if err != nil {
		s.log.Error(r.Context(), "token signing failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Authentication failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) decodeTranscript(w http.ResponseWriter, r *http.Request) (generateRequest, bool) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	if strings.TrimSpace(req.Transcript) == "" {
		writeError(w, http.StatusBadRequest, "Transcript is required")
		return req, false
	}
	return req, true
}

func (s *Server) handleGenerateChapters(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeTranscript(w, r)
	if !ok {
		return
	}

	format, err := models.ParseFormat(req.Format)
	if req.Format == "" {
		format, err = models.FormatMarkdown, nil
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unsupported format")
		return
	}

	out := chapters(req.Transcript, format)
	s.store.addHistory(userID(r), models.HistoryRecord{
		Text: req.Transcript, Result: out, Format: string(format), Tool: string(models.ToolChapters),
	})
	writeJSON(w, http.StatusOK, map[string]string{"chapters": out})
}

func (s *Server) handleGenerateTitles(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeTranscript(w, r)
	if !ok {
		return
	}

	out := titles(req.Transcript)
	s.store.addHistory(userID(r), models.HistoryRecord{
		Text: req.Transcript, Result: out, Tool: string(models.ToolTitles),
	})
	writeJSON(w, http.StatusOK, map[string]string{"titles": out})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.profile(userID(r)))
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	var p models.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, s.store.setProfile(userID(r), p))
}

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.listHistory(userID(r)))
}

func (s *Server) handleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	if err := s.store.deleteHistory(userID(r), chi.URLParam(r, "id")); err != nil {
		writeMessage(w, http.StatusNotFound, "History item not found")
		return
	}
	writeMessage(w, http.StatusOK, "Deleted")
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.users())
}

func (s *Server) handleToggleAdmin(w http.ResponseWriter, r *http.Request) {
	u, err := s.store.toggleAdmin(chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, errUserNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	case errors.Is(err, errOwnerImmutable):
		writeMessage(w, http.StatusForbidden, "Cannot modify owner")
		return
	}

	s.log.Info(r.Context(), "admin flag toggled", "id", u.ID, "isAdmin", u.IsAdmin)
	writeJSON(w, http.StatusOK, map[string]models.UserSummary{"user": u})
}
