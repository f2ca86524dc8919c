package server

import (
	"net/http"

	"orbosis/pkg/types"
)

func (s *Service) handlePostLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.badRequest(w, "invalid form payload")
		return
	}

	form := new(types.LoginForm)
	if err := decoder.Decode(form, r.Form); err != nil {
		s.logger.WithError(err).Error("failed to decode login form")
		s.badRequest(w, "invalid form payload")
		return
	}

	profile, err := s.workflow.Login(r.Context(), form)
	if err != nil {
		s.submissionError(w, err)
		return
	}

	s.setAuthCookie(w, r)

	s.respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    profile,
		"role":    profile.Role,
	})
}

func (s *Service) handlePostLogout(w http.ResponseWriter, r *http.Request) {
	s.workflow.Logout(r.Context())
	s.clearAuthCookie(w)

	s.respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
