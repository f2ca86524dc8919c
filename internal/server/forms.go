package server

import (
	"net/http"

	"orbosis/pkg/types"
)

// Footer forms. Both are forwarded upstream best-effort and acknowledged
// regardless; losing a newsletter signup to a backend outage is not a
// member-visible failure.

func (s *Service) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.badRequest(w, "invalid form payload")
		return
	}

	form := new(types.ContactForm)
	if err := decoder.Decode(form, r.Form); err != nil {
		s.badRequest(w, "invalid form payload")
		return
	}

	if form.Name == "" || form.Message == "" {
		s.badRequest(w, "name and message are required")
		return
	}

	if err := s.api.Post(r.Context(), "/api/contact", form, nil); err != nil {
		s.logger.WithError(err).Warn("failed to forward contact submission")
	}

	s.respondJSON(w, http.StatusAccepted, map[string]any{"success": true})
}

func (s *Service) handleNewsletterSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.badRequest(w, "invalid form payload")
		return
	}

	form := new(types.NewsletterSignupForm)
	if err := decoder.Decode(form, r.Form); err != nil {
		s.badRequest(w, "invalid form payload")
		return
	}

	if form.Email == "" {
		s.badRequest(w, "email is required")
		return
	}

	if err := s.api.Post(r.Context(), "/api/newsletter", form, nil); err != nil {
		s.logger.WithError(err).Warn("failed to forward newsletter signup")
	}

	s.respondJSON(w, http.StatusAccepted, map[string]any{"success": true})
}
