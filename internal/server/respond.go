package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"orbosis/pkg/types"
)

func (s *Service) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Error("failed to encode response payload")
	}
}

func (s *Service) badRequest(w http.ResponseWriter, message string) {
	s.respondJSON(w, http.StatusBadRequest, map[string]any{
		"success": false,
		"error":   message,
	})
}

func (s *Service) unauthorized(w http.ResponseWriter) {
	s.respondJSON(w, http.StatusUnauthorized, map[string]any{
		"success": false,
		"error":   "authentication required",
	})
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	s.respondJSON(w, http.StatusInternalServerError, map[string]any{
		"success": false,
		"error":   "something went wrong",
	})
}

// submissionError maps a workflow error onto the wire. Validation is the
// only failure a submission surfaces; anything else is unexpected.
func (s *Service) submissionError(w http.ResponseWriter, err error) {
	var validation *types.ValidationError
	if errors.As(err, &validation) {
		s.respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"success": false,
			"field":   validation.Field,
			"error":   validation.Message,
		})
		return
	}

	s.logger.WithError(err).Error("unexpected submission error")
	s.internalServerError(w)
}
