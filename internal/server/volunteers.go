package server

import (
	"encoding/json"
	"net/http"
	"time"

	"orbosis/internal/register"
	"orbosis/internal/store"
	"orbosis/pkg/types"
)

const volunteersPath = "/api/volunteer/all"

type volunteerListResponse struct {
	Success    bool             `json:"success"`
	Volunteers []*types.Profile `json:"volunteers"`
}

// handleListVolunteers prefers the upstream directory and serves the
// locally cached list when the backend is down, the same degradation the
// management screen always had.
func (s *Service) handleListVolunteers(w http.ResponseWriter, r *http.Request) {
	var resp volunteerListResponse
	err := s.api.Get(r.Context(), volunteersPath, &resp)
	if err == nil && resp.Success {
		s.cacheVolunteers(r, resp.Volunteers)
		s.respondJSON(w, http.StatusOK, map[string]any{
			"success":    true,
			"volunteers": resp.Volunteers,
			"source":     "upstream",
		})
		return
	}
	if err != nil {
		s.logger.WithError(err).Warn("volunteer directory unavailable upstream, serving local copy")
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"volunteers": s.localVolunteers(r),
		"source":     "local",
	})
}

// handleCreateVolunteer is the admin flow: the record is created locally
// first and prepended to the cached directory.
func (s *Service) handleCreateVolunteer(w http.ResponseWriter, r *http.Request) {
	volunteer := new(types.Profile)
	if err := json.NewDecoder(r.Body).Decode(volunteer); err != nil {
		s.badRequest(w, "invalid volunteer payload")
		return
	}

	if volunteer.FullName == "" {
		s.respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"success": false,
			"field":   "fullName",
			"error":   "full name is required",
		})
		return
	}

	now := time.Now()
	volunteer.ID = register.NewLocalID()
	volunteer.Role = types.RoleVolunteer
	volunteer.RegistrationDate = now.UTC().Format(time.RFC3339)

	volunteers := append([]*types.Profile{volunteer}, s.localVolunteers(r)...)
	s.cacheVolunteers(r, volunteers)

	s.respondJSON(w, http.StatusCreated, map[string]any{
		"success":   true,
		"volunteer": volunteer,
	})
}

func (s *Service) localVolunteers(r *http.Request) []*types.Profile {
	raw, err := s.store.GetValue(r.Context(), store.KeyVolunteers)
	if err != nil {
		s.logger.WithError(err).Error("failed to read cached volunteers")
		return []*types.Profile{}
	}
	if raw == "" {
		return []*types.Profile{}
	}

	var volunteers []*types.Profile
	if err := json.Unmarshal([]byte(raw), &volunteers); err != nil {
		s.logger.WithError(err).Warn("cached volunteer list is corrupt, treating as empty")
		return []*types.Profile{}
	}

	return volunteers
}

func (s *Service) cacheVolunteers(r *http.Request, volunteers []*types.Profile) {
	data, err := json.Marshal(volunteers)
	if err != nil {
		s.logger.WithError(err).Error("failed to encode volunteer list")
		return
	}

	if err := s.store.SetValue(r.Context(), store.KeyVolunteers, string(data)); err != nil {
		s.logger.WithError(err).Error("failed to cache volunteer list")
	}
}
