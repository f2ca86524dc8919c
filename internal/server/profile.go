package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"orbosis/internal/dashboard"
	"orbosis/internal/store"
	"orbosis/pkg/types"
)

// currentProfile resolves the member the way the dashboard views do:
// session first, then the generic record, then the donor record, and
// finally the demo fallback so an empty store never renders blank.
func (s *Service) currentProfile(ctx context.Context) (*types.Profile, bool) {
	if profile := s.session.Current(); profile != nil {
		return profile, false
	}

	for _, key := range []string{store.KeyCurrentUser, store.RoleKey(types.RoleDonor)} {
		profile, err := s.store.Get(ctx, key)
		if err != nil {
			s.logger.WithError(err).WithField("key", key).Error("failed to read profile record")
			continue
		}
		if profile != nil {
			return profile, false
		}
	}

	return dashboard.FallbackDonor(), true
}

func (s *Service) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, demo := s.currentProfile(r.Context())

	s.respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    profile,
		"demo":    demo,
	})
}

func (s *Service) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	updated := new(types.Profile)
	if err := json.NewDecoder(r.Body).Decode(updated); err != nil {
		s.badRequest(w, "invalid profile payload")
		return
	}

	profile, err := s.workflow.UpdateProfile(r.Context(), updated)
	if err != nil {
		if errors.Is(err, types.ErrRoleImmutable) {
			s.respondJSON(w, http.StatusConflict, map[string]any{
				"success": false,
				"error":   types.ErrRoleImmutable.Error(),
			})
			return
		}
		s.submissionError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    profile,
	})
}

func (s *Service) handleGetDashboard(w http.ResponseWriter, r *http.Request) {
	profile, demo := s.currentProfile(r.Context())

	payload := map[string]any{
		"success": true,
		"role":    profile.Role,
		"user":    profile,
		"demo":    demo,
	}

	switch profile.Role {
	case types.RoleVolunteer:
		payload["stats"] = dashboard.VolunteerStats(profile)
	default:
		payload["stats"] = dashboard.DonorStats(profile)
		payload["donationAmountDisplay"] = dashboard.DisplayAmount(profile)
	}

	s.respondJSON(w, http.StatusOK, payload)
}
