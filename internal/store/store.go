package store

import (
	"context"
	"encoding/json"
	"fmt"

	"orbosis/internal/utils"
	"orbosis/pkg/types"
)

// Storage keys. The generic current-user record and the role-specific
// record are both written on every successful submission; the token and
// role marker ride alongside them.
const (
	KeyCurrentUser = "userData"
	KeyAuthToken   = "authToken"
	KeyRole        = "role"
	KeyVolunteers  = "volunteers"
)

func RoleKey(role types.Role) string {
	return string(role) + "Data"
}

// ProfileStore is the keyed persistence port shared by every workflow
// and view. Get tolerates missing and corrupt entries by returning
// (nil, nil); callers fall back to a demo profile when that happens.
// Set overwrites wholesale, last writer wins. Merge overlays the
// non-zero fields of patch onto whatever is stored, preserving an
// already-set role, and is only used by the login flow.
type ProfileStore interface {
	Get(ctx context.Context, key string) (*types.Profile, error)
	Set(ctx context.Context, key string, profile *types.Profile) error
	Merge(ctx context.Context, key string, patch *types.Profile) (*types.Profile, error)
	Delete(ctx context.Context, key string) error

	// Raw entries: auth token, role marker, cached volunteer lists.
	GetValue(ctx context.Context, key string) (string, error)
	SetValue(ctx context.Context, key, value string) error
}

func encodeProfile(profile *types.Profile) (string, error) {
	data, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("encode profile: %w", err)
	}
	return string(data), nil
}

// decodeProfile treats a corrupt entry the same as a missing one.
func decodeProfile(raw string) *types.Profile {
	if raw == "" {
		return nil
	}

	var profile types.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil
	}

	return &profile
}

func mergeProfiles(existing, patch *types.Profile) *types.Profile {
	if existing == nil {
		merged := *patch
		return &merged
	}

	merged := *existing
	role := existing.Role
	utils.MergeNonZero(&merged, patch)
	if role != "" {
		merged.Role = role
	}

	return &merged
}
