// Package register orchestrates member submissions: validate, normalize,
// forward upstream best-effort, then always persist locally and publish
// the session. A registration succeeds the moment the local writes land;
// only validation can fail it.
package register

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"orbosis/internal/api"
	"orbosis/internal/session"
	"orbosis/internal/store"
	"orbosis/internal/utils"
	"orbosis/pkg/types"

	"github.com/sirupsen/logrus"
)

const (
	donorRegisterPath       = "/api/donor/register"
	volunteerRegisterPath   = "/api/volunteer/register"
	beneficiaryRegisterPath = "/api/beneficiary/register"
	loginPath               = "/api/auth/login"
	profilePath             = "/api/profile"
)

type Workflow struct {
	logger  *logrus.Logger
	api     *api.Client
	store   store.ProfileStore
	session *session.Context
}

func New(logger *logrus.Logger, apiClient *api.Client, profileStore store.ProfileStore, sessionCtx *session.Context) *Workflow {
	return &Workflow{
		logger:  logger,
		api:     apiClient,
		store:   profileStore,
		session: sessionCtx,
	}
}

// upstreamResponse is the loosely specified envelope the backend returns
// for registrations and logins.
type upstreamResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Role    string `json:"role"`
	ID      string `json:"id"`
	MongoID string `json:"_id"`
	User    *struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

func (r *upstreamResponse) serverID() string {
	if r == nil {
		return ""
	}
	if r.User != nil && r.User.ID != "" {
		return r.User.ID
	}
	if r.ID != "" {
		return r.ID
	}
	return r.MongoID
}

func (w *Workflow) RegisterDonor(ctx context.Context, form *types.DonorRegistrationForm) (*types.Profile, error) {
	if err := validateDonor(form); err != nil {
		return nil, err
	}

	profile := normalizeDonor(form, time.Now())

	fields := map[string]string{
		"name":              profile.FullName,
		"organisationName":  profile.OrganisationName,
		"contactNumber":     profile.Phone,
		"email":             profile.Email,
		"address":           profile.Address,
		"panNumber":         profile.PANNumber,
		"gstNumber":         profile.GSTNumber,
		"modeofDonation":    profile.ModeOfDonation,
		"donationAmount":    profile.DonationAmountRaw,
		"donationFrequency": profile.DonationFrequency,
		"consentForUpdate":  profile.ConsentForUpdate,
	}

	w.submitRemote(ctx, donorRegisterPath, fields, "uploadPaymentProof", form.PaymentProof, profile)
	w.persist(ctx, profile)
	w.session.Set(profile)

	return profile, nil
}

func (w *Workflow) RegisterVolunteer(ctx context.Context, form *types.VolunteerRegistrationForm) (*types.Profile, error) {
	if err := validateVolunteer(form); err != nil {
		return nil, err
	}

	profile := normalizeVolunteer(form, time.Now())

	fields := map[string]string{
		"fullName":               profile.FullName,
		"gender":                 profile.Gender,
		"dob":                    profile.DOB,
		"contactNumber":          profile.Phone,
		"email":                  profile.Email,
		"address":                profile.Address,
		"skills":                 strings.Join(profile.Skills, ","),
		"profession":             profile.Profession,
		"areaOfVolunteering":     profile.AreaOfVolunteering,
		"availability":           profile.Availability,
		"emergencyContactNumber": profile.EmergencyContactNumber,
	}

	w.submitRemote(ctx, volunteerRegisterPath, fields, "uploadIdProof", form.IDProof, profile)
	w.persist(ctx, profile)
	w.session.Set(profile)

	return profile, nil
}

func (w *Workflow) RegisterBeneficiary(ctx context.Context, form *types.BeneficiaryRegistrationForm) (*types.Profile, error) {
	if err := validateBeneficiary(form); err != nil {
		return nil, err
	}

	profile := normalizeBeneficiary(form, time.Now())

	payload := map[string]any{
		"fullName":           profile.FullName,
		"gender":             profile.Gender,
		"dob":                profile.DOB,
		"contactNumber":      profile.Phone,
		"address":            profile.Address,
		"familyDetails":      profile.FamilyDetails,
		"typesOfSupport":     profile.TypesOfSupport,
		"governmentId":       profile.GovernmentID,
		"specialRequirement": profile.SpecialRequirement,
		"consent":            profile.Consent,
	}

	var resp upstreamResponse
	if err := w.api.Post(ctx, beneficiaryRegisterPath, payload, &resp); err != nil {
		w.logger.WithError(err).Warn("backend unavailable, proceeding with local storage")
	} else if id := resp.serverID(); id != "" {
		profile.ID = id
	}

	w.persist(ctx, profile)
	w.session.Set(profile)

	return profile, nil
}

// Login authenticates upstream when it can and falls back to a locally
// built identity when it cannot; either way the identity is merged over
// any previously stored role record so history like past donation
// amounts survives signing back in.
func (w *Workflow) Login(ctx context.Context, form *types.LoginForm) (*types.Profile, error) {
	if err := validateLogin(form); err != nil {
		return nil, err
	}

	role := types.Role(form.Role)
	email := strings.ToLower(strings.TrimSpace(form.Email))

	identity := &types.Profile{
		FullName: displayNameFromEmail(email),
		Email:    email,
		Role:     role,
	}

	token := ""
	var resp upstreamResponse
	err := w.api.Post(ctx, loginPath, map[string]string{
		"email":    email,
		"password": form.Password,
		"role":     form.Role,
	}, &resp)
	if err != nil {
		w.logger.WithError(err).Warn("login failed upstream, continuing with local identity")
	} else {
		token = resp.Token
		if resp.User != nil {
			if resp.User.Name != "" {
				identity.FullName = resp.User.Name
			}
			if resp.User.Email != "" {
				identity.Email = strings.ToLower(resp.User.Email)
			}
			if resp.User.ID != "" {
				identity.ID = resp.User.ID
			}
		}
		if resp.Role != "" && types.Role(resp.Role).Valid() {
			identity.Role = types.Role(resp.Role)
		}
	}

	roleKey := store.RoleKey(identity.Role)

	profile := identity
	existing, getErr := w.store.Get(ctx, roleKey)
	if getErr != nil {
		w.logger.WithError(getErr).WithField("key", roleKey).Error("failed to read stored profile")
	}
	if existing != nil {
		merged, mergeErr := w.store.Merge(ctx, roleKey, identity)
		if mergeErr != nil {
			w.logger.WithError(mergeErr).WithField("key", roleKey).Error("failed to merge stored profile")
		} else {
			profile = merged
		}
	}

	if err := w.store.Set(ctx, store.KeyCurrentUser, profile); err != nil {
		w.logger.WithError(err).Error("failed to write current user record")
	}

	if token == "" {
		token = mintToken(profile.Role)
	}
	w.setAuthMarkers(ctx, token, profile.Role)

	w.session.Set(profile)

	return profile, nil
}

// UpdateProfile is a full replace from the editor's perspective. The
// role is immutable once set.
func (w *Workflow) UpdateProfile(ctx context.Context, updated *types.Profile) (*types.Profile, error) {
	if !required(updated.FullName) {
		return nil, invalid("fullName", "full name is required")
	}
	if updated.Email != "" && !validEmail(updated.Email) {
		return nil, invalid("email", "enter a valid email address")
	}

	current, err := w.store.Get(ctx, store.KeyCurrentUser)
	if err != nil {
		w.logger.WithError(err).Error("failed to read current user record")
	}
	if current != nil && current.Role != "" {
		if updated.Role == "" {
			updated.Role = current.Role
		} else if updated.Role != current.Role {
			return nil, types.ErrRoleImmutable
		}
		if updated.ID == "" {
			updated.ID = current.ID
		}
	}

	// Without a resolvable role there is no record key to write under.
	if !updated.Role.Valid() {
		return nil, invalid("role", "a valid role is required")
	}

	if err := w.api.Put(ctx, profilePath, updated, nil); err != nil {
		w.logger.WithError(err).Warn("backend unavailable, profile updated locally only")
	}

	w.persistProfileOnly(ctx, updated)
	w.session.Set(updated)

	return updated, nil
}

// Logout clears the generic record and the auth markers. The
// role-specific record is deliberately kept; it is the history the next
// login merges over.
func (w *Workflow) Logout(ctx context.Context) {
	for _, key := range []string{store.KeyCurrentUser, store.KeyAuthToken, store.KeyRole} {
		if err := w.store.Delete(ctx, key); err != nil {
			w.logger.WithError(err).WithField("key", key).Error("failed to clear storage key")
		}
	}

	w.session.Clear()
}

// submitRemote forwards the registration upstream. Every failure mode,
// transport error, non-2xx status, or an unparseable body, is logged and
// swallowed; a usable server-assigned id is the only thing taken from a
// success.
func (w *Workflow) submitRemote(ctx context.Context, path string, fields map[string]string, fileField string, attachment *types.Attachment, profile *types.Profile) {
	var resp upstreamResponse
	var err error

	if attachment != nil {
		err = w.api.PostMultipart(ctx, path, fields, map[string]*types.Attachment{fileField: attachment}, &resp)
	} else {
		payload := make(map[string]string, len(fields))
		for k, v := range fields {
			payload[k] = v
		}
		err = w.api.Post(ctx, path, payload, &resp)
	}

	if err != nil {
		w.logger.WithError(err).WithField("path", path).Warn("backend unavailable, proceeding with local storage")
		return
	}

	if id := resp.serverID(); id != "" {
		profile.ID = id
	}
}

// persist performs the local dual-write plus auth markers. Storage
// failures are logged and do not fail the submission.
func (w *Workflow) persist(ctx context.Context, profile *types.Profile) {
	w.persistProfileOnly(ctx, profile)
	w.setAuthMarkers(ctx, mintToken(profile.Role), profile.Role)
}

func (w *Workflow) persistProfileOnly(ctx context.Context, profile *types.Profile) {
	for _, key := range []string{store.RoleKey(profile.Role), store.KeyCurrentUser} {
		if err := w.store.Set(ctx, key, profile); err != nil {
			w.logger.WithError(err).WithField("key", key).Error("failed to write profile record")
		}
	}
}

func (w *Workflow) setAuthMarkers(ctx context.Context, token string, role types.Role) {
	if err := w.store.SetValue(ctx, store.KeyAuthToken, token); err != nil {
		w.logger.WithError(err).Error("failed to write auth token")
	}
	if err := w.store.SetValue(ctx, store.KeyRole, string(role)); err != nil {
		w.logger.WithError(err).Error("failed to write role marker")
	}
}

// mintToken builds the local placeholder token, e.g. donor_1719830000000_x4T9QpLzRwnK.
func mintToken(role types.Role) string {
	return fmt.Sprintf("%s_%s_%s", role, strconv.FormatInt(time.Now().UnixMilli(), 10), utils.NanoID())
}
