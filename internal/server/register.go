package server

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"orbosis/internal/dashboard"
	"orbosis/internal/store"
	"orbosis/pkg/types"
)

// Registration bodies may carry a file, so allow a little headroom over
// the 5MB attachment cap before the workflow's own check rejects it with
// a proper field error.
const maxRegistrationBody = 8 << 20

func (s *Service) handleRegisterDonor(w http.ResponseWriter, r *http.Request) {
	form := new(types.DonorRegistrationForm)
	attachment, err := s.decodeSubmission(w, r, form, "uploadPaymentProof")
	if err != nil {
		s.badRequest(w, "invalid form payload")
		return
	}
	form.PaymentProof = attachment

	profile, err := s.workflow.RegisterDonor(r.Context(), form)
	if err != nil {
		s.submissionError(w, err)
		return
	}

	s.finishRegistration(w, r, profile)
}

func (s *Service) handleRegisterVolunteer(w http.ResponseWriter, r *http.Request) {
	form := new(types.VolunteerRegistrationForm)
	attachment, err := s.decodeSubmission(w, r, form, "uploadIdProof")
	if err != nil {
		s.badRequest(w, "invalid form payload")
		return
	}
	form.IDProof = attachment

	profile, err := s.workflow.RegisterVolunteer(r.Context(), form)
	if err != nil {
		s.submissionError(w, err)
		return
	}

	s.finishRegistration(w, r, profile)
}

func (s *Service) handleRegisterBeneficiary(w http.ResponseWriter, r *http.Request) {
	form := new(types.BeneficiaryRegistrationForm)
	if _, err := s.decodeSubmission(w, r, form, ""); err != nil {
		s.badRequest(w, "invalid form payload")
		return
	}

	profile, err := s.workflow.RegisterBeneficiary(r.Context(), form)
	if err != nil {
		s.submissionError(w, err)
		return
	}

	s.finishRegistration(w, r, profile)
}

// finishRegistration sets the auth cookie, kicks off the redirect
// countdown, and answers with the stored profile. Reaching here means
// the registration succeeded whether or not the backend was reachable.
func (s *Service) finishRegistration(w http.ResponseWriter, r *http.Request, profile *types.Profile) {
	s.setAuthCookie(w, r)
	s.startRedirectCountdown()

	s.respondJSON(w, http.StatusCreated, map[string]any{
		"success":               true,
		"user":                  profile,
		"donationAmountDisplay": dashboard.DisplayAmount(profile),
		"redirect": map[string]any{
			"to":           "/dashboard",
			"afterSeconds": s.config.RedirectDelaySec,
		},
	})
}

// decodeSubmission parses a urlencoded or multipart registration body
// into the typed form, pulling out the named file part when present.
func (s *Service) decodeSubmission(w http.ResponseWriter, r *http.Request, dst any, fileField string) (*types.Attachment, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRegistrationBody)

	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var attachment *types.Attachment
	if contentType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxRegistrationBody); err != nil {
			return nil, err
		}

		if fileField != "" {
			file, header, err := r.FormFile(fileField)
			switch {
			case errors.Is(err, http.ErrMissingFile):
				// optional upload
			case err != nil:
				return nil, err
			default:
				defer file.Close()

				data, readErr := io.ReadAll(file)
				if readErr != nil {
					return nil, readErr
				}

				attachment = &types.Attachment{
					Filename:    header.Filename,
					ContentType: attachmentContentType(header.Header.Get("Content-Type"), header.Filename),
					Data:        data,
				}
			}
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
	}

	if err := decoder.Decode(dst, r.Form); err != nil {
		return nil, err
	}

	return attachment, nil
}

// attachmentContentType falls back to the filename extension when the
// browser did not label the part.
func attachmentContentType(declared, filename string) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	}

	return declared
}

func (s *Service) setAuthCookie(w http.ResponseWriter, r *http.Request) {
	token, err := s.store.GetValue(r.Context(), store.KeyAuthToken)
	if err != nil || token == "" {
		if err != nil {
			s.logger.WithError(err).Error("failed to read auth token for cookie")
		}
		return
	}

	encrypted, err := s.cookie.Encode(accessTokenCookieName, token)
	if err != nil {
		s.logger.WithError(err).Error("failed to encrypt access token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookieName,
		Value:    encrypted,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
}

func (s *Service) clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})
}
