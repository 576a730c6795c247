package controllers

import (
	"net/http"

	"github.com/soundreel/admin-backend/api/responses"
	"github.com/soundreel/admin-backend/api/validators"
	"github.com/soundreel/admin-backend/internal/verifications"
	"github.com/soundreel/admin-backend/pkg/config"
	"github.com/soundreel/admin-backend/pkg/logger"
)

type decideVerificationBody struct {
	Decision string `json:"decision" validate:"required"`
}

// VerificationList returns one review row per live user with signed
// document URLs for the newest submission.
func VerificationList(svc verifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListVerifications(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// VerificationSubmit records a new identity submission: multipart form with
// app_user_id plus "id_card" and "photo" files.
func VerificationSubmit(svc verifications.Service, mediaCfg config.MediaConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := validators.ParseMultipartForm(r, mediaCfg.MaxUploadMB); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		userID, err := validators.FormUUID(r, "app_user_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		idCard, closeIDCard, err := validators.FormUpload(r, "id_card")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if closeIDCard != nil {
			defer closeIDCard()
		}
		photo, closePhoto, err := validators.FormUpload(r, "photo")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if closePhoto != nil {
			defer closePhoto()
		}

		dto, err := svc.SubmitVerification(r.Context(), caller, verifications.SubmitVerificationInput{
			AppUserID: userID,
			IDCard:    idCard,
			Photo:     photo,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// VerificationDecide stamps APPROVED or REJECTED on a submission.
func VerificationDecide(svc verifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := pathUUID(r, "verificationId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body decideVerificationBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.DecideVerification(r.Context(), caller, id, body.Decision)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}
