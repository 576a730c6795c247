package controllers

import (
	"net/http"
	"strings"

	"github.com/soundreel/admin-backend/api/responses"
	"github.com/soundreel/admin-backend/api/validators"
	"github.com/soundreel/admin-backend/internal/sounds"
	"github.com/soundreel/admin-backend/pkg/config"
	"github.com/soundreel/admin-backend/pkg/logger"
	"github.com/soundreel/admin-backend/pkg/pagination"
)

// SoundList returns live sounds with signed playback URLs.
func SoundList(svc sounds.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListSounds(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// SoundSearch matches the query against live sound names.
func SoundSearch(svc sounds.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.SearchSounds(r.Context(), strings.TrimSpace(r.URL.Query().Get("q")), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// SoundSave accepts a multipart form: name, optional id, repeated
// section_ids/language_ids, and an optional "sound" file.
func SoundSave(svc sounds.Service, mediaCfg config.MediaConfig, logg *logger.Logger) http.HandlerFunc {
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

		id, err := validators.FormUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		sectionIDs, err := validators.FormUUIDList(r, "section_ids")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		languageIDs, err := validators.FormUUIDList(r, "language_ids")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		upload, closeUpload, err := validators.FormUpload(r, "sound")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if closeUpload != nil {
			defer closeUpload()
		}

		dto, err := svc.SaveSound(r.Context(), caller, sounds.SaveSoundInput{
			ID:          id,
			Name:        r.FormValue("name"),
			SectionIDs:  sectionIDs,
			LanguageIDs: languageIDs,
			Upload:      upload,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		writeSaved(w, id == nil, dto)
	}
}

// SoundDelete soft-deletes a sound.
func SoundDelete(svc sounds.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := pathUUID(r, "soundId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteSound(r.Context(), caller, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
