package controllers

import (
	"net/http"

	"github.com/soundreel/admin-backend/api/responses"
	"github.com/soundreel/admin-backend/api/validators"
	"github.com/soundreel/admin-backend/internal/videos"
	"github.com/soundreel/admin-backend/pkg/config"
	"github.com/soundreel/admin-backend/pkg/logger"
)

// VideoList returns live videos with signed playback URLs and resolved
// references.
func VideoList(svc videos.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListVideos(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// VideoSave accepts a multipart form: optional id, optional sound_id,
// app_user_id, and discovery_section_id, and an optional "video" file.
func VideoSave(svc videos.Service, mediaCfg config.MediaConfig, logg *logger.Logger) http.HandlerFunc {
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
		soundID, err := validators.FormUUID(r, "sound_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		appUserID, err := validators.FormUUID(r, "app_user_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		sectionID, err := validators.FormUUID(r, "discovery_section_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		upload, closeUpload, err := validators.FormUpload(r, "video")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if closeUpload != nil {
			defer closeUpload()
		}

		dto, err := svc.SaveVideo(r.Context(), caller, videos.SaveVideoInput{
			ID:                 id,
			SoundID:            soundID,
			AppUserID:          appUserID,
			DiscoverySectionID: sectionID,
			Upload:             upload,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		writeSaved(w, id == nil, dto)
	}
}

// VideoDelete soft-deletes a video.
func VideoDelete(svc videos.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := pathUUID(r, "videoId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteVideo(r.Context(), caller, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
