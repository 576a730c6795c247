package validators

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/soundreel/admin-backend/internal/media"
	pkgerrors "github.com/soundreel/admin-backend/pkg/errors"
)

// ParseMultipartForm parses the request body with the configured size cap.
func ParseMultipartForm(r *http.Request, maxUploadMB int) error {
	if maxUploadMB <= 0 {
		maxUploadMB = 50
	}
	maxBytes := int64(maxUploadMB) << 20
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart body").
			WithDetails(map[string]any{"max_upload_mb": maxUploadMB})
	}
	return nil
}

// FormUpload extracts an optional file field. A missing field returns nil so
// update requests can keep the stored object. The caller owns closing the
// returned closer.
func FormUpload(r *http.Request, field string) (*media.Upload, func() error, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid file upload").
			WithDetails(map[string]any{"field": field})
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &media.Upload{
		Filename:    header.Filename,
		ContentType: contentType,
		Body:        file,
	}, file.Close, nil
}

// FormUUID parses an optional uuid form value; blank means absent.
func FormUUID(r *http.Request, field string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{field: "must be a valid uuid"})
	}
	return &id, nil
}

// FormUUIDList parses a repeated uuid form value.
func FormUUIDList(r *http.Request, field string) ([]uuid.UUID, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	raws := r.MultipartForm.Value[field]
	out := make([]uuid.UUID, 0, len(raws))
	for _, raw := range raws {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
				WithDetails(map[string]string{field: "must be a list of valid uuids"})
		}
		out = append(out, id)
	}
	return out, nil
}
