package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	pkgerrors "github.com/soundreel/admin-backend/pkg/errors"
)

// Object key prefixes, one per upload kind.
const (
	PrefixAudio  = "audio"
	PrefixVideo  = "video"
	PrefixIDCard = "idCard"
	PrefixPhoto  = "photo"
)

type gcsClient interface {
	UploadObject(ctx context.Context, bucket, object, contentType string, body io.Reader) error
	SignedReadURL(bucket, object string, expires time.Duration) (string, error)
	DeleteObject(ctx context.Context, bucket, object string) error
}

// Store owns bucket object lifecycle for panel uploads: key minting,
// uploads, short-lived read URLs, and cleanup.
type Store struct {
	gcs         gcsClient
	bucket      string
	downloadTTL time.Duration
	now         func() time.Time
}

// NewStore builds a media store bound to one bucket.
func NewStore(gcs gcsClient, bucket string, downloadTTL time.Duration) (*Store, error) {
	if gcs == nil {
		return nil, fmt.Errorf("gcs client required")
	}
	if bucket == "" {
		return nil, fmt.Errorf("gcs bucket required")
	}
	if downloadTTL <= 0 {
		return nil, fmt.Errorf("download ttl must be positive")
	}
	return &Store{
		gcs:         gcs,
		bucket:      bucket,
		downloadTTL: downloadTTL,
		now:         time.Now,
	}, nil
}

// BuildKey mints a bucket key for a fresh upload: <prefix>/<unix-millis><ext>.
// The extension comes from the uploaded filename.
func (s *Store) BuildKey(prefix, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return prefix + "/" + strconv.FormatInt(s.now().UnixMilli(), 10) + ext
}

// Upload streams the payload into the bucket under a freshly minted key and
// returns that key.
func (s *Store) Upload(ctx context.Context, prefix, filename, contentType string, body io.Reader) (string, error) {
	if body == nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "upload body is required")
	}
	key := s.BuildKey(prefix, filename)
	if err := s.gcs.UploadObject(ctx, s.bucket, key, contentType, body); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upload object")
	}
	return key, nil
}

// SignedReadURL issues a temporary access URL for the stored key. Empty keys
// resolve to an empty URL.
func (s *Store) SignedReadURL(key string) (string, error) {
	if key == "" {
		return "", nil
	}
	url, err := s.gcs.SignedReadURL(s.bucket, key, s.downloadTTL)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "generate signed read url")
	}
	return url, nil
}

// Delete removes the stored object. Missing objects are not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := s.gcs.DeleteObject(ctx, s.bucket, key); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete object")
	}
	return nil
}
