package sounds

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/soundreel/admin-backend/internal/media"
	"github.com/soundreel/admin-backend/internal/repo"
	"github.com/soundreel/admin-backend/pkg/db/models"
	pkgerrors "github.com/soundreel/admin-backend/pkg/errors"
)

type stubGCS struct {
	uploads int
}

func (s *stubGCS) UploadObject(ctx context.Context, bucket, object, contentType string, body io.Reader) error {
	s.uploads++
	return nil
}

func (s *stubGCS) SignedReadURL(bucket, object string, expires time.Duration) (string, error) {
	return "https://signed.example/" + object, nil
}

func (s *stubGCS) DeleteObject(ctx context.Context, bucket, object string) error {
	return nil
}

func setupSoundsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS sounds (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  sound_key TEXT NOT NULL,
  is_deleted INTEGER NOT NULL DEFAULT 0,
  created_by TEXT,
  updated_by TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_sounds_name_live
  ON sounds (name) WHERE NOT is_deleted;`,
		`CREATE TABLE IF NOT EXISTS sound_sections (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  is_deleted INTEGER NOT NULL DEFAULT 0,
  created_by TEXT,
  updated_by TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS sound_languages (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  code TEXT NOT NULL DEFAULT '',
  is_deleted INTEGER NOT NULL DEFAULT 0,
  created_by TEXT,
  updated_by TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS sound_section_assignments (
  sound_id TEXT NOT NULL,
  sound_section_id TEXT NOT NULL,
  PRIMARY KEY (sound_id, sound_section_id)
);`,
		`CREATE TABLE IF NOT EXISTS sound_language_assignments (
  sound_id TEXT NOT NULL,
  sound_language_id TEXT NOT NULL,
  PRIMARY KEY (sound_id, sound_language_id)
);`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

type soundsTestEnv struct {
	svc       Service
	db        *gorm.DB
	gcs       *stubGCS
	sections  *repo.SoftDelete[models.SoundSection]
	languages *repo.SoftDelete[models.SoundLanguage]
}

func newSoundsTestEnv(t *testing.T) *soundsTestEnv {
	t.Helper()

	db := setupSoundsTestDB(t)
	gcs := &stubGCS{}
	store, err := media.NewStore(gcs, "bucket", 5*time.Minute)
	require.NoError(t, err)

	sections := repo.NewSoftDelete[models.SoundSection](db, "is_deleted")
	languages := repo.NewSoftDelete[models.SoundLanguage](db, "is_deleted")

	svc, err := NewService(NewRepository(db), sections, languages, store)
	require.NoError(t, err)

	return &soundsTestEnv{svc: svc, db: db, gcs: gcs, sections: sections, languages: languages}
}

func (e *soundsTestEnv) seedSection(t *testing.T, name string) models.SoundSection {
	t.Helper()
	section := models.SoundSection{ID: uuid.New(), Name: name}
	require.NoError(t, e.db.Create(&section).Error)
	return section
}

func (e *soundsTestEnv) seedLanguage(t *testing.T, name string) models.SoundLanguage {
	t.Helper()
	language := models.SoundLanguage{ID: uuid.New(), Name: name}
	require.NoError(t, e.db.Create(&language).Error)
	return language
}

func audioUpload(name string) *media.Upload {
	return &media.Upload{
		Filename:    name,
		ContentType: "audio/mpeg",
		Body:        strings.NewReader("audio-bytes"),
	}
}

func TestSaveSoundCreateAndList(t *testing.T) {
	env := newSoundsTestEnv(t)
	ctx := context.Background()
	actor := uuid.New()

	pop := env.seedSection(t, "Pop")
	spanish := env.seedLanguage(t, "Spanish")

	created, err := env.svc.SaveSound(ctx, actor, SaveSoundInput{
		Name:        "Song A",
		SectionIDs:  []uuid.UUID{pop.ID},
		LanguageIDs: []uuid.UUID{spanish.ID},
		Upload:      audioUpload("song-a.mp3"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Song A", created.Name)
	assert.Equal(t, "Pop", created.SectionNames)
	assert.Equal(t, "Spanish", created.LanguageNames)
	assert.Contains(t, created.SoundURL, "https://signed.example/audio/")
	assert.Equal(t, 1, env.gcs.uploads)

	rows, err := env.svc.ListSounds(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []uuid.UUID{pop.ID}, rows[0].SectionIDs)
	assert.Contains(t, rows[0].SoundURL, ".mp3")
}

func TestSaveSoundCreateRequiresUpload(t *testing.T) {
	env := newSoundsTestEnv(t)

	_, err := env.svc.SaveSound(context.Background(), uuid.New(), SaveSoundInput{Name: "Song A"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	fields, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Contains(t, fields, "sound")
}

func TestSaveSoundUpdateKeepsStoredKeyWithoutUpload(t *testing.T) {
	env := newSoundsTestEnv(t)
	ctx := context.Background()
	actor := uuid.New()

	created, err := env.svc.SaveSound(ctx, actor, SaveSoundInput{
		Name:   "Song A",
		Upload: audioUpload("song-a.mp3"),
	})
	require.NoError(t, err)

	var before models.Sound
	require.NoError(t, env.db.Where("id = ?", created.ID).First(&before).Error)

	updated, err := env.svc.SaveSound(ctx, actor, SaveSoundInput{
		ID:   &created.ID,
		Name: "Song A (Remix)",
	})
	require.NoError(t, err)
	assert.Equal(t, "Song A (Remix)", updated.Name)

	var after models.Sound
	require.NoError(t, env.db.Where("id = ?", created.ID).First(&after).Error)
	assert.Equal(t, before.SoundKey, after.SoundKey)
	assert.Equal(t, 1, env.gcs.uploads)
}

func TestSaveSoundUpdateReplacesAssignments(t *testing.T) {
	env := newSoundsTestEnv(t)
	ctx := context.Background()
	actor := uuid.New()

	pop := env.seedSection(t, "Pop")
	classics := env.seedSection(t, "Classics")

	created, err := env.svc.SaveSound(ctx, actor, SaveSoundInput{
		Name:       "Song A",
		SectionIDs: []uuid.UUID{pop.ID},
		Upload:     audioUpload("song-a.mp3"),
	})
	require.NoError(t, err)

	updated, err := env.svc.SaveSound(ctx, actor, SaveSoundInput{
		ID:         &created.ID,
		Name:       "Song A",
		SectionIDs: []uuid.UUID{classics.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{classics.ID}, updated.SectionIDs)
	assert.Equal(t, "Classics", updated.SectionNames)
}

func TestListSoundsDropsDeletedSections(t *testing.T) {
	env := newSoundsTestEnv(t)
	ctx := context.Background()
	actor := uuid.New()

	pop := env.seedSection(t, "Pop")
	classics := env.seedSection(t, "Classics")

	_, err := env.svc.SaveSound(ctx, actor, SaveSoundInput{
		Name:       "Song A",
		SectionIDs: []uuid.UUID{pop.ID, classics.ID},
		Upload:     audioUpload("song-a.mp3"),
	})
	require.NoError(t, err)

	require.NoError(t, env.sections.MarkDeleted(ctx, classics.ID, actor))

	rows, err := env.svc.ListSounds(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// The dead section drops out of the projection entirely, id included.
	assert.Equal(t, "Pop", rows[0].SectionNames)
	assert.Equal(t, []uuid.UUID{pop.ID}, rows[0].SectionIDs)

	require.NoError(t, env.sections.MarkDeleted(ctx, pop.ID, actor))
	rows, err = env.svc.ListSounds(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].SectionNames)
	assert.Empty(t, rows[0].SectionIDs)
}

func TestSaveSoundUnknownSection(t *testing.T) {
	env := newSoundsTestEnv(t)

	_, err := env.svc.SaveSound(context.Background(), uuid.New(), SaveSoundInput{
		Name:       "Song A",
		SectionIDs: []uuid.UUID{uuid.New()},
		Upload:     audioUpload("song-a.mp3"),
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	fields, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Contains(t, fields, "section_ids")
}

func TestSaveSoundDuplicateName(t *testing.T) {
	env := newSoundsTestEnv(t)
	ctx := context.Background()
	actor := uuid.New()

	_, err := env.svc.SaveSound(ctx, actor, SaveSoundInput{
		Name:   "Song A",
		Upload: audioUpload("song-a.mp3"),
	})
	require.NoError(t, err)

	_, err = env.svc.SaveSound(ctx, actor, SaveSoundInput{
		Name:   "Song A",
		Upload: audioUpload("song-a-again.mp3"),
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	fields, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "name already exists", fields["name"])
}

func TestDeleteSoundSoftDeletes(t *testing.T) {
	env := newSoundsTestEnv(t)
	ctx := context.Background()
	actor := uuid.New()

	created, err := env.svc.SaveSound(ctx, actor, SaveSoundInput{
		Name:   "Song A",
		Upload: audioUpload("song-a.mp3"),
	})
	require.NoError(t, err)

	require.NoError(t, env.svc.DeleteSound(ctx, actor, created.ID))

	rows, err := env.svc.ListSounds(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	// The row survives for historical joins.
	var row models.Sound
	require.NoError(t, env.db.Where("id = ?", created.ID).First(&row).Error)
	assert.True(t, row.IsDeleted)
}
