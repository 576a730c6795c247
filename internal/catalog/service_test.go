package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgerrors "github.com/soundreel/admin-backend/pkg/errors"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS discovery_sections (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  is_deleted INTEGER NOT NULL DEFAULT 0,
  created_by TEXT,
  updated_by TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_discovery_sections_name_live
  ON discovery_sections (name) WHERE NOT is_deleted;`,
		`CREATE TABLE IF NOT EXISTS sound_sections (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  is_deleted INTEGER NOT NULL DEFAULT 0,
  created_by TEXT,
  updated_by TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_sound_sections_name_live
  ON sound_sections (name) WHERE NOT is_deleted;`,
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
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_sound_languages_name_live
  ON sound_languages (name) WHERE NOT is_deleted;`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

func newCatalogService(t *testing.T) Service {
	t.Helper()
	svc, err := NewServiceFromDB(setupCatalogTestDB(t))
	require.NoError(t, err)
	return svc
}

func TestSaveSoundSectionCreateAndList(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()
	actor := uuid.New()

	created, err := svc.SaveSoundSection(ctx, actor, SaveSectionInput{Name: "  Pop  "})
	require.NoError(t, err)
	assert.Equal(t, "Pop", created.Name)

	_, err = svc.SaveSoundSection(ctx, actor, SaveSectionInput{Name: "Classics"})
	require.NoError(t, err)

	rows, err := svc.ListSoundSections(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestSaveSoundSectionDuplicateName(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()
	actor := uuid.New()

	_, err := svc.SaveSoundSection(ctx, actor, SaveSectionInput{Name: "Pop"})
	require.NoError(t, err)

	_, err = svc.SaveSoundSection(ctx, actor, SaveSectionInput{Name: "Pop"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	fields, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "name already exists", fields["name"])
}

func TestDeletedNameBecomesReusable(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()
	actor := uuid.New()

	created, err := svc.SaveSoundSection(ctx, actor, SaveSectionInput{Name: "Pop"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSoundSection(ctx, actor, created.ID))

	// The live-only unique index frees the name once the row is dead.
	_, err = svc.SaveSoundSection(ctx, actor, SaveSectionInput{Name: "Pop"})
	require.NoError(t, err)

	rows, err := svc.ListSoundSections(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestSaveSoundSectionUpdateMissingID(t *testing.T) {
	svc := newCatalogService(t)
	missing := uuid.New()

	_, err := svc.SaveSoundSection(context.Background(), uuid.New(), SaveSectionInput{
		ID:   &missing,
		Name: "Ghost",
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestDeleteSoundSectionTwiceIsIdempotent(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()
	actor := uuid.New()

	created, err := svc.SaveSoundSection(ctx, actor, SaveSectionInput{Name: "Pop"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSoundSection(ctx, actor, created.ID))
	require.NoError(t, svc.DeleteSoundSection(ctx, actor, created.ID))

	err = svc.DeleteSoundSection(ctx, actor, uuid.New())
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestSaveSoundLanguage(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()
	actor := uuid.New()

	created, err := svc.SaveSoundLanguage(ctx, actor, SaveLanguageInput{Name: "Spanish", Code: "es"})
	require.NoError(t, err)
	assert.Equal(t, "es", created.Code)

	updated, err := svc.SaveSoundLanguage(ctx, actor, SaveLanguageInput{
		ID:   &created.ID,
		Name: "Spanish (Latin America)",
		Code: "es-419",
	})
	require.NoError(t, err)
	assert.Equal(t, "Spanish (Latin America)", updated.Name)
	assert.Equal(t, "es-419", updated.Code)
}

func TestSaveDiscoverySectionRequiresName(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.SaveDiscoverySection(context.Background(), uuid.New(), SaveSectionInput{Name: "   "})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	fields, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "name is required", fields["name"])
}
