package database

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "Failed to create test database")

	// Every connection to :memory: opens a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&PreferenceSnapshot{}), "Failed to migrate test database")
	return db
}

func TestSnapshotRepository_LatestWhenEmpty(t *testing.T) {
	repo := NewSnapshotRepository(setupTestDB(t), 5)

	document, err := repo.Latest()
	require.NoError(t, err)
	assert.Nil(t, document)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSnapshotRepository_SaveAndLatest(t *testing.T) {
	repo := NewSnapshotRepository(setupTestDB(t), 5)

	require.NoError(t, repo.Save([]byte("<first/>")))
	require.NoError(t, repo.Save([]byte("<second/>")))

	document, err := repo.Latest()
	require.NoError(t, err)
	assert.Equal(t, []byte("<second/>"), document)
	assert.NotEmpty(t, repo.BatchID())
}

func TestSnapshotRepository_Prunes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSnapshotRepository(db, 3)

	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Save([]byte(fmt.Sprintf("<doc%d/>", i))))
	}

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	var remaining []PreferenceSnapshot
	require.NoError(t, db.Order("id asc").Find(&remaining).Error)
	require.Len(t, remaining, 3)
	assert.Equal(t, []byte("<doc4/>"), remaining[0].Document)
	assert.Equal(t, repo.BatchID(), remaining[0].BatchID)
}

func TestSnapshotRepository_UnlimitedKeepsAll(t *testing.T) {
	repo := NewSnapshotRepository(setupTestDB(t), 0)

	for i := 0; i < 4; i++ {
		require.NoError(t, repo.Save([]byte("<doc/>")))
	}

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestInitialize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.sqlite3")

	db, err := Initialize(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	assert.FileExists(t, path)
	assert.True(t, db.Migrator().HasTable(&PreferenceSnapshot{}))
}
