package leads

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	ddl := []string{
		`CREATE TABLE leads (id TEXT PRIMARY KEY, user_id TEXT, name TEXT, platform TEXT, industry TEXT)`,
		`CREATE TABLE notes (id TEXT PRIMARY KEY, lead_id TEXT, user_id TEXT, content TEXT)`,
		`CREATE TABLE tasks (id TEXT PRIMARY KEY, lead_id TEXT)`,
		`CREATE TABLE messages (id TEXT PRIMARY KEY, lead_id TEXT)`,
		`CREATE TABLE lead_files (id TEXT PRIMARY KEY, lead_id TEXT)`,
		`CREATE TABLE social_media_scan_history (id TEXT PRIMARY KEY, lead_id TEXT)`,
		`CREATE TABLE social_media_posts (id TEXT PRIMARY KEY, lead_id TEXT)`,
		`CREATE TABLE linkedin_posts (id TEXT PRIMARY KEY, lead_id TEXT)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, gdb.Exec(stmt).Error)
	}
	return gdb
}

func countByLead(t *testing.T, gdb *gorm.DB, table, leadID string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gdb.Table(table).Where("lead_id = ?", leadID).Count(&n).Error)
	return n
}

func seedLead(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	require.NoError(t, gdb.Exec(
		`INSERT INTO leads (id, user_id, name, platform) VALUES ('lead-1', 'owner', 'Anna', 'Instagram')`,
	).Error)
	require.NoError(t, gdb.Exec(
		`INSERT INTO notes (id, lead_id, user_id, content) VALUES ('note-1', 'lead-1', 'owner', 'call back on monday')`,
	).Error)
	require.NoError(t, gdb.Exec(
		`INSERT INTO social_media_posts (id, lead_id) VALUES ('post-1', 'lead-1')`,
	).Error)
}

func TestDeleteLead_ForeignUserTouchesNothing(t *testing.T) {
	gdb := testDB(t)
	seedLead(t, gdb)

	err := DeleteLead(gdb, "attacker", "lead-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	assert.EqualValues(t, 1, countByLead(t, gdb, "notes", "lead-1"),
		"owner's note must survive a foreign delete attempt")
	assert.EqualValues(t, 1, countByLead(t, gdb, "social_media_posts", "lead-1"))

	var leads int64
	require.NoError(t, gdb.Table("leads").Where("id = ?", "lead-1").Count(&leads).Error)
	assert.EqualValues(t, 1, leads, "the lead row itself must survive")
}

func TestDeleteLead_OwnerCascades(t *testing.T) {
	gdb := testDB(t)
	seedLead(t, gdb)

	require.NoError(t, DeleteLead(gdb, "owner", "lead-1"))

	for _, table := range cascadeTables {
		assert.EqualValues(t, 0, countByLead(t, gdb, table, "lead-1"), "table %s", table)
	}

	var leads int64
	require.NoError(t, gdb.Table("leads").Where("id = ?", "lead-1").Count(&leads).Error)
	assert.EqualValues(t, 0, leads)
}

func TestDeleteLead_UnknownLead(t *testing.T) {
	gdb := testDB(t)

	err := DeleteLead(gdb, "owner", "lead-404")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
