package database

import (
	"path/filepath"
	"testing"

	"sekor-bkc/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SQLite(t *testing.T) {
	cfg := &config.Config{DBDriver: "sqlite", DBPath: filepath.Join(t.TempDir(), "test.db")}

	db, err := New(cfg)
	require.NoError(t, err)
	defer Close(db)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(&config.Config{DBDriver: "oracle"})
	assert.EqualError(t, err, "unsupported database driver: oracle")
}
