package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite(t *testing.T) {
	db, err := Open(DriverSQLite, filepath.Join(t.TempDir(), "portfolio.db"))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	assert.Equal(t, DriverSQLite, db.Dialector.Name())
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "")
	assert.Error(t, err)
}
