package database

import (
	"testing"

	"budget_tracker/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probeModel struct {
	ID   int64 `gorm:"primaryKey"`
	Name string
}

func TestConnectGorm_SQLite(t *testing.T) {
	cfg := &config.Config{StorageDriver: config.StorageSQLite, SQLitePath: ":memory:"}

	db, err := ConnectGorm(cfg)
	require.NoError(t, err)
	defer CloseGorm(db)

	require.NoError(t, Migrate(db, &probeModel{}))
	require.NoError(t, db.Create(&probeModel{Name: "a"}).Error)

	var n int64
	require.NoError(t, db.Model(&probeModel{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestConnectGorm_RejectsDynamo(t *testing.T) {
	_, err := ConnectGorm(&config.Config{StorageDriver: config.StorageDynamoDB})
	assert.Error(t, err)
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "budget.db?_pragma=foreign_keys(1)", sqliteDSN("budget.db"))
	assert.Equal(t, "file:x?mode=memory", sqliteDSN("file:x?mode=memory"))
}
