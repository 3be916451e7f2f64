package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/linweiyu/bugtrack-go/internal/config/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var memDBSeq int64

// SetupSQLite opens a fresh in-memory database and applies the schema.
// Each call gets its own named shared-cache database so every pooled
// connection sees the same tables while tests stay isolated from each
// other.
func SetupSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:memdb%d?mode=memory&cache=shared", atomic.AddInt64(&memDBSeq, 1))
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// The database lives as long as at least one connection stays open.
	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("unwrap sqlite handle: %v", err)
	}
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(gormDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gormDB
}
