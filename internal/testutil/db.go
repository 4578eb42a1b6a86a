// Package testutil 放测试共用的辅助函数。
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/leon37/promptboard/internal/infrastructure/database"
	"github.com/leon37/promptboard/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB 打开一个独立的内存 SQLite 库并完成建表，测试结束自动关闭
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := database.Open(context.Background(), dsn, database.Options{
		MaxIdleConns:    1,
		MaxOpenConns:    1, // 内存库：单连接，避免 table is locked
		ConnMaxLifetime: time.Hour,
		LogLevel:        logger.Silent,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := database.Close(db); err != nil {
			t.Log("unable to close test db", err)
		}
	})
	return db
}

// OpenStore 同 OpenDB，直接返回 Store
func OpenStore(t testing.TB) repository.Store {
	t.Helper()
	return repository.NewStore(OpenDB(t))
}
