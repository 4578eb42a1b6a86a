package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/leon37/promptboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestDialector(t *testing.T) {
	cases := []struct {
		dsn  string
		name string
	}{
		{"postgres://u:p@localhost:5432/app?sslmode=disable", "postgres"},
		{"postgresql://u:p@localhost/app", "postgres"},
		{"sqlite://./data.db", "sqlite"},
		{"file:test.db?cache=shared", "sqlite"},
		{":memory:", "sqlite"},
		{"mysql://root:pw@tcp(127.0.0.1:3306)/app?parseTime=true", "mysql"},
		{"root:pw@tcp(127.0.0.1:3306)/app?parseTime=true", "mysql"},
	}
	for _, tc := range cases {
		t.Run(tc.dsn, func(t *testing.T) {
			d, err := Dialector(tc.dsn)
			require.NoError(t, err)
			assert.Equal(t, tc.name, d.Name())
		})
	}

	_, err := Dialector("")
	assert.Error(t, err)
}

func TestOpenAndMigrate_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, "file:"+uuid.NewString()+"?mode=memory&cache=shared", Options{
		MaxIdleConns:    1,
		MaxOpenConns:    1,
		ConnMaxLifetime: time.Minute,
		LogLevel:        logger.Silent,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(ctx, db))
	assert.True(t, db.Migrator().HasTable("users"))
	assert.True(t, db.Migrator().HasTable("posts"))
	assert.True(t, db.Migrator().HasIndex(&model.User{}, "Email"))

	// 重复迁移应当是幂等的
	require.NoError(t, Migrate(ctx, db))
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 10, opts.MaxIdleConns)
	assert.Equal(t, 100, opts.MaxOpenConns)
	assert.Equal(t, time.Hour, opts.ConnMaxLifetime)
}
