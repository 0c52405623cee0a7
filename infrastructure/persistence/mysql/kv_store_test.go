package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"layerit/domain/session"
	"layerit/infrastructure/persistence/retry"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openOffline 打开一个不连接数据库的 gorm 实例，SQL 执行由测试替换的回调接管
func openOffline(t *testing.T, dryRun bool) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "layerit:secret@tcp(127.0.0.1:1)/layerit?parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DryRun:                 dryRun,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

var fastRetry = retry.Config{
	Enabled:         true,
	MaxAttempts:     3,
	InitialDelay:    time.Millisecond,
	BackoffFactor:   1,
	RetryOnDeadlock: true,
}

func TestSetBuildsUpsert(t *testing.T) {
	db := openOffline(t, true)
	var statements []string
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("layerit:capture", func(tx *gorm.DB) {
		statements = append(statements, tx.Statement.SQL.String())
	}))

	store := NewKVStore(db, fastRetry)
	require.NoError(t, store.Set(context.Background(), session.RoutineKey, "[1,3]"))

	require.Len(t, statements, 1)
	assert.Contains(t, statements[0], "INSERT INTO `kv_entries`")
	assert.Contains(t, statements[0], "ON DUPLICATE KEY UPDATE")
	assert.Contains(t, statements[0], "`value`=VALUES(`value`)")
}

func TestGetClassifiesErrors(t *testing.T) {
	db := openOffline(t, false)
	var queryErr error
	require.NoError(t, db.Callback().Query().Replace("gorm:query", func(tx *gorm.DB) {
		_ = tx.AddError(queryErr)
	}))
	store := NewKVStore(db, fastRetry)
	ctx := context.Background()

	queryErr = gorm.ErrRecordNotFound
	v, ok, err := store.Get(ctx, session.SkinTypeKey)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)

	queryErr = mysqlDriver.ErrInvalidConn
	_, ok, err = store.Get(ctx, session.SkinTypeKey)
	require.Error(t, err)
	assert.False(t, ok)
	assert.True(t, errors.Is(err, mysqlDriver.ErrInvalidConn))
	assert.Contains(t, err.Error(), session.SkinTypeKey)
}

func TestSetRetriesDeadlock(t *testing.T) {
	db := openOffline(t, false)
	var attempts int
	var failures []error
	require.NoError(t, db.Callback().Create().Replace("gorm:create", func(tx *gorm.DB) {
		attempts++
		if len(failures) > 0 {
			_ = tx.AddError(failures[0])
			failures = failures[1:]
		}
	}))
	store := NewKVStore(db, fastRetry)
	ctx := context.Background()

	failures = []error{&mysqlDriver.MySQLError{Number: 1213, Message: "Deadlock found"}}
	require.NoError(t, store.Set(ctx, session.RoutineKey, "[2]"))
	assert.Equal(t, 2, attempts)

	attempts = 0
	failures = []error{&mysqlDriver.MySQLError{Number: 1062, Message: "Duplicate entry"}}
	err := store.Set(ctx, session.RoutineKey, "[2]")
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.Contains(t, err.Error(), "set "+session.RoutineKey)
}
