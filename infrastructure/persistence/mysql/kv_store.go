package mysql

import (
	"context"
	"errors"
	"fmt"

	"layerit/domain/session"
	"layerit/infrastructure/persistence/mysql/po"
	"layerit/infrastructure/persistence/retry"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVStore 基于 MySQL kv_entries 表的会话状态存储
type KVStore struct {
	db    *gorm.DB
	retry retry.Config
}

func NewKVStore(db *gorm.DB, retryCfg retry.Config) *KVStore {
	return &KVStore{db: db, retry: retryCfg}
}

// AutoMigrate 创建或更新 kv_entries 表
func (s *KVStore) AutoMigrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&po.KVEntryPO{}); err != nil {
		return fmt.Errorf("migrate kv_entries: %w", err)
	}
	return nil
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry po.KVEntryPO
	err := s.db.WithContext(ctx).Where("`key` = ?", key).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return entry.Value, true, nil
}

// Set 以 upsert 写入，死锁和锁等待超时会重试
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	return retry.ExecuteWithRetry(ctx, s.retry, func(ctx context.Context) error {
		err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(po.NewKVEntry(key, value)).Error
		if err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
		return nil
	})
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	return retry.ExecuteWithRetry(ctx, s.retry, func(ctx context.Context) error {
		if err := s.db.WithContext(ctx).Where("`key` = ?", key).Delete(&po.KVEntryPO{}).Error; err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
		return nil
	})
}

// Ping 用于就绪检查
func (s *KVStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *KVStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ session.Store = (*KVStore)(nil)
