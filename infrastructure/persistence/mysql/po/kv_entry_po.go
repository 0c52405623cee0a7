package po

import (
	"time"
)

// KVEntryPO 会话状态的一条键值记录
type KVEntryPO struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (KVEntryPO) TableName() string {
	return "kv_entries"
}

func NewKVEntry(key, value string) *KVEntryPO {
	return &KVEntryPO{Key: key, Value: value, UpdatedAt: time.Now()}
}
