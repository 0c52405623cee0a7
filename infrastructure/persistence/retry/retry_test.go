package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"layerit/config"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func fastConfig() Config {
	cfg := DefaultConfig
	cfg.InitialDelay = time.Millisecond
	cfg.MaxDelay = 2 * time.Millisecond
	return cfg
}

func TestIsRetryableError(t *testing.T) {
	cfg := DefaultConfig

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"deadlock", &mysqlDriver.MySQLError{Number: 1213, Message: "Deadlock found"}, true},
		{"lock timeout", &mysqlDriver.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded"}, true},
		{"duplicate", &mysqlDriver.MySQLError{Number: 1062, Message: "Duplicate entry"}, false},
		{"gorm duplicate", gorm.ErrDuplicatedKey, false},
		{"invalid conn", mysqlDriver.ErrInvalidConn, true},
		{"lost connection text", errors.New("connection was lost"), true},
		{"context canceled", context.Canceled, false},
		{"other", errors.New("syntax error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryableError(tt.err, cfg))
		})
	}

	noDeadlock := cfg
	noDeadlock.RetryOnDeadlock = false
	assert.False(t, IsRetryableError(&mysqlDriver.MySQLError{Number: 1213}, noDeadlock))
}

func TestExponentialBackoff(t *testing.T) {
	cfg := Config{InitialDelay: 100 * time.Millisecond, MaxDelay: time.Second, BackoffFactor: 2}

	assert.Equal(t, time.Duration(0), ExponentialBackoffWithJitter(0, cfg))
	assert.Equal(t, 100*time.Millisecond, ExponentialBackoffWithJitter(1, cfg))
	assert.Equal(t, 200*time.Millisecond, ExponentialBackoffWithJitter(2, cfg))
	assert.Equal(t, time.Second, ExponentialBackoffWithJitter(10, cfg))

	cfg.JitterEnabled = true
	for i := 0; i < 20; i++ {
		d := ExponentialBackoffWithJitter(2, cfg)
		assert.GreaterOrEqual(t, d, 160*time.Millisecond)
		assert.LessOrEqual(t, d, 240*time.Millisecond)
	}
}

func TestExecuteWithRetry(t *testing.T) {
	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		err := ExecuteWithRetry(context.Background(), fastConfig(), func(ctx context.Context) error {
			calls++
			if calls < 3 {
				return &mysqlDriver.MySQLError{Number: 1213}
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on permanent error", func(t *testing.T) {
		calls := 0
		permanent := errors.New("syntax error")
		err := ExecuteWithRetry(context.Background(), fastConfig(), func(ctx context.Context) error {
			calls++
			return permanent
		})
		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		err := ExecuteWithRetry(context.Background(), fastConfig(), func(ctx context.Context) error {
			calls++
			return &mysqlDriver.MySQLError{Number: 1205}
		})
		assert.Error(t, err)
		assert.Equal(t, DefaultConfig.MaxAttempts, calls)
	})

	t.Run("disabled runs once", func(t *testing.T) {
		cfg := fastConfig()
		cfg.Enabled = false
		calls := 0
		_ = ExecuteWithRetry(context.Background(), cfg, func(ctx context.Context) error {
			calls++
			return &mysqlDriver.MySQLError{Number: 1213}
		})
		assert.Equal(t, 1, calls)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := ExecuteWithRetry(ctx, fastConfig(), func(ctx context.Context) error {
			t.Fatal("fn must not run")
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFromAppConfig(t *testing.T) {
	cfg := FromAppConfig(&config.RetryConfig{
		Enabled:         true,
		MaxAttempts:     5,
		InitialDelay:    time.Millisecond,
		BackoffFactor:   3,
		RetryOnDeadlock: true,
	})
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, 3.0, cfg.BackoffFactor)
	assert.False(t, cfg.RetryOnLockTimeout)
}
