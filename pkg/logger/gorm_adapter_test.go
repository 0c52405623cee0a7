/*
Package logger - GORM logger adapter tests
*/
package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"layerit/infrastructure/persistence"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	original := log
	t.Cleanup(func() { log = original })

	core, logs := observer.New(zapcore.DebugLevel)
	log = zap.New(core)
	return logs
}

// TestGormLoggerAdapterLevels checks that messages are filtered by the GORM level
func TestGormLoggerAdapterLevels(t *testing.T) {
	testCases := []struct {
		name      string
		logLevel  gormlogger.LogLevel
		wantInfo  bool
		wantTrace bool
	}{
		{"Warn Level", gormlogger.Warn, false, false},
		{"Info Level", gormlogger.Info, true, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logs := observe(t)
			adapter := NewGormLoggerAdapter(tc.logLevel)

			if adapter.LogMode(gormlogger.Info) == nil {
				t.Fatal("LogMode should return a new adapter")
			}

			ctx := context.Background()
			adapter.Info(ctx, "test info message")
			adapter.Warn(ctx, "test warn message")
			adapter.Error(ctx, "test error message")
			adapter.Trace(ctx, time.Now(), func() (string, int64) {
				return "SELECT * FROM `kv_entries` WHERE `key` = 'layerit_routine'", 1
			}, nil)

			if got := logs.FilterMessage("test info message").Len() == 1; got != tc.wantInfo {
				t.Errorf("info logged = %v, want %v", got, tc.wantInfo)
			}
			if logs.FilterMessage("test warn message").Len() != 1 {
				t.Error("Warn message not found in logs")
			}
			if logs.FilterMessage("test error message").Len() != 1 {
				t.Error("Error message not found in logs")
			}

			traces := logs.FilterMessage("SQL query executed")
			if got := traces.Len() == 1; got != tc.wantTrace {
				t.Errorf("trace logged = %v, want %v", got, tc.wantTrace)
			}
			if tc.wantTrace {
				if _, ok := traces.All()[0].ContextMap()["sql"]; !ok {
					t.Error("SQL query not found in trace log fields")
				}
			}
		})
	}
}

// TestGormLoggerAdapterWithConfig tests slow query and not-found handling
func TestGormLoggerAdapterWithConfig(t *testing.T) {
	logs := observe(t)

	adapter := NewGormLoggerAdapterWithConfig(gormlogger.Info, &GormLoggerConfig{
		SlowThreshold:             10 * time.Millisecond,
		IgnoreRecordNotFoundError: true,
	})

	ctx := persistence.ContextWithRequestID(context.Background(), "test-request-123")

	adapter.Trace(ctx, time.Now().Add(-50*time.Millisecond), func() (string, int64) {
		return "SELECT * FROM slow_table", 1
	}, nil)

	adapter.Trace(ctx, time.Now(), func() (string, int64) {
		return "SELECT * FROM kv_entries WHERE `key` = 'missing'", 0
	}, gormlogger.ErrRecordNotFound)

	slow := logs.FilterMessage("Slow SQL query").All()
	if len(slow) != 1 {
		t.Fatalf("expected one slow query entry, got %d", len(slow))
	}
	if slow[0].ContextMap()["request_id"] != "test-request-123" {
		t.Error("Request ID should be propagated from context")
	}
	if logs.FilterMessage("Database operation failed").Len() != 0 {
		t.Error("Record not found error should be ignored")
	}

	adapter.Trace(ctx, time.Now(), func() (string, int64) {
		return "INSERT INTO kv_entries", 0
	}, errors.New("deadlock"))
	if logs.FilterMessage("Database operation failed").Len() != 1 {
		t.Error("Real errors must be logged")
	}
}

func TestParseGormLevel(t *testing.T) {
	cases := map[string]gormlogger.LogLevel{
		"silent": gormlogger.Silent,
		"error":  gormlogger.Error,
		"warn":   gormlogger.Warn,
		"INFO":   gormlogger.Info,
		"":       gormlogger.Warn,
	}
	for in, want := range cases {
		if got := ParseGormLevel(in); got != want {
			t.Errorf("ParseGormLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
