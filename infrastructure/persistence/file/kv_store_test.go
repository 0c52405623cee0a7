package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"layerit/domain/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStoreMissingFileIsEmpty(t *testing.T) {
	s := NewKVStore(filepath.Join(t.TempDir(), "nested", "state.yaml"))
	_, ok, err := s.Get(context.Background(), session.RoutineKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "state.yaml")

	s := NewKVStore(path)
	require.NoError(t, s.Set(ctx, session.RoutineKey, session.EncodeRoutine([]int{3, 1})))
	require.NoError(t, s.Set(ctx, session.SkinTypeKey, "oily"))

	reopened := NewKVStore(path)
	v, ok, err := reopened.Get(ctx, session.RoutineKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[3,1]", v)

	v, ok, err = reopened.Get(ctx, session.SkinTypeKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "oily", v)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestKVStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore(filepath.Join(t.TempDir(), "state.yaml"))
	require.NoError(t, s.Set(ctx, "a", "1"))
	require.NoError(t, s.Delete(ctx, "a"))
	require.NoError(t, s.Delete(ctx, "never-set"))

	_, ok, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- just\n- a list\n"), 0o600))

	_, _, err := NewKVStore(path).Get(context.Background(), "a")
	assert.Error(t, err)
}

func TestKVStoreEmptyFileIsEmpty(t *testing.T) {
	ctx := context.Background()
	for name, content := range map[string]string{"zero bytes": "", "null": "null\n"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "state.yaml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			s := NewKVStore(path)
			_, ok, err := s.Get(ctx, session.RoutineKey)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set(ctx, session.RoutineKey, "[2]"))
			v, ok, err := s.Get(ctx, session.RoutineKey)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "[2]", v)
		})
	}
}
