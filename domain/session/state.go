package session

import (
	"context"
	"encoding/json"
	"fmt"

	"layerit/domain/skin"
)

// Keys of the persisted key-value entries.
const (
	RoutineKey  = "layerit_routine"
	SkinTypeKey = "layerit_skin_type"
)

// State is the part of a session that survives restarts.
type State struct {
	RoutineIDs []int
	SkinType   skin.Type
}

// Store is a flat string key-value store, the server-side stand-in for browser
// local storage. Get reports ok=false for absent keys.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// EncodeRoutine serialises ids as a JSON array, e.g. [3,1,4].
func EncodeRoutine(ids []int) string {
	if ids == nil {
		ids = []int{}
	}
	data, _ := json.Marshal(ids)
	return string(data)
}

// DecodeRoutine parses a value written by EncodeRoutine.
func DecodeRoutine(value string) ([]int, error) {
	var ids []int
	if err := json.Unmarshal([]byte(value), &ids); err != nil {
		return nil, fmt.Errorf("decode routine %q: %w", value, err)
	}
	return ids, nil
}
