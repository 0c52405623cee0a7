package session

import (
	"layerit/domain/shared"
	"layerit/domain/skin"
)

const (
	EventSkinTypeDetermined = "skin_type.determined"
	EventRoutineChanged     = "routine.changed"
)

// SkinTypeDeterminedEvent is recorded when a quiz attempt completes.
type SkinTypeDeterminedEvent struct {
	shared.BaseEvent
	SkinType skin.Type
}

func NewSkinTypeDeterminedEvent(sessionID string, t skin.Type) *SkinTypeDeterminedEvent {
	return &SkinTypeDeterminedEvent{
		BaseEvent: shared.NewBaseEvent(EventSkinTypeDetermined, sessionID),
		SkinType:  t,
	}
}

// RoutineChangedEvent carries the full routine after a change, in order.
type RoutineChangedEvent struct {
	shared.BaseEvent
	ProductIDs []int
}

func NewRoutineChangedEvent(sessionID string, ids []int) *RoutineChangedEvent {
	return &RoutineChangedEvent{
		BaseEvent:  shared.NewBaseEvent(EventRoutineChanged, sessionID),
		ProductIDs: append([]int(nil), ids...),
	}
}
