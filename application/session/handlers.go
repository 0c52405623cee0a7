package session

import (
	"fmt"

	"layerit/domain/session"
	"layerit/domain/shared"
	"layerit/pkg/logger"

	"go.uber.org/zap"
)

// eventLogger 把会话事件写入日志，便于排查 routine 变化
type eventLogger struct{}

func (eventLogger) Name() string { return "session-event-logger" }

func (eventLogger) Handle(event shared.DomainEvent) error {
	fields := []zap.Field{
		zap.String("event", event.EventName()),
		zap.String("event_id", event.EventID()),
		zap.String("session_id", event.GetAggregateID()),
	}
	switch e := event.(type) {
	case *session.RoutineChangedEvent:
		fields = append(fields, zap.Ints("routine", e.ProductIDs))
	case *session.SkinTypeDeterminedEvent:
		fields = append(fields, zap.String("skin_type", e.SkinType.String()))
	}
	logger.Info("Session event", fields...)
	return nil
}

// RegisterEventHandlers 订阅会话事件的默认处理器
func RegisterEventHandlers(publisher shared.DomainEventPublisher) error {
	h := eventLogger{}
	for _, name := range []string{session.EventRoutineChanged, session.EventSkinTypeDetermined} {
		if err := publisher.Subscribe(name, h); err != nil {
			return fmt.Errorf("subscribe %s: %w", name, err)
		}
	}
	return nil
}
