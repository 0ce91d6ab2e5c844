package httpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/salon_pos/internal/mykafka"
	"github.com/Skotchmaster/salon_pos/pkg/logging"
)

const publishTimeout = 5 * time.Second

// EventPublisher is satisfied by *mykafka.Producer.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

var _ EventPublisher = (*mykafka.Producer)(nil)

func publish(c echo.Context, p EventPublisher, topic string, key any, event map[string]any) {
	if p == nil {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), publishTimeout)
	defer cancel()

	if err := p.PublishEvent(ctx, topic, fmt.Sprint(key), event); err != nil {
		logging.FromContext(ctx).Error("kafka_publish_failed", "topic", topic, "event", event["type"], "error", err)
	}
}
