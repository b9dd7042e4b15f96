package httpserver

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dkotelnikov/shop-backend/internal/logging"
	"github.com/dkotelnikov/shop-backend/internal/mykafka"
)

const publishTimeout = 5 * time.Second

// publish fires a domain event after a successful mutation. Delivery
// problems are logged, never surfaced to the client.
func publish(c echo.Context, producer *mykafka.Producer, topic, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), publishTimeout)
	defer cancel()

	if err := producer.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish failed",
			"topic", topic, "error", err)
	}
}
