package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Skotchmaster/golden_sneaker/internal/events"
	"github.com/Skotchmaster/golden_sneaker/internal/logging"
)

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
)

// MissingFieldsError lists the request keys that were absent, in declaration order.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrValidation
}

func requireFields(missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	return &MissingFieldsError{Fields: missing}
}

const publishTimeout = 5 * time.Second

func publish(ctx context.Context, p events.Publisher, topic string, productID int, event map[string]any) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, strconv.Itoa(productID), event); err != nil {
		logging.FromContext(ctx).Error("event_publish_failed", "topic", topic, "type", event["type"], "error", err)
	}
}
