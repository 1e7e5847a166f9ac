package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NoBrokersIsNop(t *testing.T) {
	p, err := New(nil)
	require.NoError(t, err)
	assert.IsType(t, Nop{}, p)
	assert.NoError(t, p.PublishEvent(context.Background(), ProductTopic, "1", map[string]any{"type": "x"}))
	assert.NoError(t, p.Close())
}

func TestNew_WithBrokers(t *testing.T) {
	p, err := New([]string{"localhost:9092"})
	require.NoError(t, err)
	require.IsType(t, &Producer{}, p)
	assert.NoError(t, p.Close())
}

func TestNewProducer_RequiresBrokers(t *testing.T) {
	_, err := NewProducer(nil)
	require.Error(t, err)
}

func TestPublishEvent_UnmarshalableEvent(t *testing.T) {
	p, err := NewProducer([]string{"localhost:9092"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	err = p.PublishEvent(context.Background(), CartTopic, "1", map[string]any{"bad": make(chan int)})
	require.ErrorContains(t, err, "json.Marshal")
}
