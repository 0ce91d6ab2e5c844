package mykafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducer_DisabledDropsEvents(t *testing.T) {
	t.Parallel()

	for _, p := range []*Producer{NewProducer(nil), {}, nil} {
		assert.False(t, p.Enabled())
		require.NoError(t, p.PublishEvent(context.Background(), TopicLedger, "1", map[string]any{"type": "product_sold"}))
		require.NoError(t, p.Close())
	}
}

func TestProducer_MarshalError(t *testing.T) {
	t.Parallel()

	err := (&Producer{}).PublishEvent(context.Background(), TopicCatalog, "1", map[string]any{"bad": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json.Marshal")
}

func TestNewProducer_WithBrokers(t *testing.T) {
	t.Parallel()

	p := NewProducer([]string{"localhost:9092"})
	require.True(t, p.Enabled())
	assert.Equal(t, "localhost:9092", p.writer.Addr.String())
	require.NoError(t, p.Close())
}
