package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestNewPublisherWithoutKafka(t *testing.T) {
	p := NewPublisher(KafkaConf{})
	assert.IsType(t, NopPublisher{}, p)
	assert.NoError(t, p.Publish(context.Background(), WardrobeEvent{Type: EventItemCreated}))
	assert.NoError(t, p.Close())

	p = NewPublisher(KafkaConf{Broker: []string{"127.0.0.1:9092"}})
	assert.IsType(t, NopPublisher{}, p)
}

func TestKafkaPublisherPublish(t *testing.T) {
	w := &recordingWriter{}
	p := newKafkaPublisher(w)

	err := p.Publish(context.Background(), WardrobeEvent{
		Type:     EventItemDeleted,
		ItemID:   5,
		UserID:   42,
		Filename: "5.png",
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "42", string(w.msgs[0].Key))

	var evt WardrobeEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &evt))
	assert.Equal(t, EventItemDeleted, evt.Type)
	assert.Equal(t, uint64(5), evt.ItemID)
	assert.Equal(t, "5.png", evt.Filename)
	assert.NotZero(t, evt.Timestamp)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisherError(t *testing.T) {
	p := newKafkaPublisher(&recordingWriter{err: errors.New("broker down")})
	err := p.Publish(context.Background(), WardrobeEvent{Type: EventItemCreated, ItemID: 1})
	assert.EqualError(t, err, "broker down")
}
