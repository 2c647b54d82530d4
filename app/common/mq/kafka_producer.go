package mq

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
)

type KafkaConf struct {
	Broker        []string `json:",optional"`
	WardrobeTopic string   `json:",optional"`
}

func (c KafkaConf) Enabled() bool {
	return len(c.Broker) > 0 && c.WardrobeTopic != ""
}

type Publisher interface {
	Publish(ctx context.Context, evt WardrobeEvent) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewPublisher returns a Kafka backed publisher, or a no-op one when Kafka is
// not configured.
func NewPublisher(c KafkaConf) Publisher {
	if !c.Enabled() {
		return NopPublisher{}
	}
	return newKafkaPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(c.Broker...),
		Topic:                  c.WardrobeTopic,
		RequiredAcks:           kafka.RequireOne,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           5 * time.Millisecond,
		AllowAutoTopicCreation: true,
	})
}

type KafkaPublisher struct {
	w messageWriter
}

func newKafkaPublisher(w messageWriter) *KafkaPublisher {
	return &KafkaPublisher{w: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, evt WardrobeEvent) error {
	if evt.Timestamp == 0 {
		evt.Timestamp = time.Now().Unix()
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	// 按用户分区, 保证同一用户的事件有序
	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(evt.UserID, 10)),
		Value: body,
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		logx.WithContext(ctx).Errorf("publish wardrobe event %s for item %d failed: %v", evt.Type, evt.ItemID, err)
		return err
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, WardrobeEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
