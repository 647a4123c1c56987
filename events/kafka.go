package events

import (
	"context"
	"encoding/json"
	"log"
	"strconv"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(broker, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(broker),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *KafkaPublisher) PublishOrderCreated(ctx context.Context, event OrderCreated) error {
	event.Type = TypeOrderCreated
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.OrderID)),
		Value: payload,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// KafkaConsumer feeds order events to the notification handlers.
type KafkaConsumer struct {
	reader   *kafka.Reader
	handlers []Handler
}

func NewKafkaConsumer(broker, topic, groupID string, handlers ...Handler) *KafkaConsumer {
	return &KafkaConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: []string{broker},
			Topic:   topic,
			GroupID: groupID,
		}),
		handlers: handlers,
	}
}

func (c *KafkaConsumer) Start(ctx context.Context) {
	log.Println("Starting order event consumer...")
	for {
		message, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading event: %v", err)
			continue
		}

		var event OrderCreated
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling event: %v", err)
			continue
		}

		if event.Type != TypeOrderCreated {
			continue
		}
		for _, h := range c.handlers {
			h(event)
		}
	}
}

func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
