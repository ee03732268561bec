package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// channel 是 *amqp.Channel 中用到的部分
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher 向 topic exchange 发布 JSON 消息
type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	mu       sync.Mutex
}

// Dial 连接 RabbitMQ 并声明持久化 topic exchange
func Dial(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	p, err := newPublisher(ch, exchange)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, exchange string) (*Publisher, error) {
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &Publisher{ch: ch, exchange: exchange}, nil
}

// Publish 以 routing key 发布一条持久化消息
func (p *Publisher) Publish(ctx context.Context, key string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		ContentType:  "application/json",
		Body:         body,
	})
}

// Healthy 连接已关闭时返回错误
func (p *Publisher) Healthy(context.Context) error {
	if p.conn != nil && p.conn.IsClosed() {
		return errors.New("rabbitmq connection closed")
	}
	return nil
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	var err error
	if p.ch != nil {
		err = p.ch.Close()
	}
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Nop 未配置 broker 时使用，丢弃所有消息
type Nop struct{}

func (Nop) Publish(context.Context, string, any) error { return nil }
func (Nop) Close() error                               { return nil }
