// Package mqtt ingests device messages published to an MQTT broker.
//
// Devices publish full state to devices/<id>/state and partial actuator
// settings to devices/<id>/set.
package mqtt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

const (
	StateTopic = "devices/+/state"
	SetTopic   = "devices/+/set"

	connectTimeout    = 10 * time.Second
	subscribeTimeout  = 5 * time.Second
	disconnectQuiesce = 250 // milliseconds
	keepAlive         = 60 * time.Second
)

var (
	ErrConnectionFailed = errors.New("mqtt: connection failed")
	ErrSubscribeFailed  = errors.New("mqtt: subscribe failed")
)

type Config struct {
	Broker   string
	ClientID string
	Username string
	Password string
	QoS      byte
}

type Client struct {
	client  pahomqtt.Client
	cfg     Config
	handler *Handler
	ctx     context.Context
}

// Connect dials the broker and subscribes both device topics. Subscriptions
// are renewed on every reconnect. ctx scopes every message handled by the
// client.
func Connect(ctx context.Context, cfg Config, handler *Handler) (*Client, error) {
	c := &Client{cfg: cfg, handler: handler, ctx: ctx}

	opts := pahomqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(clientID(cfg.ClientID))
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetKeepAlive(keepAlive)
	opts.SetConnectTimeout(connectTimeout)
	opts.SetOnConnectHandler(func(pc pahomqtt.Client) {
		if err := c.subscribe(pc); err != nil {
			slog.ErrorContext(ctx, "Error subscribing to device topics", "error", err)
			return
		}
		slog.InfoContext(ctx, "MQTT client connected", "broker", cfg.Broker)
	})
	opts.SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
		slog.WarnContext(ctx, "MQTT connection lost", "error", err)
	})

	c.client = pahomqtt.NewClient(opts)
	token := c.client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("%w: timeout after %v", ErrConnectionFailed, connectTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	return c, nil
}

func (c *Client) subscribe(pc pahomqtt.Client) error {
	routes := map[string]func(context.Context, string, []byte) error{
		StateTopic: c.handler.HandleState,
		SetTopic:   c.handler.HandleSet,
	}
	for topic, handle := range routes {
		token := pc.Subscribe(topic, c.cfg.QoS, c.wrap(handle))
		if !token.WaitTimeout(subscribeTimeout) {
			return fmt.Errorf("%w: %s: timeout after %v", ErrSubscribeFailed, topic, subscribeTimeout)
		}
		if err := token.Error(); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrSubscribeFailed, topic, err)
		}
		slog.InfoContext(c.ctx, "Subscribed to topic", "topic", topic)
	}
	return nil
}

// wrap adapts a handler to paho's callback. paho runs callbacks on its own
// goroutines, so panics are recovered here.
func (c *Client) wrap(handle func(context.Context, string, []byte) error) pahomqtt.MessageHandler {
	return func(_ pahomqtt.Client, msg pahomqtt.Message) {
		defer func() {
			if r := recover(); r != nil {
				slog.ErrorContext(c.ctx, "Panic handling MQTT message", "topic", msg.Topic(), "panic", r)
			}
		}()
		if err := handle(c.ctx, msg.Topic(), msg.Payload()); err != nil {
			slog.ErrorContext(c.ctx, "Error handling MQTT message", "topic", msg.Topic(), "error", err)
		}
	}
}

func (c *Client) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing MQTT client...")
	if c.client != nil {
		c.client.Disconnect(disconnectQuiesce)
	}
}

// clientID suffixes prefix with a random id so that several replicas can
// share one broker.
func clientID(prefix string) string {
	if prefix == "" {
		prefix = "device-telemetry"
	}
	return prefix + "-" + uuid.NewString()[:8]
}
