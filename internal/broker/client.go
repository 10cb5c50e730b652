// Package broker wraps the MQTT client behind the small surface the rest
// of the system needs: connect, subscribe, publish.
package broker

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

const connectAttempts = 5

type Client struct {
	c mqtt.Client
}

// MessageHandler receives one delivered message.
type MessageHandler func(topic string, payload []byte)

// Connect dials the broker, retrying with exponential backoff up to
// connectAttempts times. Exhaustion returns the last error rather than
// blocking forever. Once connected the client reconnects on its own.
func Connect(brokerURL, clientID string) (*Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second)
	if clientID != "" {
		opts.SetClientID(clientID)
	}
	c := mqtt.NewClient(opts)

	dial := func() error {
		token := c.Connect()
		token.Wait()
		return token.Error()
	}
	notify := func(err error, next time.Duration) {
		log.Warn().Err(err).Dur("retry_in", next).Str("broker", brokerURL).Msg("mqtt connect failed")
	}
	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), connectAttempts-1)
	if err := backoff.RetryNotify(dial, policy, notify); err != nil {
		return nil, fmt.Errorf("connect %s: %w", brokerURL, err)
	}
	return &Client{c: c}, nil
}

// Subscribe registers a handler for a topic. Paho invokes handlers for
// one subscription in delivery order, which is what keeps ingestion
// single-threaded.
func (c *Client) Subscribe(topic string, h MessageHandler) error {
	token := c.c.Subscribe(topic, 0, func(_ mqtt.Client, m mqtt.Message) {
		h(m.Topic(), m.Payload())
	})
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("subscribe %s: %w", topic, err)
	}
	return nil
}

// Publish sends one message and waits for the client to hand it off.
func (c *Client) Publish(topic string, payload []byte) error {
	token := c.c.Publish(topic, 0, false, payload)
	token.Wait()
	return token.Error()
}

func (c *Client) Close() {
	c.c.Disconnect(250)
}
