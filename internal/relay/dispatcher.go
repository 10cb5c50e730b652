// Package relay arbitrates relay commands from all entry points onto the
// control topic.
package relay

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/ridayanti/sensor-monitor/internal/domain"
	"github.com/ridayanti/sensor-monitor/internal/metrics"
)

// ErrInvalidCommand rejects any token that is not ON or OFF.
var ErrInvalidCommand = errors.New("invalid command")

// Publisher is the outbound side of the command channel.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

// Dispatcher validates relay tokens and publishes them one at a time.
// The mutex is what keeps concurrent callers (HTTP handler, console)
// from interleaving on the shared publisher.
type Dispatcher struct {
	mu    sync.Mutex
	pub   Publisher
	topic string
}

func NewDispatcher(pub Publisher, topic string) *Dispatcher {
	return &Dispatcher{pub: pub, topic: topic}
}

// Send normalizes and validates a token, then publishes the canonical
// command. Publication is fire-and-forget; only the publish step itself
// can fail.
func (d *Dispatcher) Send(token string) (domain.RelayCommand, error) {
	cmd, ok := parse(token)
	if !ok {
		metrics.CommandsRejected.Inc()
		return "", fmt.Errorf("%w: %q", ErrInvalidCommand, token)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.pub.Publish(d.topic, []byte(cmd)); err != nil {
		return "", fmt.Errorf("dispatch %s: %w", cmd, err)
	}

	metrics.CommandsDispatched.Inc()
	log.Info().Str("command", string(cmd)).Str("topic", d.topic).Msg("relay command dispatched")
	return cmd, nil
}

func parse(token string) (domain.RelayCommand, bool) {
	switch domain.RelayCommand(strings.ToUpper(strings.TrimSpace(token))) {
	case domain.RelayOn:
		return domain.RelayOn, true
	case domain.RelayOff:
		return domain.RelayOff, true
	default:
		return "", false
	}
}
