package ingest

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ridayanti/sensor-monitor/internal/domain"
	"github.com/ridayanti/sensor-monitor/internal/metrics"
)

// Store is the append side of the reading store.
type Store interface {
	Append(rd *domain.Reading) (int64, error)
}

// Service processes delivered messages one at a time: normalize, stamp,
// append. A bad message or an unreachable store drops that one message
// and never halts the loop.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// HandleMessage is the subscription callback. The MQTT client invokes it
// sequentially in delivery order, so message N+1 is not processed until
// this returns.
func (s *Service) HandleMessage(topic string, payload []byte) {
	rd, err := Normalize(payload, s.now())
	if err != nil {
		metrics.MessagesDropped.WithLabelValues(dropReason(err)).Inc()
		log.Warn().Err(err).Str("topic", topic).Msg("message dropped")
		return
	}

	id, err := s.store.Append(&rd)
	if err != nil {
		metrics.MessagesDropped.WithLabelValues("store_unavailable").Inc()
		log.Error().Err(err).Msg("append failed, reading dropped")
		return
	}

	metrics.ReadingsIngested.Inc()
	log.Debug().
		Int64("id", id).
		Float64("suhu", rd.Temperature).
		Float64("humidity", rd.Humidity).
		Float64("lux", rd.Lux).
		Msg("reading stored")
}

func dropReason(err error) string {
	switch {
	case errors.Is(err, ErrMalformedPayload):
		return "malformed"
	case errors.Is(err, ErrInvalidFieldType):
		return "invalid_field"
	case errors.Is(err, ErrUnknownSchema):
		return "unknown_schema"
	default:
		return "other"
	}
}
