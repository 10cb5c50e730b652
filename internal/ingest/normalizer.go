// Package ingest turns raw inbound MQTT payloads into canonical readings
// and feeds them to the store.
//
// Two payload variants are recognized:
//
//	flat:   {"suhu": 28.5, "humidity": 60, "lux": 320}
//	nested: {"data": {"temp": 28.5, ...}}
//
// The nested variant carries temperature only; humidity and lux are stored
// as 0, which aggregates cannot tell apart from a real zero measurement.
package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ridayanti/sensor-monitor/internal/domain"
)

var (
	// ErrMalformedPayload means the payload is not a JSON object.
	ErrMalformedPayload = errors.New("malformed payload")
	// ErrUnknownSchema means the object matches no known variant.
	ErrUnknownSchema = errors.New("unknown schema")
	// ErrInvalidFieldType means a required field is not numeric.
	ErrInvalidFieldType = errors.New("invalid field type")
)

type variant int

const (
	variantUnknown variant = iota
	variantFlat
	variantNested
)

// classify decides which variant an object belongs to. Flat wins when both
// shapes could match; the set of variants is closed, so adding a shape
// means adding a case here and nowhere else.
func classify(fields map[string]json.RawMessage) variant {
	if _, ok := fields["suhu"]; ok {
		if _, ok := fields["humidity"]; ok {
			if _, ok := fields["lux"]; ok {
				return variantFlat
			}
		}
	}
	if _, ok := fields["data"]; ok {
		return variantNested
	}
	return variantUnknown
}

// Normalize parses a raw payload into a canonical Reading stamped with the
// given arrival time. Device-side timestamps embedded in the payload are
// ignored. The returned error is one of the Err* sentinels.
func Normalize(payload []byte, arrivedAt time.Time) (domain.Reading, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return domain.Reading{}, ErrMalformedPayload
	}

	switch classify(fields) {
	case variantFlat:
		return normalizeFlat(fields, arrivedAt)
	case variantNested:
		return normalizeNested(fields, arrivedAt)
	default:
		return domain.Reading{}, ErrUnknownSchema
	}
}

func normalizeFlat(fields map[string]json.RawMessage, arrivedAt time.Time) (domain.Reading, error) {
	suhu, err := toFloat(fields["suhu"])
	if err != nil {
		return domain.Reading{}, fmt.Errorf("%w: suhu", ErrInvalidFieldType)
	}
	humidity, err := toFloat(fields["humidity"])
	if err != nil {
		return domain.Reading{}, fmt.Errorf("%w: humidity", ErrInvalidFieldType)
	}
	lux, err := toFloat(fields["lux"])
	if err != nil {
		return domain.Reading{}, fmt.Errorf("%w: lux", ErrInvalidFieldType)
	}
	return domain.Reading{
		Temperature: suhu,
		Humidity:    humidity,
		Lux:         lux,
		CapturedAt:  arrivedAt,
	}, nil
}

func normalizeNested(fields map[string]json.RawMessage, arrivedAt time.Time) (domain.Reading, error) {
	var data map[string]json.RawMessage
	if err := json.Unmarshal(fields["data"], &data); err != nil {
		return domain.Reading{}, ErrUnknownSchema
	}
	raw, ok := data["temp"]
	if !ok {
		return domain.Reading{}, ErrUnknownSchema
	}
	temp, err := toFloat(raw)
	if err != nil {
		return domain.Reading{}, fmt.Errorf("%w: data.temp", ErrInvalidFieldType)
	}
	return domain.Reading{
		Temperature: temp,
		CapturedAt:  arrivedAt,
	}, nil
}

// toFloat accepts JSON numbers and numeric strings, matching what the
// sensor firmware actually sends.
func toFloat(raw json.RawMessage) (float64, error) {
	// Unmarshal treats JSON null as a no-op, so it has to be ruled out
	// before the numeric attempt.
	if strings.TrimSpace(string(raw)) == "null" {
		return 0, errors.New("null")
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	}
	return 0, errors.New("not a number")
}
