package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var arrival = time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)

func TestNormalizeFlat(t *testing.T) {
	rd, err := Normalize([]byte(`{"suhu": 28.5, "humidity": 61.2, "lux": 320}`), arrival)
	require.NoError(t, err)
	require.Equal(t, 28.5, rd.Temperature)
	require.Equal(t, 61.2, rd.Humidity)
	require.Equal(t, 320.0, rd.Lux)
	require.Equal(t, arrival, rd.CapturedAt)
}

func TestNormalizeFlatNumericStrings(t *testing.T) {
	rd, err := Normalize([]byte(`{"suhu": "28.5", "humidity": " 61 ", "lux": "0"}`), arrival)
	require.NoError(t, err)
	require.Equal(t, 28.5, rd.Temperature)
	require.Equal(t, 61.0, rd.Humidity)
	require.Equal(t, 0.0, rd.Lux)
}

func TestNormalizeNested(t *testing.T) {
	rd, err := Normalize([]byte(`{"data": {"temp": 24.1, "sensor": "dht22"}}`), arrival)
	require.NoError(t, err)
	require.Equal(t, 24.1, rd.Temperature)
	require.Equal(t, 0.0, rd.Humidity)
	require.Equal(t, 0.0, rd.Lux)
	require.Equal(t, arrival, rd.CapturedAt)
}

func TestNormalizeIgnoresPayloadTimestamp(t *testing.T) {
	rd, err := Normalize([]byte(`{"suhu": 1, "humidity": 2, "lux": 3, "timestamp": "2001-01-01 00:00:00"}`), arrival)
	require.NoError(t, err)
	require.Equal(t, arrival, rd.CapturedAt)
}

func TestNormalizeFlatWinsOverNested(t *testing.T) {
	rd, err := Normalize([]byte(`{"suhu": 5, "humidity": 6, "lux": 7, "data": {"temp": 99}}`), arrival)
	require.NoError(t, err)
	require.Equal(t, 5.0, rd.Temperature)
}

func TestNormalizeRejects(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    error
	}{
		{"not json", `not json at all`, ErrMalformedPayload},
		{"json array", `[1, 2, 3]`, ErrMalformedPayload},
		{"missing lux", `{"suhu": 1, "humidity": 2}`, ErrUnknownSchema},
		{"empty object", `{}`, ErrUnknownSchema},
		{"nested without temp", `{"data": {"sensor": "dht22"}}`, ErrUnknownSchema},
		{"nested data not object", `{"data": 42}`, ErrUnknownSchema},
		{"flat non-numeric", `{"suhu": "warm", "humidity": 2, "lux": 3}`, ErrInvalidFieldType},
		{"flat null field", `{"suhu": 1, "humidity": null, "lux": 3}`, ErrInvalidFieldType},
		{"nested non-numeric temp", `{"data": {"temp": "hot"}}`, ErrInvalidFieldType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize([]byte(tc.payload), arrival)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
