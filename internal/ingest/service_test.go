package ingest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ridayanti/sensor-monitor/internal/domain"
)

type fakeStore struct {
	appended []domain.Reading
	fail     bool
	nextID   int64
}

func (f *fakeStore) Append(rd *domain.Reading) (int64, error) {
	if f.fail {
		return 0, errors.New("store unavailable")
	}
	f.nextID++
	rd.ID = f.nextID
	f.appended = append(f.appended, *rd)
	return f.nextID, nil
}

func TestHandleMessagePersistsValidReading(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	svc.HandleMessage("sensor/test", []byte(`{"suhu": 30, "humidity": 55, "lux": 100}`))

	require.Len(t, store.appended, 1)
	require.Equal(t, 30.0, store.appended[0].Temperature)
	require.Equal(t, int64(1), store.appended[0].ID)
}

func TestHandleMessageDropsRejectedPayload(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	svc.HandleMessage("sensor/test", []byte(`{"voltage": 220}`))
	svc.HandleMessage("sensor/test", []byte(`garbage`))

	require.Empty(t, store.appended)
}

func TestHandleMessageSurvivesStoreFailure(t *testing.T) {
	store := &fakeStore{fail: true}
	svc := NewService(store)

	// Must not panic and must keep accepting the next message.
	svc.HandleMessage("sensor/test", []byte(`{"suhu": 1, "humidity": 2, "lux": 3}`))
	store.fail = false
	svc.HandleMessage("sensor/test", []byte(`{"suhu": 4, "humidity": 5, "lux": 6}`))

	require.Len(t, store.appended, 1)
	require.Equal(t, 4.0, store.appended[0].Temperature)
}

func TestHandleMessageProcessingOrderAssignsIDs(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	for _, p := range []string{
		`{"suhu": 1, "humidity": 1, "lux": 1}`,
		`{"data": {"temp": 2}}`,
		`{"suhu": 3, "humidity": 3, "lux": 3}`,
	} {
		svc.HandleMessage("sensor/test", []byte(p))
	}

	require.Len(t, store.appended, 3)
	for i, rd := range store.appended {
		require.Equal(t, int64(i+1), rd.ID)
	}
}
