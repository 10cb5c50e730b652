package relay

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ridayanti/sensor-monitor/internal/domain"
)

type fakePublisher struct {
	mu       sync.Mutex
	payloads []string
	err      error
}

func (f *fakePublisher) Publish(topic string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, string(payload))
	return nil
}

func TestSendAcceptsNormalizedTokens(t *testing.T) {
	cases := []struct {
		token string
		want  domain.RelayCommand
	}{
		{"ON", domain.RelayOn},
		{"on", domain.RelayOn},
		{"OFF", domain.RelayOff},
		{" Off ", domain.RelayOff},
	}
	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			pub := &fakePublisher{}
			d := NewDispatcher(pub, "sensor/test/relay")

			cmd, err := d.Send(tc.token)
			require.NoError(t, err)
			require.Equal(t, tc.want, cmd)
			require.Equal(t, []string{string(tc.want)}, pub.payloads)
		})
	}
}

func TestSendRejectsUnknownToken(t *testing.T) {
	pub := &fakePublisher{}
	d := NewDispatcher(pub, "sensor/test/relay")

	for _, token := range []string{"toggle", "", "ONN", "1"} {
		_, err := d.Send(token)
		require.ErrorIs(t, err, ErrInvalidCommand)
	}
	require.Empty(t, pub.payloads, "rejected tokens must not be published")
}

func TestSendSurfacesPublishFailure(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker unreachable")}
	d := NewDispatcher(pub, "sensor/test/relay")

	_, err := d.Send("ON")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidCommand)
}

func TestSendConcurrentCallersNeverInterleave(t *testing.T) {
	pub := &fakePublisher{}
	d := NewDispatcher(pub, "sensor/test/relay")

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		token := "ON"
		if i%2 == 1 {
			token = "off"
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := d.Send(token)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	require.Len(t, pub.payloads, 50)
	for _, p := range pub.payloads {
		require.Contains(t, []string{"ON", "OFF"}, p, "each payload must be one complete token")
	}
}
