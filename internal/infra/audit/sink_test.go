//go:build unit

package audit

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"gas-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	events []shared.Event
	err    error
}

func (r *recordingSink) Emit(_ context.Context, e shared.Event) error {
	r.events = append(r.events, e)
	return r.err
}

func testEvent() shared.Event {
	return shared.Event{
		Name:       "booking_created",
		OccurredAt: time.Date(2025, 1, 5, 8, 0, 0, 0, time.UTC),
		Params:     map[string]any{"quantity": 2},
	}
}

func TestLogSink_Emit(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	require.NoError(t, NewLogSink(logger).Emit(context.Background(), testEvent()))

	out := buf.String()
	assert.Contains(t, out, `"msg":"audit event"`)
	assert.Contains(t, out, `"event":"booking_created"`)
	assert.Contains(t, out, `"quantity":2`)
}

func TestMultiSink_Emit(t *testing.T) {
	t.Run("fans out to every sink", func(t *testing.T) {
		a, b := &recordingSink{}, &recordingSink{}
		m := NewMultiSink(a, nil, b)

		require.NoError(t, m.Emit(context.Background(), testEvent()))
		assert.Len(t, a.events, 1)
		assert.Len(t, b.events, 1)
	})

	t.Run("a failing sink does not stop the rest", func(t *testing.T) {
		errA := errors.New("broker down")
		a, b := &recordingSink{err: errA}, &recordingSink{}
		m := NewMultiSink(a, b)

		err := m.Emit(context.Background(), testEvent())
		assert.ErrorIs(t, err, errA)
		assert.Len(t, b.events, 1)
	})

	t.Run("no sinks", func(t *testing.T) {
		assert.NoError(t, NewMultiSink().Emit(context.Background(), testEvent()))
	})
}
