package email

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/drishya/internal/common"
	"github.com/dmitrijs2005/drishya/internal/logging"
	"github.com/dmitrijs2005/drishya/internal/models"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ---- fakes ----

type fixedRand struct{ v float64 }

func (f fixedRand) Float64() float64 { return f.v }

type fakeTransport struct {
	sendErr error

	lastTo      string
	lastSubject string
	lastBody    string
	calls       int
}

func (f *fakeTransport) Send(ctx context.Context, to, subject, body string) (string, error) {
	f.calls++
	f.lastTo = to
	f.lastSubject = subject
	f.lastBody = body
	if f.sendErr != nil {
		return "", f.sendErr
	}
	return "msg_test_123", nil
}

func testConfirmation() *models.OrderConfirmation {
	return &models.OrderConfirmation{
		OrderID:       "ORD-1700000000000-ABC123",
		CustomerEmail: "buyer@example.com",
		CustomerName:  "Buyer",
		VideoType:     "explainer",
		PlanName:      "Basic",
		DeliveryDays:  7,
		AvatarName:    "Sarah",
		DeliveryDate:  time.Date(2025, 4, 17, 0, 0, 0, 0, time.UTC),
		OrderTotal:    23,
	}
}

// ---- dispatcher ----

func TestSendOrderConfirmation_BodyContainsOrderFields(t *testing.T) {
	tr := &fakeTransport{}
	d := NewDispatcher(tr, discardLogger())

	msgID, err := d.SendOrderConfirmation(context.Background(), testConfirmation())
	require.NoError(t, err)
	assert.Equal(t, "msg_test_123", msgID)

	assert.Equal(t, "buyer@example.com", tr.lastTo)
	assert.Contains(t, tr.lastSubject, "ORD-1700000000000-ABC123")
	for _, want := range []string{
		"Hi Buyer!",
		"ORD-1700000000000-ABC123",
		"explainer",
		"Basic",
		"Sarah",
		"Thursday, April 17, 2025",
		"$23",
	} {
		assert.Contains(t, tr.lastBody, want)
	}
}

func TestSendOrderConfirmation_PropagatesTransportError(t *testing.T) {
	tr := &fakeTransport{sendErr: common.ErrTransportUnavailable}
	d := NewDispatcher(tr, discardLogger())

	_, err := d.SendOrderConfirmation(context.Background(), testConfirmation())
	assert.ErrorIs(t, err, common.ErrTransportUnavailable)
}

func TestSendStatusUpdate(t *testing.T) {
	tr := &fakeTransport{}
	d := NewDispatcher(tr, discardLogger())

	_, err := d.SendStatusUpdate(context.Background(), "ORD-1", "c@example.com", "script-review", "We are on it")
	require.NoError(t, err)
	assert.Contains(t, tr.lastBody, "SCRIPT REVIEW")
	assert.Contains(t, tr.lastBody, "We are on it")
	assert.Contains(t, tr.lastBody, "ORD-1")
}

// ---- simulated transport ----

func TestSimulatedTransport_Success(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tr := NewSimulatedTransport(clock, fixedRand{v: 0.99}, 0, 0.05)

	id, err := tr.Send(context.Background(), "a@example.com", "s", "b")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "msg_"), "got %q", id)
}

func TestSimulatedTransport_Failure(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tr := NewSimulatedTransport(clock, fixedRand{v: 0.0}, 0, 0.05)

	_, err := tr.Send(context.Background(), "a@example.com", "s", "b")
	assert.ErrorIs(t, err, common.ErrTransportUnavailable)
}

func TestSimulatedTransport_WaitsLatency(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tr := NewSimulatedTransport(clock, fixedRand{v: 0.99}, time.Second, 0)

	done := make(chan error, 1)
	go func() {
		_, err := tr.Send(context.Background(), "a@example.com", "s", "b")
		done <- err
	}()

	clock.BlockUntil(1)
	select {
	case <-done:
		t.Fatal("send returned before latency elapsed")
	default:
	}

	clock.Advance(time.Second)
	require.NoError(t, <-done)
}

func TestSimulatedTransport_ContextCancelled(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tr := NewSimulatedTransport(clock, fixedRand{v: 0.99}, time.Second, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := tr.Send(ctx, "a@example.com", "s", "b")
		done <- err
	}()

	clock.BlockUntil(1)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
