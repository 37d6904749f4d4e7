package email

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func TestSendRegistrationReceived(t *testing.T) {
	d := &recordingDialer{}
	svc := NewServiceWithDialer(d, "onboarding@medlink.test")

	require.NoError(t, svc.SendRegistrationReceived(context.Background(), "reed@clinic.test", "Dr. Evelyn Reed"))
	require.Len(t, d.sent, 1)

	msg := d.sent[0]
	assert.Equal(t, []string{"reed@clinic.test"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"onboarding@medlink.test"}, msg.GetHeader("From"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Dr. Evelyn Reed")
}

func TestSendCustomWrapsDialError(t *testing.T) {
	d := &recordingDialer{err: errors.New("dial tcp: refused")}
	svc := NewServiceWithDialer(d, "onboarding@medlink.test")

	err := svc.SendCustom(context.Background(), "a@b.test", "hi", "body")
	assert.ErrorContains(t, err, "a@b.test")
}

func TestSendCustomHonoursCancelledContext(t *testing.T) {
	d := &recordingDialer{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewServiceWithDialer(d, "x@y.test").SendCustom(ctx, "a@b.test", "hi", "body")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, d.sent)
}
