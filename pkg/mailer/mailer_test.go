package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleMode(t *testing.T) {
	svc := NewService("", nil)
	assert.False(t, svc.useSendGrid)

	err := svc.Send(context.Background(), Message{
		From:    "team@example.org",
		To:      []string{"ada@example.org"},
		Subject: "Hello",
		Body:    "Hi there",
	})
	assert.NoError(t, err)
}

func TestSendGridMode(t *testing.T) {
	svc := NewService("SG.fake-key", nil)
	assert.True(t, svc.useSendGrid)
}

func TestSend_NoRecipients(t *testing.T) {
	svc := NewService("", nil)

	err := svc.Send(context.Background(), Message{
		From:    "team@example.org",
		Subject: "Hello",
		Body:    "Hi there",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no recipients")
}
