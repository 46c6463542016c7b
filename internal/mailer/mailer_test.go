package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMailer_SendDialFailure(t *testing.T) {
	// Nothing listens on port 1; delivery failures must surface to the
	// caller instead of being swallowed.
	m := New("127.0.0.1", 1, "", "", "noreply@example.com")

	err := m.Send("alice@example.com", "Confirmation code", "Your confirmation code - abc123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "send email")
}
