package gmail

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRawMessage(t *testing.T) {
	raw := BuildRawMessage("ops@flightwatch.dev", "asha@example.com", "Flight 6E-213 cancelled", "Dear Asha,\n\nYour flight has been cancelled.")

	decoded, err := base64.URLEncoding.DecodeString(raw)
	require.NoError(t, err)
	msg := string(decoded)

	assert.True(t, strings.HasPrefix(msg, "From: ops@flightwatch.dev\r\n"))
	assert.Contains(t, msg, "To: asha@example.com\r\n")
	assert.Contains(t, msg, "Subject: Flight 6E-213 cancelled\r\n")
	assert.Contains(t, msg, "Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\nDear Asha,\n\nYour flight has been cancelled."))
}

func TestBuildRawMessage_NoFromAndEncodedSubject(t *testing.T) {
	raw := BuildRawMessage("", "ravi@example.com", "Vol 6E-213 annulé", "body")

	decoded, err := base64.URLEncoding.DecodeString(raw)
	require.NoError(t, err)
	msg := string(decoded)

	assert.NotContains(t, msg, "From:")
	assert.True(t, strings.HasPrefix(msg, "To: ravi@example.com\r\n"))
	assert.Contains(t, msg, "Subject: =?utf-8?q?")
}
