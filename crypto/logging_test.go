package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs redirects the standard logrus logger for one test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldOut := logrus.StandardLogger().Out
	oldLevel := logrus.GetLevel()
	logrus.SetOutput(&buf)
	logrus.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		logrus.SetOutput(oldOut)
		logrus.SetLevel(oldLevel)
	})
	return &buf
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger("Encrypt")

	assert.Equal(t, "Encrypt", logger.function)
	assert.Equal(t, "crypto", logger.pkg)
	assert.Equal(t, "Encrypt", logger.fields["function"])
	assert.Equal(t, "crypto", logger.fields["package"])
}

func TestLoggerHelperWithError(t *testing.T) {
	logger := NewLogger("Decrypt").WithError(errors.New("bad payload"), "decode_error", "json_decode")

	assert.Equal(t, "bad payload", logger.fields["error"])
	assert.Equal(t, "decode_error", logger.fields["error_type"])
	assert.Equal(t, "json_decode", logger.fields["operation"])
}

func TestLoggerHelperWithPublicKey(t *testing.T) {
	key := PublicKey{N: testN, E: 17}
	logger := NewLogger("Encrypt").WithPublicKey(key)

	assert.Equal(t, key.N, logger.fields["key_modulus"])
	assert.Equal(t, key.Fingerprint(), logger.fields["key_fingerprint"])
}

func TestOperationFields(t *testing.T) {
	fields := OperationFields("encrypt", "success", logrus.Fields{"count": 3}, logrus.Fields{"status": "overridden"})

	assert.Equal(t, "encrypt", fields["operation"])
	assert.Equal(t, "overridden", fields["status"])
	assert.Equal(t, 3, fields["count"])
}

func TestCryptoOperationsNeverLogPrivateExponent(t *testing.T) {
	buf := captureLogs(t)
	kp := textbookKeyPair(t)

	body, _, err := Encrypt("Hi", kp.Public)
	require.NoError(t, err)
	_, err = Decrypt(body, kp.Private)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Function entry: encrypting message")
	assert.Contains(t, out, "Message decrypted")
	assert.False(t, strings.Contains(out, "2753"), "private exponent leaked into logs")
}

func TestKeyDerivationLogsAtInfo(t *testing.T) {
	buf := captureLogs(t)
	logrus.SetLevel(logrus.InfoLevel)

	textbookKeyPair(t)

	out := buf.String()
	assert.Contains(t, out, "Derived RSA keypair")
	assert.Contains(t, out, "status=success")
	assert.NotContains(t, out, "Function entry")
}
