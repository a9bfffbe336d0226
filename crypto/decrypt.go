package crypto

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Decrypt reverses Encrypt: it decodes the base64 JSON integer list and maps
// each c back to the character m = c^d mod n. Every failure wraps
// ErrDecryptFailed.
func Decrypt(ciphertext string, key PrivateKey) (string, error) {
	logger := NewLogger("Decrypt").WithField("key_modulus", key.N)
	logger.Entry("decrypting message")
	defer logger.Exit()

	if err := key.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptFailed, err)
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		logger.WithError(err, "decode_error", "base64_decode").Warn("Ciphertext is not valid base64")
		return "", fmt.Errorf("%w: %w", ErrDecryptFailed, err)
	}

	var cipherInts []int64
	if err := json.Unmarshal(raw, &cipherInts); err != nil {
		logger.WithError(err, "decode_error", "json_decode").Warn("Ciphertext payload is not an integer list")
		return "", fmt.Errorf("%w: %w", ErrDecryptFailed, err)
	}

	var sb strings.Builder
	sb.Grow(len(cipherInts))
	for i, c := range cipherInts {
		if c < 0 || c >= key.N {
			return "", fmt.Errorf("%w: value %d at index %d outside [0, %d)", ErrDecryptFailed, c, i, key.N)
		}
		m := modPow(c, key.D, key.N)
		if m > unicode.MaxRune || !utf8.ValidRune(rune(m)) {
			return "", fmt.Errorf("%w: value at index %d decrypts to invalid code point %d", ErrDecryptFailed, i, m)
		}
		sb.WriteRune(rune(m))
	}

	logger.WithFields(OperationFields("decrypt", "success")).
		WithField("character_count", len(cipherInts)).
		Debug("Message decrypted")

	return sb.String(), nil
}
