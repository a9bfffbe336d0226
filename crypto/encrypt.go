package crypto

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// AlgorithmRSA is the metadata tag for per-character RSA bodies.
const AlgorithmRSA = "rsa"

// EncryptionMetadata describes how an RSA body was produced.
type EncryptionMetadata struct {
	Algorithm       string `json:"encryption"`
	OriginalLength  int    `json:"original_length"`
	EncryptedLength int    `json:"encrypted_length"`
	PublicKeyN      int64  `json:"public_key_n"`
	PublicKeyE      int64  `json:"public_key_e"`
	CharacterCount  int    `json:"character_count"`
}

// Map renders the metadata as a message metadata record.
func (m EncryptionMetadata) Map() map[string]any {
	return map[string]any{
		"encryption":       m.Algorithm,
		"original_length":  m.OriginalLength,
		"encrypted_length": m.EncryptedLength,
		"public_key_n":     m.PublicKeyN,
		"public_key_e":     m.PublicKeyE,
		"character_count":  m.CharacterCount,
	}
}

// Encrypt encrypts each code point of plaintext independently as
// c = m^e mod n and returns the ciphertext integers as base64-encoded JSON.
//
// Identical characters always encrypt to identical integers under the same
// key. Any code point >= n fails with ErrSymbolOutOfRange, and plaintext
// that is not valid UTF-8 fails with ErrInvalidPlaintext.
func Encrypt(plaintext string, key PublicKey) (string, EncryptionMetadata, error) {
	logger := NewLogger("Encrypt").WithPublicKey(key)
	logger.Entry("encrypting message")
	defer logger.Exit()

	if err := key.Validate(); err != nil {
		return "", EncryptionMetadata{}, err
	}

	if !utf8.ValidString(plaintext) {
		err := fmt.Errorf("%w: %d bytes", ErrInvalidPlaintext, len(plaintext))
		logger.WithError(err, "validation_error", "validate_plaintext").Error("Rejected plaintext")
		return "", EncryptionMetadata{}, err
	}

	cipherInts := make([]int64, 0, utf8.RuneCountInString(plaintext))
	for i, r := range plaintext {
		code := int64(r)
		if code >= key.N {
			err := fmt.Errorf("%w: character code %d at offset %d, n=%d", ErrSymbolOutOfRange, code, i, key.N)
			logger.WithError(err, "range_error", "encrypt_symbol").Error("Key modulus too small for plaintext")
			return "", EncryptionMetadata{}, err
		}
		cipherInts = append(cipherInts, modPow(code, key.E, key.N))
	}

	raw, err := json.Marshal(cipherInts)
	if err != nil {
		return "", EncryptionMetadata{}, fmt.Errorf("failed to marshal ciphertext: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(raw)

	meta := EncryptionMetadata{
		Algorithm:       AlgorithmRSA,
		OriginalLength:  utf8.RuneCountInString(plaintext),
		EncryptedLength: len(encoded),
		PublicKeyN:      key.N,
		PublicKeyE:      key.E,
		CharacterCount:  len(cipherInts),
	}

	logger.WithFields(OperationFields("encrypt", "success")).
		WithField("character_count", meta.CharacterCount).
		Debug("Message encrypted")

	return encoded, meta, nil
}
