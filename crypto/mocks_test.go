package crypto

import (
	"errors"
	"io"
	"testing"
)

// errReader is an io.Reader that always fails.
type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy source unavailable")
}

// withRandReader swaps RandReader for the duration of a test.
func withRandReader(t *testing.T, r io.Reader) {
	t.Helper()
	old := RandReader
	RandReader = r
	t.Cleanup(func() { RandReader = old })
}

// textbookKeyPair returns the (61, 53, 17) keypair.
func textbookKeyPair(t *testing.T) *KeyPair {
	t.Helper()
	kp, err := NewKeyPairFromPrimes(testP, testQ, testSeed)
	if err != nil {
		t.Fatalf("NewKeyPairFromPrimes: %v", err)
	}
	return kp
}
