package crypto

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/blake2b"
)

// DefaultPublicExponent is the first candidate tried for e.
const DefaultPublicExponent = 65537

// PublicKey is the (n, e) half of a keypair.
type PublicKey struct {
	N int64
	E int64
}

// PrivateKey is the (n, d) half of a keypair.
type PrivateKey struct {
	N int64
	D int64
}

// KeyPair holds matching public and private keys sharing modulus n = p*q.
type KeyPair struct {
	Public  PublicKey
	Private PrivateKey

	p, q int64
}

// KeyOptions configures key generation.
type KeyOptions struct {
	// PrimeLow and PrimeHigh bound the sampling range for p and q.
	PrimeLow  int64
	PrimeHigh int64
	// PublicExponent is the odd seed for the search for e.
	PublicExponent int64
	// MaxAttempts bounds candidate draws per prime and p == q resamples.
	MaxAttempts int
}

// DefaultKeyOptions returns the classroom-sized defaults: primes in
// [100, 500] and e starting at 65537.
func DefaultKeyOptions() KeyOptions {
	return KeyOptions{
		PrimeLow:       100,
		PrimeHigh:      500,
		PublicExponent: DefaultPublicExponent,
		MaxAttempts:    DefaultMaxAttempts,
	}
}

// Validate checks that the options describe a usable sampling setup.
func (o KeyOptions) Validate() error {
	if err := validateRange(o.PrimeLow, o.PrimeHigh); err != nil {
		return err
	}
	if o.PublicExponent < 3 || o.PublicExponent%2 == 0 {
		return fmt.Errorf("%w: public exponent seed %d must be odd and >= 3", ErrInvalidKey, o.PublicExponent)
	}
	if o.MaxAttempts <= 0 {
		return fmt.Errorf("%w: attempts must be positive, got %d", ErrInvalidRange, o.MaxAttempts)
	}
	return nil
}

// GenerateKeyPair samples two distinct primes from the configured range and
// derives an RSA keypair from them.
func GenerateKeyPair(opts KeyOptions) (*KeyPair, error) {
	logger := NewLogger("GenerateKeyPair").WithFields(logrus.Fields{
		"prime_low":  opts.PrimeLow,
		"prime_high": opts.PrimeHigh,
	})
	logger.Entry("generating RSA keypair")
	defer logger.Exit()

	if err := opts.Validate(); err != nil {
		logger.WithError(err, "validation_error", "validate_options").Error("Invalid key options")
		return nil, err
	}

	p, err := GeneratePrimeWithAttempts(opts.PrimeLow, opts.PrimeHigh, opts.MaxAttempts)
	if err != nil {
		return nil, err
	}

	var q int64
	for attempt := 0; ; attempt++ {
		if attempt >= opts.MaxAttempts {
			return nil, fmt.Errorf("%w: only %d is available in [%d, %d]",
				ErrNoPrimeInRange, p, opts.PrimeLow, opts.PrimeHigh)
		}
		q, err = GeneratePrimeWithAttempts(opts.PrimeLow, opts.PrimeHigh, opts.MaxAttempts)
		if err != nil {
			return nil, err
		}
		if q != p {
			break
		}
	}

	return NewKeyPairFromPrimes(p, q, opts.PublicExponent)
}

// NewKeyPairFromPrimes derives a keypair from distinct primes p and q. The
// public exponent search starts at seed and advances by 2 until it finds a
// value coprime with (p-1)(q-1).
func NewKeyPairFromPrimes(p, q, seed int64) (*KeyPair, error) {
	if p == q || !IsPrime(p) || !IsPrime(q) {
		return nil, fmt.Errorf("%w: p=%d q=%d", ErrInvalidPrimes, p, q)
	}
	if p > MaxPrimeBound || q > MaxPrimeBound {
		return nil, fmt.Errorf("%w: p=%d q=%d exceed %d", ErrInvalidPrimes, p, q, int64(MaxPrimeBound))
	}
	if seed < 3 || seed%2 == 0 {
		return nil, fmt.Errorf("%w: public exponent seed %d must be odd and >= 3", ErrInvalidKey, seed)
	}

	n := p * q
	phi := (p - 1) * (q - 1)

	// An odd e can only be coprime with phi when phi is even.
	if phi%2 != 0 {
		return nil, fmt.Errorf("%w: phi=%d is odd for p=%d q=%d", ErrInvalidTotient, phi, p, q)
	}

	e := seed
	for {
		if g, _, _ := ExtendedGCD(e, phi); g == 1 {
			break
		}
		e += 2
	}

	d, err := ModInverse(e, phi)
	if err != nil {
		return nil, err
	}

	kp := &KeyPair{
		Public:  PublicKey{N: n, E: e},
		Private: PrivateKey{N: n, D: d},
		p:       p,
		q:       q,
	}

	NewLogger("NewKeyPairFromPrimes").
		WithFields(OperationFields("derive_keypair", "success")).
		WithField("modulus", n).
		WithField("public_exponent", e).
		WithField("fingerprint", kp.Public.Fingerprint()).
		Info("Derived RSA keypair")

	return kp, nil
}

// Fingerprint returns a short hex identifier for the key, suitable for logs.
func (k PublicKey) Fingerprint() string {
	sum := blake2b.Sum256([]byte(strconv.FormatInt(k.N, 10) + ":" + strconv.FormatInt(k.E, 10)))
	return hex.EncodeToString(sum[:8])
}

// Validate reports whether the key can be used for encryption.
func (k PublicKey) Validate() error {
	if k.N <= 0 || k.E <= 0 {
		return fmt.Errorf("%w: public key (n=%d, e=%d)", ErrInvalidKey, k.N, k.E)
	}
	return nil
}

// Validate reports whether the key can be used for decryption.
func (k PrivateKey) Validate() error {
	if k.N <= 0 || k.D <= 0 {
		return fmt.Errorf("%w: private key modulus %d", ErrInvalidKey, k.N)
	}
	return nil
}

// String renders the public key as "(n, e)".
func (k PublicKey) String() string {
	return fmt.Sprintf("(%d, %d)", k.N, k.E)
}
