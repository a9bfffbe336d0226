package crypto

import "errors"

var (
	// ErrNoModularInverse indicates gcd(e, phi) != 1, so no inverse exists.
	ErrNoModularInverse = errors.New("modular inverse does not exist")

	// ErrInvalidTotient indicates phi(n) failed the evenness check that the
	// odd-exponent search relies on.
	ErrInvalidTotient = errors.New("invalid totient")

	// ErrInvalidPrimes indicates key material was built from values that are
	// not two distinct primes.
	ErrInvalidPrimes = errors.New("invalid primes")

	// ErrInvalidRange indicates a sampling range with low > high, low < 2 or
	// bounds outside what the key arithmetic supports.
	ErrInvalidRange = errors.New("invalid prime range")

	// ErrNoPrimeInRange indicates prime sampling gave up after the configured
	// number of attempts.
	ErrNoPrimeInRange = errors.New("no prime found in range")

	// ErrSymbolOutOfRange indicates a character code >= n, which the key
	// modulus cannot represent.
	ErrSymbolOutOfRange = errors.New("symbol too large for key modulus")

	// ErrInvalidPlaintext indicates plaintext that is not valid UTF-8.
	ErrInvalidPlaintext = errors.New("plaintext is not valid UTF-8")

	// ErrDecryptFailed wraps every failure to parse or decode ciphertext.
	ErrDecryptFailed = errors.New("rsa decryption failed")

	// ErrInvalidKey indicates a key with a non-positive modulus or exponent.
	ErrInvalidKey = errors.New("invalid key")
)
