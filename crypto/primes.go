package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/sirupsen/logrus"
)

// MaxPrimeBound is the largest prime candidate accepted by the samplers. Two
// primes at or below it keep n = p*q inside an int64.
const MaxPrimeBound = 3037000499

// DefaultMaxAttempts bounds the number of candidates drawn per sampled prime.
const DefaultMaxAttempts = 10000

// RandReader is the entropy source for prime sampling. Tests may replace it.
var RandReader io.Reader = rand.Reader

// IsPrime reports whether n is prime using trial division by odd numbers up
// to floor(sqrt(n)).
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := int64(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// GeneratePrime samples uniformly from [low, high] until it draws a prime,
// giving up after DefaultMaxAttempts candidates.
func GeneratePrime(low, high int64) (int64, error) {
	return GeneratePrimeWithAttempts(low, high, DefaultMaxAttempts)
}

// GeneratePrimeWithAttempts is GeneratePrime with an explicit attempt budget.
// It returns ErrNoPrimeInRange once maxAttempts candidates were rejected.
func GeneratePrimeWithAttempts(low, high int64, maxAttempts int) (int64, error) {
	if err := validateRange(low, high); err != nil {
		return 0, err
	}
	if maxAttempts <= 0 {
		return 0, fmt.Errorf("%w: attempts must be positive, got %d", ErrInvalidRange, maxAttempts)
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		candidate, err := randomInRange(low, high)
		if err != nil {
			return 0, err
		}
		if IsPrime(candidate) {
			logrus.WithFields(logrus.Fields{
				"function": "GeneratePrime",
				"low":      low,
				"high":     high,
				"attempts": attempt,
			}).Debug("Sampled prime")
			return candidate, nil
		}
	}

	logrus.WithFields(logrus.Fields{
		"function":     "GeneratePrime",
		"low":          low,
		"high":         high,
		"max_attempts": maxAttempts,
	}).Warn("Prime sampling exhausted its attempt budget")

	return 0, fmt.Errorf("%w: [%d, %d] after %d attempts", ErrNoPrimeInRange, low, high, maxAttempts)
}

func validateRange(low, high int64) error {
	if low < 2 {
		return fmt.Errorf("%w: low %d is below the smallest prime", ErrInvalidRange, low)
	}
	if low > high {
		return fmt.Errorf("%w: low %d exceeds high %d", ErrInvalidRange, low, high)
	}
	if high > MaxPrimeBound {
		return fmt.Errorf("%w: high %d exceeds %d", ErrInvalidRange, high, int64(MaxPrimeBound))
	}
	return nil
}

// randomInRange returns a uniform integer in [low, high].
func randomInRange(low, high int64) (int64, error) {
	span := big.NewInt(high - low + 1)
	v, err := rand.Int(RandReader, span)
	if err != nil {
		return 0, fmt.Errorf("failed to read random candidate: %w", err)
	}
	return low + v.Int64(), nil
}

// ExtendedGCD returns (g, x, y) such that a*x + b*y = g = gcd(a, b).
func ExtendedGCD(a, b int64) (gcd, x, y int64) {
	if a == 0 {
		return b, 0, 1
	}
	gcd, x1, y1 := ExtendedGCD(b%a, a)
	return gcd, y1 - (b/a)*x1, x1
}

// ModInverse returns d in [0, phi) with e*d ≡ 1 (mod phi).
func ModInverse(e, phi int64) (int64, error) {
	if phi <= 0 {
		return 0, fmt.Errorf("%w: modulus %d is not positive", ErrNoModularInverse, phi)
	}
	gcd, x, _ := ExtendedGCD(e, phi)
	if gcd != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNoModularInverse, e, phi, gcd)
	}
	// x+phi would overflow once phi exceeds MaxInt64/2.
	x %= phi
	if x < 0 {
		x += phi
	}
	return x, nil
}

// modPow computes base^exp mod m.
func modPow(base, exp, m int64) int64 {
	r := new(big.Int).Exp(big.NewInt(base), big.NewInt(exp), big.NewInt(m))
	return r.Int64()
}
