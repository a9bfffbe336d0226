// Package crypto implements the toy RSA cryptosystem used for encrypted
// friendnet messages.
//
// The package is pedagogically sized and deliberately insecure: primes are
// drawn from a small range, and every character is encrypted as an
// independent RSA instance with no padding, so equal characters always
// produce equal ciphertext integers.
//
// # Number Theory
//
//	crypto.IsPrime(97)                       // trial division
//	p, err := crypto.GeneratePrime(100, 500) // bounded random sampling
//	g, x, y := crypto.ExtendedGCD(240, 46)   // 240*x + 46*y == g
//	d, err := crypto.ModInverse(17, 3120)    // ErrNoModularInverse if gcd != 1
//
// # Keys
//
//	keys, err := crypto.GenerateKeyPair(crypto.DefaultKeyOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("public key:", keys.Public, keys.Public.Fingerprint())
//
// Key generation samples two distinct primes p and q, computes n = p*q and
// phi = (p-1)(q-1), searches odd exponents upward from 65537 for one coprime
// with phi, and derives d as its inverse modulo phi.
//
// # Cipher
//
//	body, meta, err := crypto.Encrypt("Hi", keys.Public)
//	// errors.Is(err, crypto.ErrSymbolOutOfRange) when a code point >= n
//	text, err := crypto.Decrypt(body, keys.Private)
//	// errors.Is(err, crypto.ErrDecryptFailed) for malformed payloads
//
// The ciphertext body is the JSON array of per-character integers, encoded
// with standard base64.
//
// # Logging
//
// Operations log through logrus via [LoggerHelper]. Public keys appear only
// as modulus and BLAKE2b fingerprint; private exponents are never logged.
package crypto
