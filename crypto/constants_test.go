package crypto

const (
	// Textbook RSA example: n = 3233, phi = 3120, e = 17, d = 2753.
	testP    = 61
	testQ    = 53
	testSeed = 17
	testN    = 3233
	testD    = 2753
)
