package friendnet

// Textbook RSA parameters shared by the pipeline tests.
const (
	testP    = 61
	testQ    = 53
	testSeed = 17
)

var wonderland = []string{"alice", "hatter", "cheshire", "queen"}
