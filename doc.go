// Package friendnet simulates messaging over a social graph: people
// connected as friends, messages routed along shortest friendship paths, and
// optional per-message transformations.
//
// # Getting Started
//
//	network := friend.NewNetwork()
//	network.AddPerson("alice", "Alice")
//	network.AddPerson("hatter", "Hatter")
//	network.AddPerson("cheshire", "Cheshire")
//	network.AddFriendship("alice", "hatter")
//	network.AddFriendship("hatter", "cheshire")
//
//	m, err := friendnet.New(network, friendnet.NewOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Pipelines
//
// Each message type has its own pipeline:
//
//	m.SendPlain("alice", "cheshire", "Hello!")
//	m.SendEncrypted("alice", "cheshire", "Hatter can't read this")
//	m.SendCompressed("alice", "cheshire", "Hello Wonderland!", 0.5)
//
// SendEncrypted gives sender and receiver RSA keys on first use and encrypts
// with the receiver's public key, so intermediate hops only relay
// ciphertext. The receiver reads messages back with [DecryptReceived],
// [Decompress] or the type-dispatching [Open]:
//
//	cheshire, _ := network.GetPerson("cheshire")
//	for _, msg := range cheshire.Messages() {
//	    text, err := friendnet.Open(cheshire, msg)
//	    fmt.Println(text, err, msg.Route())
//	}
//
// # Packages
//
//   - [friend]: people, friendships, BFS routing and delivery
//   - [messaging]: the message record and its type tags
//   - [crypto]: number theory, key generation and the per-character RSA cipher
//   - [compress]: lossy FFT compression
//   - [metrics]: Prometheus delivery counters
//   - [config]: YAML and environment configuration for the CLI
//
// The RSA implementation is a teaching toy with no security guarantees.
package friendnet
