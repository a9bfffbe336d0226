package friendnet

import (
	"testing"

	"github.com/opd-ai/friendnet/crypto"
	"github.com/opd-ai/friendnet/friend"
	"github.com/stretchr/testify/require"
)

// newChain builds alice - hatter - cheshire with an isolated queen and
// returns a Messenger over it.
func newChain(t *testing.T) (*Messenger, *friend.Network) {
	t.Helper()
	n := friend.NewNetwork()
	for _, id := range wonderland {
		_, err := n.AddPerson(id, id)
		require.NoError(t, err)
	}
	require.NoError(t, n.AddFriendship("alice", "hatter"))
	require.NoError(t, n.AddFriendship("hatter", "cheshire"))

	m, err := New(n, NewOptions())
	require.NoError(t, err)
	return m, n
}

func person(t *testing.T, n *friend.Network, id string) *friend.Person {
	t.Helper()
	p, ok := n.GetPerson(id)
	require.True(t, ok, "person %s", id)
	return p
}

func attachTextbookKeys(t *testing.T, p *friend.Person) {
	t.Helper()
	kp, err := crypto.NewKeyPairFromPrimes(testP, testQ, testSeed)
	require.NoError(t, err)
	require.NoError(t, p.AttachKeys(kp))
}
