package friend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildNetwork creates people named after their ids and the given
// friendships, in order.
func buildNetwork(t *testing.T, ids []string, edges [][2]string, opts ...Option) *Network {
	t.Helper()
	n := NewNetwork(opts...)
	for _, id := range ids {
		_, err := n.AddPerson(id, id)
		require.NoError(t, err)
	}
	for _, e := range edges {
		require.NoError(t, n.AddFriendship(e[0], e[1]))
	}
	return n
}

func stringsReader(s string) *strings.Reader {
	return strings.NewReader(s)
}
