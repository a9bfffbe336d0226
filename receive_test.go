package friendnet

import (
	"testing"

	"github.com/opd-ai/friendnet/friend"
	"github.com/opd-ai/friendnet/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecryptReceivedErrors(t *testing.T) {
	m, n := newChain(t)
	cheshire := person(t, n, "cheshire")

	_, err := DecryptReceived(cheshire, 0)
	assert.ErrorIs(t, err, ErrMessageIndex)

	_, err = m.SendPlain("alice", "cheshire", "plain")
	require.NoError(t, err)

	_, err = DecryptReceived(cheshire, -1)
	assert.ErrorIs(t, err, ErrMessageIndex)
	_, err = DecryptReceived(cheshire, 1)
	assert.ErrorIs(t, err, ErrMessageIndex)

	_, err = DecryptReceived(cheshire, 0)
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestDecryptReceivedWithoutKeys(t *testing.T) {
	n := friend.NewNetwork()
	_, err := n.AddPerson("alice", "Alice")
	require.NoError(t, err)
	alice := person(t, n, "alice")

	// A self-addressed RSA message delivered without any key setup.
	msg := messaging.NewMessage("alice", "alice", "e30=", messaging.TypeRSAEncrypted, nil)
	require.NoError(t, n.SendMessage(msg))

	_, err = DecryptReceived(alice, 0)
	assert.ErrorIs(t, err, friend.ErrNoKeys)
}

func TestDecompress(t *testing.T) {
	m, _ := newChain(t)

	msg, err := m.SendCompressed("alice", "cheshire", "Curiouser", 0.25)
	require.NoError(t, err)
	text, err := Decompress(msg)
	require.NoError(t, err)
	assert.Equal(t, msg.Body(), text)

	plain := messaging.NewMessage("alice", "cheshire", "x", messaging.TypePlain, nil)
	_, err = Decompress(plain)
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestOpen(t *testing.T) {
	m, n := newChain(t)
	cheshire := person(t, n, "cheshire")

	_, err := m.SendPlain("alice", "cheshire", "plain text")
	require.NoError(t, err)
	_, err = m.SendEncrypted("alice", "cheshire", "secret text")
	require.NoError(t, err)
	_, err = m.SendCompressed("alice", "cheshire", "squeezed text", 0)
	require.NoError(t, err)

	want := []string{"plain text", "secret text", "squeezed text"}
	msgs := cheshire.Messages()
	require.Len(t, msgs, len(want))
	for i, msg := range msgs {
		text, err := Open(cheshire, msg)
		require.NoError(t, err, "message %d", i)
		assert.Equal(t, want[i], text)
	}
}

func TestOpenUnsupported(t *testing.T) {
	_, n := newChain(t)
	cheshire := person(t, n, "cheshire")

	tests := []struct {
		name    string
		msgType messaging.MessageType
	}{
		{"unknown tag", messaging.TypeUnknown},
		{"out of range", messaging.MessageType(42)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := messaging.NewMessage("alice", "cheshire", "?", tt.msgType, nil)
			_, err := Open(cheshire, msg)
			assert.ErrorIs(t, err, ErrUnsupportedType)
		})
	}
}
