package friendnet

import (
	"fmt"

	"github.com/opd-ai/friendnet/crypto"
	"github.com/opd-ai/friendnet/friend"
	"github.com/opd-ai/friendnet/messaging"
)

// DecryptReceived decrypts the index-th message in person's mailbox.
func DecryptReceived(person *friend.Person, index int) (string, error) {
	msg, ok := person.Message(index)
	if !ok {
		return "", fmt.Errorf("%w: index %d, %s has %d messages",
			ErrMessageIndex, index, person.ID(), person.MessageCount())
	}
	return decryptFor(person, msg)
}

func decryptFor(person *friend.Person, msg *messaging.Message) (string, error) {
	if msg.Type() != messaging.TypeRSAEncrypted {
		return "", fmt.Errorf("%w: message is %s, not %s", ErrWrongType, msg.Type(), messaging.TypeRSAEncrypted)
	}
	priv, err := person.PrivateKey()
	if err != nil {
		return "", err
	}
	return crypto.Decrypt(msg.Body(), priv)
}

// Decompress returns the reconstructed text of an FFT message. The
// compression is lossy, so this is not the original text in general.
func Decompress(msg *messaging.Message) (string, error) {
	if msg.Type() != messaging.TypeFFTCompressed {
		return "", fmt.Errorf("%w: message is %s, not %s", ErrWrongType, msg.Type(), messaging.TypeFFTCompressed)
	}
	return msg.Body(), nil
}

// Open returns the readable text of msg as seen by person.
func Open(person *friend.Person, msg *messaging.Message) (string, error) {
	switch msg.Type() {
	case messaging.TypePlain:
		return msg.Body(), nil
	case messaging.TypeRSAEncrypted:
		return decryptFor(person, msg)
	case messaging.TypeFFTCompressed:
		return Decompress(msg)
	case messaging.TypeUnknown:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, msg.Type())
	default:
		return "", fmt.Errorf("%w: %d", ErrUnsupportedType, msg.Type())
	}
}
