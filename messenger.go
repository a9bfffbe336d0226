package friendnet

import (
	"errors"
	"fmt"

	"github.com/opd-ai/friendnet/compress"
	"github.com/opd-ai/friendnet/crypto"
	"github.com/opd-ai/friendnet/friend"
	"github.com/opd-ai/friendnet/messaging"
	"github.com/sirupsen/logrus"
)

// Messenger sends plain, RSA-encrypted and FFT-compressed messages through
// a friend network.
type Messenger struct {
	network *friend.Network
	options *Options
}

// New creates a Messenger over network. A nil options uses NewOptions().
func New(network *friend.Network, options *Options) (*Messenger, error) {
	if network == nil {
		return nil, ErrNilNetwork
	}
	if options == nil {
		options = NewOptions()
	}
	if err := options.validate(); err != nil {
		return nil, err
	}

	return &Messenger{
		network: network,
		options: options,
	}, nil
}

// Network returns the underlying friend network.
func (m *Messenger) Network() *friend.Network {
	return m.network
}

// SetupKeys generates a keypair and attaches it to person.
func (m *Messenger) SetupKeys(person *friend.Person) error {
	kp, err := crypto.GenerateKeyPair(m.options.Keys)
	if err != nil {
		return fmt.Errorf("failed to generate keys for %s: %w", person.ID(), err)
	}
	return person.AttachKeys(kp)
}

// ensureKeys attaches keys to person unless it already has some.
func (m *Messenger) ensureKeys(person *friend.Person) error {
	if person.HasKeys() {
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"function":  "ensureKeys",
		"person_id": person.ID(),
	}).Info("Setting up RSA keys")

	err := m.SetupKeys(person)
	if errors.Is(err, friend.ErrKeysAlreadyAttached) {
		return nil
	}
	return err
}

func (m *Messenger) lookupPair(senderID, receiverID string) (*friend.Person, *friend.Person, error) {
	sender, ok := m.network.GetPerson(senderID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: sender %q", friend.ErrPersonNotFound, senderID)
	}
	receiver, ok := m.network.GetPerson(receiverID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: receiver %q", friend.ErrPersonNotFound, receiverID)
	}
	return sender, receiver, nil
}

// SendPlain delivers text unchanged.
func (m *Messenger) SendPlain(senderID, receiverID, text string) (*messaging.Message, error) {
	msg := messaging.NewMessage(senderID, receiverID, text, messaging.TypePlain, nil)
	if err := m.network.SendMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// SendEncrypted encrypts plaintext with the receiver's public key and
// delivers it as an RSA message. Sender and receiver get keys first if they
// have none.
func (m *Messenger) SendEncrypted(senderID, receiverID, plaintext string) (*messaging.Message, error) {
	sender, receiver, err := m.lookupPair(senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if err := m.ensureKeys(receiver); err != nil {
		return nil, err
	}
	if err := m.ensureKeys(sender); err != nil {
		return nil, err
	}

	pub, err := receiver.PublicKey()
	if err != nil {
		return nil, err
	}
	body, meta, err := crypto.Encrypt(plaintext, pub)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function":    "SendEncrypted",
			"sender_id":   senderID,
			"receiver_id": receiverID,
			"error":       err.Error(),
		}).Error("RSA encryption failed")
		return nil, err
	}

	msg := messaging.NewMessage(senderID, receiverID, body, messaging.TypeRSAEncrypted, meta.Map())
	if err := m.network.SendMessage(msg); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"function":         "SendEncrypted",
		"sender_id":        senderID,
		"receiver_id":      receiverID,
		"original_length":  meta.OriginalLength,
		"encrypted_length": meta.EncryptedLength,
	}).Info("RSA encrypted message sent")

	return msg, nil
}

// SendCompressed compresses text with the given lossiness and delivers it as
// an FFT message.
func (m *Messenger) SendCompressed(senderID, receiverID, text string, lossiness float64) (*messaging.Message, error) {
	body, meta, err := compress.Compress(text, lossiness)
	if err != nil {
		return nil, err
	}

	msg := messaging.NewMessage(senderID, receiverID, body, messaging.TypeFFTCompressed, meta.Map())
	if err := m.network.SendMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// SendCompressedDefault is SendCompressed with the configured lossiness.
func (m *Messenger) SendCompressedDefault(senderID, receiverID, text string) (*messaging.Message, error) {
	return m.SendCompressed(senderID, receiverID, text, m.options.Lossiness)
}
