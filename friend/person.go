package friend

import (
	"fmt"
	"sync"

	"github.com/opd-ai/friendnet/crypto"
	"github.com/opd-ai/friendnet/messaging"
	"github.com/sirupsen/logrus"
)

// Person is a node in the friend graph. People are created by
// Network.AddPerson; friendships and deliveries are written only by the
// owning Network.
type Person struct {
	id   string
	name string

	friends   []string
	friendSet map[string]struct{}
	mailbox   []*messaging.Message
	keys      *crypto.KeyPair

	mu sync.RWMutex
}

func newPerson(id, name string) *Person {
	return &Person{
		id:        id,
		name:      name,
		friendSet: make(map[string]struct{}),
	}
}

// ID returns the person's identifier.
func (p *Person) ID() string { return p.id }

// Name returns the display name.
func (p *Person) Name() string { return p.name }

// addFriend records id as a friend, returning false if it already was one.
func (p *Person) addFriend(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.friendSet[id]; ok {
		return false
	}
	p.friendSet[id] = struct{}{}
	p.friends = append(p.friends, id)
	return true
}

// Friends returns the friend ids in the order the friendships were created.
func (p *Person) Friends() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]string, len(p.friends))
	copy(out, p.friends)
	return out
}

// IsFriend reports whether id is a friend of p.
func (p *Person) IsFriend(id string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	_, ok := p.friendSet[id]
	return ok
}

func (p *Person) addMessage(msg *messaging.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mailbox = append(p.mailbox, msg)
}

// Messages returns the delivered messages in delivery order.
func (p *Person) Messages() []*messaging.Message {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]*messaging.Message, len(p.mailbox))
	copy(out, p.mailbox)
	return out
}

// Message returns the i-th delivered message.
func (p *Person) Message(i int) (*messaging.Message, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if i < 0 || i >= len(p.mailbox) {
		return nil, false
	}
	return p.mailbox[i], true
}

// MessageCount returns the mailbox size.
func (p *Person) MessageCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.mailbox)
}

// AttachKeys sets the person's keypair. It may be called once.
func (p *Person) AttachKeys(kp *crypto.KeyPair) error {
	if kp == nil {
		return fmt.Errorf("%w: nil keypair for %s", ErrNoKeys, p.id)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.keys != nil {
		return fmt.Errorf("%w: %s", ErrKeysAlreadyAttached, p.id)
	}
	p.keys = kp

	logrus.WithFields(logrus.Fields{
		"function":        "AttachKeys",
		"person_id":       p.id,
		"key_fingerprint": kp.Public.Fingerprint(),
	}).Info("Keys attached to person")

	return nil
}

// HasKeys reports whether a keypair is attached.
func (p *Person) HasKeys() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.keys != nil
}

// PublicKey returns the attached public key.
func (p *Person) PublicKey() (crypto.PublicKey, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.keys == nil {
		return crypto.PublicKey{}, fmt.Errorf("%w: %s", ErrNoKeys, p.id)
	}
	return p.keys.Public, nil
}

// PrivateKey returns the attached private key.
func (p *Person) PrivateKey() (crypto.PrivateKey, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.keys == nil {
		return crypto.PrivateKey{}, fmt.Errorf("%w: %s", ErrNoKeys, p.id)
	}
	return p.keys.Private, nil
}
