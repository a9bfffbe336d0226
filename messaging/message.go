// Package messaging defines the message record that travels through a
// friendnet network.
//
// Example:
//
//	msg := messaging.NewMessage("alice", "bob", "Hello!", messaging.TypePlain, nil)
//	if err := network.SendMessage(msg); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(msg.Route())
package messaging

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MessageType identifies the pipeline that produced a message body.
type MessageType uint8

const (
	// TypePlain is an unmodified text body.
	TypePlain MessageType = iota
	// TypeRSAEncrypted is a body produced by per-character RSA encryption.
	TypeRSAEncrypted
	// TypeFFTCompressed is a lossy spectral reconstruction of the text.
	TypeFFTCompressed
	// TypeUnknown is the fallback for tags no pipeline understands.
	TypeUnknown
)

var typeNames = map[MessageType]string{
	TypePlain:         "plain",
	TypeRSAEncrypted:  "rsa_encrypted",
	TypeFFTCompressed: "fft_compressed",
	TypeUnknown:       "unknown",
}

// String returns the wire tag for the type.
func (t MessageType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return typeNames[TypeUnknown]
}

// ParseMessageType maps a tag back to its MessageType. Unrecognized tags
// yield TypeUnknown.
func ParseMessageType(tag string) MessageType {
	for t, name := range typeNames {
		if name == tag {
			return t
		}
	}
	return TypeUnknown
}

var (
	// ErrRouteAlreadySet is returned when a delivered message is stamped again.
	ErrRouteAlreadySet = errors.New("route already set")

	// ErrInvalidRoute is returned for routes that do not run from the sender
	// to the receiver.
	ErrInvalidRoute = errors.New("invalid route")
)

// Message is a unit of delivery. Its content is fixed at construction; only
// the route is written later, once, by delivery.
type Message struct {
	id         string
	senderID   string
	receiverID string
	body       string
	msgType    MessageType
	metadata   map[string]any
	createdAt  time.Time

	route []string
	mu    sync.RWMutex
}

// NewMessage creates an undelivered message. The metadata map is copied.
func NewMessage(senderID, receiverID, body string, msgType MessageType, metadata map[string]any) *Message {
	return NewMessageWithTimeProvider(senderID, receiverID, body, msgType, metadata, defaultTimeProvider)
}

// NewMessageWithTimeProvider is NewMessage with an injectable clock.
func NewMessageWithTimeProvider(senderID, receiverID, body string, msgType MessageType, metadata map[string]any, tp TimeProvider) *Message {
	if tp == nil {
		tp = defaultTimeProvider
	}

	m := &Message{
		id:         uuid.NewString(),
		senderID:   senderID,
		receiverID: receiverID,
		body:       body,
		msgType:    msgType,
		metadata:   copyMetadata(metadata),
		createdAt:  tp.Now(),
	}

	logrus.WithFields(logrus.Fields{
		"function":     "NewMessage",
		"message_id":   m.id,
		"sender_id":    senderID,
		"receiver_id":  receiverID,
		"message_type": msgType.String(),
		"body_length":  len(body),
	}).Debug("Message created")

	return m
}

// ID returns the message's random identifier.
func (m *Message) ID() string { return m.id }

// SenderID returns the id of the sending person.
func (m *Message) SenderID() string { return m.senderID }

// ReceiverID returns the id of the receiving person.
func (m *Message) ReceiverID() string { return m.receiverID }

// Body returns the payload exactly as submitted.
func (m *Message) Body() string { return m.body }

// Type returns the message type.
func (m *Message) Type() MessageType { return m.msgType }

// CreatedAt returns the construction time.
func (m *Message) CreatedAt() time.Time { return m.createdAt }

// Metadata returns a copy of the metadata map.
func (m *Message) Metadata() map[string]any {
	return copyMetadata(m.metadata)
}

// Route returns a copy of the delivery route, empty before delivery.
func (m *Message) Route() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	route := make([]string, len(m.route))
	copy(route, m.route)
	return route
}

// Delivered reports whether a route has been stamped.
func (m *Message) Delivered() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.route) > 0
}

// StampRoute records the delivery route. The route must start at the sender
// and end at the receiver, and may be stamped only once.
func (m *Message) StampRoute(route []string) error {
	if len(route) == 0 || route[0] != m.senderID || route[len(route)-1] != m.receiverID {
		return fmt.Errorf("%w: %v for %s -> %s", ErrInvalidRoute, route, m.senderID, m.receiverID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.route) > 0 {
		return fmt.Errorf("%w: message %s", ErrRouteAlreadySet, m.id)
	}
	m.route = make([]string, len(route))
	copy(m.route, route)
	return nil
}

// ToMap renders the message as a plain key-value record for display and
// logging. No parsing contract exists for the result.
func (m *Message) ToMap() map[string]any {
	return map[string]any{
		"sender_id":    m.senderID,
		"receiver_id":  m.receiverID,
		"message_body": m.body,
		"message_type": m.msgType.String(),
		"metadata":     m.Metadata(),
		"route":        m.Route(),
	}
}

func copyMetadata(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
