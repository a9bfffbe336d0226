package friend

import (
	"fmt"
	"sort"
	"sync"

	"github.com/opd-ai/friendnet/messaging"
	"github.com/opd-ai/friendnet/metrics"
	"github.com/sirupsen/logrus"
)

// Network owns the people of a friend graph and routes messages between
// them. A single RWMutex guards the graph: mutations and deliveries take the
// write lock, path searches the read lock.
type Network struct {
	people  map[string]*Person
	metrics *metrics.Collector

	mu sync.RWMutex
}

// Option configures a Network.
type Option func(*Network)

// WithMetrics records delivery outcomes in c.
func WithMetrics(c *metrics.Collector) Option {
	return func(n *Network) {
		n.metrics = c
	}
}

// NewNetwork creates an empty network.
func NewNetwork(opts ...Option) *Network {
	n := &Network{
		people: make(map[string]*Person),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// AddPerson creates and stores a person. Reusing an id fails with
// ErrDuplicatePerson and leaves the network unchanged.
func (n *Network) AddPerson(id, name string) (*Person, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, exists := n.people[id]; exists {
		logrus.WithFields(logrus.Fields{
			"function":  "AddPerson",
			"person_id": id,
		}).Debug("Rejected duplicate person")
		return nil, fmt.Errorf("%w: %q", ErrDuplicatePerson, id)
	}

	p := newPerson(id, name)
	n.people[id] = p

	logrus.WithFields(logrus.Fields{
		"function":     "AddPerson",
		"person_id":    id,
		"name":         name,
		"people_count": len(n.people),
	}).Info("Person added to network")

	return p, nil
}

// AddFriendship connects two people in both directions. Repeating an
// existing friendship is a no-op. Either id being absent fails with
// ErrPersonNotFound and nothing is written.
func (n *Network) AddFriendship(id1, id2 string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	p1, ok1 := n.people[id1]
	p2, ok2 := n.people[id2]
	if !ok1 || !ok2 {
		missing := id1
		if ok1 {
			missing = id2
		}
		logrus.WithFields(logrus.Fields{
			"function":   "AddFriendship",
			"person1_id": id1,
			"person2_id": id2,
			"missing_id": missing,
		}).Debug("Friendship references unknown person")
		return fmt.Errorf("%w: %q", ErrPersonNotFound, missing)
	}

	added := p1.addFriend(id2)
	p2.addFriend(id1)

	logrus.WithFields(logrus.Fields{
		"function":   "AddFriendship",
		"person1_id": id1,
		"person2_id": id2,
		"new":        added,
	}).Info("Friendship recorded")

	return nil
}

// GetPerson looks up a person by id.
func (n *Network) GetPerson(id string) (*Person, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	p, ok := n.people[id]
	return p, ok
}

// GetMessages returns a person's delivered messages, or an empty slice when
// the id is unknown.
func (n *Network) GetMessages(id string) []*messaging.Message {
	p, ok := n.GetPerson(id)
	if !ok {
		return []*messaging.Message{}
	}
	return p.Messages()
}

// People returns all person ids in sorted order.
func (n *Network) People() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	ids := make([]string, 0, len(n.people))
	for id := range n.people {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of people.
func (n *Network) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.people)
}
