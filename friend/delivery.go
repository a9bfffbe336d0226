package friend

import (
	"errors"
	"fmt"

	"github.com/opd-ai/friendnet/messaging"
	"github.com/opd-ai/friendnet/metrics"
	"github.com/sirupsen/logrus"
)

// SendMessage routes msg along a shortest friendship path, stamps the path
// onto it and appends it to the receiver's mailbox.
//
// Delivery is all-or-nothing: on ErrNoRoute, ErrPersonNotFound or
// messaging.ErrRouteAlreadySet neither the message nor any mailbox changes.
// The call never retries.
func (n *Network) SendMessage(msg *messaging.Message) error {
	if msg == nil {
		return ErrNilMessage
	}

	fields := logrus.Fields{
		"function":     "SendMessage",
		"message_id":   msg.ID(),
		"sender_id":    msg.SenderID(),
		"receiver_id":  msg.ReceiverID(),
		"message_type": msg.Type().String(),
	}
	logrus.WithFields(fields).Debug("Routing message")

	n.mu.Lock()
	defer n.mu.Unlock()

	path := n.findPathLocked(msg.SenderID(), msg.ReceiverID())
	if len(path) == 0 {
		n.metrics.ObserveFailure(metrics.ReasonNoRoute)
		logrus.WithFields(fields).Warn("No route for message")
		return fmt.Errorf("%w: %q -> %q", ErrNoRoute, msg.SenderID(), msg.ReceiverID())
	}

	receiver, ok := n.people[msg.ReceiverID()]
	if !ok {
		n.metrics.ObserveFailure(metrics.ReasonUnknownPerson)
		logrus.WithFields(fields).Warn("Receiver is not in the network")
		return fmt.Errorf("%w: receiver %q", ErrPersonNotFound, msg.ReceiverID())
	}

	if err := msg.StampRoute(path); err != nil {
		if errors.Is(err, messaging.ErrRouteAlreadySet) {
			n.metrics.ObserveFailure(metrics.ReasonAlreadyRouted)
		}
		logrus.WithFields(fields).WithError(err).Warn("Message route could not be stamped")
		return err
	}

	receiver.addMessage(msg)
	n.metrics.ObserveDelivery(msg.Type().String(), len(path))

	fields["route"] = path
	fields["hops"] = len(path) - 1
	logrus.WithFields(fields).Info("Message delivered")

	return nil
}
