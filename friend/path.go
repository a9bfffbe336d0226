package friend

import "github.com/sirupsen/logrus"

// FindPath returns a shortest sender-to-receiver route by hop count, found
// by breadth-first search. When several shortest routes exist, friends are
// explored in the order their friendships were created.
//
// A person routes to themselves as [sender]. Unknown ids and disconnected
// people yield an empty route. Paths are recomputed on every call.
func (n *Network) FindPath(senderID, receiverID string) []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.findPathLocked(senderID, receiverID)
}

// findPathLocked requires n.mu to be held.
func (n *Network) findPathLocked(senderID, receiverID string) []string {
	if senderID == receiverID {
		return []string{senderID}
	}

	if _, ok := n.people[senderID]; !ok {
		return []string{}
	}
	if _, ok := n.people[receiverID]; !ok {
		return []string{}
	}

	// parent[id] is the node id was first reached from.
	parent := map[string]string{senderID: senderID}
	queue := []string{senderID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == receiverID {
			return buildPath(parent, senderID, receiverID)
		}

		for _, friendID := range n.people[current].Friends() {
			if _, seen := parent[friendID]; seen {
				continue
			}
			parent[friendID] = current
			queue = append(queue, friendID)
		}
	}

	logrus.WithFields(logrus.Fields{
		"function":    "FindPath",
		"sender_id":   senderID,
		"receiver_id": receiverID,
		"explored":    len(parent),
	}).Debug("No path between people")

	return []string{}
}

func buildPath(parent map[string]string, from, to string) []string {
	reversed := []string{to}
	for id := to; id != from; {
		id = parent[id]
		reversed = append(reversed, id)
	}

	path := make([]string, len(reversed))
	for i, id := range reversed {
		path[len(reversed)-1-i] = id
	}
	return path
}
