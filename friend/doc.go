// Package friend implements the friend graph of a friendnet network: people,
// mutual friendships, shortest-path routing and mailbox delivery.
//
// # Network
//
// A [Network] owns every [Person] by id. Friendships are always mutual;
// [Network.AddFriendship] is the only way to create one and writes both
// directions.
//
//	net := friend.NewNetwork()
//	net.AddPerson("alice", "Alice")
//	net.AddPerson("hatter", "Hatter")
//	net.AddPerson("cheshire", "Cheshire")
//	net.AddFriendship("alice", "hatter")
//	net.AddFriendship("hatter", "cheshire")
//
//	net.FindPath("alice", "cheshire") // [alice hatter cheshire]
//
// # Delivery
//
// [Network.SendMessage] finds a shortest path, stamps it on the message and
// appends the message to the receiver's mailbox. It fails with [ErrNoRoute]
// when the people are not connected; nothing is modified in that case.
//
//	msg := messaging.NewMessage("alice", "cheshire", "Hi!", messaging.TypePlain, nil)
//	if err := net.SendMessage(msg); errors.Is(err, friend.ErrNoRoute) {
//	    // add a friendship and try again
//	}
//	for _, m := range net.GetMessages("cheshire") {
//	    fmt.Println(m.Body(), m.Route())
//	}
//
// # Keys
//
// A person may carry one RSA keypair, attached with [Person.AttachKeys]. The
// graph itself never reads it.
//
// # Thread Safety
//
// Network is safe for concurrent use. One lock serializes every mutation and
// delivery; path searches share a read lock.
package friend
