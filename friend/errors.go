package friend

import "errors"

var (
	// ErrDuplicatePerson is returned when a person id is already taken.
	ErrDuplicatePerson = errors.New("person already exists")

	// ErrPersonNotFound is returned when an operation names an absent person.
	ErrPersonNotFound = errors.New("person not found")

	// ErrNoRoute is returned when no friendship path joins sender and receiver.
	ErrNoRoute = errors.New("no route between sender and receiver")

	// ErrNilMessage is returned when SendMessage is given no message.
	ErrNilMessage = errors.New("message is nil")

	// ErrKeysAlreadyAttached is returned on a second key attachment.
	ErrKeysAlreadyAttached = errors.New("keys already attached")

	// ErrNoKeys is returned when a person has no keypair.
	ErrNoKeys = errors.New("person has no keys")
)
