package juggle

import (
	"github.com/zostay/go-rcpt"
)

// Engine is the storage contract the Juggler consumes from the wrapped
// mail-composition engine. The envelope package provides the default
// implementation and the emheader package provides one that mirrors state
// into an emersion mail header; any engine satisfying this interface can be
// driven instead.
type Engine interface {
	// Recipients returns a snapshot of the entries stored under the field.
	Recipients(f rcpt.Field) []rcpt.Entry

	// Enqueue records a single recipient under the field, both in its
	// stored list and on the appropriate delivery queue. It fails when the
	// address does not parse or when the duplicate index already holds it.
	Enqueue(f rcpt.Field, address, name string) error

	// SetFrom replaces the single From mailbox.
	SetFrom(address, name string) error

	// Clear empties the field's stored list along with its delivery-queue
	// records and duplicate-index keys.
	Clear(f rcpt.Field)

	// DeleteRecipient removes the entry at position i of the field's list,
	// leaving the remainder contiguous. The duplicate index and the queues
	// are untouched; callers settle those through ForgetAddress and
	// DropQueued.
	DeleteRecipient(f rcpt.Field, i int)

	// ForgetAddress drops the address from the duplicate index.
	ForgetAddress(address string)

	// DropQueued removes pending delivery records whose field and address
	// both match.
	DropQueued(f rcpt.Field, address string)
}
