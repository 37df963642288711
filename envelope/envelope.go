// Package envelope provides the default in-memory storage engine driven by
// the juggle package: per-field recipient lists, the duplicate index shared
// by To, Cc, and Bcc, and the delivery queues a sender consumes at send
// time.
package envelope

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zostay/go-addr/pkg/addr"

	"github.com/zostay/go-rcpt"
	"github.com/zostay/go-rcpt/internal/norm"
	"github.com/zostay/go-rcpt/juggle"
)

// Errors returned by the enqueue and From primitives.
var (
	// ErrInvalidAddress is returned by Enqueue and SetFrom when the address
	// does not parse as an RFC 5322 mailbox or cannot be keyed.
	ErrInvalidAddress = errors.New("invalid email address")

	// ErrDuplicateAddress is returned by Enqueue when the duplicate index
	// already holds the address under To, Cc, or Bcc.
	ErrDuplicateAddress = errors.New("address already added")

	// ErrUnknownField is returned by Enqueue when the field is not one of
	// the recipient fields.
	ErrUnknownField = errors.New("unknown recipient field")
)

// Envelope is the in-memory recipient store of a composition. To, Cc, and
// Bcc keep ordered lists backed by one shared duplicate index and one
// delivery queue; Reply-to keeps a keyed list with its own queue. The From
// mailbox is stored singly.
//
// An Envelope is built for the single-caller lifecycle of a composition:
// construct, configure, hand the queues to a sender, discard. It performs
// no locking.
type Envelope struct {
	lists      map[rcpt.Field][]rcpt.Entry
	index      map[string]struct{}
	queue      []rcpt.Queued
	replyQueue []rcpt.Queued
	from       *rcpt.Entry
	key        norm.Func
}

var _ juggle.Engine = (*Envelope)(nil)

// Option adjusts an Envelope at construction time.
type Option func(*Envelope)

// WithKeyProfile selects the normalization profile used to key the
// duplicate index: "casefold" (the default), "precis", "precis_email", or
// "no". Unknown names keep the default.
func WithKeyProfile(name string) Option {
	return func(e *Envelope) {
		if fn, ok := norm.Lookup(name); ok {
			e.key = fn
		}
	}
}

// New builds an empty Envelope.
func New(opts ...Option) *Envelope {
	e := &Envelope{
		lists: make(map[rcpt.Field][]rcpt.Entry),
		index: make(map[string]struct{}),
		key: func(s string) (string, error) {
			return norm.Fold(s), nil
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recipients returns a snapshot of the entries stored under the field.
func (e *Envelope) Recipients(f rcpt.Field) []rcpt.Entry {
	entries := e.lists[f]
	if len(entries) == 0 {
		return nil
	}
	out := make([]rcpt.Entry, len(entries))
	copy(out, entries)
	return out
}

// Enqueue records a single recipient under the field. The address must
// parse as an RFC 5322 mailbox. To, Cc, and Bcc additions share the
// duplicate index, so the same mailbox cannot be enqueued twice across
// those three fields; a hit fails with ErrDuplicateAddress. Reply-to
// entries are keyed instead: enqueueing an address already stored under
// Reply-to replaces its entry and queue record in place.
func (e *Envelope) Enqueue(f rcpt.Field, address, name string) error {
	switch f {
	case rcpt.To, rcpt.Cc, rcpt.Bcc, rcpt.ReplyTo:
	default:
		return ErrUnknownField
	}

	address = strings.TrimSpace(address)
	name = strings.TrimSpace(name)
	if _, err := addr.ParseEmailAddress(address); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}

	key, err := e.key(address)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}

	if f == rcpt.ReplyTo {
		for i, have := range e.lists[f] {
			if k, kerr := e.key(have.Address); kerr == nil && k == key {
				e.lists[f][i] = rcpt.Entry{Address: address, Name: name}
				e.rewriteReplyQueue(key, address, name)
				return nil
			}
		}
		e.lists[f] = append(e.lists[f], rcpt.Entry{Address: address, Name: name})
		e.replyQueue = append(e.replyQueue, rcpt.Queued{Field: f, Address: address, Name: name})
		return nil
	}

	if _, dup := e.index[key]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateAddress, address)
	}

	e.index[key] = struct{}{}
	e.lists[f] = append(e.lists[f], rcpt.Entry{Address: address, Name: name})
	e.queue = append(e.queue, rcpt.Queued{Field: f, Address: address, Name: name})
	return nil
}

func (e *Envelope) rewriteReplyQueue(key, address, name string) {
	for i, q := range e.replyQueue {
		if k, err := e.key(q.Address); err == nil && k == key {
			e.replyQueue[i] = rcpt.Queued{Field: rcpt.ReplyTo, Address: address, Name: name}
		}
	}
}

// SetFrom replaces the single From mailbox.
func (e *Envelope) SetFrom(address, name string) error {
	address = strings.TrimSpace(address)
	if _, err := addr.ParseEmailAddress(address); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	e.from = &rcpt.Entry{Address: address, Name: strings.TrimSpace(name)}
	return nil
}

// From returns the stored From mailbox, if one has been set.
func (e *Envelope) From() (rcpt.Entry, bool) {
	if e.from == nil {
		return rcpt.Entry{}, false
	}
	return *e.from, true
}

// Clear empties the field's stored list along with its queue records and
// duplicate-index keys, so every cleared address may immediately be added
// again. Clearing an Invalid field is a no-op.
func (e *Envelope) Clear(f rcpt.Field) {
	switch f {
	case rcpt.ReplyTo:
		delete(e.lists, f)
		e.replyQueue = nil
	case rcpt.To, rcpt.Cc, rcpt.Bcc:
		for _, have := range e.lists[f] {
			if k, err := e.key(have.Address); err == nil {
				delete(e.index, k)
			}
		}
		delete(e.lists, f)

		kept := e.queue[:0]
		for _, q := range e.queue {
			if q.Field != f {
				kept = append(kept, q)
			}
		}
		e.queue = kept
	}
}

// ClearAll empties every recipient field. The From mailbox is kept.
func (e *Envelope) ClearAll() {
	for _, f := range rcpt.RecipientFields {
		e.Clear(f)
	}
	e.Clear(rcpt.ReplyTo)
}

// DeleteRecipient removes the entry at position i of the field's list. The
// surviving entries stay contiguous. Out-of-range positions are ignored.
func (e *Envelope) DeleteRecipient(f rcpt.Field, i int) {
	entries := e.lists[f]
	if i < 0 || i >= len(entries) {
		return
	}
	e.lists[f] = append(entries[:i], entries[i+1:]...)
}

// ForgetAddress drops the address from the duplicate index, freeing it to
// be enqueued again under any field.
func (e *Envelope) ForgetAddress(address string) {
	if k, err := e.key(address); err == nil {
		delete(e.index, k)
	}
}

// DropQueued removes pending delivery records whose field and address both
// match. Reply-to records are dropped from the reply queue, all others from
// the delivery queue.
func (e *Envelope) DropQueued(f rcpt.Field, address string) {
	key, err := e.key(address)
	if err != nil {
		return
	}

	if f == rcpt.ReplyTo {
		kept := e.replyQueue[:0]
		for _, q := range e.replyQueue {
			if k, kerr := e.key(q.Address); kerr == nil && k == key {
				continue
			}
			kept = append(kept, q)
		}
		e.replyQueue = kept
		return
	}

	kept := e.queue[:0]
	for _, q := range e.queue {
		if q.Field == f {
			if k, kerr := e.key(q.Address); kerr == nil && k == key {
				continue
			}
		}
		kept = append(kept, q)
	}
	e.queue = kept
}

// Queue returns a snapshot of the pending To/Cc/Bcc delivery records in
// enqueue order.
func (e *Envelope) Queue() []rcpt.Queued {
	if len(e.queue) == 0 {
		return nil
	}
	out := make([]rcpt.Queued, len(e.queue))
	copy(out, e.queue)
	return out
}

// ReplyQueue returns a snapshot of the pending Reply-to records.
func (e *Envelope) ReplyQueue() []rcpt.Queued {
	if len(e.replyQueue) == 0 {
		return nil
	}
	out := make([]rcpt.Queued, len(e.replyQueue))
	copy(out, e.replyQueue)
	return out
}

// Held reports whether the duplicate index currently holds the address.
func (e *Envelope) Held(address string) bool {
	k, err := e.key(address)
	if err != nil {
		return false
	}
	_, ok := e.index[k]
	return ok
}
