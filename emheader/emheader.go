// Package emheader provides a storage engine that mirrors every recipient
// mutation into an emersion go-message mail header, so a composed set of
// recipients can be handed directly to writers from that ecosystem.
package emheader

import (
	emmail "github.com/emersion/go-message/mail"

	"github.com/zostay/go-rcpt"
	"github.com/zostay/go-rcpt/envelope"
	"github.com/zostay/go-rcpt/juggle"
)

// Header is an envelope-backed engine that keeps an emersion mail header in
// step with the stored recipient state. The envelope remains the source of
// truth; the header is re-rendered from it after every mutation that
// touches an address field.
type Header struct {
	env *envelope.Envelope
	hdr emmail.Header
}

var _ juggle.Engine = (*Header)(nil)

// New builds an empty Header. Options pass through to the backing envelope.
func New(opts ...envelope.Option) *Header {
	return &Header{env: envelope.New(opts...)}
}

// Header returns the mirrored mail header.
func (h *Header) Header() *emmail.Header {
	return &h.hdr
}

// Envelope returns the backing envelope, for access to the delivery queues
// and the duplicate index.
func (h *Header) Envelope() *envelope.Envelope {
	return h.env
}

// sync re-renders the field's header line from the envelope state. A field
// with no entries left has its header line deleted.
func (h *Header) sync(f rcpt.Field) {
	if f == rcpt.Invalid {
		return
	}

	entries := h.env.Recipients(f)
	if len(entries) == 0 {
		h.hdr.Del(f.String())
		return
	}

	list := make([]*emmail.Address, len(entries))
	for i, entry := range entries {
		list[i] = &emmail.Address{Name: entry.Name, Address: entry.Address}
	}
	h.hdr.SetAddressList(f.String(), list)
}

// Recipients returns a snapshot of the entries stored under the field.
func (h *Header) Recipients(f rcpt.Field) []rcpt.Entry {
	return h.env.Recipients(f)
}

// Enqueue records the recipient and refreshes the mirrored field.
func (h *Header) Enqueue(f rcpt.Field, address, name string) error {
	if err := h.env.Enqueue(f, address, name); err != nil {
		return err
	}
	h.sync(f)
	return nil
}

// SetFrom replaces the single From mailbox and its header line.
func (h *Header) SetFrom(address, name string) error {
	if err := h.env.SetFrom(address, name); err != nil {
		return err
	}

	from, _ := h.env.From()
	h.hdr.SetAddressList("From", []*emmail.Address{
		{Name: from.Name, Address: from.Address},
	})
	return nil
}

// Clear empties the field and removes its header line.
func (h *Header) Clear(f rcpt.Field) {
	h.env.Clear(f)
	h.sync(f)
}

// DeleteRecipient removes the entry at position i and refreshes the
// mirrored field.
func (h *Header) DeleteRecipient(f rcpt.Field, i int) {
	h.env.DeleteRecipient(f, i)
	h.sync(f)
}

// ForgetAddress drops the address from the duplicate index.
func (h *Header) ForgetAddress(address string) {
	h.env.ForgetAddress(address)
}

// DropQueued removes matching pending delivery records.
func (h *Header) DropQueued(f rcpt.Field, address string) {
	h.env.DropQueued(f, address)
}
