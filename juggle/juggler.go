package juggle

import (
	"github.com/zostay/go-rcpt"
	"github.com/zostay/go-rcpt/internal/norm"
)

// Juggler mutates the recipient state of a mail-composition engine. It
// accepts the loose input shapes Coalesce understands, optionally completes
// bare usernames with a default domain, and, when juggling is enabled,
// moves re-added addresses from whichever field currently holds them
// instead of letting the duplicate index reject the add.
//
// No method of the mutation surface returns an error. Unparseable input,
// unknown field labels, and engine rejections degrade to empty results or a
// false return; processing of the remaining addresses in the same call
// always continues.
type Juggler struct {
	engine Engine
	juggle bool
	domain string
}

// Option adjusts a Juggler at construction time.
type Option func(*Juggler)

// WithJuggling enables move-on-duplicate adds from the start.
func WithJuggling() Option {
	return func(j *Juggler) { j.juggle = true }
}

// WithDefaultDomain configures the default domain, applying the same
// trimming as SetDefaultDomain.
func WithDefaultDomain(d string) Option {
	return func(j *Juggler) { j.SetDefaultDomain(d) }
}

// New builds a Juggler over the given engine.
func New(e Engine, opts ...Option) *Juggler {
	j := &Juggler{engine: e}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Juggling reports whether adds move addresses between fields.
func (j *Juggler) Juggling() bool {
	return j.juggle
}

// SetJuggling toggles move-on-duplicate adds.
func (j *Juggler) SetJuggling(on bool) {
	j.juggle = on
}

// AddTo coalesces the given addresses and names and enqueues each pair
// under To. With juggling enabled, pairs are first removed from To, Cc, and
// Bcc so the add relocates them. It returns true when the engine accepted
// at least one pair; a rejected pair never aborts the rest of the call.
func (j *Juggler) AddTo(addrs, names any) bool {
	return j.add(rcpt.To, addrs, names)
}

// AddCc is AddTo for the Cc field.
func (j *Juggler) AddCc(addrs, names any) bool {
	return j.add(rcpt.Cc, addrs, names)
}

// AddBcc is AddTo for the Bcc field.
func (j *Juggler) AddBcc(addrs, names any) bool {
	return j.add(rcpt.Bcc, addrs, names)
}

// AddReplyTo coalesces the given addresses and names and enqueues each pair
// under Reply-to. Juggling only consults the Reply-to field; the other
// three are never searched for a Reply-to add. Reply-to storage is keyed,
// so re-adding an address replaces its entry rather than appending.
func (j *Juggler) AddReplyTo(addrs, names any) bool {
	return j.add(rcpt.ReplyTo, addrs, names)
}

// AddTO is an alias for AddTo kept for callers used to the all-caps
// spelling.
func (j *Juggler) AddTO(addrs, names any) bool {
	return j.AddTo(addrs, names)
}

// AddCC is an alias for AddCc.
func (j *Juggler) AddCC(addrs, names any) bool {
	return j.AddCc(addrs, names)
}

// AddBCC is an alias for AddBcc.
func (j *Juggler) AddBCC(addrs, names any) bool {
	return j.AddBcc(addrs, names)
}

func (j *Juggler) add(f rcpt.Field, addrs, names any) bool {
	pairs := j.Coalesce(addrs, names)
	if len(pairs) == 0 {
		return false
	}

	if j.juggle {
		// Re-adding moves: drop the pairs from wherever they currently
		// reside before enqueueing them under the new field.
		if f == rcpt.ReplyTo {
			j.removePairs([]rcpt.Field{rcpt.ReplyTo}, pairs, false)
		} else {
			j.removePairs(rcpt.RecipientFields, pairs, false)
		}
	}

	added := false
	for _, p := range pairs {
		if err := j.engine.Enqueue(f, p.Address, p.Name); err == nil {
			added = true
		}
	}
	return added
}

// SetTo clears the To field entirely and then adds the given input to it.
func (j *Juggler) SetTo(addrs, names any) bool {
	j.engine.Clear(rcpt.To)
	return j.AddTo(addrs, names)
}

// SetAddress is an alias for SetTo, the spelling the To setter has carried
// historically.
func (j *Juggler) SetAddress(addrs, names any) bool {
	return j.SetTo(addrs, names)
}

// SetCc clears the Cc field entirely and then adds the given input to it.
func (j *Juggler) SetCc(addrs, names any) bool {
	j.engine.Clear(rcpt.Cc)
	return j.AddCc(addrs, names)
}

// SetBcc clears the Bcc field entirely and then adds the given input to it.
func (j *Juggler) SetBcc(addrs, names any) bool {
	j.engine.Clear(rcpt.Bcc)
	return j.AddBcc(addrs, names)
}

// SetReplyTo clears the Reply-to field, including its delivery queue, and
// then adds the given input to it.
func (j *Juggler) SetReplyTo(addrs, names any) bool {
	j.engine.Clear(rcpt.ReplyTo)
	return j.AddReplyTo(addrs, names)
}

// SetFrom coalesces the input and delegates once per pair to the engine's
// single-From setter. Only one From mailbox is meaningful, so the result of
// the final call, the pair that actually occupies the From slot, is
// returned rather than an aggregate; multiple inputs are tolerated, not
// accumulated.
func (j *Juggler) SetFrom(addrs, names any) bool {
	ok := false
	for _, p := range j.Coalesce(addrs, names) {
		ok = j.engine.SetFrom(p.Address, p.Name) == nil
	}
	return ok
}

// RemoveTo removes the given addresses from the To field. Names in the
// input are ignored. It returns true when at least one entry was removed.
func (j *Juggler) RemoveTo(addrs any) bool {
	return j.removeInput([]rcpt.Field{rcpt.To}, addrs, false)
}

// RemoveCc removes the given addresses from the Cc field.
func (j *Juggler) RemoveCc(addrs any) bool {
	return j.removeInput([]rcpt.Field{rcpt.Cc}, addrs, false)
}

// RemoveBcc removes the given addresses from the Bcc field.
func (j *Juggler) RemoveBcc(addrs any) bool {
	return j.removeInput([]rcpt.Field{rcpt.Bcc}, addrs, false)
}

// RemoveReplyTo removes the given addresses from the Reply-to field and its
// delivery queue.
func (j *Juggler) RemoveReplyTo(addrs any) bool {
	return j.removeInput([]rcpt.Field{rcpt.ReplyTo}, addrs, false)
}

// RemoveRecipient looks for the given addresses under To, then Cc, then
// Bcc, stopping at the first field that yields a removal.
func (j *Juggler) RemoveRecipient(addrs any) bool {
	return j.removeInput(rcpt.RecipientFields, addrs, true)
}

// Remove resolves the loose field label and removes the given addresses
// from that field. An unresolvable label is a no-op returning false, not an
// error.
func (j *Juggler) Remove(label string, addrs any) bool {
	f := rcpt.ParseField(label)
	if f == rcpt.Invalid {
		return false
	}
	return j.removeInput([]rcpt.Field{f}, addrs, false)
}

func (j *Juggler) removeInput(fields []rcpt.Field, addrs any, firstHit bool) bool {
	return j.removePairs(fields, j.Coalesce(addrs, nil), firstHit)
}

// removePairs scans each field's stored list for the pairs' addresses,
// comparing folded addresses, and deletes every match. A removal under To,
// Cc, or Bcc also releases the address from the duplicate index and filters
// its records out of the delivery queue; a Reply-to removal filters the
// reply queue instead. Deleting from slice-backed storage shifts the
// remainder down, so the surviving entries are always contiguous.
func (j *Juggler) removePairs(fields []rcpt.Field, pairs Pairs, firstHit bool) bool {
	removed := false
	for _, f := range fields {
		if f == rcpt.Invalid {
			continue
		}

		hit := false
		for _, p := range pairs {
			target := norm.Fold(p.Address)
			if target == "" {
				continue
			}

			found := false
			entries := j.engine.Recipients(f)
			for i := len(entries) - 1; i >= 0; i-- {
				if norm.Fold(entries[i].Address) != target {
					continue
				}
				j.engine.DeleteRecipient(f, i)
				found = true
			}
			if !found {
				continue
			}

			hit = true
			if f != rcpt.ReplyTo {
				j.engine.ForgetAddress(target)
			}
			j.engine.DropQueued(f, target)
		}

		if hit {
			removed = true
			if firstHit {
				break
			}
		}
	}
	return removed
}
