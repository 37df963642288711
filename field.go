package rcpt

import "strings"

// Field names a recipient role in a mail composition. The zero value is
// Invalid, which no storage or queue operation will ever act on.
type Field int

// The recipient fields a composition keeps. ReplyTo is stored and queued
// separately from the other three and is never part of the duplicate index.
const (
	Invalid Field = iota
	To
	Cc
	Bcc
	ReplyTo
)

// RecipientFields lists the fields that share the duplicate index and the
// delivery queue, in the order remove-by-recipient searches them.
var RecipientFields = []Field{To, Cc, Bcc}

// Key returns the storage key for the field. The three queue-backed fields
// key on their lowercase names. ReplyTo keys on its hyphenated header label,
// which is also the label the underlying engine expects single Reply-to
// enqueues to be made under.
func (f Field) Key() string {
	switch f {
	case To:
		return "to"
	case Cc:
		return "cc"
	case Bcc:
		return "bcc"
	case ReplyTo:
		return "Reply-to"
	}
	return ""
}

// String returns the header-style name of the field.
func (f Field) String() string {
	switch f {
	case To:
		return "To"
	case Cc:
		return "Cc"
	case Bcc:
		return "Bcc"
	case ReplyTo:
		return "Reply-to"
	}
	return ""
}

// ParseField resolves a loosely spelled field label to a Field. Whitespace,
// hyphens, and underscores are ignored and the comparison is caseless, so
// "Reply-To", "reply_to", and " REPLY TO " all resolve to ReplyTo. Labels
// that do not resolve yield Invalid; no spelling of a label is ever an
// error.
func ParseField(label string) Field {
	squashed := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n', '-', '_':
			return -1
		}
		return r
	}, label)

	switch strings.ToLower(squashed) {
	case "to":
		return To
	case "cc":
		return Cc
	case "bcc":
		return Bcc
	case "replyto":
		return ReplyTo
	}
	return Invalid
}
