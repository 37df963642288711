// Package rcpt holds the shared vocabulary for recipient bookkeeping: the
// closed set of recipient fields a mail composition keeps (To, Cc, Bcc, and
// Reply-to), the entries stored under those fields, and the records queued
// for delivery. The interesting machinery lives in the subpackages.
//
// The juggle package is the reason this module exists. Mail-composition
// engines tend to be strict about the shape of address input and rigid about
// where a recipient lives once added. juggle.Juggler is a forgiving layer
// over any such engine: it coalesces whatever address/name input a caller
// has on hand (a comma-separated string, slices, a map, or the entry lists
// an engine hands back) into one ordered address book, appends a configured
// default domain to bare usernames, and can "juggle" re-added addresses by
// moving them from whichever field they currently occupy. It never panics
// and never returns errors from its mutation surface; bad input degrades to
// an empty result or a false return.
//
// The envelope package is the default storage engine. It keeps the per-field
// recipient lists, the duplicate index that blocks the same mailbox from
// being added twice across To, Cc, and Bcc, and the delivery queue a sender
// would consume. The emheader package wraps an envelope so that every
// mutation is mirrored into an emersion go-message mail header, for handoff
// to writers from that ecosystem.
//
// juggle.Juggler works against the small juggle.Engine contract rather than
// a concrete type, so the underlying mail engine can be swapped without
// touching calling code.
package rcpt
