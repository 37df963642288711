// Package juggle provides a forgiving mutation layer over a
// mail-composition engine: it coalesces loose address/name input into an
// ordered address book, appends a configured default domain to bare
// usernames, and adds, replaces, moves, and removes recipients while
// keeping the engine's duplicate index and delivery queues consistent.
package juggle
