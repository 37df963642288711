package rcpt

// Entry is a single stored recipient. Address comparison throughout the
// module is caseless and ignores surrounding whitespace; Name is kept
// verbatim.
type Entry struct {
	Address string
	Name    string
}

// Queued is one pending delivery record, as consumed by a sender at send
// time. Reply-to records live in their own queue, separate from the
// To/Cc/Bcc delivery queue.
type Queued struct {
	Field   Field
	Address string
	Name    string
}
