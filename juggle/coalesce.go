package juggle

import (
	"sort"
	"strings"

	"github.com/zostay/go-addr/pkg/addr"

	"github.com/zostay/go-rcpt"
)

// Pair is one coalesced recipient: the final address and the display name
// that won for it.
type Pair struct {
	Address string
	Name    string
}

// Pairs is the ordered address book produced by coalescing. It behaves as a
// mapping from address to name that remembers insertion order.
type Pairs []Pair

// Set records name under address. Setting an address already present
// overwrites its name but keeps its original position, so the last write
// wins without reordering the book.
func (ps *Pairs) Set(address, name string) {
	for i := range *ps {
		if (*ps)[i].Address == address {
			(*ps)[i].Name = name
			return
		}
	}
	*ps = append(*ps, Pair{Address: address, Name: name})
}

// Addresses returns the addresses of the book in order.
func (ps Pairs) Addresses() []string {
	as := make([]string, len(ps))
	for i, p := range ps {
		as[i] = p.Address
	}
	return as
}

// candidate is a raw address/name pairing pulled out of loose input before
// parsing and domain handling are applied.
type candidate struct {
	address string
	name    string
}

// Coalesce merges heterogeneous address and name input into one ordered
// address book. Every add, set, and remove operation funnels through this.
//
// Addresses may be a single string (split on commas), a []string, a []any
// of mixed entries, a [][]string of two-element address/name records as
// returned by engine accessors, a []rcpt.Entry, or a map[string]string
// keyed by address. Names may be a comma-separated string, a []string, or a
// []any whose non-string elements pair as empty names, and are paired with
// the addresses positionally; for map input the map values are the names
// and the names argument is ignored.
// Anything else is treated as absent rather than rejected.
//
// Each candidate is run through a strict RFC 5322 mailbox parse. When the
// parse succeeds, the parsed address is preferred and the parsed display
// name is used if none was resolved yet. The default domain, when
// configured, is appended to bare usernames. Both parts are trimmed and the
// pair is recorded last-write-wins. Map input is walked in sorted key order
// so that the result is deterministic.
func (j *Juggler) Coalesce(addrs, names any) Pairs {
	var out Pairs

	if m, ok := addrs.(map[string]string); ok {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			j.coalesceOne(&out, k, m[k])
		}
		return out
	}

	ns := nameList(names)
	for i, c := range candidateList(addrs) {
		name := ""
		if i < len(ns) {
			name = strings.TrimSpace(ns[i])
		}
		if name == "" {
			name = c.name
		}
		j.coalesceOne(&out, c.address, name)
	}
	return out
}

// coalesceOne normalizes a single candidate and records it in the book.
// Candidates that end up with an empty address are dropped silently.
func (j *Juggler) coalesceOne(out *Pairs, address, name string) {
	address = strings.TrimSpace(address)
	if mb, err := addr.ParseEmailAddress(address); err == nil && mb.Address() != "" {
		address = mb.Address()
		if strings.TrimSpace(name) == "" {
			name = mb.DisplayName()
		}
	}

	address = strings.TrimSpace(j.AppendDefaultDomain(address))
	name = strings.TrimSpace(name)
	if address == "" {
		return
	}
	out.Set(address, name)
}

func candidateList(addrs any) []candidate {
	switch v := addrs.(type) {
	case string:
		parts := strings.Split(v, ",")
		cs := make([]candidate, len(parts))
		for i, p := range parts {
			cs[i] = candidate{address: p}
		}
		return cs
	case []string:
		cs := make([]candidate, len(v))
		for i, a := range v {
			cs[i] = candidate{address: a}
		}
		return cs
	case [][]string:
		cs := make([]candidate, 0, len(v))
		for _, rec := range v {
			if c, ok := coerceCandidate(rec); ok {
				cs = append(cs, c)
			}
		}
		return cs
	case []rcpt.Entry:
		cs := make([]candidate, len(v))
		for i, e := range v {
			cs[i] = candidate{address: e.Address, name: e.Name}
		}
		return cs
	case rcpt.Entry:
		return []candidate{{address: v.Address, name: v.Name}}
	case []any:
		cs := make([]candidate, 0, len(v))
		for _, el := range v {
			if c, ok := coerceCandidate(el); ok {
				cs = append(cs, c)
			}
		}
		return cs
	}
	return nil
}

// coerceCandidate turns a single list element into a candidate. Two-element
// records carry the address in slot 0 and the display name in slot 1, which
// is the shape engine accessors hand back. Shapes we do not recognize are
// skipped, never rejected.
func coerceCandidate(el any) (candidate, bool) {
	switch v := el.(type) {
	case string:
		return candidate{address: v}, true
	case []string:
		if len(v) == 0 {
			return candidate{}, false
		}
		c := candidate{address: v[0]}
		if len(v) > 1 {
			c.name = v[1]
		}
		return c, true
	case [2]string:
		return candidate{address: v[0], name: v[1]}, true
	case rcpt.Entry:
		return candidate{address: v.Address, name: v.Name}, true
	case *rcpt.Entry:
		if v == nil {
			return candidate{}, false
		}
		return candidate{address: v.Address, name: v.Name}, true
	}
	return candidate{}, false
}

func nameList(names any) []string {
	switch v := names.(type) {
	case string:
		if v == "" {
			return nil
		}
		return strings.Split(v, ",")
	case []string:
		return v
	case []any:
		// Non-string elements keep their slot as an empty name so the
		// positional pairing with the addresses is preserved.
		ns := make([]string, len(v))
		for i, el := range v {
			if s, ok := el.(string); ok {
				ns[i] = s
			}
		}
		return ns
	}
	return nil
}
