package juggle

import "strings"

// SetDefaultDomain configures the domain appended to bare usernames during
// coalescing. It accepts either a bare domain or a full address; only the
// text after the last "@" is kept, trimmed. Setting an empty value disables
// appending. The stored value is returned.
func (j *Juggler) SetDefaultDomain(v string) string {
	v = strings.TrimSpace(v)
	if at := strings.LastIndex(v, "@"); at >= 0 {
		v = v[at+1:]
	}
	j.domain = strings.TrimSpace(v)
	return j.domain
}

// DefaultDomain returns the configured default domain, or an empty string
// when none is set.
func (j *Juggler) DefaultDomain() string {
	return j.domain
}

// AppendDefaultDomain completes a bare username with the configured default
// domain. The input is returned unchanged when no domain is configured,
// when it is empty once stray "@" and whitespace are trimmed away, or when
// it already contains an "@".
func (j *Juggler) AppendDefaultDomain(address string) string {
	if j.domain == "" {
		return address
	}

	bare := strings.Trim(address, "@ \t\r\n")
	if bare == "" || strings.Contains(bare, "@") {
		return address
	}
	return bare + "@" + j.domain
}
