// Package norm provides the address normalization used to build comparison
// and duplicate-index keys.
package norm

import (
	"strings"

	"golang.org/x/text/secure/precis"
)

// Fold is the baseline normalization applied to every address before it is
// compared or used as an index key: surrounding whitespace is dropped and
// the rest is casefolded.
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Func turns an address into a key. A Func may reject an address it cannot
// prepare; callers treat that the same as an invalid address.
type Func func(string) (string, error)

// PrecisEmail keys an address by running the localpart through the PRECIS
// UsernameCaseMapped profile and casefolding the domain. PRECIS narrows the
// range of accepted localparts below what is syntactically valid, so this is
// a local policy choice, not a general rule for all addresses.
func PrecisEmail(s string) (string, error) {
	s = strings.TrimSpace(s)
	at := strings.LastIndex(s, "@")
	if at < 0 {
		return precis.UsernameCaseMapped.CompareKey(s)
	}

	local, err := precis.UsernameCaseMapped.CompareKey(s[:at])
	if err != nil {
		return "", err
	}

	return local + "@" + strings.ToLower(s[at+1:]), nil
}

var funcs = map[string]Func{
	"casefold": func(s string) (string, error) {
		return Fold(s), nil
	},
	"precis": func(s string) (string, error) {
		return precis.UsernameCaseMapped.CompareKey(strings.TrimSpace(s))
	},
	"precis_email": PrecisEmail,
	"no": func(s string) (string, error) {
		return strings.TrimSpace(s), nil
	},
}

// Lookup returns the named normalizer. The registered names are "casefold",
// "precis", "precis_email", and "no".
func Lookup(name string) (Func, bool) {
	fn, ok := funcs[name]
	return fn, ok
}
