package part

import (
	"net/url"
	"sort"
	"strings"
)

// Component names produced by ParseComponents. They are also used as field
// names by URL.
const (
	keyScheme   = "scheme"
	keyHost     = "host"
	keyPort     = "port"
	keyUser     = "user"
	keyPass     = "pass"
	keyPath     = "path"
	keyQuery    = "query"
	keyFragment = "fragment"
)

var componentKeys = []string{keyScheme, keyHost, keyPort, keyUser, keyPass, keyPath, keyQuery, keyFragment}

// ParseFunc splits raw text into recognized URL components. It never fails:
// text it cannot interpret yields nil (or an empty map).
type ParseFunc func(raw string) map[string]string

// ParseComponents is the default ParseFunc. It delegates grammar to
// net/url and reports only components actually present in the input, in
// their escaped (as written) form. Opaque data (as in "mailto:x") is
// reported as path.
func ParseComponents(raw string) map[string]string {
	u, err := url.Parse(raw)
	if err != nil {
		return nil
	}

	res := make(map[string]string)
	put := func(key, value string) {
		if len(value) > 0 {
			res[key] = value
		}
	}

	put(keyScheme, u.Scheme)
	put(keyHost, u.Hostname())
	put(keyPort, u.Port())
	if u.User != nil {
		user, pass, _ := strings.Cut(u.User.String(), ":")
		put(keyUser, user)
		put(keyPass, pass)
	}
	if len(u.Opaque) > 0 {
		put(keyPath, u.Opaque)
	} else {
		put(keyPath, u.EscapedPath())
	}
	put(keyQuery, u.RawQuery)
	put(keyFragment, u.EscapedFragment())
	return res
}

// mergeParsed superimposes parsed components on data. Well known components
// go first in canonical order, anything else a custom ParseFunc returns
// follows sorted by name so results are stable.
func mergeParsed(data *Data, parsed map[string]string) {
	if len(parsed) == 0 {
		return
	}
	seen := make(map[string]bool, len(componentKeys))
	for _, key := range componentKeys {
		seen[key] = true
		if v, ok := parsed[key]; ok {
			data.Set(key, v)
		}
	}
	var rest []string
	for key := range parsed {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		data.Set(key, parsed[key])
	}
}

// Option configures part construction.
type Option func(*options)

type options struct {
	parse ParseFunc
}

// WithParser replaces parsing primitive used by the part (and by any nested
// part it creates during coercion).
func WithParser(fn ParseFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.parse = fn
		}
	}
}

func newOptions(opts []Option) options {
	o := options{parse: ParseComponents}
	for _, setOpt := range opts {
		setOpt(&o)
	}
	return o
}
