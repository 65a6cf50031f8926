package part

import "strings"

// URL is a complete URL. Path, query and fragment fields hold structured
// parts, all other components are strings.
type URL struct {
	base[*URL]

	opts   options
	raw    string
	hasRaw bool
}

// NewURL creates URL from raw text, parsing is deferred until first
// access.
func NewURL(raw string, opts ...Option) *URL {
	u := &URL{opts: newOptions(opts), raw: raw, hasRaw: true}
	u.setup(u, u.initURL, u.prepareURLValue)
	return u
}

func (u *URL) initURL() {
	u.ensure(componentKeys...)
	if u.hasRaw {
		mergeParsed(u.data, u.opts.parse(u.raw))
	}
	u.coerceAll()
}

func (u *URL) prepareURLValue(key string, value any) any {
	switch key {
	case keyPath:
		return asPath(value)
	case keyQuery:
		return asQuery(value)
	case keyFragment:
		return asFragment(value, WithParser(u.opts.parse))
	}
	return value
}

// Set stores value under key, path, query and fragment are coerced into
// structured parts.
func (u *URL) Set(key string, value any) *URL {
	u.initialize()
	u.data.Set(key, u.preparePartValue(key, value))
	return u
}

// SetURL discards current state and re-seeds URL with new raw text.
func (u *URL) SetURL(raw string) *URL {
	u.reset()
	u.raw, u.hasRaw = raw, true
	return u
}

func (u *URL) Scheme() string { return text(u.Get(keyScheme)) }
func (u *URL) Host() string   { return text(u.Get(keyHost)) }
func (u *URL) Port() string   { return text(u.Get(keyPort)) }
func (u *URL) User() string   { return text(u.Get(keyUser)) }
func (u *URL) Pass() string   { return text(u.Get(keyPass)) }

// Path returns URL path, nil only after path field was removed.
func (u *URL) Path() *Path {
	p, _ := u.Get(keyPath).(*Path)
	return p
}

// SetPath stores path as is.
func (u *URL) SetPath(path *Path) *URL {
	u.initialize()
	u.data.Set(keyPath, pathValue(path))
	return u
}

// Query returns URL query, nil only after query field was removed.
func (u *URL) Query() *Query {
	q, _ := u.Get(keyQuery).(*Query)
	return q
}

// SetQuery stores query as is.
func (u *URL) SetQuery(query *Query) *URL {
	u.initialize()
	u.data.Set(keyQuery, queryValue(query))
	return u
}

// Fragment returns URL fragment, nil only after fragment field was removed.
func (u *URL) Fragment() *Fragment {
	f, _ := u.Get(keyFragment).(*Fragment)
	return f
}

// SetFragment stores fragment as is.
func (u *URL) SetFragment(fragment *Fragment) *URL {
	u.initialize()
	u.data.Set(keyFragment, fragmentValue(fragment))
	return u
}

// Netloc returns "user:pass@host:port", every piece only when present.
func (u *URL) Netloc() string {
	var sb strings.Builder
	if user := u.User(); len(user) > 0 {
		sb.WriteString(user)
		if pass := u.Pass(); len(pass) > 0 {
			sb.WriteByte(':')
			sb.WriteString(pass)
		}
		sb.WriteByte('@')
	}
	host := u.Host()
	if strings.Contains(host, ":") {
		// IPv6 literal
		host = "[" + host + "]"
	}
	sb.WriteString(host)
	if port := u.Port(); len(port) > 0 {
		sb.WriteByte(':')
		sb.WriteString(port)
	}
	return sb.String()
}

// Resource returns path followed by "?query" and "#fragment" when they are
// not empty.
func (u *URL) Resource() string {
	var sb strings.Builder
	sb.WriteString(text(u.Get(keyPath)))
	if query := text(u.Get(keyQuery)); len(query) > 0 {
		sb.WriteByte('?')
		sb.WriteString(query)
	}
	if fragment := text(u.Get(keyFragment)); len(fragment) > 0 {
		sb.WriteByte('#')
		sb.WriteString(fragment)
	}
	return sb.String()
}

// IsAbsolute reports whether URL has both scheme and host.
func (u *URL) IsAbsolute() bool {
	return len(u.Scheme()) > 0 && len(u.Host()) > 0
}

// URL re-serializes all components.
func (u *URL) URL() string {
	var sb strings.Builder
	scheme, netloc, path := u.Scheme(), u.Netloc(), text(u.Get(keyPath))
	if len(scheme) > 0 {
		sb.WriteString(scheme)
		sb.WriteByte(':')
	}
	if len(netloc) > 0 || (len(scheme) > 0 && strings.HasPrefix(path, "/")) {
		sb.WriteString("//")
		sb.WriteString(netloc)
		if len(netloc) > 0 && len(path) > 0 && !strings.HasPrefix(path, "/") {
			sb.WriteByte('/')
		}
	}
	sb.WriteString(u.Resource())
	return sb.String()
}

func (u *URL) String() string {
	if u == nil {
		return ""
	}
	return u.URL()
}
