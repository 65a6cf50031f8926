package part

// Fragment represents the part of a URL after the hash mark. Its text is
// treated as a nested path with an optional query ("docs?x=1").
type Fragment struct {
	base[*Fragment]

	opts   options
	raw    string
	hasRaw bool
}

// NewFragment creates fragment from raw text, parsing is deferred until
// first access. Query, when given, is used unless raw text carries one.
func NewFragment(raw string, query *Query, opts ...Option) *Fragment {
	f := newFragment(opts)
	f.raw, f.hasRaw = raw, true
	if query != nil {
		f.data.Set(keyQuery, query)
	}
	return f
}

// NewFragmentFromPath creates fragment from already structured path. There
// is nothing to parse, so fragment is initialized immediately.
func NewFragmentFromPath(path *Path, query *Query, opts ...Option) *Fragment {
	f := newFragment(opts)
	f.initialized = true
	f.data.Set(keyPath, f.preparePartValue(keyPath, path))
	f.data.Set(keyQuery, f.preparePartValue(keyQuery, query))
	return f
}

func newFragment(opts []Option) *Fragment {
	f := &Fragment{opts: newOptions(opts)}
	f.setup(f, f.initFragment, f.prepareFragmentValue)
	return f
}

func (f *Fragment) initFragment() {
	f.ensure(keyPath, keyQuery)
	if f.hasRaw {
		mergeParsed(f.data, f.opts.parse(f.raw))
	}
	f.coerceAll()
}

func (f *Fragment) prepareFragmentValue(key string, value any) any {
	switch key {
	case keyPath:
		return asPath(value)
	case keyQuery:
		return asQuery(value)
	}
	return value
}

// Set stores value under key, path and query are coerced into structured
// parts.
func (f *Fragment) Set(key string, value any) *Fragment {
	f.initialize()
	f.data.Set(key, f.preparePartValue(key, value))
	return f
}

// Fragment returns canonical text: path followed by "?query" when query is
// not empty.
func (f *Fragment) Fragment() string {
	f.initialize()
	path, query := text(f.Get(keyPath)), text(f.Get(keyQuery))
	if len(query) == 0 {
		return path
	}
	return path + "?" + query
}

// SetFragment discards current state and re-seeds fragment with new raw
// text.
func (f *Fragment) SetFragment(raw string) *Fragment {
	f.reset()
	f.raw, f.hasRaw = raw, true
	return f
}

// Path returns fragment path. It is nil only after path field was removed.
func (f *Fragment) Path() *Path {
	p, _ := f.Get(keyPath).(*Path)
	return p
}

// SetPath stores path as is.
func (f *Fragment) SetPath(path *Path) *Fragment {
	f.initialize()
	f.data.Set(keyPath, pathValue(path))
	return f
}

// Query returns fragment query. It is nil only after query field was
// removed.
func (f *Fragment) Query() *Query {
	q, _ := f.Get(keyQuery).(*Query)
	return q
}

// SetQuery stores query as is.
func (f *Fragment) SetQuery(query *Query) *Fragment {
	f.initialize()
	f.data.Set(keyQuery, queryValue(query))
	return f
}

func (f *Fragment) String() string {
	if f == nil {
		return ""
	}
	return f.Fragment()
}
