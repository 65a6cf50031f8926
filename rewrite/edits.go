package rewrite

import (
	"fmt"
	"strings"

	"purl/part"
)

type pair struct {
	key, value string
}

// edits describes changes requested on command line. They are applied in
// fixed order: removals, component values, fragment, query parameters and
// path segments.
type edits struct {
	unset    []string
	set      []pair
	fragment *string
	unparams []string
	params   []pair
	segments []string
}

func parsePairs(flag string, values []string) ([]pair, error) {
	res := make([]pair, 0, len(values))
	for _, v := range values {
		key, value, ok := strings.Cut(v, "=")
		if !ok || len(key) == 0 {
			return nil, fmt.Errorf("malformed --%s value %q, expected key=value", flag, v)
		}
		res = append(res, pair{key: key, value: value})
	}
	return res, nil
}

func (e edits) empty() bool {
	return len(e.unset) == 0 && len(e.set) == 0 && e.fragment == nil &&
		len(e.unparams) == 0 && len(e.params) == 0 && len(e.segments) == 0
}

func (e edits) apply(u *part.URL) {
	for _, key := range e.unset {
		u.Remove(key)
	}
	for _, p := range e.set {
		u.Set(p.key, p.value)
	}
	if e.fragment != nil {
		u.Set("fragment", *e.fragment)
	}

	if len(e.unparams) > 0 || len(e.params) > 0 {
		q := u.Query()
		if q == nil {
			q = part.NewQuery("")
			u.SetQuery(q)
		}
		for _, key := range e.unparams {
			q.Remove(key)
		}
		for _, p := range e.params {
			q.Set(p.key, p.value)
		}
	}

	if len(e.segments) > 0 {
		p := u.Path()
		if p == nil {
			p = part.NewPath("")
			u.SetPath(p)
		}
		for _, s := range e.segments {
			appendSegment(p, s)
		}
	}
}

// appendSegment adds segment to the path, trailing empty segment ("/a/")
// is taken over instead of producing "//".
func appendSegment(p *part.Path, segment string) {
	data := p.Data()
	var lastKey string
	for el := data.Front(); el != nil; el = el.Next() {
		lastKey = el.Key
	}
	if data.Len() > 1 {
		if v, _ := data.Get(lastKey); v == "" {
			p.Set(lastKey, segment)
			return
		}
	}
	p.AddSegment(segment)
}
