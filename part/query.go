package part

import (
	"net/url"
	"strings"
)

const listSuffix = "[]"

// Query is a URL query kept as parameter name to value mapping. Values are
// stored unescaped, parameters written as "name[]" accumulate into
// []string, otherwise the last occurrence wins.
type Query struct {
	base[*Query]

	raw string
}

// NewQuery creates query from raw text, decoding is deferred until first
// access.
func NewQuery(raw string) *Query {
	q := &Query{raw: raw}
	q.setup(q, q.initQuery, nil)
	return q
}

func (q *Query) initQuery() {
	for pair := range strings.SplitSeq(q.raw, "&") {
		if len(pair) == 0 {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		name, value = unescape(name), unescape(value)
		if list, ok := strings.CutSuffix(name, listSuffix); ok && len(list) > 0 {
			values, _ := q.data.Get(list)
			prev, _ := values.([]string)
			q.data.Set(list, append(prev, value))
			continue
		}
		if len(name) == 0 {
			continue
		}
		q.data.Set(name, value)
	}
}

func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return s
}

// Query returns encoded query text. Query which was never edited keeps its
// raw text, otherwise parameters are encoded in insertion order and nil
// values are skipped.
func (q *Query) Query() string {
	q.initialize()
	if !q.modified {
		return q.raw
	}
	var pairs []string
	for el := q.data.Front(); el != nil; el = el.Next() {
		name := url.QueryEscape(el.Key)
		switch v := el.Value.(type) {
		case nil:
		case []string:
			for _, s := range v {
				pairs = append(pairs, name+listSuffix+"="+url.QueryEscape(s))
			}
		default:
			pairs = append(pairs, name+"="+url.QueryEscape(text(v)))
		}
	}
	return strings.Join(pairs, "&")
}

// SetQuery discards current parameters and re-seeds query with new raw
// text.
func (q *Query) SetQuery(raw string) *Query {
	q.reset()
	q.raw = raw
	return q
}

// Values returns copy of parameters as url.Values.
func (q *Query) Values() url.Values {
	q.initialize()
	res := make(url.Values, q.data.Len())
	for el := q.data.Front(); el != nil; el = el.Next() {
		switch v := el.Value.(type) {
		case nil:
		case []string:
			res[el.Key] = append([]string(nil), v...)
		default:
			res.Add(el.Key, text(v))
		}
	}
	return res
}

func (q *Query) String() string {
	if q == nil {
		return ""
	}
	return q.Query()
}
