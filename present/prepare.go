package present

import (
	"sort"

	"github.com/maruel/natural"

	"purl/config"
	"purl/part"
)

// prepare returns copy of the part adjusted for rendering: password masked
// and query parameters ordered when requested. Nested parts which do not need
// changes are shared with the original.
func (r *Renderer) prepare(p part.Part) part.Part {
	switch p := p.(type) {
	case *part.URL:
		if !r.cfg.MaskPassword && !r.cfg.SortParams {
			return p
		}
		c := part.NewURL("")
		c.SetData(p.Data())
		if r.cfg.MaskPassword && len(c.Pass()) > 0 {
			c.Set("pass", config.SecretString(c.Pass()))
		}
		if r.cfg.SortParams {
			if q := c.Query(); q != nil {
				c.SetQuery(sortedQuery(q))
			}
			if f := c.Fragment(); f != nil {
				c.SetFragment(r.prepare(f).(*part.Fragment))
			}
		}
		return c
	case *part.Fragment:
		if !r.cfg.SortParams {
			return p
		}
		c := part.NewFragment("", nil)
		c.SetData(p.Data())
		if q := c.Query(); q != nil {
			c.SetQuery(sortedQuery(q))
		}
		return c
	case *part.Query:
		if r.cfg.SortParams {
			return sortedQuery(p)
		}
	}
	return p
}

// sortedQuery orders parameters naturally, so "p2" goes before "p10".
func sortedQuery(q *part.Query) *part.Query {
	data := q.Data()

	keys := make([]string, 0, data.Len())
	for el := data.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Key)
	}
	sort.Sort(natural.StringSlice(keys))

	sorted := part.NewData()
	for _, k := range keys {
		v, _ := data.Get(k)
		sorted.Set(k, v)
	}

	res := part.NewQuery("")
	res.SetData(sorted)
	return res
}
