package part

import (
	"strconv"
	"strings"
)

// Path is a URL path kept as a list of segments under index keys.
type Path struct {
	base[*Path]

	raw string
}

// NewPath creates path from raw text, splitting is deferred until first
// access.
func NewPath(raw string) *Path {
	p := &Path{raw: raw}
	p.setup(p, p.initPath, nil)
	return p
}

func (p *Path) initPath() {
	for i, segment := range strings.Split(p.raw, "/") {
		p.data.Set(strconv.Itoa(i), segment)
	}
}

// Segments returns segment values in order.
func (p *Path) Segments() []string {
	p.initialize()
	res := make([]string, 0, p.data.Len())
	for el := p.data.Front(); el != nil; el = el.Next() {
		res = append(res, text(el.Value))
	}
	return res
}

// AddSegment appends segment to the path.
func (p *Path) AddSegment(segment string) *Path {
	return p.Add(segment)
}

// Path returns segments joined with "/".
func (p *Path) Path() string {
	return strings.Join(p.Segments(), "/")
}

// SetPath discards current segments and re-seeds path with new raw text.
func (p *Path) SetPath(raw string) *Path {
	p.reset()
	p.raw = raw
	return p
}

func (p *Path) String() string {
	if p == nil {
		return ""
	}
	return p.Path()
}
