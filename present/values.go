package present

import (
	"net/url"

	"purl/part"
)

// Values is a struct that holds variables we make available for template
// expansion. Only values relevant to the rendered part are filled.
type Values struct {
	URL           string
	Scheme        string
	Host          string
	Port          string
	User          string
	Pass          string
	Netloc        string
	Path          string
	Segments      []string
	Query         string
	Params        url.Values
	Fragment      string
	FragmentPath  string
	FragmentQuery string
	Absolute      bool
}

func valuesOf(p part.Part) Values {
	var v Values
	switch p := p.(type) {
	case *part.URL:
		v = Values{
			URL:      p.String(),
			Scheme:   p.Scheme(),
			Host:     p.Host(),
			Port:     p.Port(),
			User:     p.User(),
			Pass:     p.Pass(),
			Netloc:   p.Netloc(),
			Absolute: p.IsAbsolute(),
		}
		v.pathValues(p.Path())
		v.queryValues(p.Query())
		v.fragmentValues(p.Fragment())
	case *part.Fragment:
		v.URL = p.String()
		v.fragmentValues(p)
	case *part.Path:
		v.URL = p.String()
		v.pathValues(p)
	case *part.Query:
		v.URL = p.String()
		v.queryValues(p)
	case part.Part:
		v.URL = p.String()
	}
	return v
}

func (v *Values) pathValues(p *part.Path) {
	if p == nil {
		return
	}
	v.Path = p.String()
	v.Segments = p.Segments()
}

func (v *Values) queryValues(q *part.Query) {
	if q == nil {
		return
	}
	v.Query = q.String()
	v.Params = q.Values()
}

func (v *Values) fragmentValues(f *part.Fragment) {
	if f == nil {
		return
	}
	v.Fragment = f.String()
	v.FragmentPath = f.Path().String()
	v.FragmentQuery = f.Query().String()
}
