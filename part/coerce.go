package part

import "fmt"

// Coercion of raw field values into structured parts. Already structured
// values are kept, strings (and anything printable) and nil are used to
// build a new part, everything else passes through untouched.

func asPath(value any) any {
	switch v := value.(type) {
	case *Path:
		if v == nil {
			return NewPath("")
		}
		return v
	case nil:
		return NewPath("")
	case string:
		return NewPath(v)
	case fmt.Stringer:
		return NewPath(v.String())
	}
	return value
}

func asQuery(value any) any {
	switch v := value.(type) {
	case *Query:
		if v == nil {
			return NewQuery("")
		}
		return v
	case nil:
		return NewQuery("")
	case string:
		return NewQuery(v)
	case fmt.Stringer:
		return NewQuery(v.String())
	}
	return value
}

func asFragment(value any, opts ...Option) any {
	switch v := value.(type) {
	case *Fragment:
		if v == nil {
			return NewFragment("", nil, opts...)
		}
		return v
	case nil:
		return NewFragment("", nil, opts...)
	case string:
		return NewFragment(v, nil, opts...)
	case fmt.Stringer:
		return NewFragment(v.String(), nil, opts...)
	}
	return value
}

// Typed nil pointers are kept out of field mapping, absent part is untyped nil.

func pathValue(p *Path) any {
	if p == nil {
		return nil
	}
	return p
}

func queryValue(q *Query) any {
	if q == nil {
		return nil
	}
	return q
}

func fragmentValue(f *Fragment) any {
	if f == nil {
		return nil
	}
	return f
}
