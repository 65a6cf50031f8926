package part

import (
	"strconv"

	"purl/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// Dump returns a readable tree of the part with nested parts expanded. It
// initializes every part it visits.
func Dump(p Part) string {
	return DumpIndent(p, 0)
}

// DumpIndent is Dump with width spaces per nesting level.
func DumpIndent(p Part, width int) string {
	if p == nil {
		return "<nil part>"
	}
	tw := treeWriter{debug.NewTreeWriterIndent(width)}
	tw.part(0, kindOf(p), p)
	return tw.String()
}

func (tw treeWriter) part(depth int, label string, p Part) {
	tw.Line(depth, "%s %q", label, p.String())
	data := p.Data()
	for el := data.Front(); el != nil; el = el.Next() {
		switch v := el.Value.(type) {
		case Part:
			tw.part(depth+1, el.Key+": "+kindOf(v), v)
		case []string:
			tw.Line(depth+1, "%s: %d values", el.Key, len(v))
			for i, s := range v {
				tw.TextBlock(depth+2, "["+strconv.Itoa(i)+"]", s)
			}
		case nil:
			tw.Line(depth+1, "%s: <nil>", el.Key)
		default:
			tw.TextBlock(depth+1, el.Key, text(v))
		}
	}
}

func kindOf(p Part) string {
	switch p.(type) {
	case *URL:
		return "URL"
	case *Fragment:
		return "Fragment"
	case *Path:
		return "Path"
	case *Query:
		return "Query"
	}
	return "Part"
}
