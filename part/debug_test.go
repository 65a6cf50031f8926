package part

import (
	"strings"
	"testing"
)

func TestDump(t *testing.T) {
	out := Dump(NewFragment("docs?x=1&t[]=a", nil))

	for _, want := range []string{
		"Fragment \"docs?x=1&t[]=a\"\n",
		"  path: Path \"docs\"\n",
		"    0: \"docs\"\n",
		"  query: Query \"x=1&t[]=a\"\n",
		"    x: \"1\"\n",
		"    t: 1 values\n",
		"      [0]: \"a\"\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() missing %q in:\n%s", want, out)
		}
	}
}

func TestDump_NilAndEmpty(t *testing.T) {
	if got := Dump(nil); got != "<nil part>" {
		t.Errorf("Dump(nil) = %q", got)
	}

	f := NewFragment("docs", nil)
	f.Remove("path")
	if out := Dump(f); strings.Contains(out, "path") {
		t.Errorf("removed field present in dump:\n%s", out)
	}

	f.Set("note", nil)
	if out := Dump(f); !strings.Contains(out, "  note: <nil>\n") {
		t.Errorf("nil field missing in dump:\n%s", out)
	}
}

func TestDumpIndent(t *testing.T) {
	out := DumpIndent(NewPath("a"), 4)
	if want := "Path \"a\"\n    0: \"a\"\n"; out != want {
		t.Errorf("DumpIndent() = %q, want %q", out, want)
	}
}
