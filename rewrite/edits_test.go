package rewrite

import (
	"testing"

	"purl/part"
)

func TestEdits_Apply(t *testing.T) {
	top := "top"
	tests := []struct {
		name string
		raw  string
		e    edits
		want string
	}{
		{
			name: "scheme params and segment",
			raw:  "http://example.com/a?x=1",
			e: edits{
				set:      []pair{{"scheme", "https"}},
				unparams: []string{"x"},
				params:   []pair{{"y", "2"}},
				segments: []string{"b"},
			},
			want: "https://example.com/a/b?y=2",
		},
		{
			name: "unset query and set fragment",
			raw:  "http://h/p?x=1",
			e:    edits{unset: []string{"query"}, fragment: &top},
			want: "http://h/p#top",
		},
		{
			name: "trailing slash taken over",
			raw:  "http://h/a/",
			e:    edits{segments: []string{"b", "c"}},
			want: "http://h/a/b/c",
		},
		{
			name: "untouched query kept verbatim",
			raw:  "http://h/p?q=a%20b&flag&&t[]=1",
			e:    edits{set: []pair{{"scheme", "https"}}, segments: []string{"x"}},
			want: "https://h/p/x?q=a%20b&flag&&t[]=1",
		},
		{
			name: "edited query re-encoded",
			raw:  "http://h/p?q=a%20b&flag",
			e:    edits{params: []pair{{"z", "1"}}},
			want: "http://h/p?q=a+b&flag=&z=1",
		},
		{
			name: "no edits",
			raw:  "http://h/p?q=a%20b&flag",
			want: "http://h/p?q=a%20b&flag",
		},
		{
			name: "segment on empty path",
			raw:  "http://h",
			e:    edits{segments: []string{"x"}},
			want: "http://h/x",
		},
		{
			name: "relative path gets separator",
			raw:  "http://h/old",
			e:    edits{set: []pair{{"path", "new/p"}}},
			want: "http://h/new/p",
		},
		{
			name: "param after query removal",
			raw:  "http://h/?x=1",
			e:    edits{unset: []string{"query"}, params: []pair{{"a", "1"}}},
			want: "http://h/?a=1",
		},
		{
			name: "port and escaped param",
			raw:  "http://h/",
			e:    edits{set: []pair{{"port", "8080"}}, params: []pair{{"q", "a b&c"}}},
			want: "http://h:8080/?q=a+b%26c",
		},
		{
			name: "fragment through set",
			raw:  "http://h/#old",
			e:    edits{set: []pair{{"fragment", "docs?p=1"}}},
			want: "http://h/#docs?p=1",
		},
		{
			name: "nothing to do",
			raw:  "mailto:joe@example.com",
			e:    edits{},
			want: "mailto:joe@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := part.NewURL(tt.raw)
			tt.e.apply(u)
			if got := u.String(); got != tt.want {
				t.Errorf("apply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEdits_Empty(t *testing.T) {
	if !(edits{}).empty() {
		t.Error("zero edits must be empty")
	}
	f := ""
	if (edits{fragment: &f}).empty() {
		t.Error("fragment edit must not be empty")
	}
}

func TestParsePairs(t *testing.T) {
	got, err := parsePairs("param", []string{"a=1", "b=", "c=x=y"})
	if err != nil {
		t.Fatalf("parsePairs() error = %v", err)
	}
	want := []pair{{"a", "1"}, {"b", ""}, {"c", "x=y"}}
	if len(got) != len(want) {
		t.Fatalf("parsePairs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	for _, bad := range []string{"novalue", "=x"} {
		if _, err := parsePairs("set", []string{bad}); err == nil {
			t.Errorf("parsePairs(%q) expected error", bad)
		}
	}
}
