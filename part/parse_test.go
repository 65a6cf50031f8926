package part

import (
	"reflect"
	"testing"
)

func TestParseComponents(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]string
	}{
		{
			name: "fragment text",
			raw:  "docs?x=1",
			want: map[string]string{"path": "docs", "query": "x=1"},
		},
		{
			name: "path only",
			raw:  "docs",
			want: map[string]string{"path": "docs"},
		},
		{
			name: "empty",
			raw:  "",
			want: map[string]string{},
		},
		{
			name: "everything",
			raw:  "https://u:p@host.example:81/a%20b?q=1#f",
			want: map[string]string{
				"scheme": "https", "host": "host.example", "port": "81", "user": "u", "pass": "p",
				"path": "/a%20b", "query": "q=1", "fragment": "f",
			},
		},
		{
			name: "opaque",
			raw:  "urn:isbn:0451450523",
			want: map[string]string{"scheme": "urn", "path": "isbn:0451450523"},
		},
		{
			name: "user without password",
			raw:  "ssh://git@example.com",
			want: map[string]string{"scheme": "ssh", "user": "git", "host": "example.com"},
		},
		{
			name: "invalid escape",
			raw:  "%zz",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseComponents(tt.raw)
			if tt.want == nil {
				if got != nil {
					t.Errorf("ParseComponents(%q) = %v, want nil", tt.raw, got)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseComponents(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestMergeParsed(t *testing.T) {
	data := NewData()
	data.Set("query", "kept")
	data.Set("path", nil)

	mergeParsed(data, map[string]string{"path": "p", "x-custom": "c", "scheme": "s"})

	var keys []string
	for el := data.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Key)
	}
	want := []string{"query", "path", "scheme", "x-custom"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("keys = %v, want %v", keys, want)
	}
	if v, _ := data.Get("query"); v != "kept" {
		t.Errorf("query = %v, want kept", v)
	}
	if v, _ := data.Get("path"); v != "p" {
		t.Errorf("path = %v, want p", v)
	}
}
