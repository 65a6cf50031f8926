package part

import (
	"slices"
	"testing"
)

func TestPath_Segments(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", []string{""}},
		{"docs", []string{"docs"}},
		{"/a/b", []string{"", "a", "b"}},
		{"a/b/", []string{"a", "b", ""}},
		{"/", []string{"", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			p := NewPath(tt.raw)
			if got := p.Segments(); !slices.Equal(got, tt.want) {
				t.Errorf("Segments() = %q, want %q", got, tt.want)
			}
			if got := p.String(); got != tt.raw {
				t.Errorf("String() = %q, want %q", got, tt.raw)
			}
		})
	}
}

func TestPath_AddSegment(t *testing.T) {
	p := NewPath("/api")
	p.AddSegment("v1").AddSegment("users")
	if got := p.Path(); got != "/api/v1/users" {
		t.Errorf("Path() = %q, want %q", got, "/api/v1/users")
	}
}

func TestPath_SetPath(t *testing.T) {
	p := NewPath("a/b")
	p.AddSegment("c")
	p.SetPath("x/y")
	if p.IsInitialized() {
		t.Error("path still initialized after SetPath")
	}
	if got := p.String(); got != "x/y" {
		t.Errorf("String() = %q, want %q", got, "x/y")
	}
}

func TestPath_NilString(t *testing.T) {
	var p *Path
	if got := p.String(); got != "" {
		t.Errorf("String() on nil path = %q, want empty", got)
	}
}
