package part

import (
	"testing"
)

func TestBase_AddUsesNextIndex(t *testing.T) {
	p := NewPath("a/b")
	p.Add("c")
	if got := p.String(); got != "a/b/c" {
		t.Fatalf("String() = %q, want %q", got, "a/b/c")
	}

	p.Remove("1").Add("d")
	if got := p.String(); got != "a/c/d" {
		t.Errorf("String() = %q, want %q", got, "a/c/d")
	}
	if !p.Has("3") {
		t.Error("appended value must land under key \"3\"")
	}
}

func TestBase_AddIgnoresNonIndexKeys(t *testing.T) {
	q := NewQuery("name=x&07=y&-3=z")
	q.Add("v")
	if got := q.Get("0"); got != "v" {
		t.Errorf("Get(0) = %v, want v", got)
	}
}

func TestBase_HasTreatsNilAsAbsent(t *testing.T) {
	q := NewQuery("")
	q.Set("k", nil)
	if q.Has("k") {
		t.Error("Has(k) = true for nil value")
	}
	if _, ok := q.Lookup("k"); ok {
		t.Error("Lookup(k) ok = true for nil value")
	}
	q.Set("k", "")
	if !q.Has("k") {
		t.Error("Has(k) = false for empty string value")
	}
}

func TestBase_DataIsCopy(t *testing.T) {
	q := NewQuery("a=1")
	data := q.Data()
	data.Set("b", "2")
	data.Delete("a")

	if !q.Has("a") || q.Has("b") {
		t.Error("changes to returned data leaked into part")
	}
}

func TestBase_SetDataReplacesVerbatim(t *testing.T) {
	f := NewFragment("docs?x=1", nil)

	data := NewData()
	data.Set("path", "raw")
	f.SetData(data)

	if got, ok := f.Get("path").(string); !ok || got != "raw" {
		t.Errorf("Get(path) = %#v, want raw string", f.Get("path"))
	}
	if f.Has("query") {
		t.Error("Has(query) = true after data was replaced")
	}
	if got := f.String(); got != "raw" {
		t.Errorf("String() = %q, want %q", got, "raw")
	}

	f.SetData(nil)
	if f.Data().Len() != 0 {
		t.Error("SetData(nil) must leave empty mapping")
	}
}

func TestBase_SetDataInitializesFirst(t *testing.T) {
	calls := 0
	parser := func(raw string) map[string]string {
		calls++
		return ParseComponents(raw)
	}
	f := NewFragment("docs", nil, WithParser(parser))

	data := NewData()
	data.Set("path", NewPath("kept"))
	f.SetData(data)

	if calls != 1 {
		t.Errorf("parser called %d times, want 1", calls)
	}
	if got := f.String(); got != "kept" {
		t.Errorf("String() = %q, want %q", got, "kept")
	}
}

func TestBase_Chaining(t *testing.T) {
	q := NewQuery("").Set("a", "1").Set("b", "2").Remove("a").Add("x")
	if got := q.String(); got != "b=2&0=x" {
		t.Errorf("String() = %q, want %q", got, "b=2&0=x")
	}
}

func TestNextIndex(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want int
	}{
		{"empty", nil, 0},
		{"sequential", []string{"0", "1", "2"}, 3},
		{"gap", []string{"5", "1"}, 6},
		{"non canonical", []string{"01", "+2", "x"}, 0},
		{"negative", []string{"-1"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := NewData()
			for _, k := range tt.keys {
				data.Set(k, k)
			}
			if got := nextIndex(data); got != tt.want {
				t.Errorf("nextIndex() = %d, want %d", got, tt.want)
			}
		})
	}
}
