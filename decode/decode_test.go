package decode

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/maniartech/jsonvisit"
)

func TestString(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{`"hello"`, "hello", true},
		{`""`, "", true},
		{`"a\nb"`, "a\nb", true},
		{`"A"`, "A", true},
		{`"\"q\""`, `"q"`, true},
		{`hello`, "", false},
		{`"unterminated`, "", false},
	}
	for _, c := range cases {
		got, ok := String([]byte(c.in))
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("String(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestNumber(t *testing.T) {
	got, ok := Number([]byte("-1.5e2"))
	if !ok || got != -150 {
		t.Errorf("Number(-1.5e2) = (%v, %v), want (-150, true)", got, ok)
	}
}

func TestBoolAndNull(t *testing.T) {
	if v, ok := Bool([]byte("true"), jsonvisit.TRUE); !ok || !v {
		t.Errorf("Bool(true) = (%v, %v)", v, ok)
	}
	if v, ok := Bool([]byte("false"), jsonvisit.FALSE); !ok || v {
		t.Errorf("Bool(false) = (%v, %v)", v, ok)
	}
	if !IsNull(jsonvisit.NULL) {
		t.Error("IsNull(NULL) = false")
	}
}

func TestWalkPaths(t *testing.T) {
	data := []byte(`{"a":1,"b":[10,20]}`)

	var paths [][]any
	Walk(data, 0, func(path []any, ev jsonvisit.Event) int64 {
		if ev.Info.Has(jsonvisit.VALUE) && (ev.Info.Has(jsonvisit.NUMBER)) {
			cp := make([]any, len(path))
			copy(cp, path)
			paths = append(paths, cp)
		}
		return jsonvisit.Continue
	})

	want := [][]any{
		{"a"},
		{"b", 0},
		{"b", 1},
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}
