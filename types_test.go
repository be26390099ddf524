package grampa_test

import (
	"encoding/json"
	"testing"

	"github.com/emilianobovetti/grampa"
)

func TestKindOf_Sentinels(t *testing.T) {
	var np *int
	cases := []struct {
		name string
		v    any
		want grampa.Kind
	}{
		{"nil", nil, grampa.KindNull},
		{"typed nil pointer", np, grampa.KindNull},
		{"undefined", grampa.Undefined, grampa.KindUndefined},
		{"int", 3, grampa.KindNumber},
		{"float", 1.5, grampa.KindNumber},
		{"json number", json.Number("12"), grampa.KindNumber},
		{"string", "x", grampa.KindString},
		{"bool", true, grampa.KindBoolean},
		{"func", func() {}, grampa.KindFunction},
		{"map", map[string]any{}, grampa.KindObject},
		{"slice", []int{1}, grampa.KindObject},
		{"nil slice", []int(nil), grampa.KindObject},
		{"struct", struct{}{}, grampa.KindObject},
		{"struct pointer", &struct{ A int }{1}, grampa.KindObject},
	}
	for _, tc := range cases {
		if got := grampa.KindOf(tc.v); got != tc.want {
			t.Errorf("%s: KindOf=%v want %v", tc.name, got, tc.want)
		}
	}
}

func TestKindOf_Boxed(t *testing.T) {
	if k := grampa.KindOf(grampa.BoxNumber(3)); k != grampa.KindNumber {
		t.Fatalf("boxed number classified as %v", k)
	}
	if k := grampa.KindOf(grampa.BoxString("s")); k != grampa.KindString {
		t.Fatalf("boxed string classified as %v", k)
	}
	if k := grampa.KindOf(grampa.BoxBool(false)); k != grampa.KindBoolean {
		t.Fatalf("boxed bool classified as %v", k)
	}
	n := 7
	if k := grampa.KindOf(&n); k != grampa.KindNumber {
		t.Fatalf("pointer to int classified as %v", k)
	}
	b := grampa.BoxNumber(1)
	if k := grampa.KindOf(&b); k != grampa.KindNumber {
		t.Fatalf("pointer to Box classified as %v", k)
	}
}

func TestUnbox(t *testing.T) {
	s := "abc"
	if got := grampa.Unbox(&s); got != "abc" {
		t.Fatalf("Unbox(&s)=%v", got)
	}
	if got := grampa.Unbox(grampa.BoxNumber(2)); got != 2.0 {
		t.Fatalf("Unbox(BoxNumber(2))=%v", got)
	}
	m := map[string]any{"a": 1}
	if got, ok := grampa.Unbox(m).(map[string]any); !ok || got["a"] != 1 {
		t.Fatalf("Unbox should return aggregates unchanged, got %#v", got)
	}
	if got := grampa.Unbox(nil); got != nil {
		t.Fatalf("Unbox(nil)=%v", got)
	}
}

func TestKind_String(t *testing.T) {
	want := map[grampa.Kind]string{
		grampa.KindNull:      "null",
		grampa.KindUndefined: "undefined",
		grampa.KindNumber:    "number",
		grampa.KindString:    "string",
		grampa.KindBoolean:   "boolean",
		grampa.KindObject:    "object",
		grampa.KindFunction:  "function",
	}
	for k, s := range want {
		if k.String() != s {
			t.Errorf("Kind(%d).String()=%q want %q", int(k), k.String(), s)
		}
	}
}
