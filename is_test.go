package grampa_test

import (
	"math"
	"testing"

	"github.com/emilianobovetti/grampa"
)

func TestIsEmpty(t *testing.T) {
	for _, v := range []any{"", []any{}, nil, grampa.Undefined, map[string]any{"length": 0}, grampa.List{}} {
		if !grampa.IsEmpty(v) {
			t.Errorf("IsEmpty(%#v)=false", v)
		}
	}
	for _, v := range []any{[]any{1}, "a", 0, map[string]any{}, struct{}{}} {
		if grampa.IsEmpty(v) {
			t.Errorf("IsEmpty(%#v)=true", v)
		}
	}
}

func TestIsListLike(t *testing.T) {
	yes := []any{
		"abc",
		grampa.BoxString("abc"),
		map[string]any{"length": 0},
		map[string]any{"length": 2, "0": "a", "1": "b"},
		map[string]any{"length": grampa.BoxNumber(1), "0": "a"},
		[]int{1, 2},
		[0]int{},
	}
	for _, v := range yes {
		if !grampa.IsListLike(v) {
			t.Errorf("IsListLike(%#v)=false", v)
		}
	}
	no := []any{
		map[string]any{"length": 2},
		map[string]any{"length": 1.5, "0": "a"},
		map[string]any{"length": -1, "0": "a"},
		map[string]any{"length": "1", "0": "a"},
		42,
		nil,
		grampa.Undefined,
		struct{ Length int }{0},
		// no own index 0
		grampa.List{grampa.Hole, 1},
	}
	for _, v := range no {
		if grampa.IsListLike(v) {
			t.Errorf("IsListLike(%#v)=true", v)
		}
	}
}

func TestIsInteger(t *testing.T) {
	for _, v := range []any{0, 3, -4, 2.0, uint8(9), grampa.BoxNumber(5)} {
		if !grampa.IsInteger(v) {
			t.Errorf("IsInteger(%#v)=false", v)
		}
	}
	for _, v := range []any{1.5, math.NaN(), math.Inf(1), "3", nil, true} {
		if grampa.IsInteger(v) {
			t.Errorf("IsInteger(%#v)=true", v)
		}
	}
}

func TestIsKind_PartialAndFull(t *testing.T) {
	isStr := grampa.IsKind(grampa.KindString)
	if !isStr("x") || isStr(1) {
		t.Fatalf("IsKind(KindString) misclassifies")
	}
	if !grampa.Is(grampa.KindNumber, 1) || grampa.Is(grampa.KindNumber, "1") {
		t.Fatalf("Is(KindNumber, ...) misclassifies")
	}
	if !grampa.IsFunction(TestIsKind_PartialAndFull) {
		t.Fatalf("IsFunction(func)=false")
	}
	if !grampa.IsObject([]any{}) || grampa.IsObject(nil) {
		t.Fatalf("IsObject misclassifies")
	}
	if !grampa.IsBoolean(grampa.BoxBool(true)) {
		t.Fatalf("IsBoolean(BoxBool)=false")
	}
}

func TestHasOwn(t *testing.T) {
	type base struct{ ID int }
	type Base struct{ ID int }
	type rec struct {
		Name string `json:"name"`
		Base
		hidden int
		base
	}
	r := rec{Name: "n"}
	if !grampa.HasOwn(r, "name") || !grampa.HasOwn(&r, "Base") {
		t.Fatalf("expected own fields name and Base")
	}
	if grampa.HasOwn(r, "ID") || grampa.HasOwn(r, "hidden") {
		t.Fatalf("promoted and unexported fields must not be own")
	}
	if !grampa.HasOwn([]int{1}, 0) || grampa.HasOwn([]int{1}, 1) || !grampa.HasOwn([]int{1}, "0") {
		t.Fatalf("slice index ownership wrong")
	}
	if !grampa.HasOwn(map[string]any{"0": 1}, 0) || grampa.HasOwn(map[string]any{}, "a") {
		t.Fatalf("map key ownership wrong")
	}
	if !grampa.HasOwn("ab", 1) || grampa.HasOwn("ab", 2) {
		t.Fatalf("string index ownership wrong")
	}
	if grampa.HasOwn(nil, 0) || grampa.HasOwn(grampa.List{grampa.Hole}, 0) {
		t.Fatalf("absent values and holes have no own attributes")
	}
}

func TestHasOwn_NarrowMapKeys(t *testing.T) {
	if grampa.HasOwn(map[int8]any{44: 1}, 300) {
		t.Fatalf("300 must not wrap onto int8 key 44")
	}
	if !grampa.HasOwn(map[int8]any{44: 1}, 44) {
		t.Fatalf("expected int8 key 44 to be found")
	}
	if grampa.HasOwn(map[uint8]any{255: 1}, -1) {
		t.Fatalf("-1 must not wrap onto uint8 key 255")
	}
	if !grampa.HasOwn(map[int64]any{1 << 40: 1}, 1<<40) {
		t.Fatalf("expected int64 key to be found")
	}
}
