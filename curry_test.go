package grampa_test

import (
	"testing"

	"github.com/emilianobovetti/grampa"
)

func TestCurry2_FullAndPartial(t *testing.T) {
	sub := func(a, b int) int { return a - b }
	c := grampa.Curry2(sub)
	for _, p := range [][2]int{{0, 0}, {5, 3}, {-1, 4}} {
		a, b := p[0], p[1]
		if c(a, b) != sub(a, b) || c.Bind(a)(b) != sub(a, b) {
			t.Fatalf("curry2 mismatch for (%d,%d)", a, b)
		}
	}
}

func TestCurry3_Curry4(t *testing.T) {
	join3 := grampa.Curry3(func(a, b, c string) string { return a + b + c })
	if got := join3.Bind("a").Bind("b")("c"); got != "abc" {
		t.Fatalf("curry3=%q", got)
	}
	join4 := grampa.Curry4(func(a, b, c, d string) string { return a + b + c + d })
	if got := join4.Bind("a")("b", "c", "d"); got != "abcd" {
		t.Fatalf("curry4=%q", got)
	}
}
