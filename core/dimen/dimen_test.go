package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/image/math/fixed"
)

func TestFromFixed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.core")
	defer teardown()
	//
	if got := FromFixed(fixed.I(12)); got != 12 {
		t.Errorf("expected 12px, got %v", got)
	}
	// the division by 64 is intentionally lossy
	if got := FromFixed(fixed.Int26_6(64 + 40)); got != 1 {
		t.Errorf("expected truncation to 1px, got %v", got)
	}
}

func TestRectUnion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glint.core")
	defer teardown()
	//
	a := Rect{X0: 0, Y0: -2, X1: 10, Y1: 8}
	b := Rect{X0: -5, Y0: 0, X1: 4, Y1: 20}
	u := a.Union(b)
	if u != (Rect{X0: -5, Y0: -2, X1: 10, Y1: 20}) {
		t.Errorf("unexpected union: %+v", u)
	}
}
