package atlasc

import (
	"image"
	"testing"
)

func TestSimplifyRespectsBudget(t *testing.T) {
	m := squareMask(20)
	outline := ExtractOutline(m)
	if len(outline) < 10 {
		t.Fatalf("need a sufficiently detailed outline for this test, got %d points", len(outline))
	}

	simplified := Simplify(outline, 8)
	if len(simplified) > 8 {
		t.Fatalf("Simplify produced %d points, want <= 8", len(simplified))
	}
	if len(simplified) < 3 {
		t.Fatalf("Simplify degenerated to %d points", len(simplified))
	}
}

func TestSimplifySmallInputPassesThrough(t *testing.T) {
	outline := Outline{{0, 0}, {1, 0}}
	got := Simplify(outline, 10)
	if len(got) != 2 {
		t.Fatalf("expected 2-point outline to pass through unchanged, got %v", got)
	}
}

func TestDedupeConsecutive(t *testing.T) {
	in := Outline{{0, 0}, {0, 0}, {1, 0}, {1, 0}, {0, 0}}
	got := dedupeConsecutive(in)
	want := Outline{{0, 0}, {1, 0}}
	if len(got) != len(want) {
		t.Fatalf("dedupeConsecutive() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dedupeConsecutive()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPerpDistanceDegenerateSegment(t *testing.T) {
	p := Vec2{1, 1}
	a := Vec2{0, 0}
	d := perpDistance(p, a, a)
	want := p.sub(a).length()
	if d != want {
		t.Fatalf("perpDistance with a==b = %v, want %v", d, want)
	}
}

func TestRdpOpenCollinearCollapses(t *testing.T) {
	pts := Outline{{0, 0}, {5, 0}, {10, 0}}
	got := rdpOpen(pts, 0.5)
	if len(got) != 2 {
		t.Fatalf("rdpOpen on a straight line = %v, want 2 points", got)
	}
	if got[0] != (image.Point{0, 0}) || got[1] != (image.Point{10, 0}) {
		t.Fatalf("rdpOpen = %v, want endpoints only", got)
	}
}
