package mutex

import "testing"

func TestWithReturnsClosureResult(t *testing.T) {
	n := 3
	m := NewExclusive(&n)
	got := With(m, func(v *int) string {
		if *v == 3 {
			return "three"
		}
		return "other"
	})
	if got != "three" {
		t.Fatalf("expected %q, got %q", "three", got)
	}
}

func TestWith2LocksLeftToRight(t *testing.T) {
	var order []string
	a := &recordingMutex{name: "a", order: &order}
	b := &recordingMutex{name: "b", order: &order}

	With2(a, b, func(av, bv *int) int {
		*av++
		*bv++
		return 0
	})

	want := []string{"a", "b"}
	if len(order) != len(want) {
		t.Fatalf("expected %d acquisitions, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("acquisition %d: expected %s, got %s", i, want[i], order[i])
		}
	}
	if a.v != 1 || b.v != 1 {
		t.Fatalf("expected both values incremented, got %d %d", a.v, b.v)
	}
}

func TestWith3(t *testing.T) {
	x, y, z := 1, 2, 3
	sum := With3(NewExclusive(&x), NewExclusive(&y), NewExclusive(&z),
		func(a, b, c *int) int {
			*a++
			*b++
			*c++
			return *a + *b + *c
		})
	if sum != 9 {
		t.Fatalf("expected sum 9, got %d", sum)
	}
	if x != 2 || y != 3 || z != 4 {
		t.Fatalf("expected 2 3 4, got %d %d %d", x, y, z)
	}
}

func TestWith4(t *testing.T) {
	a, b, c, d := 1, 1, 1, 1
	total := With4(NewExclusive(&a), NewExclusive(&b), NewExclusive(&c), NewExclusive(&d),
		func(av, bv, cv, dv *int) int {
			return *av + *bv + *cv + *dv
		})
	if total != 4 {
		t.Fatalf("expected 4, got %d", total)
	}
}

// recordingMutex appends its name to a shared slice on every acquisition.
type recordingMutex struct {
	name  string
	order *[]string
	v     int
}

func (m *recordingMutex) Lock(f func(*int)) {
	*m.order = append(*m.order, m.name)
	f(&m.v)
}
