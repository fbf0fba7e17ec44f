package staticset_test

import (
	"testing"

	. "github.com/dogmatiq/setkit/staticset"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("it discards duplicate values", func(t *testing.T) {
		t.Parallel()

		if diff := cmp.Diff([]int{3, 1, 2}, New(3, 1, 3, 2, 1)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("it returns a non-nil empty set when given no values", func(t *testing.T) {
		t.Parallel()

		s := New[int]()

		if s == nil {
			t.Fatal("expected a non-nil slice")
		}

		if !IsEmpty(s) {
			t.Fatal("expected set to be empty")
		}
	})

	t.Run("it does not share memory with the argument", func(t *testing.T) {
		t.Parallel()

		values := []int{1, 2, 3}
		s := New(values...)
		values[0] = 100

		if Has(s, 100) {
			t.Fatal("did not expect modification of the argument to affect the set")
		}
	})
}

func TestAdd(t *testing.T) {
	t.Parallel()

	t.Run("it returns a new set containing the value", func(t *testing.T) {
		t.Parallel()

		s := New(1, 2)
		r := Add(s, 3)

		if diff := cmp.Diff([]int{1, 2, 3}, r); diff != "" {
			t.Fatal(diff)
		}

		if diff := cmp.Diff([]int{1, 2}, s); diff != "" {
			t.Fatalf("unexpected modification of the input: %s", diff)
		}
	})

	t.Run("it returns a copy if the value is already present", func(t *testing.T) {
		t.Parallel()

		s := New(1, 2)
		r := Add(s, 2)

		if diff := cmp.Diff(s, r); diff != "" {
			t.Fatal(diff)
		}

		r[0] = 100
		if s[0] != 1 {
			t.Fatal("expected the result to be independent of the input")
		}
	})

	t.Run("results derived from the same set are independent", func(t *testing.T) {
		t.Parallel()

		s := make([]int, 2, 10)
		s[0], s[1] = 1, 2

		a := Add(s, 3)
		b := Add(s, 4)

		if diff := cmp.Diff([]int{1, 2, 3}, a); diff != "" {
			t.Fatal(diff)
		}

		if diff := cmp.Diff([]int{1, 2, 4}, b); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestRemove(t *testing.T) {
	t.Parallel()

	t.Run("it returns a new set without the value", func(t *testing.T) {
		t.Parallel()

		s := New(1, 2, 3)
		r := Remove(s, 2)

		if diff := cmp.Diff([]int{1, 3}, r); diff != "" {
			t.Fatal(diff)
		}

		if diff := cmp.Diff([]int{1, 2, 3}, s); diff != "" {
			t.Fatalf("unexpected modification of the input: %s", diff)
		}
	})

	t.Run("it returns an equal set if the value is not present", func(t *testing.T) {
		t.Parallel()

		s := New(1, 2, 3)

		if diff := cmp.Diff(s, Remove(s, 4)); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestSetAlgebra(t *testing.T) {
	t.Parallel()

	a := New(1, 2, 3, 4)
	b := New(3, 4, 5)

	cases := []struct {
		Desc string
		Got  []int
		Want []int
	}{
		{"union", Union(a, b), []int{1, 2, 3, 4, 5}},
		{"intersection", Intersection(a, b), []int{3, 4}},
		{"difference", Difference(a, b), []int{1, 2}},
	}

	for _, c := range cases {
		t.Run(c.Desc, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(c.Want, c.Got); diff != "" {
				t.Fatal(diff)
			}
		})
	}

	t.Run("subset", func(t *testing.T) {
		t.Parallel()

		if IsSubsetOf(a, b) {
			t.Fatal("did not expect a to be a subset of b")
		}

		if !IsSubsetOf(New(3, 4), a) {
			t.Fatal("expected {3, 4} to be a subset of a")
		}
	})

	t.Run("it does not modify the operands", func(t *testing.T) {
		t.Parallel()

		if diff := cmp.Diff([]int{1, 2, 3, 4}, a); diff != "" {
			t.Fatal(diff)
		}

		if diff := cmp.Diff([]int{3, 4, 5}, b); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("it supports adding and removing values in sequence", func(t *testing.T) {
		t.Parallel()

		s := New(1, 2, 3, 4)
		s = Add(s, 5)
		s = Remove(s, 2)

		if diff := cmp.Diff([]int{1, 3, 4, 5}, s); diff != "" {
			t.Fatal(diff)
		}

		if got, want := Len(s), 4; got != want {
			t.Fatalf("unexpected length: got %d, want %d", got, want)
		}
	})
}

func TestEqual(t *testing.T) {
	t.Parallel()

	if !Equal(New(1, 2, 3), New(3, 2, 1)) {
		t.Fatal("expected sets with the same members to be equal")
	}

	if Equal(New(1, 2), New(1, 2, 3)) {
		t.Fatal("did not expect sets with different members to be equal")
	}
}

func TestSetAlgebra_properties(t *testing.T) {
	t.Parallel()

	values := rapid.SliceOfN(rapid.IntRange(0, 16), 0, 16)
	sortInts := cmpopts.SortSlices(func(a, b int) bool { return a < b })

	rapid.Check(t, func(t *rapid.T) {
		a := New(values.Draw(t, "a")...)
		b := New(values.Draw(t, "b")...)
		v := rapid.IntRange(0, 16).Draw(t, "v")
		empty := New[int]()

		if diff := cmp.Diff(Add(a, v), Add(Add(a, v), v)); diff != "" {
			t.Fatalf("add is not idempotent: %s", diff)
		}

		if diff := cmp.Diff(Union(a, b), Union(b, a), sortInts); diff != "" {
			t.Fatalf("union is not commutative: %s", diff)
		}

		if !Equal(Union(a, empty), a) {
			t.Fatal("expected union with the empty set to equal the set")
		}

		if !IsEmpty(Intersection(a, empty)) {
			t.Fatal("expected intersection with the empty set to be empty")
		}

		if !Equal(Difference(a, empty), a) {
			t.Fatal("expected difference with the empty set to equal the set")
		}

		if !IsSubsetOf(a, a) {
			t.Fatal("expected set to be a subset of itself")
		}

		if got, want := Len(Union(a, b)), len(Intersection(a, b))+len(Difference(a, b))+len(Difference(b, a)); got != want {
			t.Fatalf("unexpected union length: got %d, want %d", got, want)
		}
	})
}
