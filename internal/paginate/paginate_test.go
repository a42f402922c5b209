package paginate

import (
	"reflect"
	"testing"
)

type mapStore map[string]int

func (m mapStore) Cursor(key string) int       { return m[key] }
func (m mapStore) SetCursor(key string, v int) { m[key] = v }

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestWindowAlwaysReturnsPageSizeItems(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 9; n++ {
		for k := 1; k <= 5; k++ {
			w := NewWindow(seq(n), k)
			for step := 0; step < 2*n+2; step++ {
				got := w.Visible()
				want := k
				if n == 0 {
					want = 0
				}
				if len(got) != want {
					t.Fatalf("n=%d k=%d page=%d: len(Visible()) = %d, want %d", n, k, w.Page(), len(got), want)
				}
				w.Forward()
			}
		}
	}
}

func TestWindowWrapPadsFromFront(t *testing.T) {
	t.Parallel()

	w := NewWindow(seq(7), 3)
	w.Seek(2)
	if got := w.Start(); got != 6 {
		t.Fatalf("Start() = %d, want 6", got)
	}
	if got, want := w.Indices(), []int{6, 0, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Indices() = %v, want %v", got, want)
	}
}

func TestWindowShorterThanPageRepeats(t *testing.T) {
	t.Parallel()

	w := NewWindow([]string{"a", "b"}, 3)
	if got, want := w.Visible(), []string{"a", "b", "a"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Visible() = %v, want %v", got, want)
	}
}

func TestWindowZeroSizeTreatedAsOne(t *testing.T) {
	t.Parallel()

	w := NewWindow(seq(3), 0)
	if w.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", w.Size())
	}
}

func TestWindowBackwardClampsAtZero(t *testing.T) {
	t.Parallel()

	w := NewWindow(seq(4), 3)
	w.BackwardClamp()
	w.BackwardClamp()
	if w.Page() != 0 {
		t.Fatalf("Page() = %d, want 0", w.Page())
	}
}

func TestWindowReplaceResetsOutOfRangePage(t *testing.T) {
	t.Parallel()

	w := NewWindow(seq(6), 3)
	w.Seek(5)
	w.Replace(seq(3))
	if w.Page() != 0 {
		t.Fatalf("Page() = %d, want 0 after shrink", w.Page())
	}
	w.Seek(2)
	w.Replace(seq(10))
	if w.Page() != 2 {
		t.Fatalf("Page() = %d, want 2 kept after growth", w.Page())
	}
}

func TestCyclicWrapLaw(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 8; n++ {
		for i := 0; i < n; i++ {
			for p := 0; p <= 3*n; p++ {
				c := NewCyclic(seq(n))
				c.Seek(i)
				for j := 0; j < p; j++ {
					c.Forward()
				}
				if got, want := c.Index(), (i+p)%n; got != want {
					t.Fatalf("n=%d i=%d p=%d: Index() = %d, want %d", n, i, p, got, want)
				}
			}
		}
	}
}

func TestCyclicEmpty(t *testing.T) {
	t.Parallel()

	c := NewCyclic[string](nil)
	c.Forward()
	c.Backward()
	c.BackwardClamp()
	if _, ok := c.Current(); ok {
		t.Fatal("Current() ok on empty list")
	}
	if c.Index() != 0 {
		t.Fatalf("Index() = %d, want 0", c.Index())
	}
}

func TestCyclicBackwardWrapsAndClampDoesNot(t *testing.T) {
	t.Parallel()

	c := NewCyclic(seq(5))
	c.Backward()
	if c.Index() != 4 {
		t.Fatalf("Backward from 0: Index() = %d, want 4", c.Index())
	}
	c.Seek(0)
	c.BackwardClamp()
	if c.Index() != 0 {
		t.Fatalf("BackwardClamp from 0: Index() = %d, want 0", c.Index())
	}
}

func TestCyclicReplace(t *testing.T) {
	t.Parallel()

	c := NewCyclic(seq(5))
	c.Seek(4)
	c.Replace(seq(2))
	if c.Index() != 0 {
		t.Fatalf("Index() = %d, want 0", c.Index())
	}
	c.Seek(1)
	c.Replace([]int{7, 8, 9})
	if v, _ := c.Current(); v != 8 {
		t.Fatalf("Current() = %d, want 8", v)
	}
}

func TestPersistentNextSequence(t *testing.T) {
	t.Parallel()

	store := mapStore{}
	p := NewPersistent(store, "promo", []string{"a", "b", "c"})
	var got []string
	for i := 0; i < 7; i++ {
		v, ok := p.Next()
		if !ok {
			t.Fatal("Next() not ok")
		}
		got = append(got, v)
	}
	want := []string{"a", "b", "c", "a", "b", "c", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Next() sequence = %v, want %v", got, want)
	}
}

func TestPersistentSurvivesRemount(t *testing.T) {
	t.Parallel()

	store := mapStore{}
	catalog := []string{"a", "b", "c"}

	first := NewPersistent(store, "promo", catalog)
	if v, _ := first.Current(); v != "a" {
		t.Fatalf("first show = %q, want a", v)
	}
	first.Hide()

	// A new paginator over the same store continues where the last stopped.
	second := NewPersistent(store, "promo", catalog)
	if v, _ := second.Current(); v != "b" {
		t.Fatalf("second show = %q, want b", v)
	}
	second.Hide()
	third := NewPersistent(store, "promo", catalog)
	if v, _ := third.Next(); v != "c" {
		t.Fatalf("third show = %q, want c", v)
	}
	if store["promo"] != 0 {
		t.Fatalf("stored cursor = %d, want 0", store["promo"])
	}
}

func TestPersistentReplaceResetsOutOfRange(t *testing.T) {
	t.Parallel()

	store := mapStore{"promo": 4}
	p := NewPersistent(store, "promo", []string{"a", "b"})
	if p.Index() != 0 {
		t.Fatalf("Index() = %d, want 0", p.Index())
	}
	p.Replace(nil)
	if _, ok := p.Next(); ok {
		t.Fatal("Next() ok on empty catalog")
	}
	if p.Index() != 0 {
		t.Fatalf("Index() = %d, want 0", p.Index())
	}
}

func TestCursorResizeNegative(t *testing.T) {
	t.Parallel()

	c := NewCursor(-3)
	if c.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", c.Len())
	}
	c.Seek(-1)
	if c.Pos() != 0 {
		t.Fatalf("Pos() = %d, want 0", c.Pos())
	}
	c.Resize(4)
	c.Seek(-1)
	if c.Pos() != 3 {
		t.Fatalf("Seek(-1) on 4: Pos() = %d, want 3", c.Pos())
	}
}
