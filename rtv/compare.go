package rtv

import "strings"

// hashSeed is the initial accumulator for Hash's left-to-right fold. The
// constant is FNV-1a's offset basis, reused here purely as a well-mixed
// starting value, not because Hash implements FNV.
const hashSeed uint64 = 14695981039346656037

// Hash folds every element's Hash into a single value, left to right.
func (v *Vector[T]) Hash() uint64 {
	h := hashSeed
	it := v.Values()
	for {
		elem, ok := it.Next()
		if !ok {
			return h
		}
		h = (h ^ elem.Hash()) * 1099511628211
	}
}

// Equal reports whether v and w contain the same elements in the same
// order. Equal vectors may differ in how much of their tree is shared.
func (v *Vector[T]) Equal(w *Vector[T]) bool {
	if v.Size() != w.Size() {
		return false
	}
	vi, wi := v.Values(), w.Values()
	for {
		a, ok := vi.Next()
		if !ok {
			return true
		}
		b, _ := wi.Next()
		if !a.Equal(b) {
			return false
		}
	}
}

// Compare orders v and w lexicographically by element, with length as the
// final tie-breaker: a vector that is a strict prefix of another compares
// less than it.
func (v *Vector[T]) Compare(w *Vector[T]) int {
	vi, wi := v.Values(), w.Values()
	for {
		a, aok := vi.Next()
		b, bok := wi.Next()
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		}
		if c := a.Compare(b); c != 0 {
			return c
		}
	}
}

// String renders v as a bracketed, comma-separated list prefixed with an
// identifying tag, e.g. "rtv.Vector[1, 2, 3]".
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteString("rtv.Vector[")
	it := v.Values()
	first := true
	for {
		elem, ok := it.Next()
		if !ok {
			break
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(elem.String())
	}
	b.WriteString("]")
	return b.String()
}
