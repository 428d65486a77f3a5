package rtv

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentClonesAreIndependentlyMutable exercises the concurrent-
// ownership-across-clones guarantee from the concurrency model: clones of a
// common ancestor may be mutated from separate goroutines without
// synchronisation, since mutation always path-copies rather than touching
// shared nodes.
func TestConcurrentClonesAreIndependentlyMutable(t *testing.T) {
	base := FromSlice(ints(4096))

	const workers = 16
	clones := make([]*Vector[intElem], workers)
	for i := range clones {
		clones[i] = base.Clone()
	}

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			v := clones[i]
			for j := 0; j < 2000; j++ {
				v.Push(intElem(j))
			}
			for j := 0; j < 500; j++ {
				if _, err := v.Pop(); err != nil {
					return err
				}
			}
			return v.Invariants()
		})
	}
	require.NoError(t, g.Wait())

	for i := 0; i < workers; i++ {
		require.Equal(t, 4096+2000-500, clones[i].Size())
	}

	// The shared ancestor must be untouched by any of the clones' work.
	require.Equal(t, 4096, base.Size())
	for i := 0; i < 4096; i += 257 {
		got, err := base.Get(i)
		require.NoError(t, err)
		require.Equal(t, intElem(i), got)
	}
}
