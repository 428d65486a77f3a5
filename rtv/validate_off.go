//go:build !rtvdebug

package rtv

// checkInvariants is a no-op unless the rtvdebug build tag is set, so the
// debug audit has zero cost in ordinary builds.
func (v *Vector[T]) checkInvariants() {}
