package rtv

import "fmt"

// Invariants performs a recursive structural audit of v and reports the
// first inconsistency found, or nil if v is well-formed. It is always
// compiled and directly callable (e.g. from rtvctl validate) regardless of
// the rtvdebug build tag; only the automatic post-mutation call in
// validate.go / validate_off.go is gated by that tag.
func (v *Vector[T]) Invariants() error {
	if v.tailSize >= branchFactor {
		return fmt.Errorf("%w: tailSize %d >= branchFactor", ErrStructuralInvariant, v.tailSize)
	}
	if v.rootSize%branchFactor != 0 {
		return fmt.Errorf("%w: rootSize %d not a multiple of branchFactor", ErrStructuralInvariant, v.rootSize)
	}
	if v.root == nil {
		if v.rootSize != 0 || v.shift != 0 {
			return fmt.Errorf("%w: nil root but rootSize=%d shift=%d", ErrStructuralInvariant, v.rootSize, v.shift)
		}
		return nil
	}
	size, err := v.root.validate(v.shift, true)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStructuralInvariant, err)
	}
	if size != v.rootSize {
		return fmt.Errorf("%w: root holds %d elements, rootSize says %d", ErrStructuralInvariant, size, v.rootSize)
	}
	return nil
}
